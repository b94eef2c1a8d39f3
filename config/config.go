// Package config loads application configuration into an explicit Config
// struct. Values are merged from config/app.json first and .env second
// (.env wins), with sane defaults for local development. Components receive
// the values they need at construction time — there is no ambient global
// configuration state.
package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	defaultAppPort       = "4000"
	defaultAppEnv        = "local"
	defaultMongoURI      = "mongodb://localhost:27017"
	defaultMongoDatabase = "meera"
	defaultJWTSecret     = "change-me-in-production"
	defaultRedisAddr     = "localhost:6379"
	defaultUploadsRoot   = "uploads"
	defaultUploadsURL    = "/uploads"
	defaultMaxBodyBytes  = 16 << 20 // multipart product uploads
)

// Config holds every setting the application reads.
type Config struct {
	AppPort string
	AppEnv  string

	MongoURI      string
	MongoDatabase string

	JWTSecret     string
	AdminEmail    string
	AdminPassword string

	RedisAddr     string
	RedisPassword string

	// Uploads served from the local disk under /uploads.
	UploadsRoot string
	UploadsURL  string

	// S3-compatible media host for product and gift-package images.
	// The s3 disk is only booted when S3Bucket is set.
	StorageDisk string
	S3Bucket    string
	S3Region    string
	S3Key       string
	S3Secret    string
	S3Endpoint  string
	S3URL       string

	MaxBodyBytes int64
}

// Load reads config/app.json and .env relative to the working directory.
// Missing files are not an error; malformed ones are.
func Load() (Config, error) {
	return LoadFrom("config/app.json", ".env")
}

// LoadFrom is Load with explicit file paths, used by tests.
func LoadFrom(jsonPath, envPath string) (Config, error) {
	values := map[string]string{}

	if err := mergeJSONConfig(jsonPath, values); err != nil {
		if !os.IsNotExist(err) {
			return Config{}, err
		}
	}
	if err := mergeDotEnv(envPath, values); err != nil {
		if !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	get := func(key, fallback string) string {
		if v := strings.TrimSpace(values[key]); v != "" {
			return v
		}
		return fallback
	}

	maxBody, err := strconv.ParseInt(get("MAX_BODY_BYTES", ""), 10, 64)
	if err != nil || maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	cfg := Config{
		AppPort:       get("APP_PORT", defaultAppPort),
		AppEnv:        get("APP_ENV", defaultAppEnv),
		MongoURI:      get("MONGO_URI", defaultMongoURI),
		MongoDatabase: get("MONGO_DATABASE", defaultMongoDatabase),
		JWTSecret:     get("JWT_SECRET", defaultJWTSecret),
		AdminEmail:    get("ADMIN_EMAIL", ""),
		AdminPassword: get("ADMIN_PASSWORD", ""),
		RedisAddr:     get("REDIS_ADDR", defaultRedisAddr),
		RedisPassword: get("REDIS_PASSWORD", ""),
		UploadsRoot:   get("UPLOADS_ROOT", defaultUploadsRoot),
		UploadsURL:    strings.TrimRight(get("UPLOADS_URL", defaultUploadsURL), "/"),
		StorageDisk:   get("STORAGE_DISK", "local"),
		S3Bucket:      get("S3_BUCKET", ""),
		S3Region:      get("S3_REGION", "us-east-1"),
		S3Key:         get("S3_KEY", ""),
		S3Secret:      get("S3_SECRET", ""),
		S3Endpoint:    get("S3_ENDPOINT", ""),
		S3URL:         strings.TrimRight(get("S3_URL", ""), "/"),
		MaxBodyBytes:  maxBody,
	}

	return cfg, nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}
		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}
	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}
