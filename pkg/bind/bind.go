// Package bind decodes an HTTP request into a typed command struct and runs
// validation. It is the single place where stringly-typed form fields become
// typed values — handlers never coerce "true"/"19.99" by hand.
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/shashiranjanraj/meera/pkg/validate"
)

// DefaultMaxBodyBytes caps request bodies when the caller passes 0.
const DefaultMaxBodyBytes = 4 << 20 // 4 MB

// JSON decodes r.Body as JSON into dest and runs validation.
// Returns (errs, nil) when there are validation failures.
// Returns (nil, err) when the body is malformed JSON or too large.
func JSON(r *http.Request, dest interface{}, maxBytes int64) (errs map[string]string, err error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)

	dec := json.NewDecoder(r.Body)
	if err = dec.Decode(dest); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("request body too large (max %d bytes)", maxErr.Limit)
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	errs = validate.Struct(dest)
	if validate.HasErrors(errs) {
		return errs, nil
	}
	return nil, nil
}

// Form parses a multipart or urlencoded form and fills dest from its `form`
// tags, coercing values to the field's type:
//
//	string            used as-is
//	float64           strconv.ParseFloat; NaN/Inf rejected
//	bool              "true"/"1" → true, "false"/"0"/"" → false
//	slices, structs   the form value is parsed as a JSON string
//
// Coercion failures come back as field errors alongside validation errors.
// Uploaded files stay in r.MultipartForm for the caller.
func Form(r *http.Request, dest interface{}, maxBytes int64) (errs map[string]string, err error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	if err = r.ParseMultipartForm(maxBytes); err != nil {
		if !errors.Is(err, http.ErrNotMultipart) {
			return nil, fmt.Errorf("invalid form: %w", err)
		}
		if err = r.ParseForm(); err != nil {
			return nil, fmt.Errorf("invalid form: %w", err)
		}
	}

	errs = map[string]string{}

	rv := reflect.ValueOf(dest)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("bind: dest must be a pointer to struct")
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		name := field.Tag.Get("form")
		if name == "" || name == "-" {
			continue
		}

		raw := strings.TrimSpace(r.FormValue(name))
		if raw == "" {
			continue // zero value; `required` rules catch missing fields
		}

		if msg := setField(rv.Field(i), raw); msg != "" {
			errs[name] = fmt.Sprintf("The %s %s", name, msg)
		}
	}

	if len(errs) > 0 {
		return errs, nil
	}

	errs = validate.Struct(dest)
	if validate.HasErrors(errs) {
		return errs, nil
	}
	return nil, nil
}

func setField(v reflect.Value, raw string) (msg string) {
	switch v.Kind() {
	case reflect.String:
		v.SetString(raw)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return "field must be a number."
		}
		v.SetFloat(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return "field must be an integer."
		}
		v.SetInt(n)
	case reflect.Bool:
		switch strings.ToLower(raw) {
		case "true", "1":
			v.SetBool(true)
		case "false", "0":
			v.SetBool(false)
		default:
			return "field must be true or false."
		}
	case reflect.Slice, reflect.Map, reflect.Struct:
		// nested fields arrive as JSON strings (e.g. sizes, giftPrices)
		if err := json.Unmarshal([]byte(raw), v.Addr().Interface()); err != nil {
			return "field must be a valid JSON string."
		}
	default:
		return "field has an unsupported type."
	}
	return ""
}
