package storage

import "fmt"

// Options configures the storage manager.
type Options struct {
	// DefaultDisk names the disk returned by Default (defaults to "local").
	DefaultDisk string

	LocalRoot string
	LocalURL  string

	// S3 is booted only when S3.Bucket is set.
	S3 S3Options
}

// Manager holds the configured disks.
type Manager struct {
	disks       map[string]Disk
	defaultDisk string
}

// New boots the storage manager. The local disk is always available; the s3
// disk is added when a bucket is configured.
func New(opts Options) (*Manager, error) {
	if opts.DefaultDisk == "" {
		opts.DefaultDisk = "local"
	}

	m := &Manager{
		disks:       map[string]Disk{},
		defaultDisk: opts.DefaultDisk,
	}
	m.disks["local"] = NewLocal(opts.LocalRoot, opts.LocalURL)

	if opts.S3.Bucket != "" {
		d, err := NewS3(opts.S3)
		if err != nil {
			return nil, err
		}
		m.disks["s3"] = d
	}

	if _, ok := m.disks[m.defaultDisk]; !ok {
		return nil, fmt.Errorf("storage: default disk %q is not configured", m.defaultDisk)
	}
	return m, nil
}

// Disk returns the named disk and whether it is configured.
func (m *Manager) Disk(name string) (Disk, bool) {
	d, ok := m.disks[name]
	return d, ok
}

// Default returns the default disk.
func (m *Manager) Default() Disk {
	return m.disks[m.defaultDisk]
}

// Media returns the disk product images are uploaded to: the s3 disk when
// configured, the default disk otherwise.
func (m *Manager) Media() Disk {
	if d, ok := m.disks["s3"]; ok {
		return d
	}
	return m.Default()
}

// MediaName returns the name of the disk Media resolves to, used as a
// metrics label.
func (m *Manager) MediaName() string {
	if _, ok := m.disks["s3"]; ok {
		return "s3"
	}
	return m.defaultDisk
}

// Register plugs in a custom Disk implementation, used by tests.
func (m *Manager) Register(name string, d Disk) {
	m.disks[name] = d
}
