package filedrive

import "fmt"

// Manager resolves configured disk names to constructed drives. All
// disks are built eagerly so configuration mistakes fail at
// construction; the returned drives are shared across callers, which
// is safe because drives hold no per-caller state.
type Manager struct {
	defaultDisk string
	drives      map[string]Drive
}

// NewManager constructs a drive for every configured disk. Options
// apply to every local disk.
func NewManager(cfg *Config, optFns ...Option) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	drives := make(map[string]Drive, len(cfg.Disks))
	for name, disk := range cfg.Disks {
		switch disk.Driver {
		case DriverLocal:
			drives[name] = NewLocalDrive(disk.Root, optFns...)
		case DriverMemory:
			drives[name] = NewMemoryDrive()
		}
	}

	return &Manager{
		defaultDisk: cfg.Default,
		drives:      drives,
	}, nil
}

// Disk returns the drive configured under name.
func (m *Manager) Disk(name string) (Drive, error) {
	d, ok := m.drives[name]
	if !ok {
		return nil, fmt.Errorf("disk %q is not configured", name)
	}
	return d, nil
}

// Default returns the drive named by the config's default entry. When
// no default is set and exactly one disk is configured, that disk is
// the default.
func (m *Manager) Default() (Drive, error) {
	if m.defaultDisk != "" {
		return m.Disk(m.defaultDisk)
	}
	if len(m.drives) == 1 {
		for _, d := range m.drives {
			return d, nil
		}
	}
	return nil, fmt.Errorf("no default disk configured")
}
