package store

import "fmt"

// ConfigCorruptError means the config file exists but could not be parsed
// into the expected shape. It is fatal to the calling operation: the store
// never silently replaces an existing document with defaults, because that
// would discard real warning history.
type ConfigCorruptError struct {
	Path string
	Err  error
}

func (e *ConfigCorruptError) Error() string {
	return fmt.Sprintf("config file %s is corrupt: %v", e.Path, e.Err)
}

func (e *ConfigCorruptError) Unwrap() error { return e.Err }

// PersistenceWriteError means the config file could not be written. The
// in-memory mutation that preceded the failed save is not rolled back.
type PersistenceWriteError struct {
	Path string
	Err  error
}

func (e *PersistenceWriteError) Error() string {
	return fmt.Sprintf("could not persist config file %s: %v", e.Path, e.Err)
}

func (e *PersistenceWriteError) Unwrap() error { return e.Err }
