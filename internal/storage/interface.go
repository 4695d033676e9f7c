package storage

import "errors"

// ErrValueTooLarge is returned by Set when a value exceeds the store's
// per-value cap. The previously persisted value is left untouched.
var ErrValueTooLarge = errors.New("value exceeds storage limit")

// Provider is a durable key→string mapping scoped to one config path.
// A missing key is reported as ok=false, never as an error.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Key-value access
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	Keys() ([]string, error)

	// Utils
	GetConfigPath() string
}
