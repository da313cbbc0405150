package storage

// Provider is a local key-value store. The application persists three
// logical records through it (user, habit collection, completion
// collection), each serialized as a JSON string. The store offers no
// transactions; callers that merge with existing stored state do a plain
// read-then-write.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Records
	// Get returns the stored value for key. A missing key is not an
	// error: it returns ok == false with a nil error.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
	RemoveAll(keys ...string) error

	// Utils
	GetConfigPath() string
}
