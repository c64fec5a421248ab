package driven

// ConfigStore provides access to application configuration.
// Implementations load from a file at startup; reads are cheap.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value, or "" if unset.
	GetString(key string) string

	// GetInt retrieves an integer configuration value, or 0 if unset.
	GetInt(key string) int

	// GetBool retrieves a boolean configuration value, or false if unset.
	GetBool(key string) bool

	// Set stores a configuration value and persists immediately.
	Set(key string, value any) error
}
