package config

// Config is a read-only view over a map[string]any holding dispatch
// settings. Accessors never fail: a missing key or a value of the wrong
// type yields the caller's default.
type Config struct {
	data map[string]any
}

// New wraps data. A nil map behaves as an empty configuration.
func New(data map[string]any) Config {
	if data == nil {
		data = map[string]any{}
	}
	return Config{data: data}
}

// String returns the string under key, or def when the key is absent or
// holds a non-string.
func (c Config) String(key, def string) string {
	if s, ok := c.data[key].(string); ok {
		return s
	}
	return def
}

// Bool returns the bool under key, or def when the key is absent or holds
// a non-bool.
func (c Config) Bool(key string, def bool) bool {
	if b, ok := c.data[key].(bool); ok {
		return b
	}
	return def
}

// Has reports whether key is present at all, regardless of its value's type.
func (c Config) Has(key string) bool {
	_, ok := c.data[key]
	return ok
}
