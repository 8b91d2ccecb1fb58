package dotconf

// defaultCfg is the process-wide engine behind the package-level Get and
// Set. It is constructed lazily on first use, bound with writeback to the
// default per-user store.
var defaultCfg *Config

// Default returns the process-wide engine, constructing it on first use:
// an empty document merged with the default store's contents and bound
// with writeback to that store. Construction errors (a malformed store,
// for example) surface on every call until they are resolved.
func Default() (*Config, error) {
	if defaultCfg != nil {
		return defaultCfg, nil
	}
	c, err := Load(nil, "")
	if err != nil {
		return nil, err
	}
	defaultCfg = c
	return c, nil
}

// SetDefault substitutes the process-wide engine. Tests use this to point
// the package-level Get and Set at an engine bound to a scratch store.
// Passing nil resets to lazy construction.
func SetDefault(c *Config) {
	defaultCfg = c
}

// Get returns the value at path in the process-wide engine.
// The empty path returns the whole document.
func Get(path string) (any, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	return c.Get(path)
}

// Set assigns value at path in the process-wide engine and persists the
// change to the default store. A nil value deletes the entry at path.
func Set(path string, value any) error {
	c, err := Default()
	if err != nil {
		return err
	}
	return c.Set(path, value)
}
