package filters

// Store is the single owned "current config" cell. It is not safe for
// concurrent use; the owner serialises updates.
type Store struct {
	current Config
}

// NewStore returns a store holding DefaultConfig.
func NewStore() *Store {
	return &Store{current: DefaultConfig()}
}

// NewStoreFrom returns a store holding cfg, clamped into the field domains.
func NewStoreFrom(cfg Config) *Store {
	return &Store{current: cfg.Clamped()}
}

// Current returns the held snapshot.
func (s *Store) Current() Config {
	return s.current
}

// Update applies a named change and replaces the held snapshot. On error the
// held snapshot is left untouched.
func (s *Store) Update(name string, value int) (Config, error) {
	next, err := Update(s.current, name, value)
	if err != nil {
		return s.current, err
	}
	s.current = next
	return next, nil
}

// Reset restores the defaults.
func (s *Store) Reset() Config {
	s.current = DefaultConfig()
	return s.current
}
