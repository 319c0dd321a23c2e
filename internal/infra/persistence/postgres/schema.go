package postgres

import "citycard/config"

// Schema qualifies table names with the configured PostgreSQL schema.
// The value comes from validated configuration, never from a request.
type Schema string

// NewSchema reads the schema from configuration.
func NewSchema(cfg *config.Config) Schema {
	return Schema(cfg.Store.Schema)
}

// Table returns "<schema>.<name>". GORM quotes each part separately.
func (s Schema) Table(name string) string {
	if s == "" {
		return name
	}

	return string(s) + "." + name
}
