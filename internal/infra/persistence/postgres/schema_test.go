package postgres

import (
	"testing"

	"citycard/config"

	"github.com/stretchr/testify/assert"
)

func TestSchema_Table(t *testing.T) {
	assert.Equal(t, "main.users", Schema("main").Table("users"))
	assert.Equal(t, "users", Schema("").Table("users"))
}

func TestNewSchema(t *testing.T) {
	cfg := &config.Config{}
	cfg.Store.Schema = "tenant_a"

	assert.Equal(t, Schema("tenant_a"), NewSchema(cfg))
}
