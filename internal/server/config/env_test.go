package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_parseEnv(t *testing.T) {

	t.Run("overlays both values", func(t *testing.T) {
		t.Setenv("ADDRESS", ":9999")
		t.Setenv("VALID_USERS", `[{"username":"user1","password":"pass1"}]`)

		cfg := &Config{EndpointAddr: ":8080"}
		parseEnv(cfg)

		assert.Equal(t, ":9999", cfg.EndpointAddr)
		assert.Equal(t, `[{"username":"user1","password":"pass1"}]`, cfg.ValidUsers)
	})

	t.Run("empty values keep current config", func(t *testing.T) {
		t.Setenv("ADDRESS", "")
		t.Setenv("VALID_USERS", "")

		cfg := &Config{EndpointAddr: ":8080", ValidUsers: `[]`}
		parseEnv(cfg)

		assert.Equal(t, ":8080", cfg.EndpointAddr)
		assert.Equal(t, `[]`, cfg.ValidUsers)
	})
}
