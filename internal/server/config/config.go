// Package config handles configuration for the authorizer server,
// including defaults, JSON overlay, environment variables and
// command-line flags.
package config

// Config holds runtime settings for the authorizer.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - ValidUsers: raw JSON array of valid username/password pairs, e.g.
//     [{"username":"user1","password":"pass1"}]. The string is parsed
//     and validated by the registry package at startup; the config layer
//     only transports it.
type Config struct {
	EndpointAddr string
	ValidUsers   string
}

// LoadDefaults populates Config with development defaults. There is
// deliberately no default user list: an unset VALID_USERS value must
// surface as a startup error, not as an empty registry.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.ValidUsers = ""
}

// LoadConfig builds a Config by applying defaults, then overlaying
// values from an optional JSON file, the environment and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
