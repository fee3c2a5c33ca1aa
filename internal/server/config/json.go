package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/authorizer/internal/flagx"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. The valid_users field holds the user list as a nested
// JSON array; it is kept as a raw message and handed to the registry
// package unparsed, so the config file and the VALID_USERS environment
// variable share one format.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into
// the runtime Config struct.
type JsonConfig struct {
	EndpointAddr string          `json:"endpoint_addr"`
	ValidUsers   json.RawMessage `json:"valid_users"`
}

// parseJson loads configuration values from a JSON file into the
// provided Config instance.
//
// The file path is taken from the -c or -config command-line flags; when
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics. Fields absent from the
// file keep their current values.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if len(c.ValidUsers) > 0 {
		config.ValidUsers = string(c.ValidUsers)
	}
}
