package config

import (
	"os"

	"github.com/dmitrijs2005/authorizer/internal/common"
)

// parseEnv overlays Config values from the environment. This is how the
// hosting platform hands the user list to the process: the VALID_USERS
// variable carries the JSON array verbatim.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv(common.EnvEndpointAddr); ok && v != "" {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv(common.EnvValidUsers); ok && v != "" {
		config.ValidUsers = v
	}
}
