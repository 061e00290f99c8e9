package config

import "os"

// Server captures process-level configuration. All state is process memory;
// there are no required environment variables.
type Server struct {
	Addr        string
	Environment string
	// UserSeedPath optionally points at a YAML file overriding the built-in
	// prototype accounts.
	UserSeedPath string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("INSIGHTDECK_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	env := os.Getenv("INSIGHTDECK_ENV")
	if env == "" {
		env = "development"
	}
	return Server{
		Addr:         addr,
		Environment:  env,
		UserSeedPath: os.Getenv("INSIGHTDECK_USER_SEED_PATH"),
	}
}
