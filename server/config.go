package server

import "os"

// Config carries the process-level settings the server needs. It is
// built once in main from the environment and passed by reference, so
// no component reads ambient globals at request time.
type Config struct {
	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string
	// JWTSecret signs and verifies access tokens.
	JWTSecret []byte
	// AllowSignup gates the sign-up endpoint, for invite-only deploys.
	AllowSignup bool
}

// ConfigFromEnv reads the config from the environment. Call after
// dotenv loading.
func ConfigFromEnv() *Config {
	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return &Config{
		ListenAddr:  addr,
		JWTSecret:   []byte(os.Getenv("JWT_SECRET_KEY")),
		AllowSignup: os.Getenv("ALLOW_SIGNUP") != "false",
	}
}
