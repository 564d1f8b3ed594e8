package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface to bind; empty binds all.
	Host string `mapstructure:"host" default:""`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps uploaded balance and rules files.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"32"`
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 32 << 20
	}
	return c.BodyLimitMB << 20
}
