package configs

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 3000.
	Port uint16 `env:"PORT" envDefault:"3000"`
	// AllowedOrigins lists the CORS origins accepted by the API.
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}
