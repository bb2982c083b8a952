package cmd

// Config carries the runtime settings of the service, parsed from the
// environment by envconfig. A .env file in the working directory is loaded
// first when present.
type Config struct {
	HTTPPort        string `envconfig:"HTTP_PORT" default:"8080"`
	DataDir         string `envconfig:"DATA_DIR" default:"./data"`
	DispatchEnabled bool   `envconfig:"DISPATCH_ENABLED" default:"true"`
	CartTTLHours    int    `envconfig:"CART_TTL_HOURS" default:"24"`
}
