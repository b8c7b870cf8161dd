package config

// ServerConfig is the root configuration for roomstore-server.
type ServerConfig struct {
	Server  ServerSection  `koanf:"server"`
	Storage StorageSection `koanf:"storage"`
	Log     LogSection     `koanf:"log"`
}

// ServerSection configures server endpoints and request handling.
type ServerSection struct {
	HTTP      HTTPConfig      `koanf:"http"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	CORS      CORSConfig      `koanf:"cors"`
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Addr string `koanf:"addr"`
}

// RateLimitConfig configures per-client request throttling.
type RateLimitConfig struct {
	Enabled bool `koanf:"enabled"`
	// RPS is the sustained requests-per-second allowance per client IP.
	RPS float64 `koanf:"rps"`
	// Burst is the maximum momentary burst per client IP.
	Burst int `koanf:"burst"`
}

// CORSConfig configures cross-origin request handling.
type CORSConfig struct {
	// AllowedOrigins lists origins permitted to call the API.
	// "*" allows any origin.
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// StorageSection configures snapshot persistence.
type StorageSection struct {
	// DataDir is the directory holding the store snapshot file.
	DataDir string `koanf:"data_dir"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
