package presentation

type ServerConfig struct {
	Port       int    `yaml:"port"`
	CORSOrigin string `yaml:"cors_origin"`
	BodyLimit  string `yaml:"body_limit"`
	RateLimit  int    `yaml:"rate_limit_per_second"`
}
