package minio

type ClientConfig struct {
	AccessKey    string
	SecretKey    string
	Endpoint     string `yaml:"endpoint"`
	Region       string `yaml:"region"`
	UseSSL       bool   `yaml:"use_ssl"`
	CreateBucket bool   `yaml:"create_bucket"`
}

type BucketConfig struct {
	Bucket       string `yaml:"bucket"`
	Timeout      int64  `yaml:"timeout_in_ms"`
	SignedURLTTL int64  `yaml:"signed_url_ttl_in_seconds"`
}
