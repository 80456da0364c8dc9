package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"photoshare/internal/application/usecase"
	"photoshare/internal/infrastructure/broker"
	"photoshare/internal/infrastructure/database"
	"photoshare/internal/infrastructure/minio"
	"photoshare/internal/infrastructure/normalizer"
	"photoshare/internal/presentation"
	"photoshare/pkg/logger"
)

const (
	defaultDBName        = "fake_insta"
	defaultS3Endpoint    = "s3.amazonaws.com"
	defaultDBTimeout     = 10000
	defaultBucketTimeout = 10000
	defaultStreamName    = "orphan_blobs"
	defaultGroupName     = "reclaimer"
	defaultNamespace     = "photoshare"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                    `yaml:"environment"`
	HTTP            presentation.ServerConfig `yaml:"http"`
	MinIOClient     minio.ClientConfig        `yaml:"minio_client"`
	MinIOBucket     minio.BucketConfig        `yaml:"minio_bucket"`
	DBConfig        database.Config           `yaml:"db_config"`
	Image           normalizer.Config         `yaml:"image"`
	BrokerConfig    broker.Config             `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig    `yaml:"publisher_config"`
	Reclaimer       usecase.ReclaimerConfig   `yaml:"reclaimer"`
	Sweeper         usecase.SweeperConfig     `yaml:"sweeper"`
	Metrics         MetricsConfig             `yaml:"metrics"`
	Logger          logger.Config             `yaml:"logger"`
}

type MetricsConfig struct {
	Namespace string `yaml:"namespace"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	if err := config.loadEnv(); err != nil {
		return nil, err
	}

	config.setDefaults()

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// loadEnv reads secrets and deployment overrides. An unset variable keeps the file value.
func (c *Config) loadEnv() error {
	c.DBConfig.URI = firstEnv(c.DBConfig.URI, "ATLAS_URI", "DATABASE_URI")
	c.MinIOBucket.Bucket = firstEnv(c.MinIOBucket.Bucket, "BUCKET_NAME")
	c.MinIOClient.Region = firstEnv(c.MinIOClient.Region, "BUCKET_REGION")
	c.MinIOClient.AccessKey = firstEnv(c.MinIOClient.AccessKey, "AWS_ACCESS_KEY_ID", "MINIO_ROOT_USER")
	c.MinIOClient.SecretKey = firstEnv(c.MinIOClient.SecretKey, "SECRET_ACCESS_KEY", "MINIO_ROOT_PASSWORD")
	c.BrokerConfig.URI = firstEnv(c.BrokerConfig.URI, "BROKER_URI")

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return Error{
				reason: "invalid PORT: " + port,
			}
		}
		c.HTTP.Port = p
	}

	return nil
}

func firstEnv(fallback string, keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}

	return fallback
}

func (c *Config) setDefaults() {
	if c.HTTP.Port == 0 {
		c.HTTP.Port = presentation.DefaultPort
	}
	if c.HTTP.CORSOrigin == "" {
		c.HTTP.CORSOrigin = presentation.DefaultCORSOrigin
	}
	if c.HTTP.BodyLimit == "" {
		c.HTTP.BodyLimit = presentation.DefaultBodyLimit
	}
	if c.HTTP.RateLimit == 0 {
		c.HTTP.RateLimit = presentation.DefaultRateLimit
	}

	if c.DBConfig.DBName == "" {
		c.DBConfig.DBName = defaultDBName
	}
	if c.DBConfig.ConnectionTimeout == 0 {
		c.DBConfig.ConnectionTimeout = defaultDBTimeout
	}
	if c.DBConfig.QueryTimeout == 0 {
		c.DBConfig.QueryTimeout = defaultDBTimeout
	}

	if c.MinIOClient.Endpoint == "" {
		c.MinIOClient.Endpoint = defaultS3Endpoint
		c.MinIOClient.UseSSL = true
	}
	if c.MinIOBucket.Timeout == 0 {
		c.MinIOBucket.Timeout = defaultBucketTimeout
	}
	if c.MinIOBucket.SignedURLTTL == 0 {
		c.MinIOBucket.SignedURLTTL = int64(minio.DefaultSignedURLTTL.Seconds())
	}

	if c.BrokerConfig.StreamName == "" {
		c.BrokerConfig.StreamName = defaultStreamName
	}
	if c.BrokerConfig.GroupName == "" {
		c.BrokerConfig.GroupName = defaultGroupName
	}

	if c.Reclaimer.ConsumerName == "" {
		c.Reclaimer.ConsumerName = usecase.DefaultConsumerName
	}
	if c.Sweeper.GracePeriod == 0 {
		c.Sweeper.GracePeriod = usecase.DefaultGracePeriodMinutes
	}

	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = defaultNamespace
	}
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.DBConfig.URI == "" {
		return errors.New("database uri is required (ATLAS_URI)")
	}
	if c.MinIOBucket.Bucket == "" {
		return errors.New("bucket name is required (BUCKET_NAME)")
	}
	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		return errors.New("http port must be between 1 and 65535")
	}
	if c.Image.Width < 0 || c.Image.Height < 0 {
		return errors.New("image size must not be negative")
	}
	if c.Image.MaxInputPixels < 0 {
		return errors.New("image max input pixels must not be negative")
	}
	if c.MinIOBucket.SignedURLTTL < 0 {
		return errors.New("signed url ttl must not be negative")
	}
	if c.Sweeper.GracePeriod < 0 {
		return errors.New("sweeper grace period must not be negative")
	}

	return nil
}

// BrokerEnabled reports whether an orphan queue is configured.
func (c *Config) BrokerEnabled() bool {
	return c.BrokerConfig.URI != ""
}
