package usecase

const (
	DefaultConsumerName       = "photoshare-reclaimer"
	DefaultGracePeriodMinutes = 60
)

type ReclaimerConfig struct {
	ConsumerName string `yaml:"consumer_name"`
}

type SweeperConfig struct {
	GracePeriod int `yaml:"grace_period_in_minutes"`
}
