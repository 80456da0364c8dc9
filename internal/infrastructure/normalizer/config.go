package normalizer

type Config struct {
	Width          int   `yaml:"width"`
	Height         int   `yaml:"height"`
	JPEGQuality    int   `yaml:"jpeg_quality"`
	MaxInputPixels int64 `yaml:"max_input_pixels"`
}
