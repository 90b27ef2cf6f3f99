package htmlfilter

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config controls the URL policy applied to hrefs and filtered markup.
type Config struct {
	// AllowedURLSchemes lists the URL schemes accepted in href values.
	AllowedURLSchemes []string `yaml:"allowed_url_schemes" env:"XSSKIT_ALLOWED_URL_SCHEMES" envDefault:"http,https,mailto,ftp,tel"`

	// AllowRelativeURLs accepts scheme-less URLs such as "/content/page".
	AllowRelativeURLs bool `yaml:"allow_relative_urls" env:"XSSKIT_ALLOW_RELATIVE_URLS" envDefault:"true"`

	// AllowDataURIImages accepts base64-encoded data: URIs on img elements.
	AllowDataURIImages bool `yaml:"allow_data_uri_images" env:"XSSKIT_ALLOW_DATA_URI_IMAGES" envDefault:"false"`
}

func defaultConfig() Config {
	return Config{
		AllowedURLSchemes: []string{"http", "https", "mailto", "ftp", "tel"},
		AllowRelativeURLs: true,
	}
}

// LoadConfig loads the filter configuration from environment variables,
// reading a .env file first if one exists.
func LoadConfig() (Config, error) {
	// The .env file is optional.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParseConfig, err)
	}
	return cfg, nil
}

// LoadConfigFile loads the filter configuration from a YAML policy file.
// Omitted keys keep their defaults.
func LoadConfigFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Join(ErrReadPolicyFile, err)
	}
	cfg := defaultConfig()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, errors.Join(ErrParsePolicyFile, err)
	}
	return cfg, nil
}
