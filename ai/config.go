package ai

import "github.com/kelseyhightower/envconfig"

type Config struct {
	ApiKey  string `envconfig:"OPENAI_API_KEY" required:"true"`
	BaseUrl string `envconfig:"OPENAI_BASE_URL"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
