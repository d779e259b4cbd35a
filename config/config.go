package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	Port           uint16 `envconfig:"PORT" default:"5000" required:"true"`
	FrontendOrigin string `envconfig:"FRONTEND_URL" default:"http://localhost:3000"`
}

func New() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
