package store

import "github.com/kelseyhightower/envconfig"

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

type Config struct {
	DatabaseName string `envconfig:"MONGO_DATABASE_NAME" default:"medwell"`
	Uri          string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
}

func GetConnectionString(cfg *Config) (string, error) {
	return cfg.Uri, nil
}
