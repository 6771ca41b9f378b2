package config

import (
	"os"
	"time"

	"github.com/go-yaml/yaml"
)

type Config struct {
	Site   Site   `yaml:"site"`
	Server Server `yaml:"server"`
}

type Site struct {
	Name         string `yaml:"name"`
	SupportEmail string `yaml:"supportEmail"`
	SupportPhone string `yaml:"supportPhone"`
}

type Server struct {
	Listen         string `yaml:"listen"`
	PostgresDsn    string `yaml:"postgresDsn"`
	RedisAddr      string `yaml:"redisAddr"`
	RedisDB        int    `yaml:"redisDB"`
	MemcachedAddr  string `yaml:"memcachedAddr"`
	SessionSecret  string `yaml:"sessionSecret"`
	SessionTTLMins int    `yaml:"sessionTTLMinutes"`
	SeedData       bool   `yaml:"seedData"`
	EnableTrace    bool   `yaml:"enableTrace"`
	TraceEndpoint  string `yaml:"traceEndpoint"`
}

// SessionTTL returns the configured session lifetime, defaulting to 24h.
func (s Server) SessionTTL() time.Duration {
	if s.SessionTTLMins <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(s.SessionTTLMins) * time.Minute
}

func Load(path string) (Config, error) {

	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	err = yaml.NewDecoder(file).Decode(&config)
	if err != nil {
		return Config{}, err
	}

	if config.Server.Listen == "" {
		config.Server.Listen = ":8000"
	}

	return config, nil
}
