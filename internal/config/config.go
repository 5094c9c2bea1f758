package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Address        string   `yaml:"address"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"`
		URL    string `yaml:"url"`
	} `yaml:"database"`
	Auth struct {
		Driver          string `yaml:"driver"` // "firebase" or "jwt"
		CredentialsFile string `yaml:"credentials_file"`
		SigningKey      string `yaml:"signing_key"`
	} `yaml:"auth"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Storage struct {
		AccessKey string `yaml:"access_key"`
		SecretKey string `yaml:"secret_key"`
		Bucket    string `yaml:"bucket"`
		Region    string `yaml:"region"`
		Endpoint  string `yaml:"endpoint"`
		PublicURL string `yaml:"public_url"`
	} `yaml:"storage"`
	Payments struct {
		MerchantID string           `yaml:"merchant_id"`
		SecretKey  string           `yaml:"secret_key"`
		Currency   string           `yaml:"currency"`
		Packages   map[string]int64 `yaml:"packages"`
	} `yaml:"payments"`
}

func LoadConfig() Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}

	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("Failed to unmarshal config data: %v", err)
	}
	return cfg
}
