package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type DataConfig struct {
	SeverityFile    string `toml:"severity_file"`
	DatasetFile     string `toml:"dataset_file"`
	DescriptionFile string `toml:"description_file"`
	PrecautionFile  string `toml:"precaution_file"`
}

type ServerConfig struct {
	Port string `toml:"port"`
}

type Config struct {
	Data   DataConfig   `toml:"data"`
	Server ServerConfig `toml:"server"`
}

func Default() *Config {
	return &Config{
		Data: DataConfig{
			SeverityFile:    "data/Symptom-severity.csv",
			DatasetFile:     "data/dataset.csv",
			DescriptionFile: "data/symptom_Description.csv",
			PrecautionFile:  "data/symptom_precaution.csv",
		},
		Server: ServerConfig{Port: "8080"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv lets environment variables override the file, for deployments
// that mount nothing but a data directory.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("SEVERITY_FILE"); v != "" {
		c.Data.SeverityFile = v
	}
	if v := os.Getenv("DATASET_FILE"); v != "" {
		c.Data.DatasetFile = v
	}
	if v := os.Getenv("DESCRIPTION_FILE"); v != "" {
		c.Data.DescriptionFile = v
	}
	if v := os.Getenv("PRECAUTION_FILE"); v != "" {
		c.Data.PrecautionFile = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
}
