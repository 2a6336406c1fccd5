// Package config loads and validates the mosqadm configuration file.
package config

import (
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/mqtt-tools/mosqadm"
)

// Config holds the full server configuration.
type Config struct {
	Server  mosqadm.ServerConf `yaml:"server"`
	Storage storageConf        `yaml:"storage"`
	Logging loggingConf        `yaml:"logging"`
}

var conf *Config

func defaultConfig() Config {
	return Config{
		Server: mosqadm.ServerConf{
			Port: 5000,
		},
		Storage: defaultStorageConf,
		Logging: defaultLoggingConf,
	}
}

func (c *Config) validate() error {
	if err := c.Storage.validate(); err != nil {
		return err
	}
	return c.Logging.validate()
}

// Load reads the config file at the passed path, applies defaults and
// validates the result. An empty path falls back to config.yaml. Load exits
// the process on failure.
func Load(file string) {
	if file == "" {
		file = "config.yaml"
	}
	data, err := os.ReadFile(file)
	if err != nil {
		log.WithError(err).WithField("file", file).Fatal("could not read config file")
	}
	c := defaultConfig()
	if err = yaml.Unmarshal(data, &c); err != nil {
		log.WithError(err).Fatal("could not parse config file")
	}
	if err = c.validate(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}
	conf = &c
}

// Get returns the loaded Config
func Get() Config {
	return *conf
}
