// Package logger configures the process-wide logrus logger.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Conf holds configuration for the internal logger.
type Conf struct {
	// Dir is the directory the log file is written to; empty disables
	// file logging
	Dir string `yaml:"dir"`
	// StdErr additionally mirrors log output to stderr
	StdErr bool `yaml:"stderr"`
	// Level sets the verbosity (e.g. DEBUG, INFO, WARN, ERROR)
	Level string `yaml:"level"`
}

// Init configures logrus according to the passed Conf.
func Init(c Conf) error {
	if c.Level != "" {
		lvl, err := log.ParseLevel(strings.ToLower(c.Level))
		if err != nil {
			return errors.Wrapf(err, "unknown log level '%s'", c.Level)
		}
		log.SetLevel(lvl)
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	var writers []io.Writer
	if c.Dir != "" {
		f, err := os.OpenFile(
			filepath.Join(c.Dir, "mosqadm.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644,
		)
		if err != nil {
			return errors.Wrap(err, "could not open log file")
		}
		writers = append(writers, f)
	}
	if c.StdErr || len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}
	log.SetOutput(io.MultiWriter(writers...))
	return nil
}
