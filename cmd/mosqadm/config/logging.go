package config

import (
	"github.com/pkg/errors"
	"github.com/zachmann/go-utils/fileutils"

	"github.com/mqtt-tools/mosqadm/internal/logger"
)

// loggingConf holds all logging-related configuration under the `logging`
// key.
//
// YAML example:
//
//	logging:
//	  internal:
//	    dir: /var/log/mosqadm
//	    stderr: false
//	    level: INFO
type loggingConf struct {
	Internal logger.Conf `yaml:"internal"`
}

func checkLoggingDirExists(dir string) error {
	if dir != "" && !fileutils.FileExists(dir) {
		return errors.Errorf("logging directory '%s' does not exist", dir)
	}
	return nil
}

func (log *loggingConf) validate() error {
	return checkLoggingDirExists(log.Internal.Dir)
}

var defaultLoggingConf = loggingConf{
	Internal: logger.Conf{
		Level: "INFO",
	},
}
