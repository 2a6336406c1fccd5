package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/mqtt-tools/mosqadm"
	"github.com/mqtt-tools/mosqadm/cmd/mosqadm/config"
	"github.com/mqtt-tools/mosqadm/internal/logger"
	"github.com/mqtt-tools/mosqadm/internal/version"
)

func main() {
	var configFile string
	if len(os.Args) > 1 {
		configFile = os.Args[1]
	}
	config.Load(configFile)
	c := config.Get()
	if err := logger.Init(c.Logging.Internal); err != nil {
		log.Fatal(err)
	}
	log.Info("Loaded Config")

	backs, err := config.LoadStorageBackends(c.Storage)
	if err != nil {
		log.Fatal(err)
	}

	log.WithField("version", version.VERSION).Info("Starting mosqadm")
	svc := mosqadm.NewService(c.Server, backs)
	svc.Start()
}
