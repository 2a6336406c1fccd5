package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/mqtt-tools/mosqadm/cmd/mosqadm/config"
	"github.com/mqtt-tools/mosqadm/storage/model"
)

var rootCmd = &cobra.Command{
	Use:   "mosqadmcli",
	Short: "mosqadmcli manages the broker auth database from the command line",
	Long: "mosqadmcli operates directly on the configured auth database, " +
		"useful for bootstrapping the first accounts before the API is up",
}

var configFile string
var usersStore model.UsersStore
var aclStore model.ACLStore

func loadConfig() error {
	config.Load(configFile)
	c := config.Get()

	backs, err := config.LoadStorageBackends(c.Storage)
	if err != nil {
		return err
	}
	usersStore = backs.Users
	aclStore = backs.ACL
	return nil
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config.yaml", "the config file to use")
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(aclCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
