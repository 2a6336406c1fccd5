package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mqtt-tools/mosqadm/storage/model"
)

var aclCmd = &cobra.Command{
	Use:   "acl",
	Short: "Inspect topic permission rules",
}

var aclUser string

var aclListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ACL rules, optionally filtered by user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}
		var rules []model.ACLRule
		var err error
		if aclUser != "" {
			rules, err = aclStore.ListByUsername(aclUser)
		} else {
			rules, err = aclStore.List()
		}
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tUSERNAME\tTOPIC\tRW")
		for _, r := range rules {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", r.ID, r.Username, r.Topic, r.RW)
		}
		return w.Flush()
	},
}

func init() {
	aclListCmd.Flags().StringVar(&aclUser, "user", "", "only show rules of this user")
	aclCmd.AddCommand(aclListCmd)
}
