package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mqtt-tools/mosqadm/storage/model"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage broker user accounts",
}

var userRole string

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all user accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}
		users, err := usersStore.List()
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tUSERNAME\tROLE")
		for _, u := range users {
			fmt.Fprintf(w, "%d\t%s\t%s\n", u.ID, u.Username, u.Role)
		}
		return w.Flush()
	},
}

var userAddCmd = &cobra.Command{
	Use:   "add <username> <password>",
	Short: "Add a user account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if userRole != model.RoleUser && userRole != model.RoleAdmin {
			return errors.Errorf("role must be either '%s' or '%s'", model.RoleUser, model.RoleAdmin)
		}
		if err := loadConfig(); err != nil {
			return err
		}
		existing, err := usersStore.GetByUsername(args[0])
		if err != nil {
			return err
		}
		if existing != nil {
			return model.AlreadyExistsErrorFmt("user '%s' already exists", args[0])
		}
		u, err := usersStore.Create(args[0], args[1], userRole)
		if err != nil {
			return err
		}
		fmt.Printf("Added user '%s' with id %d\n", u.Username, u.ID)
		return nil
	},
}

var userRmCmd = &cobra.Command{
	Use:   "rm <username>",
	Short: "Remove a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}
		u, err := usersStore.GetByUsername(args[0])
		if err != nil {
			return err
		}
		if u == nil {
			return model.NotFoundErrorFmt("user '%s' not found", args[0])
		}
		if _, err = usersStore.DeleteByIDs([]uint{u.ID}); err != nil {
			return err
		}
		fmt.Printf("Removed user '%s'\n", u.Username)
		return nil
	},
}

func init() {
	userAddCmd.Flags().StringVar(&userRole, "role", model.RoleUser, "role of the new user")
	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userRmCmd)
}
