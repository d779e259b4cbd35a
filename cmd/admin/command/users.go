package command

import (
	"github.com/spf13/cobra"

	"github.com/RakshithaNagaraju74/MedWell/store"
	"github.com/RakshithaNagaraju74/MedWell/users"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Inspect user profiles",
}

var usersGetCmd = &cobra.Command{
	Use:   "get [userId]",
	Short: "Print the profile of a single user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(func(service users.Service) error {
			user, err := service.Get(store.NewDbContext(), args[0])
			if err != nil {
				return err
			}
			return printJson(user)
		})
	},
}

func init() {
	usersCmd.AddCommand(usersGetCmd)
	rootCmd.AddCommand(usersCmd)
}
