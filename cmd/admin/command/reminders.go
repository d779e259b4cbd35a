package command

import (
	"github.com/spf13/cobra"

	"github.com/RakshithaNagaraju74/MedWell/reminders"
	"github.com/RakshithaNagaraju74/MedWell/store"
)

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Inspect reminders",
}

var remindersListCmd = &cobra.Command{
	Use:   "list [userId]",
	Short: "Print all reminders of a user ordered by due date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(func(service reminders.Service) error {
			list, err := service.List(store.NewDbContext(), args[0])
			if err != nil {
				return err
			}
			return printJson(list)
		})
	},
}

func init() {
	remindersCmd.AddCommand(remindersListCmd)
	rootCmd.AddCommand(remindersCmd)
}
