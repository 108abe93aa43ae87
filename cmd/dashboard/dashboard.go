package dashboard

import "github.com/spf13/cobra"

func NewDashboardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Patient registry and forecast dashboard commands",
	}

	cmd.AddCommand(NewStartCommand())

	return cmd
}
