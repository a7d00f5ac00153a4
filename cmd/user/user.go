package user

import (
	"github.com/hance08/liverdesk/internal/app"
	"github.com/spf13/cobra"
)

func NewUserCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage operator accounts",
	}

	cmd.AddCommand(NewAddCmd(a))

	return cmd
}
