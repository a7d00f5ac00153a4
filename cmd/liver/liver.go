package liver

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/liverdesk/internal/app"
	"github.com/hance08/liverdesk/internal/ui"
	"github.com/spf13/cobra"
)

// NewLiverCmd groups the liver roster commands.
func NewLiverCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "liver",
		Aliases: []string{"lv"},
		Short:   "Manage livers and their payout bank accounts",
		Long:    `Create, list, edit, delete and import livers.`,
	}

	cmd.AddCommand(NewCreateCmd(a))
	cmd.AddCommand(NewListCmd(a))
	cmd.AddCommand(NewShowCmd(a))
	cmd.AddCommand(NewEditCmd(a))
	cmd.AddCommand(NewDeleteCmd(a))
	cmd.AddCommand(NewImportCmd(a))

	return cmd
}

func confirm(message string) (bool, error) {
	var ok bool
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &ok, ui.IconOption()); err != nil {
		return false, err
	}
	return ok, nil
}
