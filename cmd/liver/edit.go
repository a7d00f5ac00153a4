package liver

import (
	"github.com/hance08/liverdesk/internal/app"
	"github.com/hance08/liverdesk/internal/service"
	"github.com/hance08/liverdesk/internal/ui/prompts"
	"github.com/hance08/liverdesk/internal/ui/views"
	"github.com/spf13/cobra"
)

type editRunner struct {
	app *app.App
	cmd *cobra.Command
	id  string
}

func NewEditCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <liver-id>",
		Short: "Edit a liver",
		Long:  `Edit a liver's names and bank account. The id may be shortened to any unique prefix.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &editRunner{app: a, cmd: cmd, id: args[0]}
			return runner.Run()
		},
	}
}

func (r *editRunner) Run() error {
	ctx := r.cmd.Context()

	existing, err := r.app.Service.Liver.FindLiver(ctx, r.id)
	if err != nil {
		return err
	}

	in, err := prompts.PromptLiverForm("Edit "+existing.DisplayName, service.LiverInputFrom(existing))
	if err != nil {
		return err
	}

	l, err := r.app.Service.Liver.UpdateLiver(ctx, existing.ID, in)
	if err != nil {
		return err
	}

	views.RenderLiverSaved(l, "updated")
	return nil
}
