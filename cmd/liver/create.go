package liver

import (
	"github.com/hance08/liverdesk/internal/app"
	"github.com/hance08/liverdesk/internal/service"
	"github.com/hance08/liverdesk/internal/ui/prompts"
	"github.com/hance08/liverdesk/internal/ui/views"
	"github.com/spf13/cobra"
)

type createRunner struct {
	app *app.App
	cmd *cobra.Command
}

func NewCreateCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:     "create",
		Aliases: []string{"add", "new"},
		Short:   "Register a new liver",
		Long: `Register a new liver together with the bank account payouts are sent to.
Every field is required.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &createRunner{app: a, cmd: cmd}
			return runner.Run()
		},
	}
}

func (r *createRunner) Run() error {
	in, err := prompts.PromptLiverForm("New liver", service.LiverInput{})
	if err != nil {
		return err
	}

	l, err := r.app.Service.Liver.CreateLiver(r.cmd.Context(), in)
	if err != nil {
		return err
	}

	views.RenderLiverSaved(l, "created")
	return nil
}
