package liver

import (
	"github.com/hance08/liverdesk/internal/app"
	"github.com/hance08/liverdesk/internal/ui"
	"github.com/hance08/liverdesk/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type deleteFlags struct {
	Yes bool
}

type deleteRunner struct {
	app   *app.App
	cmd   *cobra.Command
	flags *deleteFlags
	id    string
}

func NewDeleteCmd(a *app.App) *cobra.Command {
	flags := &deleteFlags{}

	cmd := &cobra.Command{
		Use:     "delete <liver-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a liver",
		Long: `Delete a liver. Their sales are kept and listed under "unknown".
This action cannot be undone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &deleteRunner{app: a, cmd: cmd, flags: flags, id: args[0]}
			return runner.Run()
		},
	}

	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (r *deleteRunner) Run() error {
	ctx := r.cmd.Context()

	l, err := r.app.Service.Liver.FindLiver(ctx, r.id)
	if err != nil {
		return err
	}

	if err := views.RenderLiverDetail(l); err != nil {
		return err
	}
	pterm.Warning.Println("Sales of this liver are kept and shown as 'unknown'. This action cannot be undone!")

	if !r.flags.Yes {
		ok, err := confirm("Do you want to delete this liver?")
		if err != nil {
			return err
		}
		if !ok {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	if err := r.app.Service.Liver.DeleteLiver(ctx, l.ID); err != nil {
		return err
	}

	pterm.Success.Printf("Liver '%s' deleted\n", l.DisplayName)
	ui.Separator()
	return nil
}
