package withdraw

import (
	"github.com/hance08/liverdesk/internal/app"
	"github.com/hance08/liverdesk/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type markRunner struct {
	app *app.App
	cmd *cobra.Command
	ids []string
}

func NewMarkCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "mark <sale-id>...",
		Short: "Mark sales as withdrawn",
		Long: `Mark the given sales as withdrawn. Ids may be shortened to any unique
prefix. Sales already withdrawn are left as they are.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &markRunner{app: a, cmd: cmd, ids: args}
			return runner.Run()
		},
	}
}

func (r *markRunner) Run() error {
	ctx := r.cmd.Context()

	view := r.app.Service.NewWithdrawalView(r.app.Service.DefaultViewOptions())
	if err := view.Load(ctx); err != nil {
		return err
	}

	ids := make([]string, 0, len(r.ids))
	for _, prefix := range r.ids {
		s, err := view.Snapshot().SaleByPrefix(prefix)
		if err != nil {
			return err
		}
		ids = append(ids, s.ID)
	}

	if !view.Options().EnableBulkMarking {
		for _, id := range ids {
			if err := view.MarkWithdrawn(ctx, id); err != nil {
				return err
			}
		}
		pterm.Success.Printf("%d sales marked as withdrawn\n", len(ids))
		return nil
	}

	if err := view.Select(ids...); err != nil {
		return err
	}
	res, err := view.MarkSelectedAsWithdrawn(ctx)
	logBulkResult(ctx, res)
	views.RenderBulkResult(res)
	return err
}
