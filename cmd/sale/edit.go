package sale

import (
	"github.com/hance08/liverdesk/internal/app"
	"github.com/hance08/liverdesk/internal/constants"
	"github.com/hance08/liverdesk/internal/service"
	"github.com/hance08/liverdesk/internal/ui/prompts"
	"github.com/hance08/liverdesk/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type editRunner struct {
	app *app.App
	cmd *cobra.Command
	id  string
}

func NewEditCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <sale-id>",
		Short: "Edit a sale",
		Long: `Edit a sale's liver, amount, type, date and memo. The withdrawal status
is not changed by editing; use 'withdraw' for that.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &editRunner{app: a, cmd: cmd, id: args[0]}
			return runner.Run()
		},
	}
}

func (r *editRunner) Run() error {
	ctx := r.cmd.Context()

	snap, err := r.app.Service.Sale.LoadSnapshot(ctx)
	if err != nil {
		return err
	}

	existing, err := snap.SaleByPrefix(r.id)
	if err != nil {
		return err
	}
	if err := views.RenderSaleSummary(listItem(r.app, snap, existing)); err != nil {
		return err
	}
	if existing.Withdrawn {
		pterm.Warning.Println("This sale has already been withdrawn")
	}

	current := ""
	if l := snap.Liver(existing.LiverID); l != nil {
		current = l.DisplayName
	}
	name, err := prompts.PromptLiverName(snap.Livers, current)
	if err != nil {
		return err
	}

	in, err := prompts.PromptSaleForm(service.SaleInput{
		LiverName: name,
		Amount:    fmtAmount(existing.Amount),
		Type:      string(existing.Type),
		Memo:      existing.Memo,
		Date:      existing.Date.UTC().Format(constants.DateFormat),
	})
	if err != nil {
		return err
	}

	updated, err := r.app.Service.Sale.UpdateSale(ctx, snap, existing.ID, in)
	if err != nil {
		return err
	}

	if err := views.RenderSaleSummary(listItem(r.app, snap, updated)); err != nil {
		return err
	}
	views.RenderSaleSaved(updated.ID, "updated")
	return nil
}
