package sale

import (
	"github.com/hance08/liverdesk/internal/app"
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
		Use:     "delete <sale-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a sale",
		Long: `Delete a sale. Whether withdrawn sales may be deleted is set by
sales.delete_policy (always, pending-only or never).`,
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

	snap, err := r.app.Service.Sale.LoadSnapshot(ctx)
	if err != nil {
		return err
	}

	existing, err := snap.SaleByPrefix(r.id)
	if err != nil {
		return err
	}
	if err := r.app.Service.Sale.CanDelete(existing); err != nil {
		return err
	}

	if err := views.RenderSaleDeletePreview(listItem(r.app, snap, existing)); err != nil {
		return err
	}

	if !r.flags.Yes {
		ok, err := confirm("Do you want to delete this sale?", false)
		if err != nil {
			return err
		}
		if !ok {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	if err := r.app.Service.Sale.DeleteSale(ctx, snap, existing.ID); err != nil {
		return err
	}

	views.RenderSaleSaved(existing.ID, "deleted")
	return nil
}
