package sale

import (
	"fmt"

	"github.com/hance08/liverdesk/internal/app"
	"github.com/hance08/liverdesk/internal/model"
	"github.com/hance08/liverdesk/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Search  string
	Pending bool
	Limit   int
}

type listRunner struct {
	app   *app.App
	cmd   *cobra.Command
	flags *listFlags
}

func NewListCmd(a *app.App) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List sales, newest first",
		Long: `List sales newest first with their payout and withdrawal status.

--search matches the liver's display name and the memo.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{app: a, cmd: cmd, flags: flags}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Search, "search", "s", "", "Filter by liver name or memo")
	cmd.Flags().BoolVarP(&flags.Pending, "pending", "p", false, "Only show sales not yet withdrawn")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "n", 50, "Maximum number of sales to display (0 for all)")

	return cmd
}

func (r *listRunner) Run() error {
	snap, err := r.app.Service.Sale.LoadSnapshot(r.cmd.Context())
	if err != nil {
		return err
	}

	sales := snap.Sales
	if r.flags.Search != "" {
		sales = snap.SearchSales(r.flags.Search)
	}
	if r.flags.Pending {
		var pending []*model.Sale
		for _, s := range sales {
			if !s.Withdrawn {
				pending = append(pending, s)
			}
		}
		sales = pending
	}
	if r.flags.Limit > 0 && len(sales) > r.flags.Limit {
		sales = sales[:r.flags.Limit]
	}

	title := "Sales"
	if r.flags.Search != "" {
		title = fmt.Sprintf("Sales matching '%s'", r.flags.Search)
	}

	items := views.NewSaleListItems(sales, snap.LiverName, r.app.Service.Payout.Compute)
	return views.RenderSaleList(title, items)
}
