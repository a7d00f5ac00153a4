package sale

import (
	"fmt"

	"github.com/hance08/liverdesk/internal/app"
	"github.com/hance08/liverdesk/internal/service"
	"github.com/hance08/liverdesk/internal/ui/prompts"
	"github.com/hance08/liverdesk/internal/ui/views"
	"github.com/hance08/liverdesk/internal/utils"
	"github.com/hance08/liverdesk/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type addFlags struct {
	Liver  string
	Amount string
	Type   string
	Memo   string
	Date   string
	Yes    bool
}

type addRunner struct {
	app   *app.App
	cmd   *cobra.Command
	flags *addFlags
}

func NewAddCmd(a *app.App) *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:     "add",
		Aliases: []string{"a", "new"},
		Short:   "Record a sale",
		Long: `Record a subscription or donation sale for a liver.

With --liver and --amount the sale is recorded without prompts. Otherwise a
form asks for the missing fields. The liver is matched by display name,
treating hiragana and katakana alike.`,
		Example: `  # Interactive
  liverdesk sale add

  # One-liner
  liverdesk sale add --liver さくら --amount 1100 --type sub --date 2025-03-01`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &addRunner{app: a, cmd: cmd, flags: flags}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Liver, "liver", "l", "", "Liver display name")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Gross amount in yen")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "subscription (sub) or donation (don)")
	cmd.Flags().StringVarP(&flags.Memo, "memo", "m", "", "Free text memo")
	cmd.Flags().StringVarP(&flags.Date, "date", "d", "", "Sale date (YYYY-MM-DD), defaults to today")
	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (r *addRunner) interactive() bool {
	return r.flags.Liver == "" || r.flags.Amount == ""
}

func (r *addRunner) Run() error {
	ctx := r.cmd.Context()

	snap, err := r.app.Service.Sale.LoadSnapshot(ctx)
	if err != nil {
		return err
	}

	in := service.SaleInput{
		LiverName: r.flags.Liver,
		Amount:    r.flags.Amount,
		Type:      r.flags.Type,
		Memo:      r.flags.Memo,
		Date:      r.flags.Date,
	}

	if r.interactive() {
		name, err := prompts.PromptLiverName(snap.Livers, in.LiverName)
		if err != nil {
			return err
		}
		in.LiverName = name

		in, err = prompts.PromptSaleForm(in)
		if err != nil {
			return err
		}
	}

	if r.interactive() && !r.flags.Yes {
		amount, _ := validation.ParseAmount(in.Amount)
		ok, err := confirm(fmt.Sprintf("Save %s of %s for %s?", in.Type, utils.FormatYen(amount), in.LiverName), true)
		if err != nil {
			return err
		}
		if !ok {
			pterm.Info.Println("Sale discarded")
			return nil
		}
	}

	sale, err := r.app.Service.Sale.CreateSale(ctx, snap, in)
	if err != nil {
		return err
	}

	if err := views.RenderSaleSummary(listItem(r.app, snap, sale)); err != nil {
		return err
	}
	views.RenderSaleSaved(sale.ID, "recorded")
	return nil
}
