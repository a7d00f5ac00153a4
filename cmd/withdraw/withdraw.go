package withdraw

import (
	"context"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/liverdesk/internal/app"
	"github.com/hance08/liverdesk/internal/errhandler"
	"github.com/hance08/liverdesk/internal/logger"
	"github.com/hance08/liverdesk/internal/service"
	"github.com/hance08/liverdesk/internal/ui"
	"github.com/hance08/liverdesk/internal/ui/prompts"
	"github.com/hance08/liverdesk/internal/ui/views"
	"github.com/hance08/liverdesk/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type withdrawFlags struct {
	Search        string
	ShowWithdrawn bool
	All           bool
	Yes           bool
}

type withdrawRunner struct {
	app   *app.App
	cmd   *cobra.Command
	flags *withdrawFlags
	view  *service.WithdrawalView
}

func NewWithdrawCmd(a *app.App) *cobra.Command {
	flags := &withdrawFlags{}

	cmd := &cobra.Command{
		Use:     "withdraw",
		Aliases: []string{"wd"},
		Short:   "Reconcile payouts and mark sales as withdrawn",
		Long: `Show pending sales with the payout owed for each and mark them as
withdrawn once the money has been sent.

Without flags an interactive session lets you search, select sales and mark
them. --all marks every listed pending sale in one go.`,
		Example: `  # Interactive session
  liverdesk withdraw

  # Mark every pending sale of さくら
  liverdesk withdraw --search さくら --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := newWithdrawRunner(a, cmd, flags)
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Search, "search", "s", "", "Filter by liver name or memo")
	cmd.Flags().BoolVarP(&flags.ShowWithdrawn, "show-withdrawn", "w", false, "Also list sales already withdrawn")
	cmd.Flags().BoolVar(&flags.All, "all", false, "Mark every listed pending sale as withdrawn")
	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt")

	cmd.AddCommand(NewMarkCmd(a))
	cmd.AddCommand(NewUndoCmd(a))

	return cmd
}

func newWithdrawRunner(a *app.App, cmd *cobra.Command, flags *withdrawFlags) *withdrawRunner {
	opts := a.Service.DefaultViewOptions()
	if cmd.Flags().Changed("show-withdrawn") {
		opts.ShowWithdrawn = flags.ShowWithdrawn
	}
	view := a.Service.NewWithdrawalView(opts)
	view.SetSearch(flags.Search)
	return &withdrawRunner{app: a, cmd: cmd, flags: flags, view: view}
}

func (r *withdrawRunner) Run() error {
	if err := r.view.Load(r.cmd.Context()); err != nil {
		return err
	}

	if r.flags.All {
		if err := views.RenderWithdrawalList(r.view); err != nil {
			return err
		}
		return r.markAll()
	}
	return r.interactive()
}

func (r *withdrawRunner) interactive() error {
	ctx := r.cmd.Context()
	ui.PrintL1Title("Withdrawal reconciliation")

	for {
		if err := views.RenderWithdrawalList(r.view); err != nil {
			return err
		}

		action, err := prompts.PromptWithdrawalAction(r.view.Options())
		if err != nil {
			return err
		}

		switch action {
		case prompts.ActionSelect:
			ids, err := prompts.PromptWithdrawalSelection(r.view)
			if err != nil {
				return err
			}
			r.view.ClearSelection()
			if err := r.view.Select(ids...); err != nil {
				return err
			}

		case prompts.ActionMarkChosen:
			err = r.markSelected()

		case prompts.ActionMarkAll:
			err = r.markAll()

		case prompts.ActionUndo:
			err = r.undo()

		case prompts.ActionSearch:
			var term string
			term, err = prompts.PromptInput(fmt.Sprintf("Search (current: '%s', empty clears):", r.view.Search()), "", nil)
			if err == nil {
				r.view.SetSearch(term)
			}

		case prompts.ActionToggleShown:
			r.view.SetShowWithdrawn(!r.view.Options().ShowWithdrawn)

		case prompts.ActionReload:
			err = r.view.Load(ctx)

		case prompts.ActionQuit:
			return nil
		}

		if err != nil {
			if errhandler.IsInterrupt(err) {
				return err
			}
			pterm.Error.Println(errhandler.Message(err))
		}
		ui.Separator()
	}
}

func (r *withdrawRunner) markSelected() error {
	selected := r.view.SelectedSales()
	if len(selected) == 0 {
		pterm.Info.Println("No sales selected")
		return nil
	}

	ok, err := r.confirm(fmt.Sprintf("Mark %d sales as withdrawn (payout %s)?",
		len(r.view.Selected()), utils.FormatYen(r.view.SelectedPayoutTotal())))
	if err != nil || !ok {
		return err
	}

	res, err := r.view.MarkSelectedAsWithdrawn(r.cmd.Context())
	logBulkResult(r.cmd.Context(), res)
	views.RenderBulkResult(res)
	return err
}

func (r *withdrawRunner) markAll() error {
	var pending int
	var total int64
	for _, s := range r.view.FilteredSales() {
		if !s.Withdrawn {
			pending++
			total += r.view.Payout(s)
		}
	}
	if pending == 0 {
		pterm.Info.Println("Nothing to mark")
		return nil
	}

	ok, err := r.confirm(fmt.Sprintf("Mark all %d listed sales as withdrawn (payout %s)?", pending, utils.FormatYen(total)))
	if err != nil || !ok {
		return err
	}

	res, err := r.view.MarkAllFilteredAsWithdrawn(r.cmd.Context())
	logBulkResult(r.cmd.Context(), res)
	views.RenderBulkResult(res)
	return err
}

func logBulkResult(ctx context.Context, res service.BulkResult) {
	log := logger.FromContext(ctx)
	log.Info().
		Int("updated", len(res.Updated)).
		Int("failed", len(res.Failed)).
		Msg("bulk withdrawal finished")
}

func (r *withdrawRunner) undo() error {
	id, err := prompts.PromptWithdrawnSale(r.view)
	if err != nil {
		return err
	}
	if id == "" {
		pterm.Info.Println("No withdrawn sales to undo")
		return nil
	}

	if err := r.view.MarkPending(r.cmd.Context(), id); err != nil {
		return err
	}
	pterm.Success.Println("Sale marked as pending again")
	return nil
}

func (r *withdrawRunner) confirm(message string) (bool, error) {
	if r.flags.Yes {
		return true, nil
	}

	var ok bool
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &ok, ui.IconOption()); err != nil {
		return false, err
	}
	if !ok {
		pterm.Info.Println("Nothing marked")
	}
	return ok, nil
}
