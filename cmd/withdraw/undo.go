package withdraw

import (
	"github.com/hance08/liverdesk/internal/app"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewUndoCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "undo <sale-id>",
		Short: "Mark a withdrawn sale as pending again",
		Long:  `Reverse a withdrawal. Only available when withdrawal.enable_undo is on.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			view := a.Service.NewWithdrawalView(a.Service.DefaultViewOptions())
			if err := view.Load(ctx); err != nil {
				return err
			}

			s, err := view.Snapshot().SaleByPrefix(args[0])
			if err != nil {
				return err
			}
			if err := view.MarkPending(ctx, s.ID); err != nil {
				return err
			}

			pterm.Success.Printf("Sale %s marked as pending\n", s.ID)
			return nil
		},
	}
}
