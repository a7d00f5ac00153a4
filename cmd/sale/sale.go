package sale

import (
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/liverdesk/internal/app"
	"github.com/hance08/liverdesk/internal/model"
	"github.com/hance08/liverdesk/internal/service"
	"github.com/hance08/liverdesk/internal/ui"
	"github.com/hance08/liverdesk/internal/ui/views"
	"github.com/spf13/cobra"
)

// NewSaleCmd groups the sales commands.
func NewSaleCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sale",
		Short: "Record and manage sales",
		Long:  `Record, list, edit and delete subscription and donation sales.`,
	}

	cmd.AddCommand(NewAddCmd(a))
	cmd.AddCommand(NewListCmd(a))
	cmd.AddCommand(NewEditCmd(a))
	cmd.AddCommand(NewDeleteCmd(a))

	return cmd
}

func listItem(a *app.App, snap *service.Snapshot, s *model.Sale) views.SaleListItem {
	return views.NewSaleListItems([]*model.Sale{s}, snap.LiverName, a.Service.Payout.Compute)[0]
}

func confirm(message string, def bool) (bool, error) {
	var ok bool
	prompt := &survey.Confirm{
		Message: message,
		Default: def,
	}
	if err := survey.AskOne(prompt, &ok, ui.IconOption()); err != nil {
		return false, err
	}
	return ok, nil
}

func fmtAmount(amount int64) string {
	return strconv.FormatInt(amount, 10)
}
