package views

import (
	"github.com/hance08/liverdesk/internal/service"
	"github.com/hance08/liverdesk/internal/utils"
	"github.com/pterm/pterm"
)

// RenderWithdrawalList prints the filtered sales of v, marking the selected
// ones, followed by the running totals.
func RenderWithdrawalList(v *service.WithdrawalView) error {
	sales := v.FilteredSales()
	if len(sales) == 0 {
		if v.Search() != "" {
			pterm.Warning.Printf("No sales match '%s'\n", v.Search())
		} else {
			pterm.Info.Println("Nothing left to withdraw")
		}
		return nil
	}

	tableData := pterm.TableData{
		{"", "ID", "Date", "Liver", "Amount", "Payout", "Status"},
	}
	for _, s := range sales {
		mark := " "
		if v.IsSelected(s.ID) {
			mark = pterm.Green("✓")
		}
		status := pterm.Yellow(s.Status())
		if s.Withdrawn {
			status = pterm.Gray(s.Status())
		}
		tableData = append(tableData, []string{
			mark,
			pterm.Gray(shortID(s.ID)),
			utils.FormatDate(s.Date),
			v.LiverName(s.LiverID),
			utils.FormatYen(s.Amount),
			pterm.Green(utils.FormatYen(v.Payout(s))),
			status,
		})
	}

	title := "Withdrawals"
	if v.Search() != "" {
		title = "Withdrawals matching '" + v.Search() + "'"
	}
	pterm.DefaultSection.Println(title)
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	return RenderWithdrawalTotals(v)
}

func RenderWithdrawalTotals(v *service.WithdrawalView) error {
	return pterm.DefaultTable.WithData(pterm.TableData{
		{"Pending gross", utils.FormatYen(v.PendingGrossTotal())},
		{"Selected", pterm.Sprintf("%d sales", len(v.SelectedSales()))},
		{"Selected payout", pterm.Green(utils.FormatYen(v.SelectedPayoutTotal()))},
	}).Render()
}

// RenderBulkResult reports a bulk withdrawal.
func RenderBulkResult(res service.BulkResult) {
	if len(res.Updated) > 0 {
		pterm.Success.Printf("%d sales marked as withdrawn\n", len(res.Updated))
	}
	if len(res.Failed) > 0 {
		pterm.Warning.Printf("%d sales could not be updated and stay selected\n", len(res.Failed))
	}
	if len(res.Updated) == 0 && len(res.Failed) == 0 {
		pterm.Info.Println("Nothing to mark")
	}
}
