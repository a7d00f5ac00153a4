package views

import (
	"github.com/hance08/liverdesk/internal/constants"
	"github.com/hance08/liverdesk/internal/model"
	"github.com/hance08/liverdesk/internal/ui"
	"github.com/hance08/liverdesk/internal/utils"
	"github.com/pterm/pterm"
)

type SaleListItem struct {
	ID        string
	Date      string
	Liver     string
	Type      model.SaleType
	Amount    string
	Payout    string
	Memo      string
	Withdrawn bool
	Selected  bool
}

// NewSaleListItems resolves names and payouts for display.
func NewSaleListItems(sales []*model.Sale, liverName func(string) string, payoutOf func(int64) int64) []SaleListItem {
	items := make([]SaleListItem, 0, len(sales))
	for _, s := range sales {
		items = append(items, SaleListItem{
			ID:        s.ID,
			Date:      utils.FormatDate(s.Date),
			Liver:     liverName(s.LiverID),
			Type:      s.Type,
			Amount:    utils.FormatYen(s.Amount),
			Payout:    utils.FormatYen(payoutOf(s.Amount)),
			Memo:      s.Memo,
			Withdrawn: s.Withdrawn,
		})
	}
	return items
}

func (it SaleListItem) status() string {
	if it.Withdrawn {
		return pterm.Gray(constants.StatusWithdrawn)
	}
	return pterm.Yellow(constants.StatusPending)
}

func RenderSaleList(title string, items []SaleListItem) error {
	if len(items) == 0 {
		pterm.Warning.Println("No sales found")
		return nil
	}

	tableData := pterm.TableData{
		{"ID", "Date", "Liver", "Type", "Amount", "Payout", "Status", "Memo"},
	}
	for _, it := range items {
		typeLabel := it.Type.Label()
		if it.Type == model.SaleTypeDonation {
			typeLabel = pterm.Magenta(typeLabel)
		} else {
			typeLabel = pterm.Blue(typeLabel)
		}
		tableData = append(tableData, []string{
			pterm.Gray(shortID(it.ID)),
			it.Date,
			it.Liver,
			typeLabel,
			it.Amount,
			pterm.Green(it.Payout),
			it.status(),
			it.Memo,
		})
	}

	pterm.DefaultSection.Println(title)
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d sales\n", len(items))
	return nil
}

func RenderSaleSummary(it SaleListItem) error {
	pterm.DefaultSection.Println("Sale Summary")

	tableData := pterm.TableData{
		{"Field", "Value"},
		{"Date", it.Date},
		{"Liver", it.Liver},
		{"Type", it.Type.Label()},
		{"Amount", it.Amount},
		{"Payout", it.Payout},
		{"Status", it.status()},
		{"Memo", it.Memo},
	}
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

func RenderSaleDeletePreview(it SaleListItem) error {
	pterm.Warning.Printf("About to delete sale %s:\n", it.ID)
	if err := pterm.DefaultTable.WithData(pterm.TableData{
		{"Date", it.Date},
		{"Liver", it.Liver},
		{"Amount", it.Amount},
	}).Render(); err != nil {
		return err
	}
	pterm.Warning.Println("This action cannot be undone!")
	return nil
}

func RenderSaleSaved(id, verb string) {
	pterm.Success.Printf("Sale %s %s\n", id, verb)
	ui.Separator()
}
