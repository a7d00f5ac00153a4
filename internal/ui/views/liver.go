package views

import (
	"github.com/hance08/liverdesk/internal/model"
	"github.com/hance08/liverdesk/internal/ui"
	"github.com/pterm/pterm"
)

func RenderLiverList(livers []*model.Liver, keyword string) error {
	if len(livers) == 0 {
		if keyword != "" {
			pterm.Warning.Printf("No livers match '%s'\n", keyword)
		} else {
			pterm.Warning.Println("No livers registered yet")
		}
		return nil
	}

	tableData := pterm.TableData{
		{"ID", "Display Name", "Real Name", "Bank", "Branch", "Type", "Number", "Holder"},
	}
	for _, l := range livers {
		tableData = append(tableData, []string{
			pterm.Gray(shortID(l.ID)),
			pterm.Cyan(l.DisplayName),
			l.RealName,
			l.BankName,
			l.BranchName,
			l.AccountType,
			l.AccountNumber,
			l.AccountHolder,
		})
	}

	pterm.DefaultSection.Println("Livers")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d livers\n", len(livers))
	return nil
}

func RenderLiverDetail(l *model.Liver) error {
	tableData := pterm.TableData{
		{"Field", "Value"},
		{"ID", l.ID},
		{"Display Name", l.DisplayName},
		{"Real Name", l.RealName},
		{"Bank", l.BankName},
		{"Branch", l.BranchName},
		{"Account Type", l.AccountType},
		{"Account Number", l.AccountNumber},
		{"Account Holder", l.AccountHolder},
	}

	pterm.DefaultSection.Println("Liver")
	return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
}

func RenderLiverSaved(l *model.Liver, verb string) {
	pterm.Success.Printf("Liver '%s' %s (ID: %s)\n", l.DisplayName, verb, l.ID)
	ui.Separator()
}

// shortID trims a UUID to its first block for tables; commands accept the
// full id or any unique prefix.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
