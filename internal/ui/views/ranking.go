package views

import (
	"fmt"

	"github.com/hance08/liverdesk/internal/service"
	"github.com/hance08/liverdesk/internal/utils"
	"github.com/pterm/pterm"
)

func RenderRanking(month string, ranked []service.RankedLiver) error {
	pterm.DefaultSection.Printf("Subscription ranking %s", month)

	if len(ranked) == 0 {
		pterm.Warning.Printf("No subscription sales in %s\n", month)
		return nil
	}

	tableData := pterm.TableData{{"Rank", "Liver", "Subscriptions"}}
	for _, r := range ranked {
		rank := fmt.Sprintf("%d", r.Rank)
		if r.Rank <= 3 {
			rank = pterm.Yellow(rank)
		}
		tableData = append(tableData, []string{rank, r.Name, utils.FormatYen(r.Total)})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	bars := make([]pterm.Bar, 0, len(ranked))
	for _, r := range ranked {
		bars = append(bars, pterm.Bar{Label: r.Name, Value: int(r.Total)})
	}
	return pterm.DefaultBarChart.WithHorizontal().WithBars(bars).WithShowValue().Render()
}
