package payout

import (
	"fmt"
	"sort"
	"time"

	"github.com/hance08/liverdesk/internal/constants"
	"github.com/hance08/liverdesk/internal/model"
)

type RankEntry struct {
	LiverID string
	Total   int64
}

// MonthKey formats t as a "2006-01" key in UTC, the zone sale dates are stored in.
func MonthKey(t time.Time) string {
	return t.UTC().Format(constants.MonthFormat)
}

// ParseMonth validates a "YYYY-MM" key.
func ParseMonth(s string) (string, error) {
	t, err := time.Parse(constants.MonthFormat, s)
	if err != nil {
		return "", fmt.Errorf("invalid month '%s', use YYYY-MM", s)
	}
	return t.Format(constants.MonthFormat), nil
}

// MonthOptions lists the n month keys ending at now, newest first.
func MonthOptions(now time.Time, n int) []string {
	now = now.UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	options := make([]string, 0, n)
	for i := 0; i < n; i++ {
		options = append(options, first.AddDate(0, -i, 0).Format(constants.MonthFormat))
	}
	return options
}

// RankMonthly sums subscription sales per liver for the given month and
// orders livers by total, highest first. Equal totals keep the order in
// which the liver was first seen in sales.
func RankMonthly(sales []*model.Sale, month string) []RankEntry {
	index := make(map[string]int)
	var ranked []RankEntry

	for _, s := range sales {
		if s.Type != model.SaleTypeSubscription || MonthKey(s.Date) != month {
			continue
		}

		i, ok := index[s.LiverID]
		if !ok {
			i = len(ranked)
			index[s.LiverID] = i
			ranked = append(ranked, RankEntry{LiverID: s.LiverID})
		}
		ranked[i].Total += s.Amount
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Total > ranked[b].Total
	})

	return ranked
}
