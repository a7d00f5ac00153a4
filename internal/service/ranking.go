package service

import (
	"context"

	"github.com/hance08/liverdesk/internal/payout"
	"github.com/hance08/liverdesk/internal/store"
)

type RankedLiver struct {
	Rank    int
	LiverID string
	Name    string
	Total   int64
}

type RankingService struct {
	repo store.Repository
}

func NewRankingService(repo store.Repository) *RankingService {
	return &RankingService{repo: repo}
}

// Monthly ranks livers by subscription revenue in month ("YYYY-MM").
func (rs *RankingService) Monthly(ctx context.Context, month string) ([]RankedLiver, error) {
	month, err := payout.ParseMonth(month)
	if err != nil {
		return nil, err
	}

	snap, err := LoadSnapshot(ctx, rs.repo)
	if err != nil {
		return nil, err
	}
	return BuildRanking(snap, month), nil
}

// BuildRanking numbers entries 1..n in ranking order; ties keep distinct ranks.
func BuildRanking(snap *Snapshot, month string) []RankedLiver {
	entries := payout.RankMonthly(snap.Sales, month)

	out := make([]RankedLiver, 0, len(entries))
	for i, e := range entries {
		out = append(out, RankedLiver{
			Rank:    i + 1,
			LiverID: e.LiverID,
			Name:    snap.LiverName(e.LiverID),
			Total:   e.Total,
		})
	}
	return out
}
