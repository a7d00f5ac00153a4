package payout

import (
	"reflect"
	"testing"
	"time"

	"github.com/hance08/liverdesk/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRankMonthly(t *testing.T) {
	sales := []*model.Sale{
		{LiverID: "A", Amount: 1000, Type: model.SaleTypeSubscription, Date: day(2024, 6, 1)},
		{LiverID: "B", Amount: 2000, Type: model.SaleTypeSubscription, Date: day(2024, 6, 15)},
		{LiverID: "A", Amount: 500, Type: model.SaleTypeDonation, Date: day(2024, 6, 20)},
	}

	got := RankMonthly(sales, "2024-06")
	want := []RankEntry{
		{LiverID: "B", Total: 2000},
		{LiverID: "A", Total: 1000},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("RankMonthly = %+v, want %+v", got, want)
	}
}

func TestRankMonthlyFiltersMonthAndSums(t *testing.T) {
	sales := []*model.Sale{
		{LiverID: "A", Amount: 300, Type: model.SaleTypeSubscription, Date: day(2024, 7, 1)},
		{LiverID: "A", Amount: 300, Type: model.SaleTypeSubscription, Date: day(2024, 6, 30)},
		{LiverID: "A", Amount: 200, Type: model.SaleTypeSubscription, Date: day(2024, 6, 2)},
		{LiverID: "C", Amount: 450, Type: model.SaleTypeSubscription, Date: day(2024, 5, 31)},
	}

	got := RankMonthly(sales, "2024-06")
	want := []RankEntry{{LiverID: "A", Total: 500}}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("RankMonthly = %+v, want %+v", got, want)
	}
}

func TestRankMonthlyTiesKeepEncounterOrder(t *testing.T) {
	sales := []*model.Sale{
		{LiverID: "X", Amount: 100, Type: model.SaleTypeSubscription, Date: day(2024, 6, 3)},
		{LiverID: "Y", Amount: 100, Type: model.SaleTypeSubscription, Date: day(2024, 6, 2)},
		{LiverID: "Z", Amount: 900, Type: model.SaleTypeSubscription, Date: day(2024, 6, 1)},
	}

	got := RankMonthly(sales, "2024-06")
	want := []RankEntry{
		{LiverID: "Z", Total: 900},
		{LiverID: "X", Total: 100},
		{LiverID: "Y", Total: 100},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("RankMonthly = %+v, want %+v", got, want)
	}
}

func TestRankMonthlyEmpty(t *testing.T) {
	if got := RankMonthly(nil, "2024-06"); len(got) != 0 {
		t.Errorf("RankMonthly(nil) = %+v, want empty", got)
	}
}

func TestMonthKeyUsesUTC(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	// 2024-07-01 05:00 JST is still June in UTC.
	if got := MonthKey(time.Date(2024, 7, 1, 5, 0, 0, 0, jst)); got != "2024-06" {
		t.Errorf("MonthKey = %s, want 2024-06", got)
	}
}

func TestParseMonth(t *testing.T) {
	if got, err := ParseMonth("2024-06"); err != nil || got != "2024-06" {
		t.Errorf("ParseMonth(2024-06) = %q, %v", got, err)
	}
	for _, bad := range []string{"", "2024-13", "2024/06", "June"} {
		if _, err := ParseMonth(bad); err == nil {
			t.Errorf("ParseMonth(%q) expected error", bad)
		}
	}
}

func TestMonthOptions(t *testing.T) {
	got := MonthOptions(time.Date(2025, 2, 28, 12, 0, 0, 0, time.UTC), 4)
	want := []string{"2025-02", "2025-01", "2024-12", "2024-11"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("MonthOptions = %v, want %v", got, want)
	}
}
