package views

import (
	"testing"
	"time"

	"github.com/hance08/liverdesk/internal/model"
)

func TestNewSaleListItems(t *testing.T) {
	sales := []*model.Sale{
		{ID: "s1", LiverID: "l1", Amount: 1100, Type: model.SaleTypeSubscription, Date: time.Date(2025, 3, 1, 23, 0, 0, 0, time.UTC)},
		{ID: "s2", LiverID: "x", Amount: 12000, Type: model.SaleTypeDonation, Withdrawn: true},
	}
	name := func(id string) string {
		if id == "l1" {
			return "さくら"
		}
		return "unknown"
	}
	half := func(g int64) int64 { return g / 2 }

	items := NewSaleListItems(sales, name, half)
	if len(items) != 2 {
		t.Fatalf("got %d items", len(items))
	}
	if items[0].Liver != "さくら" || items[0].Amount != "¥1,100" || items[0].Payout != "¥550" || items[0].Date != "2025-03-01" {
		t.Errorf("item 0 = %+v", items[0])
	}
	if items[1].Liver != "unknown" || !items[1].Withdrawn || items[1].Payout != "¥6,000" {
		t.Errorf("item 1 = %+v", items[1])
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0b6f4e2a-1111-2222-3333-444455556666"); got != "0b6f4e2a" {
		t.Errorf("shortID = %q", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID = %q", got)
	}
}
