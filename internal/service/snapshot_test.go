package service

import (
	"errors"
	"testing"

	"github.com/hance08/liverdesk/internal/model"
	"github.com/hance08/liverdesk/internal/store"
	"github.com/hance08/liverdesk/internal/validation"
)

func TestSnapshotPrefixLookup(t *testing.T) {
	snap := NewSnapshot(
		[]*model.Liver{{ID: "ab12"}, {ID: "cd34"}},
		[]*model.Sale{{ID: "aa11", Date: day(1)}, {ID: "aa22", Date: day(2)}, {ID: "bb33", Date: day(3)}},
	)

	if s, err := snap.SaleByPrefix("aa2"); err != nil || s.ID != "aa22" {
		t.Errorf("SaleByPrefix(aa2) = %v, %v", s, err)
	}
	if _, err := snap.SaleByPrefix("aa"); !errors.Is(err, validation.ErrInvalidInput) {
		t.Errorf("ambiguous prefix err = %v", err)
	}
	for _, p := range []string{"zz", ""} {
		if _, err := snap.SaleByPrefix(p); !errors.Is(err, store.ErrRecordNotFound) {
			t.Errorf("SaleByPrefix(%q) err = %v", p, err)
		}
	}
	if l, err := snap.LiverByPrefix("cd"); err != nil || l.ID != "cd34" {
		t.Errorf("LiverByPrefix(cd) = %v, %v", l, err)
	}
}

func TestSnapshotPutAndRemove(t *testing.T) {
	snap := NewSnapshot(nil, []*model.Sale{{ID: "1", Date: day(3)}, {ID: "2", Date: day(1)}})

	snap.putSale(&model.Sale{ID: "3", Date: day(2)})
	if got := ids(snap.Sales); !equalIDs(got, []string{"1", "3", "2"}) {
		t.Errorf("after insert = %v", got)
	}

	snap.putSale(&model.Sale{ID: "2", Date: day(9)})
	if got := ids(snap.Sales); !equalIDs(got, []string{"2", "1", "3"}) {
		t.Errorf("after replace = %v", got)
	}

	snap.removeSale("1")
	if got := ids(snap.Sales); !equalIDs(got, []string{"2", "3"}) {
		t.Errorf("after remove = %v", got)
	}
}
