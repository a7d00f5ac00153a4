package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hance08/liverdesk/internal/model"
	"github.com/rs/zerolog"
)

func seededStore() *fakeSalesStore {
	return &fakeSalesStore{
		livers: []*model.Liver{
			{ID: "L1", DisplayName: "さくら"},
			{ID: "L2", DisplayName: "Momo"},
		},
		sales: []*model.Sale{
			{ID: "S1", LiverID: "L1", Amount: 1100, Type: model.SaleTypeSubscription, Date: day(5)},
			{ID: "S2", LiverID: "L1", Amount: 1000, Type: model.SaleTypeDonation, Memo: "birthday", Date: day(4)},
			{ID: "S3", LiverID: "L2", Amount: 500, Type: model.SaleTypeSubscription, Date: day(3)},
			{ID: "S4", LiverID: "L1", Amount: 800, Type: model.SaleTypeSubscription, Date: day(2), Withdrawn: true},
			{ID: "S5", LiverID: "gone", Amount: 300, Type: model.SaleTypeSubscription, Date: day(1)},
		},
		failIDs: map[string]bool{},
	}
}

func newLoadedView(t *testing.T, st *fakeSalesStore, opts ViewOptions) *WithdrawalView {
	t.Helper()

	v := NewWithdrawalView(st, defaultCalculator(t), opts, BulkLimits{Concurrency: 2}, zerolog.Nop())
	if err := v.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return v
}

var allOn = ViewOptions{EnableBulkMarking: true, EnableUndo: true}

func ids(sales []*model.Sale) []string {
	out := make([]string, len(sales))
	for i, s := range sales {
		out[i] = s.ID
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilteredSales(t *testing.T) {
	v := newLoadedView(t, seededStore(), allOn)

	if got := ids(v.FilteredSales()); !equalIDs(got, []string{"S1", "S2", "S3", "S5"}) {
		t.Errorf("pending only = %v", got)
	}
	if got := v.PendingGrossTotal(); got != 2900 {
		t.Errorf("PendingGrossTotal = %d, want 2900", got)
	}

	v.SetShowWithdrawn(true)
	if got := ids(v.FilteredSales()); len(got) != 5 {
		t.Errorf("with withdrawn = %v", got)
	}
	if got := v.PendingGrossTotal(); got != 2900 {
		t.Errorf("PendingGrossTotal with withdrawn shown = %d, want 2900", got)
	}
}

func TestFilteredSalesSearch(t *testing.T) {
	v := newLoadedView(t, seededStore(), allOn)

	tests := []struct {
		search string
		want   []string
	}{
		{"サク", []string{"S1", "S2"}},
		{"さくら", []string{"S1", "S2"}},
		{"MOMO", []string{"S3"}},
		{"birth", []string{"S2"}},
		{"unknown", []string{"S5"}},
		{"nobody", nil},
	}
	for _, tt := range tests {
		v.SetSearch(tt.search)
		if got := ids(v.FilteredSales()); !equalIDs(got, tt.want) {
			t.Errorf("search %q = %v, want %v", tt.search, got, tt.want)
		}
	}
}

func TestUnknownLiverLabel(t *testing.T) {
	v := newLoadedView(t, seededStore(), allOn)
	if got := v.LiverName("gone"); got != "unknown" {
		t.Errorf("LiverName = %q, want unknown", got)
	}
}

func TestSelectedPayoutTotal(t *testing.T) {
	v := newLoadedView(t, seededStore(), allOn)
	if err := v.Select("S1", "S2"); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if got := v.SelectedPayoutTotal(); got != 750+682 {
		t.Errorf("SelectedPayoutTotal = %d, want %d", got, 750+682)
	}

	v.SetSearch("momo")
	if got := v.SelectedPayoutTotal(); got != 0 {
		t.Errorf("selection hidden by search should not count, got %d", got)
	}
}

func TestToggle(t *testing.T) {
	v := newLoadedView(t, seededStore(), allOn)

	on, err := v.Toggle("S1")
	if err != nil || !on {
		t.Fatalf("Toggle = %v, %v", on, err)
	}
	on, _ = v.Toggle("S1")
	if on || len(v.Selected()) != 0 {
		t.Errorf("second Toggle should deselect, selection %v", v.Selected())
	}
	if _, err := v.Toggle("missing"); err == nil {
		t.Error("expected error for unknown sale")
	}
}

func TestMarkWithdrawnIdempotent(t *testing.T) {
	st := seededStore()
	v := newLoadedView(t, st, allOn)
	ctx := context.Background()

	_ = v.Select("S1")
	if err := v.MarkWithdrawn(ctx, "S1"); err != nil {
		t.Fatalf("MarkWithdrawn failed: %v", err)
	}
	if err := v.MarkWithdrawn(ctx, "S1"); err != nil {
		t.Fatalf("second MarkWithdrawn failed: %v", err)
	}

	if st.calls() != 1 {
		t.Errorf("store calls = %d, want 1", st.calls())
	}
	if !st.stored("S1").Withdrawn || !v.Snapshot().Sale("S1").Withdrawn {
		t.Error("S1 should be withdrawn in store and view")
	}
	if v.IsSelected("S1") {
		t.Error("withdrawn sale should leave the selection")
	}
}

func TestMarkWithdrawnStoreFailure(t *testing.T) {
	st := seededStore()
	st.failIDs["S1"] = true
	v := newLoadedView(t, st, allOn)

	_ = v.Select("S1")
	err := v.MarkWithdrawn(context.Background(), "S1")
	if !errors.Is(err, errInjected) {
		t.Fatalf("err = %v, want injected failure", err)
	}
	if v.Snapshot().Sale("S1").Withdrawn {
		t.Error("view state changed although the store failed")
	}
	if !v.IsSelected("S1") {
		t.Error("failed sale should stay selected")
	}
}

func TestMarkPending(t *testing.T) {
	st := seededStore()
	v := newLoadedView(t, st, allOn)
	ctx := context.Background()

	if err := v.MarkPending(ctx, "S4"); err != nil {
		t.Fatalf("MarkPending failed: %v", err)
	}
	if err := v.MarkPending(ctx, "S4"); err != nil {
		t.Fatalf("second MarkPending failed: %v", err)
	}
	if st.calls() != 1 || st.stored("S4").Withdrawn {
		t.Errorf("calls = %d, stored withdrawn = %v", st.calls(), st.stored("S4").Withdrawn)
	}

	disabled := newLoadedView(t, seededStore(), ViewOptions{EnableBulkMarking: true})
	if err := disabled.MarkPending(ctx, "S4"); !errors.Is(err, ErrUndoDisabled) {
		t.Errorf("err = %v, want ErrUndoDisabled", err)
	}
}

func TestMarkSelectedEmpty(t *testing.T) {
	st := seededStore()
	v := newLoadedView(t, st, allOn)

	res, err := v.MarkSelectedAsWithdrawn(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Updated) != 0 || len(res.Failed) != 0 || st.calls() != 0 {
		t.Errorf("empty selection: result %+v, calls %d", res, st.calls())
	}
}

func TestMarkSelectedPartialFailure(t *testing.T) {
	st := seededStore()
	st.failIDs["S2"] = true
	v := newLoadedView(t, st, allOn)

	_ = v.Select("S1", "S2", "S3")
	res, err := v.MarkSelectedAsWithdrawn(context.Background())
	if !errors.Is(err, errInjected) {
		t.Fatalf("err = %v, want injected failure", err)
	}
	if !equalIDs(res.Updated, []string{"S1", "S3"}) {
		t.Errorf("Updated = %v", res.Updated)
	}
	if _, ok := res.Failed["S2"]; !ok || len(res.Failed) != 1 {
		t.Errorf("Failed = %v", res.Failed)
	}
	if !equalIDs(v.Selected(), []string{"S2"}) {
		t.Errorf("selection = %v, want [S2]", v.Selected())
	}
	if v.Snapshot().Sale("S2").Withdrawn {
		t.Error("failed sale marked withdrawn locally")
	}
	if !v.Snapshot().Sale("S1").Withdrawn || !v.Snapshot().Sale("S3").Withdrawn {
		t.Error("successful sales not marked locally")
	}
}

func TestMarkSelectedSkipsWithdrawn(t *testing.T) {
	st := seededStore()
	v := newLoadedView(t, st, allOn)
	v.SetShowWithdrawn(true)

	_ = v.Select("S4", "S1")
	res, err := v.MarkSelectedAsWithdrawn(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.calls() != 1 || !equalIDs(res.Updated, []string{"S1"}) {
		t.Errorf("calls = %d, updated = %v", st.calls(), res.Updated)
	}
	if len(v.Selected()) != 0 {
		t.Errorf("selection = %v, want empty", v.Selected())
	}
}

func TestMarkAllFiltered(t *testing.T) {
	st := seededStore()
	v := newLoadedView(t, st, allOn)

	v.SetSearch("さくら")
	res, err := v.MarkAllFilteredAsWithdrawn(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !equalIDs(res.Updated, []string{"S1", "S2"}) {
		t.Errorf("Updated = %v", res.Updated)
	}
	if st.stored("S3").Withdrawn || st.stored("S5").Withdrawn {
		t.Error("sales outside the filter were withdrawn")
	}
	if got := ids(v.FilteredSales()); len(got) != 0 {
		t.Errorf("filtered list after marking = %v", got)
	}
}

func TestBulkDisabled(t *testing.T) {
	st := seededStore()
	v := newLoadedView(t, st, ViewOptions{EnableUndo: true})
	_ = v.Select("S1")

	if _, err := v.MarkSelectedAsWithdrawn(context.Background()); !errors.Is(err, ErrBulkDisabled) {
		t.Errorf("err = %v, want ErrBulkDisabled", err)
	}
	if _, err := v.MarkAllFilteredAsWithdrawn(context.Background()); !errors.Is(err, ErrBulkDisabled) {
		t.Errorf("err = %v, want ErrBulkDisabled", err)
	}
	if st.calls() != 0 {
		t.Errorf("store calls = %d, want 0", st.calls())
	}
}

func TestBulkTimeout(t *testing.T) {
	st := seededStore()
	st.block = true
	v := NewWithdrawalView(st, defaultCalculator(t), allOn, BulkLimits{Timeout: 20 * time.Millisecond}, zerolog.Nop())
	if err := v.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	_ = v.Select("S1", "S3")
	res, err := v.MarkSelectedAsWithdrawn(context.Background())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if len(res.Updated) != 0 || len(res.Failed) != 2 {
		t.Errorf("result = %+v", res)
	}
}

func TestLoadFailureKeepsSnapshot(t *testing.T) {
	st := seededStore()
	v := newLoadedView(t, st, allOn)

	st.listErr = errInjected
	if err := v.Load(context.Background()); !errors.Is(err, errInjected) {
		t.Fatalf("err = %v, want injected failure", err)
	}
	if len(v.FilteredSales()) != 4 {
		t.Error("previous snapshot should survive a failed reload")
	}
}

func TestNotLoaded(t *testing.T) {
	v := NewWithdrawalView(seededStore(), defaultCalculator(t), allOn, BulkLimits{}, zerolog.Nop())
	if v.FilteredSales() != nil {
		t.Error("expected no sales before Load")
	}
	if err := v.MarkWithdrawn(context.Background(), "S1"); !errors.Is(err, ErrViewNotLoaded) {
		t.Errorf("err = %v, want ErrViewNotLoaded", err)
	}
}
