package service

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/hance08/liverdesk/internal/config"
	"github.com/hance08/liverdesk/internal/model"
	"github.com/hance08/liverdesk/internal/payout"
	"github.com/hance08/liverdesk/internal/session"
	"github.com/hance08/liverdesk/internal/store"
	"github.com/rs/zerolog"
)

var errInjected = errors.New("injected store failure")

func defaultCalculator(t *testing.T) *payout.Calculator {
	t.Helper()

	c, err := payout.ParseCalculator(payout.DefaultTaxRate, payout.DefaultShare)
	if err != nil {
		t.Fatalf("ParseCalculator failed: %v", err)
	}
	return c
}

// fakeSalesStore is an in-memory withdrawalStore that counts writes.
type fakeSalesStore struct {
	mu       sync.Mutex
	livers   []*model.Liver
	sales    []*model.Sale
	failIDs  map[string]bool
	block    bool
	listErr  error
	setCalls int
}

func (f *fakeSalesStore) ListLivers(ctx context.Context, order store.Order) ([]*model.Liver, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*model.Liver, len(f.livers))
	for i, l := range f.livers {
		c := *l
		out[i] = &c
	}
	return out, nil
}

func (f *fakeSalesStore) ListSales(ctx context.Context, order store.Order) ([]*model.Sale, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*model.Sale, len(f.sales))
	for i, s := range f.sales {
		c := *s
		out[i] = &c
	}
	return out, nil
}

func (f *fakeSalesStore) SetSaleWithdrawn(ctx context.Context, id string, withdrawn bool) error {
	f.mu.Lock()
	f.setCalls++
	block, fail := f.block, f.failIDs[id]
	f.mu.Unlock()

	if block {
		<-ctx.Done()
		return ctx.Err()
	}
	if fail {
		return errInjected
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.sales {
		if s.ID == id {
			s.Withdrawn = withdrawn
			return nil
		}
	}
	return store.ErrRecordNotFound
}

func (f *fakeSalesStore) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.setCalls
}

func (f *fakeSalesStore) stored(id string) *model.Sale {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.sales {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func newTestRepo(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.NewStore(":memory:", os.DirFS("../.."))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newTestService(t *testing.T) *Service {
	t.Helper()

	svc, err := NewService(newTestRepo(t), config.NewDefault(), &session.MemoryStore{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	return svc
}

func liverInput(display string) LiverInput {
	return LiverInput{
		RealName:      "Sato Yui",
		DisplayName:   display,
		BankName:      "Mizuho",
		BranchName:    "Shinjuku",
		AccountType:   "Savings",
		AccountNumber: "7654321",
		AccountHolder: "サトウ ユイ",
	}
}
