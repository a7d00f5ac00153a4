package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hance08/liverdesk/internal/constants"
	"github.com/hance08/liverdesk/internal/kana"
	"github.com/hance08/liverdesk/internal/model"
	"github.com/hance08/liverdesk/internal/store"
	"github.com/hance08/liverdesk/internal/validation"
)

type snapshotSource interface {
	ListLivers(ctx context.Context, order store.Order) ([]*model.Liver, error)
	ListSales(ctx context.Context, order store.Order) ([]*model.Sale, error)
}

// Snapshot is the working set a screen loads once and then operates on.
// It is only as fresh as its last load.
type Snapshot struct {
	Livers []*model.Liver
	Sales  []*model.Sale

	liverByID     map[string]*model.Liver
	canonicalName map[string]string
}

func NewSnapshot(livers []*model.Liver, sales []*model.Sale) *Snapshot {
	s := &Snapshot{
		Livers:        livers,
		Sales:         sales,
		liverByID:     make(map[string]*model.Liver, len(livers)),
		canonicalName: make(map[string]string, len(livers)),
	}
	for _, l := range livers {
		s.liverByID[l.ID] = l
		s.canonicalName[l.ID] = kana.Normalize(l.DisplayName)
	}
	return s
}

// LoadSnapshot reads livers by display name and sales newest first.
func LoadSnapshot(ctx context.Context, src snapshotSource) (*Snapshot, error) {
	livers, err := src.ListLivers(ctx, store.LiversByDisplayName)
	if err != nil {
		return nil, fmt.Errorf("failed to load livers: %w", err)
	}

	sales, err := src.ListSales(ctx, store.SalesByDateDesc)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}

	return NewSnapshot(livers, sales), nil
}

func (s *Snapshot) Liver(id string) *model.Liver {
	return s.liverByID[id]
}

// LiverName falls back to a placeholder for sales whose liver was deleted.
func (s *Snapshot) LiverName(id string) string {
	if l, ok := s.liverByID[id]; ok {
		return l.DisplayName
	}
	return constants.UnknownLiverLabel
}

func (s *Snapshot) Sale(id string) *model.Sale {
	for _, sale := range s.Sales {
		if sale.ID == id {
			return sale
		}
	}
	return nil
}

// MatchSale reports whether the keyword occurs in the sale's liver name or memo.
func (s *Snapshot) MatchSale(sale *model.Sale, keyword string) bool {
	name, ok := s.canonicalName[sale.LiverID]
	if !ok {
		name = kana.Normalize(constants.UnknownLiverLabel)
	}
	return kana.Matches(name, keyword) || kana.Matches(kana.Normalize(sale.Memo), keyword)
}

func (s *Snapshot) SearchSales(keyword string) []*model.Sale {
	var out []*model.Sale
	for _, sale := range s.Sales {
		if s.MatchSale(sale, keyword) {
			out = append(out, sale)
		}
	}
	return out
}

func (s *Snapshot) putSale(sale *model.Sale) {
	for i, existing := range s.Sales {
		if existing.ID == sale.ID {
			s.Sales[i] = sale
			s.sortSales()
			return
		}
	}
	s.Sales = append(s.Sales, sale)
	s.sortSales()
}

func (s *Snapshot) removeSale(id string) {
	for i, existing := range s.Sales {
		if existing.ID == id {
			s.Sales = append(s.Sales[:i], s.Sales[i+1:]...)
			return
		}
	}
}

func (s *Snapshot) sortSales() {
	sort.SliceStable(s.Sales, func(i, j int) bool {
		return s.Sales[i].Date.After(s.Sales[j].Date)
	})
}

// SaleByPrefix finds the sale whose id starts with prefix. The prefix must
// pick out exactly one sale.
func (s *Snapshot) SaleByPrefix(prefix string) (*model.Sale, error) {
	var found *model.Sale
	for _, sale := range s.Sales {
		if !strings.HasPrefix(sale.ID, prefix) {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%w: sale id '%s' is ambiguous", validation.ErrInvalidInput, prefix)
		}
		found = sale
	}
	if found == nil || prefix == "" {
		return nil, fmt.Errorf("sale '%s': %w", prefix, store.ErrRecordNotFound)
	}
	return found, nil
}

// LiverByPrefix is SaleByPrefix for livers.
func (s *Snapshot) LiverByPrefix(prefix string) (*model.Liver, error) {
	var found *model.Liver
	for _, l := range s.Livers {
		if !strings.HasPrefix(l.ID, prefix) {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%w: liver id '%s' is ambiguous", validation.ErrInvalidInput, prefix)
		}
		found = l
	}
	if found == nil || prefix == "" {
		return nil, fmt.Errorf("liver '%s': %w", prefix, store.ErrRecordNotFound)
	}
	return found, nil
}
