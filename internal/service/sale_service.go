package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hance08/liverdesk/internal/config"
	"github.com/hance08/liverdesk/internal/model"
	"github.com/hance08/liverdesk/internal/store"
	"github.com/hance08/liverdesk/internal/validation"
	"github.com/rs/zerolog"
)

// SaleInput is a sale as typed by the operator. LiverName must name an
// existing liver's display name.
type SaleInput struct {
	LiverName string
	Amount    string
	Type      string
	Memo      string
	Date      string
}

type SaleService struct {
	repo   store.Repository
	policy config.DeletePolicy
	now    func() time.Time
	log    zerolog.Logger
}

func NewSaleService(repo store.Repository, policy config.DeletePolicy, log zerolog.Logger) *SaleService {
	return &SaleService{repo: repo, policy: policy, now: timeNow, log: log}
}

func (ss *SaleService) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	return LoadSnapshot(ctx, ss.repo)
}

// buildSale validates every field before anything is written.
func (ss *SaleService) buildSale(snap *Snapshot, in SaleInput) (*model.Sale, error) {
	amount, err := validation.ParseAmount(in.Amount)
	if err != nil {
		return nil, err
	}
	saleType, err := validation.ParseSaleType(in.Type)
	if err != nil {
		return nil, err
	}
	memo := strings.TrimSpace(in.Memo)
	if err := validation.ValidateMemo(memo); err != nil {
		return nil, err
	}
	date, err := validation.ParseSaleDate(in.Date, ss.now())
	if err != nil {
		return nil, err
	}
	liver, err := ResolveLiver(snap.Livers, in.LiverName)
	if err != nil {
		return nil, fmt.Errorf("'%s': %w", in.LiverName, err)
	}

	return &model.Sale{
		LiverID: liver.ID,
		Amount:  amount,
		Type:    saleType,
		Memo:    memo,
		Date:    date,
	}, nil
}

// CreateSale records a new pending sale and adds it to snap.
func (ss *SaleService) CreateSale(ctx context.Context, snap *Snapshot, in SaleInput) (*model.Sale, error) {
	sale, err := ss.buildSale(snap, in)
	if err != nil {
		return nil, err
	}

	id, err := ss.repo.CreateSale(ctx, sale)
	if err != nil {
		return nil, err
	}
	sale.ID = id
	snap.putSale(sale)

	ss.log.Info().
		Str("sale_id", id).
		Str("liver_id", sale.LiverID).
		Int64("amount", sale.Amount).
		Msg("sale created")
	return sale, nil
}

// UpdateSale rewrites the editable fields of a sale. The withdrawal state is
// never changed here.
func (ss *SaleService) UpdateSale(ctx context.Context, snap *Snapshot, id string, in SaleInput) (*model.Sale, error) {
	existing := snap.Sale(id)
	if existing == nil {
		return nil, fmt.Errorf("sale '%s': %w", id, store.ErrRecordNotFound)
	}

	sale, err := ss.buildSale(snap, in)
	if err != nil {
		return nil, err
	}
	sale.ID = id
	sale.Withdrawn = existing.Withdrawn

	if err := ss.repo.UpdateSale(ctx, sale); err != nil {
		return nil, err
	}
	snap.putSale(sale)

	ss.log.Info().Str("sale_id", id).Msg("sale updated")
	return sale, nil
}

// CanDelete applies sales.delete_policy to a sale.
func (ss *SaleService) CanDelete(sale *model.Sale) error {
	switch ss.policy {
	case config.DeleteAlways:
		return nil
	case config.DeleteNever:
		return ErrDeleteForbidden
	default:
		if sale.Withdrawn {
			return fmt.Errorf("sale has already been withdrawn: %w", ErrDeleteForbidden)
		}
		return nil
	}
}

func (ss *SaleService) DeleteSale(ctx context.Context, snap *Snapshot, id string) error {
	existing := snap.Sale(id)
	if existing == nil {
		return fmt.Errorf("sale '%s': %w", id, store.ErrRecordNotFound)
	}
	if err := ss.CanDelete(existing); err != nil {
		return err
	}

	if err := ss.repo.DeleteSale(ctx, id); err != nil {
		return err
	}
	snap.removeSale(id)

	ss.log.Info().Str("sale_id", id).Msg("sale deleted")
	return nil
}
