package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hance08/liverdesk/internal/constants"
	"github.com/hance08/liverdesk/internal/model"
	"github.com/hance08/liverdesk/internal/payout"
	"github.com/hance08/liverdesk/internal/store"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const defaultBulkConcurrency = 8

// ViewOptions switches withdrawal view behaviour per instance.
type ViewOptions struct {
	ShowWithdrawn     bool
	EnableBulkMarking bool
	EnableUndo        bool
}

// BulkLimits bounds a bulk run. A zero Timeout means no deadline beyond the
// caller's context.
type BulkLimits struct {
	Concurrency int
	Timeout     time.Duration
}

type withdrawalStore interface {
	snapshotSource
	SetSaleWithdrawn(ctx context.Context, id string, withdrawn bool) error
}

// BulkResult lists which sales a bulk run transitioned. Sales that were
// already withdrawn are neither updated nor failed.
type BulkResult struct {
	Updated []string
	Failed  map[string]error
}

// WithdrawalView owns the sales list, search term and selection of one
// withdrawal screen. It is not safe for concurrent use.
type WithdrawalView struct {
	store  withdrawalStore
	calc   *payout.Calculator
	opts   ViewOptions
	limits BulkLimits
	log    zerolog.Logger

	snap     *Snapshot
	search   string
	selected []string
}

func NewWithdrawalView(st withdrawalStore, calc *payout.Calculator, opts ViewOptions, limits BulkLimits, log zerolog.Logger) *WithdrawalView {
	if limits.Concurrency <= 0 {
		limits.Concurrency = defaultBulkConcurrency
	}
	return &WithdrawalView{store: st, calc: calc, opts: opts, limits: limits, log: log}
}

func (v *WithdrawalView) Options() ViewOptions {
	return v.opts
}

// Load replaces the snapshot. On failure the previous one is kept.
func (v *WithdrawalView) Load(ctx context.Context) error {
	snap, err := LoadSnapshot(ctx, v.store)
	if err != nil {
		return err
	}
	v.snap = snap

	kept := v.selected[:0]
	for _, id := range v.selected {
		if s := snap.Sale(id); s != nil && !s.Withdrawn {
			kept = append(kept, id)
		}
	}
	v.selected = kept
	return nil
}

func (v *WithdrawalView) Snapshot() *Snapshot {
	return v.snap
}

func (v *WithdrawalView) SetSearch(keyword string) {
	v.search = keyword
}

func (v *WithdrawalView) Search() string {
	return v.search
}

func (v *WithdrawalView) SetShowWithdrawn(show bool) {
	v.opts.ShowWithdrawn = show
}

func (v *WithdrawalView) LiverName(liverID string) string {
	if v.snap == nil {
		return constants.UnknownLiverLabel
	}
	return v.snap.LiverName(liverID)
}

func (v *WithdrawalView) Payout(sale *model.Sale) int64 {
	return v.calc.Compute(sale.Amount)
}

// FilteredSales is the list the screen shows: withdrawn sales only when
// ShowWithdrawn is on, narrowed by the search term, newest first.
func (v *WithdrawalView) FilteredSales() []*model.Sale {
	if v.snap == nil {
		return nil
	}

	var out []*model.Sale
	for _, sale := range v.snap.Sales {
		if sale.Withdrawn && !v.opts.ShowWithdrawn {
			continue
		}
		if v.search != "" && !v.snap.MatchSale(sale, v.search) {
			continue
		}
		out = append(out, sale)
	}
	return out
}

// PendingGrossTotal sums the gross of pending sales in the filtered list.
func (v *WithdrawalView) PendingGrossTotal() int64 {
	return payout.SumGross(v.FilteredSales())
}

// SelectedPayoutTotal sums the payout of selected sales still in the
// filtered list.
func (v *WithdrawalView) SelectedPayoutTotal() int64 {
	return v.calc.SumPayout(v.SelectedSales())
}

func (v *WithdrawalView) SelectedSales() []*model.Sale {
	var out []*model.Sale
	for _, sale := range v.FilteredSales() {
		if v.IsSelected(sale.ID) {
			out = append(out, sale)
		}
	}
	return out
}

func (v *WithdrawalView) Selected() []string {
	return append([]string(nil), v.selected...)
}

func (v *WithdrawalView) IsSelected(id string) bool {
	for _, s := range v.selected {
		if s == id {
			return true
		}
	}
	return false
}

// Select adds ids to the selection. Unknown ids are rejected.
func (v *WithdrawalView) Select(ids ...string) error {
	if v.snap == nil {
		return ErrViewNotLoaded
	}
	for _, id := range ids {
		if v.snap.Sale(id) == nil {
			return fmt.Errorf("sale '%s': %w", id, store.ErrRecordNotFound)
		}
	}
	for _, id := range ids {
		if !v.IsSelected(id) {
			v.selected = append(v.selected, id)
		}
	}
	return nil
}

// Toggle flips the selection of id and reports whether it is now selected.
func (v *WithdrawalView) Toggle(id string) (bool, error) {
	if v.IsSelected(id) {
		v.deselect(id)
		return false, nil
	}
	if err := v.Select(id); err != nil {
		return false, err
	}
	return true, nil
}

func (v *WithdrawalView) ClearSelection() {
	v.selected = nil
}

func (v *WithdrawalView) deselect(id string) {
	for i, s := range v.selected {
		if s == id {
			v.selected = append(v.selected[:i], v.selected[i+1:]...)
			return
		}
	}
}

// MarkWithdrawn transitions one sale to withdrawn. Already withdrawn sales
// are left alone and cause no store call.
func (v *WithdrawalView) MarkWithdrawn(ctx context.Context, id string) error {
	return v.setWithdrawn(ctx, id, true)
}

// MarkPending reverses a withdrawal when undo is enabled.
func (v *WithdrawalView) MarkPending(ctx context.Context, id string) error {
	if !v.opts.EnableUndo {
		return ErrUndoDisabled
	}
	return v.setWithdrawn(ctx, id, false)
}

func (v *WithdrawalView) setWithdrawn(ctx context.Context, id string, withdrawn bool) error {
	if v.snap == nil {
		return ErrViewNotLoaded
	}
	sale := v.snap.Sale(id)
	if sale == nil {
		return fmt.Errorf("sale '%s': %w", id, store.ErrRecordNotFound)
	}

	if sale.Withdrawn != withdrawn {
		if err := v.store.SetSaleWithdrawn(ctx, id, withdrawn); err != nil {
			v.log.Error().Err(err).Str("sale_id", id).Bool("withdrawn", withdrawn).Msg("failed to update withdrawal state")
			return fmt.Errorf("failed to update sale '%s': %w", id, err)
		}
		sale.Withdrawn = withdrawn
		v.log.Info().Str("sale_id", id).Bool("withdrawn", withdrawn).Msg("withdrawal state updated")
	}

	if withdrawn {
		v.deselect(id)
	}
	return nil
}

// MarkSelectedAsWithdrawn withdraws every selected sale. Successful ids leave
// the selection and failed ones stay selected for a retry.
func (v *WithdrawalView) MarkSelectedAsWithdrawn(ctx context.Context) (BulkResult, error) {
	if !v.opts.EnableBulkMarking {
		return BulkResult{}, ErrBulkDisabled
	}
	return v.markMany(ctx, v.Selected())
}

// MarkAllFilteredAsWithdrawn withdraws every pending sale in the filtered
// list as it stands when called.
func (v *WithdrawalView) MarkAllFilteredAsWithdrawn(ctx context.Context) (BulkResult, error) {
	if !v.opts.EnableBulkMarking {
		return BulkResult{}, ErrBulkDisabled
	}

	var ids []string
	for _, sale := range v.FilteredSales() {
		if !sale.Withdrawn {
			ids = append(ids, sale.ID)
		}
	}
	return v.markMany(ctx, ids)
}

func (v *WithdrawalView) markMany(ctx context.Context, ids []string) (BulkResult, error) {
	result := BulkResult{Failed: map[string]error{}}
	if v.snap == nil {
		return result, ErrViewNotLoaded
	}

	var pending []*model.Sale
	for _, id := range ids {
		sale := v.snap.Sale(id)
		switch {
		case sale == nil:
			result.Failed[id] = fmt.Errorf("sale '%s': %w", id, store.ErrRecordNotFound)
		case sale.Withdrawn:
			v.deselect(id)
		default:
			pending = append(pending, sale)
		}
	}
	if len(pending) == 0 {
		return result, v.collect(ids, result.Failed)
	}

	if v.limits.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.limits.Timeout)
		defer cancel()
	}

	// Workers only talk to the store; the snapshot is updated afterwards.
	var mu sync.Mutex
	done := make(map[string]bool, len(pending))
	g := new(errgroup.Group)
	g.SetLimit(v.limits.Concurrency)
	for _, sale := range pending {
		id := sale.ID
		g.Go(func() error {
			err := v.store.SetSaleWithdrawn(ctx, id, true)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed[id] = err
				return nil
			}
			done[id] = true
			return nil
		})
	}
	_ = g.Wait()

	for _, sale := range pending {
		if done[sale.ID] {
			sale.Withdrawn = true
			v.deselect(sale.ID)
			result.Updated = append(result.Updated, sale.ID)
		}
	}

	v.log.Info().
		Int("requested", len(ids)).
		Int("updated", len(result.Updated)).
		Int("failed", len(result.Failed)).
		Msg("bulk withdrawal finished")

	return result, v.collect(ids, result.Failed)
}

// collect folds failures into one error, in request order.
func (v *WithdrawalView) collect(ids []string, failed map[string]error) error {
	var merr *multierror.Error
	for _, id := range ids {
		if err, ok := failed[id]; ok {
			merr = multierror.Append(merr, fmt.Errorf("sale '%s': %w", id, err))
		}
	}
	return merr.ErrorOrNil()
}
