package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hance08/liverdesk/internal/model"
)

const saleColumns = "id, liver_id, amount, type, memo, date, withdrawn"

func (s *Store) CreateSale(ctx context.Context, sale *model.Sale) (string, error) {
	stmt, err := s.db.PrepareContext(ctx, `
        INSERT INTO sales (`+saleColumns+`)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return "", fmt.Errorf("failed to prepare sale SQL: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var newID string
	err = stmt.QueryRowContext(ctx,
		uuid.NewString(), sale.LiverID, sale.Amount, string(sale.Type), sale.Memo,
		formatTime(sale.Date), sale.Withdrawn,
	).Scan(&newID)
	if err != nil {
		if isConstraintErr(err) {
			return "", fmt.Errorf("failed to insert sale: %w", ErrConstraintViolation)
		}
		return "", fmt.Errorf("failed to insert sale: %w", err)
	}

	return newID, nil
}

func (s *Store) GetSale(ctx context.Context, id string) (*model.Sale, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+saleColumns+" FROM sales WHERE id = ?", id)

	sale, err := scanSale(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("sale '%s': %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query sale '%s': %w", id, err)
	}
	return sale, nil
}

func (s *Store) ListSales(ctx context.Context, order Order) ([]*model.Sale, error) {
	orderBy, err := order.clause(saleOrderFields)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, "SELECT "+saleColumns+" FROM sales "+orderBy)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var sales []*model.Sale
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, sale)
	}

	return sales, rows.Err()
}

func (s *Store) UpdateSale(ctx context.Context, sale *model.Sale) error {
	res, err := s.db.ExecContext(ctx, `
        UPDATE sales
        SET liver_id = ?, amount = ?, type = ?, memo = ?, date = ?
        WHERE id = ?
    `, sale.LiverID, sale.Amount, string(sale.Type), sale.Memo, formatTime(sale.Date), sale.ID)
	if err != nil {
		if isConstraintErr(err) {
			return fmt.Errorf("failed to update sale '%s': %w", sale.ID, ErrConstraintViolation)
		}
		return fmt.Errorf("failed to update sale '%s': %w", sale.ID, err)
	}
	return expectAffected(res, "sale", sale.ID)
}

func (s *Store) SetSaleWithdrawn(ctx context.Context, id string, withdrawn bool) error {
	res, err := s.db.ExecContext(ctx, "UPDATE sales SET withdrawn = ? WHERE id = ?", withdrawn, id)
	if err != nil {
		return fmt.Errorf("failed to update withdrawal status of sale '%s': %w", id, err)
	}
	return expectAffected(res, "sale", id)
}

func (s *Store) DeleteSale(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM sales WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete sale '%s': %w", id, err)
	}
	return expectAffected(res, "sale", id)
}

func scanSale(row rowScanner) (*model.Sale, error) {
	sale := &model.Sale{}
	var saleType, date string

	err := row.Scan(
		&sale.ID, &sale.LiverID, &sale.Amount, &saleType, &sale.Memo, &date, &sale.Withdrawn,
	)
	if err != nil {
		return nil, err
	}

	sale.Type = model.SaleType(saleType)
	if sale.Date, err = parseTime(date); err != nil {
		return nil, err
	}
	return sale, nil
}
