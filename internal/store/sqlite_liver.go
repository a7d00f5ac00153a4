package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/liverdesk/internal/model"
)

const liverColumns = `id, real_name, display_name, bank_name, branch_name,
        account_type, account_number, account_holder, created_at`

func (s *Store) CreateLiver(ctx context.Context, liver *model.Liver) (string, error) {
	stmt, err := s.db.PrepareContext(ctx, `
        INSERT INTO livers (`+liverColumns+`)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return "", fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	createdAt := liver.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	var newID string
	err = stmt.QueryRowContext(ctx,
		uuid.NewString(), liver.RealName, liver.DisplayName, liver.BankName, liver.BranchName,
		liver.AccountType, liver.AccountNumber, liver.AccountHolder, formatTime(createdAt),
	).Scan(&newID)
	if err != nil {
		if isConstraintErr(err) {
			return "", fmt.Errorf("failed to create liver '%s': %w", liver.DisplayName, ErrConstraintViolation)
		}
		return "", fmt.Errorf("failed to executing SQL insertion : %w", err)
	}

	return newID, nil
}

func (s *Store) GetLiver(ctx context.Context, id string) (*model.Liver, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+liverColumns+" FROM livers WHERE id = ?", id)

	liver, err := scanLiver(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("liver '%s': %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query liver '%s': %w", id, err)
	}
	return liver, nil
}

func (s *Store) ListLivers(ctx context.Context, order Order) ([]*model.Liver, error) {
	orderBy, err := order.clause(liverOrderFields)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, "SELECT "+liverColumns+" FROM livers "+orderBy)
	if err != nil {
		return nil, fmt.Errorf("failed to query livers: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var livers []*model.Liver
	for rows.Next() {
		liver, err := scanLiver(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan liver: %w", err)
		}
		livers = append(livers, liver)
	}

	return livers, rows.Err()
}

func (s *Store) UpdateLiver(ctx context.Context, liver *model.Liver) error {
	res, err := s.db.ExecContext(ctx, `
        UPDATE livers
        SET real_name = ?, display_name = ?, bank_name = ?, branch_name = ?,
            account_type = ?, account_number = ?, account_holder = ?
        WHERE id = ?
    `, liver.RealName, liver.DisplayName, liver.BankName, liver.BranchName,
		liver.AccountType, liver.AccountNumber, liver.AccountHolder, liver.ID)
	if err != nil {
		return fmt.Errorf("failed to update liver '%s': %w", liver.ID, err)
	}
	return expectAffected(res, "liver", liver.ID)
}

func (s *Store) DeleteLiver(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM livers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete liver '%s': %w", id, err)
	}
	return expectAffected(res, "liver", id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLiver(row rowScanner) (*model.Liver, error) {
	liver := &model.Liver{}
	var createdAt string

	err := row.Scan(
		&liver.ID, &liver.RealName, &liver.DisplayName, &liver.BankName, &liver.BranchName,
		&liver.AccountType, &liver.AccountNumber, &liver.AccountHolder, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	if liver.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return liver, nil
}
