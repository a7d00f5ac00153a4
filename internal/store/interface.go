package store

import (
	"context"
	"time"

	"github.com/hance08/liverdesk/internal/model"
)

type LiverRepository interface {
	CreateLiver(ctx context.Context, liver *model.Liver) (string, error)
	GetLiver(ctx context.Context, id string) (*model.Liver, error)
	ListLivers(ctx context.Context, order Order) ([]*model.Liver, error)
	UpdateLiver(ctx context.Context, liver *model.Liver) error
	DeleteLiver(ctx context.Context, id string) error
}

type SaleRepository interface {
	CreateSale(ctx context.Context, sale *model.Sale) (string, error)
	GetSale(ctx context.Context, id string) (*model.Sale, error)
	ListSales(ctx context.Context, order Order) ([]*model.Sale, error)
	// UpdateSale rewrites the editable fields and leaves the withdrawn flag alone.
	UpdateSale(ctx context.Context, sale *model.Sale) error
	SetSaleWithdrawn(ctx context.Context, id string, withdrawn bool) error
	DeleteSale(ctx context.Context, id string) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, email, passwordHash string) (string, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	CountUsers(ctx context.Context) (int, error)

	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, token string) (*model.Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

type Repository interface {
	LiverRepository
	SaleRepository
	UserRepository

	ExecTx(ctx context.Context, fn func(Repository) error) error
	Close() error
}
