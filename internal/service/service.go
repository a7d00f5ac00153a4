package service

import (
	"fmt"
	"time"

	"github.com/hance08/liverdesk/internal/config"
	"github.com/hance08/liverdesk/internal/payout"
	"github.com/hance08/liverdesk/internal/session"
	"github.com/hance08/liverdesk/internal/store"
	"github.com/rs/zerolog"
)

type Service struct {
	Liver   *LiverService
	Sale    *SaleService
	Ranking *RankingService
	Auth    *AuthService
	Payout  *payout.Calculator

	repo   store.Repository
	config *config.Config
	log    zerolog.Logger
}

func NewService(repo store.Repository, cfg *config.Config, tokens session.TokenStore, log zerolog.Logger) (*Service, error) {
	calc, err := payout.ParseCalculator(cfg.Payout.TaxRate, cfg.Payout.Share)
	if err != nil {
		return nil, fmt.Errorf("invalid payout settings: %w", err)
	}

	return &Service{
		Liver:   NewLiverService(repo, log),
		Sale:    NewSaleService(repo, cfg.Sales.DeletePolicy, log),
		Ranking: NewRankingService(repo),
		Auth:    NewAuthService(repo, tokens, cfg.Session.TTL, log),
		Payout:  calc,
		repo:    repo,
		config:  cfg,
		log:     log,
	}, nil
}

// DefaultViewOptions reads the withdrawal.* switches from the config.
func (s *Service) DefaultViewOptions() ViewOptions {
	return ViewOptions{
		ShowWithdrawn:     s.config.Withdrawal.ShowWithdrawn,
		EnableBulkMarking: s.config.Withdrawal.EnableBulk,
		EnableUndo:        s.config.Withdrawal.EnableUndo,
	}
}

func (s *Service) NewWithdrawalView(opts ViewOptions) *WithdrawalView {
	limits := BulkLimits{
		Concurrency: s.config.Withdrawal.Concurrency,
		Timeout:     s.config.Withdrawal.Timeout,
	}
	return NewWithdrawalView(s.repo, s.Payout, opts, limits, s.log)
}

func (s *Service) Config() *config.Config {
	return s.config
}

var timeNow = func() time.Time { return time.Now().UTC() }
