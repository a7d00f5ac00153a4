package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hance08/liverdesk/internal/model"
	"github.com/hance08/liverdesk/internal/store"
	"github.com/hance08/liverdesk/internal/validation"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

type LiverInput struct {
	RealName      string `yaml:"real_name"`
	DisplayName   string `yaml:"display_name"`
	BankName      string `yaml:"bank_name"`
	BranchName    string `yaml:"branch_name"`
	AccountType   string `yaml:"account_type"`
	AccountNumber string `yaml:"account_number"`
	AccountHolder string `yaml:"account_holder"`
}

func LiverInputFrom(l *model.Liver) LiverInput {
	return LiverInput{
		RealName:      l.RealName,
		DisplayName:   l.DisplayName,
		BankName:      l.BankName,
		BranchName:    l.BranchName,
		AccountType:   l.AccountType,
		AccountNumber: l.AccountNumber,
		AccountHolder: l.AccountHolder,
	}
}

func (in LiverInput) toModel() *model.Liver {
	return &model.Liver{
		RealName:      strings.TrimSpace(in.RealName),
		DisplayName:   strings.TrimSpace(in.DisplayName),
		BankName:      strings.TrimSpace(in.BankName),
		BranchName:    strings.TrimSpace(in.BranchName),
		AccountType:   strings.TrimSpace(in.AccountType),
		AccountNumber: strings.TrimSpace(in.AccountNumber),
		AccountHolder: strings.TrimSpace(in.AccountHolder),
	}
}

type LiverService struct {
	repo store.Repository
	log  zerolog.Logger
}

func NewLiverService(repo store.Repository, log zerolog.Logger) *LiverService {
	return &LiverService{repo: repo, log: log}
}

func (ls *LiverService) CreateLiver(ctx context.Context, in LiverInput) (*model.Liver, error) {
	liver := in.toModel()
	if err := validation.ValidateLiver(liver); err != nil {
		return nil, err
	}

	liver.CreatedAt = timeNow()
	id, err := ls.repo.CreateLiver(ctx, liver)
	if err != nil {
		return nil, err
	}
	liver.ID = id

	ls.log.Info().Str("liver_id", id).Str("display_name", liver.DisplayName).Msg("liver created")
	return liver, nil
}

func (ls *LiverService) UpdateLiver(ctx context.Context, id string, in LiverInput) (*model.Liver, error) {
	liver := in.toModel()
	if err := validation.ValidateLiver(liver); err != nil {
		return nil, err
	}

	existing, err := ls.repo.GetLiver(ctx, id)
	if err != nil {
		return nil, err
	}
	liver.ID = existing.ID
	liver.CreatedAt = existing.CreatedAt

	if err := ls.repo.UpdateLiver(ctx, liver); err != nil {
		return nil, err
	}

	ls.log.Info().Str("liver_id", id).Msg("liver updated")
	return liver, nil
}

// DeleteLiver removes the liver only. Its sales stay and show up under the
// unknown-liver label.
func (ls *LiverService) DeleteLiver(ctx context.Context, id string) error {
	if err := ls.repo.DeleteLiver(ctx, id); err != nil {
		return err
	}
	ls.log.Info().Str("liver_id", id).Msg("liver deleted")
	return nil
}

func (ls *LiverService) GetLiver(ctx context.Context, id string) (*model.Liver, error) {
	return ls.repo.GetLiver(ctx, id)
}

func (ls *LiverService) ListLivers(ctx context.Context) ([]*model.Liver, error) {
	return ls.repo.ListLivers(ctx, store.LiversByDisplayName)
}

// SearchLivers lists livers, narrowed by keyword when one is given.
func (ls *LiverService) SearchLivers(ctx context.Context, keyword string) ([]*model.Liver, error) {
	livers, err := ls.ListLivers(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(keyword) == "" {
		return livers, nil
	}
	return FilterLivers(livers, keyword), nil
}

type liverRoster struct {
	Livers []LiverInput `yaml:"livers"`
}

// ImportLivers reads a YAML roster and creates every liver in it, or none of
// them when any entry is invalid or fails to insert.
func (ls *LiverService) ImportLivers(ctx context.Context, r io.Reader) ([]*model.Liver, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var roster liverRoster
	if err := dec.Decode(&roster); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: roster is empty", validation.ErrInvalidInput)
		}
		return nil, fmt.Errorf("%w: failed to parse roster: %v", validation.ErrInvalidInput, err)
	}
	if len(roster.Livers) == 0 {
		return nil, fmt.Errorf("%w: roster has no livers", validation.ErrInvalidInput)
	}

	livers := make([]*model.Liver, 0, len(roster.Livers))
	for i, in := range roster.Livers {
		liver := in.toModel()
		if err := validation.ValidateLiver(liver); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		liver.CreatedAt = timeNow()
		livers = append(livers, liver)
	}

	err := ls.repo.ExecTx(ctx, func(tx store.Repository) error {
		for i, liver := range livers {
			id, err := tx.CreateLiver(ctx, liver)
			if err != nil {
				return fmt.Errorf("entry %d: %w", i+1, err)
			}
			liver.ID = id
		}
		return nil
	})
	if err != nil {
		for _, liver := range livers {
			liver.ID = ""
		}
		return nil, err
	}

	ls.log.Info().Int("count", len(livers)).Msg("livers imported")
	return livers, nil
}

// FindLiver looks a liver up by full id or unique id prefix.
func (ls *LiverService) FindLiver(ctx context.Context, idPrefix string) (*model.Liver, error) {
	livers, err := ls.ListLivers(ctx)
	if err != nil {
		return nil, err
	}
	return NewSnapshot(livers, nil).LiverByPrefix(idPrefix)
}
