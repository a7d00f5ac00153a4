package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/hance08/liverdesk/internal/constants"
)

type SaleType string

const (
	SaleTypeSubscription SaleType = "subscription"
	SaleTypeDonation     SaleType = "donation"
)

func ParseSaleType(s string) (SaleType, error) {
	switch SaleType(strings.ToLower(strings.TrimSpace(s))) {
	case SaleTypeSubscription, "sub", "":
		return SaleTypeSubscription, nil
	case SaleTypeDonation, "don":
		return SaleTypeDonation, nil
	default:
		return "", fmt.Errorf("unknown sale type '%s' (must be subscription or donation)", s)
	}
}

func (t SaleType) Label() string {
	switch t {
	case SaleTypeSubscription:
		return "Subscription"
	case SaleTypeDonation:
		return "Donation"
	default:
		return string(t)
	}
}

type Sale struct {
	ID        string
	LiverID   string
	Amount    int64
	Type      SaleType
	Memo      string
	Date      time.Time
	Withdrawn bool
}

// Status reports the withdrawal state of the sale.
func (s *Sale) Status() string {
	if s.Withdrawn {
		return constants.StatusWithdrawn
	}
	return constants.StatusPending
}
