package model

import "time"

type Liver struct {
	ID            string
	RealName      string
	DisplayName   string
	BankName      string
	BranchName    string
	AccountType   string
	AccountNumber string
	AccountHolder string
	CreatedAt     time.Time
}
