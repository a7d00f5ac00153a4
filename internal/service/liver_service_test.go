package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hance08/liverdesk/internal/store"
	"github.com/hance08/liverdesk/internal/validation"
)

func TestLiverLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.Liver.CreateLiver(ctx, liverInput("  ゆい  "))
	if err != nil {
		t.Fatalf("CreateLiver failed: %v", err)
	}
	if created.DisplayName != "ゆい" {
		t.Errorf("DisplayName = %q, want trimmed", created.DisplayName)
	}

	in := LiverInputFrom(created)
	in.BankName = "MUFG"
	updated, err := svc.Liver.UpdateLiver(ctx, created.ID, in)
	if err != nil {
		t.Fatalf("UpdateLiver failed: %v", err)
	}
	if updated.BankName != "MUFG" || !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("unexpected update: %+v", updated)
	}

	if err := svc.Liver.DeleteLiver(ctx, created.ID); err != nil {
		t.Fatalf("DeleteLiver failed: %v", err)
	}
	if _, err := svc.Liver.GetLiver(ctx, created.ID); !errors.Is(err, store.ErrRecordNotFound) {
		t.Errorf("GetLiver after delete err = %v", err)
	}
}

func TestCreateLiverRequiresFields(t *testing.T) {
	svc := newTestService(t)

	in := liverInput("ゆい")
	in.AccountNumber = " "
	if _, err := svc.Liver.CreateLiver(context.Background(), in); !errors.Is(err, validation.ErrInvalidInput) {
		t.Errorf("err = %v, want invalid input", err)
	}
}

func TestSearchLivers(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	for _, name := range []string{"ゆい", "Hina"} {
		if _, err := svc.Liver.CreateLiver(ctx, liverInput(name)); err != nil {
			t.Fatalf("CreateLiver failed: %v", err)
		}
	}

	all, _ := svc.Liver.SearchLivers(ctx, "")
	if len(all) != 2 {
		t.Errorf("empty search returned %d livers", len(all))
	}
	got, _ := svc.Liver.SearchLivers(ctx, "ユイ")
	if len(got) != 1 || got[0].DisplayName != "ゆい" {
		t.Errorf("SearchLivers(ユイ) = %+v", got)
	}
}

const rosterYAML = `
livers:
  - real_name: Ito Aoi
    display_name: あおい
    bank_name: Mizuho
    branch_name: Ueno
    account_type: Savings
    account_number: "0012345"
    account_holder: イトウ アオイ
  - real_name: Mori Ren
    display_name: Ren
    bank_name: MUFG
    branch_name: Ginza
    account_type: Checking
    account_number: "7777777"
    account_holder: モリ レン
`

func TestImportLivers(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	livers, err := svc.Liver.ImportLivers(ctx, strings.NewReader(rosterYAML))
	if err != nil {
		t.Fatalf("ImportLivers failed: %v", err)
	}
	if len(livers) != 2 || livers[0].ID == "" || livers[0].AccountNumber != "0012345" {
		t.Errorf("unexpected import: %+v", livers)
	}

	all, _ := svc.Liver.ListLivers(ctx)
	if len(all) != 2 {
		t.Errorf("stored %d livers, want 2", len(all))
	}
}

func TestImportLiversAllOrNothing(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	bad := strings.Replace(rosterYAML, `account_number: "7777777"`, `account_number: ""`, 1)
	if _, err := svc.Liver.ImportLivers(ctx, strings.NewReader(bad)); !errors.Is(err, validation.ErrInvalidInput) {
		t.Fatalf("err = %v, want invalid input", err)
	}

	for _, doc := range []string{"", "livers: []", "people: []"} {
		if _, err := svc.Liver.ImportLivers(ctx, strings.NewReader(doc)); err == nil {
			t.Errorf("ImportLivers(%q) should fail", doc)
		}
	}

	all, _ := svc.Liver.ListLivers(ctx)
	if len(all) != 0 {
		t.Errorf("failed imports stored %d livers", len(all))
	}
}
