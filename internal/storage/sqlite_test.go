package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/hansollabs/clausecraft/internal/common"
	"github.com/hansollabs/clausecraft/internal/model"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStorage(dbPath)
	if err != nil {
		t.Fatalf("Failed to create storage: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

func createTestTemplate(id string, popularity int) *model.Template {
	return &model.Template{
		ID:         id,
		Name:       "표준 " + id,
		Category:   "development",
		Industry:   "IT",
		Complexity: "standard",
		Popularity: popularity,
		Active:     true,
		Clauses: []model.Clause{
			{
				ID:        id + "-c1",
				Title:     "계약의 목적",
				Content:   "본 계약은 용역의 수행과 대가의 지급을 정한다.",
				Category:  model.CategoryPurpose,
				RiskLevel: model.RiskLow,
				Order:     1,
				Essential: true,
			},
			{
				ID:           id + "-c2",
				Title:        "하자보수",
				Content:      "수행자는 납품일로부터 3개월간 하자를 무상으로 보수한다.",
				Category:     model.CategoryWarranty,
				RiskLevel:    model.RiskMedium,
				Triggers:     []string{"budget_over_10m"},
				Conflicts:    []string{id + "-c3"},
				Alternatives: []string{id + "-c1"},
				Order:        2,
			},
		},
	}
}

func createTestContract(id string) *model.Contract {
	return &model.Contract{
		ID:      id,
		QuoteID: "q-1",
		Info: model.ContractInfo{
			Client:         model.Party{Name: "테스트 주식회사", Contact: "010-0000-0000"},
			Provider:       model.Party{Name: "김프리랜서"},
			ProjectName:    "홈페이지 구축",
			TotalAmount:    5_000_000,
			OriginalAmount: 5_000_000,
		},
		Clauses: []model.Clause{
			{ID: "c1", Title: "계약의 목적", Content: "내용", Category: model.CategoryPurpose, Order: 1, Essential: true},
			{ID: "c2", Title: "대금의 지급", Content: "내용", Category: model.CategoryPayment, Order: 2, Essential: true},
			{ID: "c3", Title: "계약의 해지", Content: "내용", Category: model.CategoryTermination, Order: 3, Essential: true},
		},
		Payment: model.PaymentSchedule{
			DownRate: 30, MiddleRate: 40, FinalRate: 30,
			DownAmount: 1_500_000, MiddleAmt: 2_000_000, FinalAmt: 1_500_000,
		},
		Timeline: model.Timeline{
			Duration:  "2개월",
			TotalDays: 60,
			Milestones: []model.Milestone{
				{Name: "기획 및 설계", StartDay: 1, EndDay: 9},
			},
		},
		Metadata: model.ContractMetadata{
			GeneratedAt: time.Now().UTC().Truncate(time.Second),
			Complexity:  model.TierStandard,
			Mode:        "pipeline",
			Model:       "gpt-4o-mini",
			Stages:      model.PipelineStages{TemplatesMatched: 1, ClausesSelected: 3, ClausesCompleted: 3},
		},
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("second Migrate failed: %v", err)
	}
}

func TestTemplateRoundTrip(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	want := createTestTemplate("tpl-web", 3)
	if err := store.SaveTemplate(ctx, want); err != nil {
		t.Fatalf("SaveTemplate failed: %v", err)
	}

	got, err := store.GetTemplate(ctx, "tpl-web")
	if err != nil {
		t.Fatalf("GetTemplate failed: %v", err)
	}
	if got.Name != want.Name || got.Industry != want.Industry || got.Popularity != 3 || !got.Active {
		t.Errorf("template = %+v, want %+v", got, want)
	}
	if len(got.Clauses) != 2 {
		t.Fatalf("got %d clauses, want 2", len(got.Clauses))
	}

	warranty := got.Clauses[1]
	if warranty.Triggers[0] != "budget_over_10m" {
		t.Errorf("triggers = %v", warranty.Triggers)
	}
	if warranty.Conflicts[0] != "tpl-web-c3" || warranty.Alternatives[0] != "tpl-web-c1" {
		t.Errorf("conflicts/alternatives = %v/%v", warranty.Conflicts, warranty.Alternatives)
	}
}

func TestSaveTemplateUpsertReplacesClauses(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	template := createTestTemplate("tpl-web", 0)
	if err := store.SaveTemplate(ctx, template); err != nil {
		t.Fatal(err)
	}

	template.Name = "개정판"
	template.Clauses = template.Clauses[:1]
	if err := store.SaveTemplate(ctx, template); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	got, err := store.GetTemplate(ctx, "tpl-web")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "개정판" {
		t.Errorf("name = %q, want 개정판", got.Name)
	}
	if len(got.Clauses) != 1 {
		t.Errorf("got %d clauses after upsert, want 1", len(got.Clauses))
	}
}

func TestListActiveTemplates(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	for i, tpl := range []*model.Template{
		createTestTemplate("tpl-a", 1),
		createTestTemplate("tpl-b", 9),
		createTestTemplate("tpl-c", 5),
	} {
		if err := store.SaveTemplate(ctx, tpl); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	inactive := createTestTemplate("tpl-old", 99)
	inactive.Active = false
	if err := store.SaveTemplate(ctx, inactive); err != nil {
		t.Fatal(err)
	}

	templates, err := store.ListActiveTemplates(ctx)
	if err != nil {
		t.Fatalf("ListActiveTemplates failed: %v", err)
	}
	if len(templates) != 3 {
		t.Fatalf("got %d templates, want 3 (inactive excluded)", len(templates))
	}
	if templates[0].ID != "tpl-b" || templates[1].ID != "tpl-c" || templates[2].ID != "tpl-a" {
		t.Errorf("order = %s %s %s, want tpl-b tpl-c tpl-a", templates[0].ID, templates[1].ID, templates[2].ID)
	}
	for _, tpl := range templates {
		if len(tpl.Clauses) == 0 {
			t.Errorf("template %s listed without clauses", tpl.ID)
		}
	}
}

func TestIncrementPopularity(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	if err := store.SaveTemplate(ctx, createTestTemplate("tpl-web", 0)); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		if err := store.IncrementPopularity(ctx, "tpl-web"); err != nil {
			t.Fatalf("increment %d: %v", i, err)
		}
	}

	got, err := store.GetTemplate(ctx, "tpl-web")
	if err != nil {
		t.Fatal(err)
	}
	if got.Popularity != 3 {
		t.Errorf("popularity = %d, want 3", got.Popularity)
	}

	if err := store.IncrementPopularity(ctx, "no-such"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("increment of missing template = %v, want ErrNotFound", err)
	}
}

func TestContractRoundTrip(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	want := createTestContract("ct-1")
	if err := store.SaveContract(ctx, want); err != nil {
		t.Fatalf("SaveContract failed: %v", err)
	}

	got, err := store.GetContract(ctx, "ct-1")
	if err != nil {
		t.Fatalf("GetContract failed: %v", err)
	}
	if got.QuoteID != "q-1" || got.Info.Client.Name != want.Info.Client.Name {
		t.Errorf("header = %+v", got.Info)
	}
	if got.Info.TotalAmount != 5_000_000 {
		t.Errorf("total = %d", got.Info.TotalAmount)
	}
	if got.Payment != want.Payment {
		t.Errorf("payment = %+v, want %+v", got.Payment, want.Payment)
	}
	if got.Timeline.TotalDays != 60 || len(got.Timeline.Milestones) != 1 {
		t.Errorf("timeline = %+v", got.Timeline)
	}
	if got.Metadata.Mode != "pipeline" || got.Metadata.Stages.ClausesCompleted != 3 {
		t.Errorf("metadata = %+v", got.Metadata)
	}
	if len(got.Clauses) != 3 {
		t.Fatalf("got %d clauses, want 3", len(got.Clauses))
	}
	for i, c := range got.Clauses {
		if c.Order != i+1 {
			t.Errorf("clause %d order = %d", i, c.Order)
		}
	}
	if err := got.Validate(); err != nil {
		t.Errorf("loaded contract validates dirty: %v", err)
	}
}

func TestSaveContractRejectsInvalid(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	tests := []struct {
		mutate func(*model.Contract)
		name   string
	}{
		{name: "no clauses", mutate: func(c *model.Contract) { c.Clauses = nil }},
		{name: "missing id", mutate: func(c *model.Contract) { c.ID = "" }},
		{name: "missing essential category", mutate: func(c *model.Contract) {
			c.Clauses[2].Category = model.CategoryGeneral
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contract := createTestContract("ct-bad")
			tt.mutate(contract)
			if err := store.SaveContract(ctx, contract); err == nil {
				t.Error("SaveContract accepted invalid contract")
			}
		})
	}
}

func TestSaveContractIsAtomic(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	contract := createTestContract("ct-dup")
	if err := store.SaveContract(ctx, contract); err != nil {
		t.Fatal(err)
	}
	// Second insert with the same ID must fail and leave the original intact.
	if err := store.SaveContract(ctx, contract); err == nil {
		t.Fatal("duplicate SaveContract succeeded")
	}

	got, err := store.GetContract(ctx, "ct-dup")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Clauses) != 3 {
		t.Errorf("got %d clauses after failed duplicate save, want 3", len(got.Clauses))
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	want := &model.Quote{
		ID:           "q-1",
		ClientName:   "테스트 주식회사",
		ProviderName: "김프리랜서",
		ProjectName:  "홈페이지 구축",
		Items: []model.ServiceItem{
			{Name: "홈페이지 개발", Price: 4_000_000},
		},
		TotalAmount: 4_000_000,
		Duration:    "6주",
	}
	if err := store.SaveQuote(ctx, want); err != nil {
		t.Fatalf("SaveQuote failed: %v", err)
	}

	got, err := store.GetQuote(ctx, "q-1")
	if err != nil {
		t.Fatalf("GetQuote failed: %v", err)
	}
	if got.ClientName != want.ClientName || got.TotalAmount != want.TotalAmount || got.Duration != "6주" {
		t.Errorf("quote = %+v, want %+v", got, want)
	}

	if _, err := store.GetQuote(ctx, "q-404"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("GetQuote missing = %v, want ErrNotFound", err)
	}
}

func TestGetTemplateNotFound(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	if _, err := store.GetTemplate(context.Background(), "no-such"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("GetTemplate missing = %v, want ErrNotFound", err)
	}
}

func TestConcurrentPopularityIncrements(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	if err := store.SaveTemplate(ctx, createTestTemplate("tpl-hot", 0)); err != nil {
		t.Fatal(err)
	}

	const workers = 10
	errCh := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			errCh <- store.IncrementPopularity(ctx, "tpl-hot")
		}()
	}
	for i := 0; i < workers; i++ {
		if err := <-errCh; err != nil {
			t.Fatalf("concurrent increment failed: %v", err)
		}
	}

	got, err := store.GetTemplate(ctx, "tpl-hot")
	if err != nil {
		t.Fatal(err)
	}
	if got.Popularity != workers {
		t.Errorf("popularity = %d, want %d (no lost updates)", got.Popularity, workers)
	}
}

func TestValidateHelpers(t *testing.T) {
	if err := validateString("  ", "field"); !errors.Is(err, ErrEmptyString) {
		t.Errorf("validateString blank = %v, want ErrEmptyString", err)
	}
	if err := validateString("ok", "field"); err != nil {
		t.Errorf("validateString valid = %v", err)
	}
	if err := validateTemplate(nil); !errors.Is(err, ErrNilParameter) {
		t.Errorf("validateTemplate nil = %v, want ErrNilParameter", err)
	}
	bad := &model.Template{ID: "t", Name: ""}
	if err := validateTemplate(bad); !errors.Is(err, ErrInvalidTemplate) {
		t.Errorf("validateTemplate bad = %v, want ErrInvalidTemplate", err)
	}
}
