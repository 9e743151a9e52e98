package history

import (
	"context"
	"path/filepath"
	"testing"

	"stockcast/internal/query"
	"stockcast/internal/resolver"
	"stockcast/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first := &resolver.Success{
		Symbol:   "AAPL",
		Mode:     query.ModeSymbolic,
		Strategy: models.StrategyBalanced,
		Signal:   &models.Signal{Signal: "BUY"},
	}
	second := &resolver.Success{
		Symbol:   "TSLA",
		Mode:     query.ModeNaturalLanguage,
		Strategy: models.StrategyAggressive,
		Provider: resolver.ProviderGemini,
		Analysis: &models.Analysis{
			Verdict: &models.AnalysisVerdict{Recommendation: "HOLD"},
		},
	}

	if err := store.RecordResolution(ctx, "aapl", first); err != nil {
		t.Fatalf("RecordResolution: %v", err)
	}
	if err := store.RecordResolution(ctx, "should I buy tesla", second); err != nil {
		t.Fatalf("RecordResolution: %v", err)
	}

	records, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Symbol != "TSLA" {
		t.Errorf("newest record must come first, got %s", records[0].Symbol)
	}
	if records[0].Recommendation != "HOLD" {
		t.Errorf("verdict recommendation not recorded: %q", records[0].Recommendation)
	}
	if records[0].Provider != string(resolver.ProviderGemini) {
		t.Errorf("provider not recorded: %q", records[0].Provider)
	}
	if records[1].Recommendation != "BUY" {
		t.Errorf("signal recommendation not recorded: %q", records[1].Recommendation)
	}
}

func TestRecordSkipsEmptyResolution(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.RecordResolution(ctx, "anything", nil); err != nil {
		t.Fatalf("nil success must be a no-op, got %v", err)
	}
	if err := store.RecordResolution(ctx, "anything", &resolver.Success{}); err != nil {
		t.Fatalf("empty symbol must be a no-op, got %v", err)
	}

	records, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestRecentLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		success := &resolver.Success{Symbol: "AAPL", Mode: query.ModeSymbolic, Strategy: models.StrategyBalanced}
		if err := store.RecordResolution(ctx, "AAPL", success); err != nil {
			t.Fatalf("RecordResolution: %v", err)
		}
	}

	records, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
}
