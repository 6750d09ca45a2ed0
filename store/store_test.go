// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/zebrafish-catalog/db"
	"github.com/danielhkuo/zebrafish-catalog/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	conn, err := db.Open(db.DialectSQLite, filepath.Join(t.TempDir(), "store.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	st := New(conn, db.DialectSQLite)
	if err := st.Init(); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return st
}

func strPtr(s string) *string { return &s }

func float64Ptr(f float64) *float64 { return &f }

// seed inserts sox10 and mitfa with one mutant each.
func seed(t *testing.T, st *Store) (sox10, mitfa, sox10Mutant, mitfaMutant int64) {
	t.Helper()
	ctx := context.Background()

	err := st.InTx(ctx, func(tx *Tx) error {
		var err error
		if sox10, err = tx.InsertGene(ctx, models.Gene{Name: "sox10", Description: strPtr("SRY-box transcription factor 10")}); err != nil {
			return err
		}
		if mitfa, err = tx.InsertGene(ctx, models.Gene{Name: "mitfa"}); err != nil {
			return err
		}
		if sox10Mutant, err = tx.InsertMutant(ctx, models.Mutant{
			GeneID: sox10, MutantName: "sox10-/-", Phenotype: strPtr("Pigmentation defects, no melanocytes"),
		}); err != nil {
			return err
		}
		mitfaMutant, err = tx.InsertMutant(ctx, models.Mutant{
			GeneID: mitfa, MutantName: "mitfa-/-", Phenotype: strPtr("Nacre, lack of melanophores"),
			ImagePath: strPtr("/static/images/mitfa.jpg"),
		})
		return err
	})
	if err != nil {
		t.Fatalf("Failed to seed store: %v", err)
	}
	return sox10, mitfa, sox10Mutant, mitfaMutant
}

func TestGetGene(t *testing.T) {
	st := setupTestStore(t)
	sox10, mitfa, _, _ := seed(t, st)
	ctx := context.Background()

	g, err := st.GetGene(ctx, sox10)
	if err != nil {
		t.Fatalf("GetGene() error = %v", err)
	}
	if g.Name != "sox10" {
		t.Errorf("Expected name sox10, got %s", g.Name)
	}
	if g.Description == nil || *g.Description != "SRY-box transcription factor 10" {
		t.Errorf("Unexpected description: %v", g.Description)
	}

	g, err = st.GetGene(ctx, mitfa)
	if err != nil {
		t.Fatalf("GetGene() error = %v", err)
	}
	if g.Description != nil {
		t.Errorf("Expected nil description, got %q", *g.Description)
	}

	if _, err := st.GetGene(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestGetByName(t *testing.T) {
	st := setupTestStore(t)
	sox10, _, sox10Mutant, _ := seed(t, st)
	ctx := context.Background()

	g, err := st.GetGeneByName(ctx, "sox10")
	if err != nil {
		t.Fatalf("GetGeneByName() error = %v", err)
	}
	if g.GeneID != sox10 {
		t.Errorf("Expected gene_id %d, got %d", sox10, g.GeneID)
	}

	m, err := st.GetMutantByName(ctx, "sox10-/-")
	if err != nil {
		t.Fatalf("GetMutantByName() error = %v", err)
	}
	if m.MutantID != sox10Mutant || m.GeneID != sox10 {
		t.Errorf("Unexpected mutant: %+v", m)
	}

	if _, err := st.GetGeneByName(ctx, "fgf8"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if _, err := st.GetMutantByName(ctx, "fgf8-/-"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestGetMutant(t *testing.T) {
	st := setupTestStore(t)
	_, mitfa, _, mitfaMutant := seed(t, st)
	ctx := context.Background()

	m, err := st.GetMutant(ctx, mitfaMutant)
	if err != nil {
		t.Fatalf("GetMutant() error = %v", err)
	}
	if m.GeneID != mitfa {
		t.Errorf("Expected gene_id %d, got %d", mitfa, m.GeneID)
	}
	if m.ImagePath == nil || *m.ImagePath != "/static/images/mitfa.jpg" {
		t.Errorf("Unexpected image_path: %v", m.ImagePath)
	}
	if m.CreatedAt.IsZero() {
		t.Error("Expected created_at to be set")
	}
	if m.GeneName != "" {
		t.Errorf("Store should not join gene names, got %q", m.GeneName)
	}

	if _, err := st.GetMutant(ctx, -1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestListInCreationOrder(t *testing.T) {
	st := setupTestStore(t)
	sox10, _, _, _ := seed(t, st)
	ctx := context.Background()

	genes, err := st.ListGenes(ctx)
	if err != nil {
		t.Fatalf("ListGenes() error = %v", err)
	}
	if len(genes) != 2 || genes[0].Name != "sox10" || genes[1].Name != "mitfa" {
		t.Errorf("Unexpected genes: %+v", genes)
	}

	mutants, err := st.ListMutants(ctx)
	if err != nil {
		t.Fatalf("ListMutants() error = %v", err)
	}
	if len(mutants) != 2 || mutants[0].MutantName != "sox10-/-" || mutants[1].MutantName != "mitfa-/-" {
		t.Errorf("Unexpected mutants: %+v", mutants)
	}

	byGene, err := st.ListMutantsByGene(ctx, sox10)
	if err != nil {
		t.Fatalf("ListMutantsByGene() error = %v", err)
	}
	if len(byGene) != 1 || byGene[0].MutantName != "sox10-/-" {
		t.Errorf("Unexpected mutants for gene: %+v", byGene)
	}
}

func TestEmptyListsAreNotNil(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	genes, err := st.ListGenes(ctx)
	if err != nil || genes == nil {
		t.Errorf("ListGenes() = %v, %v; want empty slice", genes, err)
	}
	metrics, err := st.ListSizeMetrics(ctx, 42)
	if err != nil || metrics == nil || len(metrics) != 0 {
		t.Errorf("ListSizeMetrics() = %v, %v; want empty slice", metrics, err)
	}
	data, err := st.ListBehaviorData(ctx, 42)
	if err != nil || data == nil || len(data) != 0 {
		t.Errorf("ListBehaviorData() = %v, %v; want empty slice", data, err)
	}
}

func TestDuplicateKeys(t *testing.T) {
	st := setupTestStore(t)
	sox10, _, _, _ := seed(t, st)
	ctx := context.Background()

	err := st.InTx(ctx, func(tx *Tx) error {
		_, err := tx.InsertGene(ctx, models.Gene{Name: "sox10"})
		return err
	})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("Expected ErrDuplicateKey for gene, got %v", err)
	}

	err = st.InTx(ctx, func(tx *Tx) error {
		_, err := tx.InsertMutant(ctx, models.Mutant{GeneID: sox10, MutantName: "mitfa-/-"})
		return err
	})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("Expected ErrDuplicateKey for mutant, got %v", err)
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	err := st.InTx(ctx, func(tx *Tx) error {
		_, err := tx.InsertMutant(ctx, models.Mutant{GeneID: 12345, MutantName: "orphan"})
		return err
	})
	if !errors.Is(err, ErrForeignKey) {
		t.Errorf("Expected ErrForeignKey for mutant, got %v", err)
	}

	err = st.InTx(ctx, func(tx *Tx) error {
		_, err := tx.InsertSizeMetric(ctx, models.SizeMetric{MutantID: 12345})
		return err
	})
	if !errors.Is(err, ErrForeignKey) {
		t.Errorf("Expected ErrForeignKey for size metric, got %v", err)
	}

	err = st.InTx(ctx, func(tx *Tx) error {
		_, err := tx.InsertBehaviorData(ctx, models.BehaviorData{MutantID: 12345, BehaviorType: "speed", Unit: "mm/s"})
		return err
	})
	if !errors.Is(err, ErrForeignKey) {
		t.Errorf("Expected ErrForeignKey for behavior data, got %v", err)
	}
}

func TestInTxRollsBack(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	err := st.InTx(ctx, func(tx *Tx) error {
		if _, err := tx.InsertGene(ctx, models.Gene{Name: "fgf8"}); err != nil {
			return err
		}
		_, err := tx.InsertGene(ctx, models.Gene{Name: "fgf8"})
		return err
	})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("Expected ErrDuplicateKey, got %v", err)
	}

	counts, err := st.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts() error = %v", err)
	}
	if counts.Genes != 0 {
		t.Errorf("Expected rollback to leave 0 genes, got %d", counts.Genes)
	}
}

func TestMeasurements(t *testing.T) {
	st := setupTestStore(t)
	_, _, sox10Mutant, mitfaMutant := seed(t, st)
	ctx := context.Background()

	sampleSize := int64(15)
	var metricID, behaviorID int64
	err := st.InTx(ctx, func(tx *Tx) error {
		var err error
		metricID, err = tx.InsertSizeMetric(ctx, models.SizeMetric{
			MutantID: sox10Mutant, AgeDPF: float64Ptr(1), BodyLength: float64Ptr(3.2), SampleSize: &sampleSize,
		})
		if err != nil {
			return err
		}
		behaviorID, err = tx.InsertBehaviorData(ctx, models.BehaviorData{
			MutantID: sox10Mutant, BehaviorType: "swimming_speed", TimePoint: 0, Value: 10.5, Unit: "mm/s",
		})
		return err
	})
	if err != nil {
		t.Fatalf("Failed to insert measurements: %v", err)
	}

	sm, err := st.GetSizeMetric(ctx, metricID)
	if err != nil {
		t.Fatalf("GetSizeMetric() error = %v", err)
	}
	if sm.AgeDPF == nil || *sm.AgeDPF != 1 || sm.BodyLength == nil || *sm.BodyLength != 3.2 {
		t.Errorf("Unexpected size metric: %+v", sm)
	}
	if sm.HeadWidth != nil || sm.TailLength != nil || sm.WeightMg != nil {
		t.Errorf("Expected absent measurements to stay nil: %+v", sm)
	}
	if sm.SampleSize == nil || *sm.SampleSize != 15 {
		t.Errorf("Unexpected sample_size: %v", sm.SampleSize)
	}

	b, err := st.GetBehaviorData(ctx, behaviorID)
	if err != nil {
		t.Fatalf("GetBehaviorData() error = %v", err)
	}
	if b.BehaviorType != "swimming_speed" || b.Value != 10.5 || b.Unit != "mm/s" {
		t.Errorf("Unexpected behavior data: %+v", b)
	}

	metrics, err := st.ListSizeMetrics(ctx, mitfaMutant)
	if err != nil {
		t.Fatalf("ListSizeMetrics() error = %v", err)
	}
	if len(metrics) != 0 {
		t.Errorf("Expected no metrics for mitfa, got %d", len(metrics))
	}

	allMetrics, err := st.ListAllSizeMetrics(ctx)
	if err != nil {
		t.Fatalf("ListAllSizeMetrics() error = %v", err)
	}
	if len(allMetrics) != 1 || allMetrics[0].MetricID != metricID {
		t.Errorf("Unexpected size metrics: %+v", allMetrics)
	}

	all, err := st.ListAllBehaviorData(ctx)
	if err != nil {
		t.Fatalf("ListAllBehaviorData() error = %v", err)
	}
	if len(all) != 1 {
		t.Errorf("Expected 1 behavior row, got %d", len(all))
	}

	if _, err := st.GetSizeMetric(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if _, err := st.GetBehaviorData(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSearchMutants(t *testing.T) {
	st := setupTestStore(t)
	seed(t, st)
	ctx := context.Background()

	tests := []struct {
		name      string
		phenotype string
		gene      string
		expected  []string
	}{
		{"no filters returns all", "", "", []string{"sox10-/-", "mitfa-/-"}},
		{"gene substring", "", "sox", []string{"sox10-/-"}},
		{"gene is case-insensitive", "", "MITFA", []string{"mitfa-/-"}},
		{"phenotype substring", "melano", "", []string{"sox10-/-", "mitfa-/-"}},
		{"phenotype case-insensitive", "NACRE", "", []string{"mitfa-/-"}},
		{"both filters must match", "nacre", "sox10", []string{}},
		{"both filters match", "melanocytes", "sox10", []string{"sox10-/-"}},
		{"wildcards are literal", "%", "", []string{}},
		{"underscore is literal", "", "_", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mutants, err := st.SearchMutants(ctx, tt.phenotype, tt.gene)
			if err != nil {
				t.Fatalf("SearchMutants() error = %v", err)
			}
			if len(mutants) != len(tt.expected) {
				t.Fatalf("Expected %d mutants, got %d: %+v", len(tt.expected), len(mutants), mutants)
			}
			for i, name := range tt.expected {
				if mutants[i].MutantName != name {
					t.Errorf("Expected mutant %d to be %s, got %s", i, name, mutants[i].MutantName)
				}
			}
		})
	}
}

func TestSearchMutantsNonASCII(t *testing.T) {
	st := setupTestStore(t)
	ctx := context.Background()

	err := st.InTx(ctx, func(tx *Tx) error {
		geneID, err := tx.InsertGene(ctx, models.Gene{Name: "Ödem1"})
		if err != nil {
			return err
		}
		_, err = tx.InsertMutant(ctx, models.Mutant{
			GeneID: geneID, MutantName: "ödem1-/-", Phenotype: strPtr("Ödem of heart"),
		})
		return err
	})
	if err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}

	tests := []struct {
		name      string
		phenotype string
		gene      string
	}{
		{"exact phenotype substring", "Ödem", ""},
		{"exact gene name", "", "Ödem1"},
		{"phenotype in other case", "ödem", ""},
		{"gene in other case", "", "ÖDEM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mutants, err := st.SearchMutants(ctx, tt.phenotype, tt.gene)
			if err != nil {
				t.Fatalf("SearchMutants() error = %v", err)
			}
			if len(mutants) != 1 || mutants[0].MutantName != "ödem1-/-" {
				t.Errorf("Expected ödem1-/-, got %+v", mutants)
			}
		})
	}
}

func TestRebuild(t *testing.T) {
	st := setupTestStore(t)
	seed(t, st)
	ctx := context.Background()

	if err := st.Rebuild(ctx); err != nil {
		t.Fatalf("Rebuild() error = %v", err)
	}
	counts, err := st.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts() error = %v", err)
	}
	if counts.Total() != 0 {
		t.Errorf("Expected empty store after rebuild, got %+v", counts)
	}

	// schema is usable again
	seed(t, st)
	counts, err = st.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts() error = %v", err)
	}
	if counts.Genes != 2 || counts.Mutants != 2 {
		t.Errorf("Unexpected counts after reseed: %+v", counts)
	}
}

func TestNameIndexes(t *testing.T) {
	st := setupTestStore(t)
	sox10, mitfa, sox10Mutant, _ := seed(t, st)
	ctx := context.Background()

	genes, err := st.GeneIDsByName(ctx)
	if err != nil {
		t.Fatalf("GeneIDsByName() error = %v", err)
	}
	if genes["sox10"] != sox10 || genes["mitfa"] != mitfa || len(genes) != 2 {
		t.Errorf("Unexpected gene index: %v", genes)
	}

	mutants, err := st.MutantIDsByName(ctx)
	if err != nil {
		t.Fatalf("MutantIDsByName() error = %v", err)
	}
	if mutants["sox10-/-"] != sox10Mutant || len(mutants) != 2 {
		t.Errorf("Unexpected mutant index: %v", mutants)
	}
}
