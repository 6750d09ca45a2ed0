// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/zebrafish-catalog/cliparse"
	"github.com/danielhkuo/zebrafish-catalog/db"
	"github.com/danielhkuo/zebrafish-catalog/models"
	"github.com/danielhkuo/zebrafish-catalog/store"
)

// SetupTestStore creates a fresh SQLite store with the full schema in a
// temporary directory. The connection is closed when the test ends.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "zebrafish-test.db")
	conn, err := db.Open(db.DialectSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	st := store.New(conn, db.DialectSQLite)
	if err := st.Init(); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return st
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         5001,
		DatabaseURL:  ":memory:",
		DatabaseType: string(db.DialectSQLite),
		CORSOrigin:   "*",
	}
}

// Catalog holds the ids created by SeedCatalog.
type Catalog struct {
	Sox10       int64
	Mitfa       int64
	Sox10Mutant int64
	MitfaMutant int64
}

// SeedCatalog loads a small catalog: genes sox10 and mitfa, one mutant each,
// two size metrics for sox10-/- and behavior rows for both mutants.
func SeedCatalog(t *testing.T, st *store.Store) Catalog {
	t.Helper()
	ctx := context.Background()

	var c Catalog
	err := st.InTx(ctx, func(tx *store.Tx) error {
		var err error
		if c.Sox10, err = tx.InsertGene(ctx, models.Gene{
			Name: "sox10", Description: Ptr("SRY-box transcription factor 10"),
		}); err != nil {
			return err
		}
		if c.Mitfa, err = tx.InsertGene(ctx, models.Gene{
			Name: "mitfa", Description: Ptr("Melanogenesis associated transcription factor"),
		}); err != nil {
			return err
		}
		if c.Sox10Mutant, err = tx.InsertMutant(ctx, models.Mutant{
			GeneID: c.Sox10, MutantName: "sox10-/-",
			Phenotype: Ptr("Pigmentation defects, no melanocytes"),
			ImagePath: Ptr("/static/images/sox10.jpg"),
		}); err != nil {
			return err
		}
		if c.MitfaMutant, err = tx.InsertMutant(ctx, models.Mutant{
			GeneID: c.Mitfa, MutantName: "mitfa-/-",
			Phenotype: Ptr("Nacre, lack of melanophores"),
		}); err != nil {
			return err
		}

		sampleSize := int64(15)
		metrics := []models.SizeMetric{
			{MutantID: c.Sox10Mutant, AgeDPF: Ptr(1.0), BodyLength: Ptr(3.2), HeadWidth: Ptr(0.35), SampleSize: &sampleSize},
			{MutantID: c.Sox10Mutant, AgeDPF: Ptr(2.0), BodyLength: Ptr(3.8)},
		}
		for _, sm := range metrics {
			if _, err := tx.InsertSizeMetric(ctx, sm); err != nil {
				return err
			}
		}

		behavior := []models.BehaviorData{
			{MutantID: c.Sox10Mutant, BehaviorType: "speed", TimePoint: 0, Value: 10, Unit: "mm/s"},
			{MutantID: c.Sox10Mutant, BehaviorType: "speed", TimePoint: 2, Value: 12, Unit: "mm/s"},
			{MutantID: c.Sox10Mutant, BehaviorType: "startle", TimePoint: 0, Value: 75, Unit: "%"},
			{MutantID: c.MitfaMutant, BehaviorType: "speed", TimePoint: 0, Value: 9.5, Unit: "mm/s"},
		}
		for _, b := range behavior {
			if _, err := tx.InsertBehaviorData(ctx, b); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to seed catalog: %v", err)
	}
	return c
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// MakeRequest creates an HTTP test request with the given headers set
func MakeRequest(method, path string, headers map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
