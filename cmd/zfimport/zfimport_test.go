// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/zebrafish-catalog/db"
	"github.com/danielhkuo/zebrafish-catalog/importer"
	"github.com/danielhkuo/zebrafish-catalog/models"
	"github.com/danielhkuo/zebrafish-catalog/store"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeTemplate(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	_, err := runCmd(t, "template", "-o", path)
	require.NoError(t, err)
	return path
}

func countsIn(t *testing.T, dbPath string) models.TableCounts {
	t.Helper()
	conn, err := db.Open(db.DialectSQLite, dbPath)
	require.NoError(t, err)
	defer conn.Close()
	counts, err := store.New(conn, db.DialectSQLite).Counts(context.Background())
	require.NoError(t, err)
	return counts
}

func TestTemplateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	out, err := runCmd(t, "template", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Template written to "+path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	wb, err := importer.Open(path)
	require.NoError(t, err)
	assert.NoError(t, importer.Validate(wb))
}

func TestValidateCommand(t *testing.T) {
	t.Run("valid template", func(t *testing.T) {
		path := writeTemplate(t)
		out, err := runCmd(t, "validate", path)
		require.NoError(t, err)
		assert.Contains(t, out, "is valid")
	})

	t.Run("missing sheet and column", func(t *testing.T) {
		dir := t.TempDir()
		files := map[string]string{
			"genes.csv":        "name\nsox10\n",
			"mutants.csv":      "gene_name,mutant_name,phenotype\n",
			"size_metrics.csv": "mutant_name,age_dpf,body_length\n",
		}
		for name, content := range files {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
		}

		out, err := runCmd(t, "validate", dir)
		require.Error(t, err)
		assert.True(t, errors.Is(err, importer.ErrShapeInvalid))
		assert.Contains(t, out, importer.SheetBehaviorData)
		assert.Contains(t, out, "(entire sheet)")
		assert.Contains(t, out, "description")
	})

	t.Run("requires an argument", func(t *testing.T) {
		_, err := runCmd(t, "validate")
		assert.Error(t, err)
	})

	t.Run("unsupported source", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.txt")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		_, err := runCmd(t, "validate", path)
		assert.ErrorIs(t, err, importer.ErrUnsupportedSource)
	})
}

func TestImportCommand(t *testing.T) {
	src := writeTemplate(t)
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	out, err := runCmd(t, "import", src, "--database-url", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "finished in")
	assert.Contains(t, out, "0 warnings")

	want := models.TableCounts{Genes: 3, Mutants: 3, SizeMetrics: 5, BehaviorData: 5}
	assert.Equal(t, want, countsIn(t, dbPath))

	// A second clearing import leaves the same totals.
	_, err = runCmd(t, "import", src, "--database-url", dbPath)
	require.NoError(t, err)
	assert.Equal(t, want, countsIn(t, dbPath))
}

func TestImportKeepExisting(t *testing.T) {
	src := writeTemplate(t)
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	_, err := runCmd(t, "import", src, "--database-url", dbPath)
	require.NoError(t, err)

	// Re-adding the same gene names violates uniqueness in the first stage.
	out, err := runCmd(t, "import", src, "--database-url", dbPath, "--keep-existing")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrDuplicateKey)

	var stageErr *importer.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, importer.SheetGenes, stageErr.Stage)
	assert.Contains(t, out, importer.SheetGenes)

	assert.Equal(t, 3, countsIn(t, dbPath).Genes)
}

func TestImportReadsDatabaseURLFromEnv(t *testing.T) {
	src := writeTemplate(t)
	dbPath := filepath.Join(t.TempDir(), "env.db")
	t.Setenv("DATABASE_URL", dbPath)
	t.Setenv("DATABASE_TYPE", "sqlite")

	_, err := runCmd(t, "import", src)
	require.NoError(t, err)
	assert.Equal(t, 3, countsIn(t, dbPath).Genes)
}

func TestImportRejectsBadSettings(t *testing.T) {
	src := writeTemplate(t)

	_, err := runCmd(t, "import", src, "--database-type", "oracle")
	assert.Error(t, err)

	_, err = runCmd(t, "import", src, "--log-level", "loud")
	assert.Error(t, err)
}

func TestImportReportsWarnings(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"genes.csv":         "name,description\nsox10,\n",
		"mutants.csv":       "gene_name,mutant_name,phenotype\nsox10,sox10-/-,pale\nshha,shha-/-,fin loss\n",
		"size_metrics.csv":  "mutant_name,age_dpf,body_length\nsox10-/-,1,3.2\n",
		"behavior_data.csv": "mutant_name,behavior_type,time_point,value,unit\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	out, err := runCmd(t, "import", dir, "--database-url", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "warning: mutants row 3")
	assert.Contains(t, out, "1 warning")
	assert.Equal(t, models.TableCounts{Genes: 1, Mutants: 1, SizeMetrics: 1}, countsIn(t, dbPath))
}
