// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/danielhkuo/zebrafish-catalog/db"
	"github.com/danielhkuo/zebrafish-catalog/importer"
	"github.com/danielhkuo/zebrafish-catalog/store"
)

func newImportCmd(v *viper.Viper) *cobra.Command {
	var keepExisting bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Load a spreadsheet into the catalog database",
		Long: `Load a spreadsheet into the catalog database.

By default every table is cleared first. With --keep-existing the rows are
added to what is already stored and may refer to genes and mutants loaded
earlier.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dialect, err := db.ParseDialect(v.GetString(keyDatabaseType))
			if err != nil {
				return err
			}

			wb, err := importer.Open(args[0])
			if err != nil {
				return err
			}

			conn, err := db.Open(dialect, v.GetString(keyDatabaseURL))
			if err != nil {
				return err
			}
			defer conn.Close()

			st := store.New(conn, dialect)
			if err := st.Init(); err != nil {
				return err
			}

			report, runErr := importer.NewPipeline(st).Run(cmd.Context(), wb, importer.Options{Clear: !keepExisting})
			if err := printReport(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			return runErr
		},
	}

	cmd.Flags().BoolVar(&keepExisting, "keep-existing", false, "add to existing data instead of clearing it")
	return cmd
}

func printReport(w io.Writer, r *importer.Report) error {
	table := tablewriter.NewWriter(w)
	table.Header("Table", "Rows")
	table.Append(importer.SheetGenes, humanize.Comma(int64(r.Counts.Genes)))
	table.Append(importer.SheetMutants, humanize.Comma(int64(r.Counts.Mutants)))
	table.Append(importer.SheetSizeMetrics, humanize.Comma(int64(r.Counts.SizeMetrics)))
	table.Append(importer.SheetBehaviorData, humanize.Comma(int64(r.Counts.BehaviorData)))
	if err := table.Render(); err != nil {
		return err
	}

	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}
	fmt.Fprintf(w, "Run %s finished in %s with %s\n",
		r.RunID, r.Duration.Round(time.Millisecond), english.Plural(len(r.Warnings), "warning", "warnings"))
	return nil
}
