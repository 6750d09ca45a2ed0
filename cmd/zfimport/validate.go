// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/zebrafish-catalog/importer"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a spreadsheet for the required sheets and columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := importer.Open(args[0])
			if err != nil {
				return err
			}

			err = importer.Validate(wb)
			var shape *importer.ShapeError
			if errors.As(err, &shape) {
				if rerr := printShapeError(cmd.OutOrStdout(), shape); rerr != nil {
					return rerr
				}
				return err
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", args[0])
			return nil
		},
	}
}

func printShapeError(w io.Writer, shape *importer.ShapeError) error {
	table := tablewriter.NewWriter(w)
	table.Header("Sheet", "Missing")

	for _, sheet := range shape.MissingSheets {
		table.Append(sheet, "(entire sheet)")
	}

	sheets := make([]string, 0, len(shape.MissingColumns))
	for sheet := range shape.MissingColumns {
		sheets = append(sheets, sheet)
	}
	sort.Strings(sheets)
	for _, sheet := range sheets {
		table.Append(sheet, strings.Join(shape.MissingColumns[sheet], ", "))
	}

	return table.Render()
}
