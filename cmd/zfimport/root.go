// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/danielhkuo/zebrafish-catalog/cliparse"
	"github.com/danielhkuo/zebrafish-catalog/db"
)

const (
	keyDatabaseURL  = "database-url"
	keyDatabaseType = "database-type"
	keyLogLevel     = "log-level"
)

// newRootCmd builds the command tree. Each call gets its own viper instance
// so tests can run commands side by side.
func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "zfimport",
		Short: "Load zebrafish catalog spreadsheets",
		Long: `zfimport manages the bulk data of the zebrafish catalog.

It writes a blank spreadsheet template, checks a filled-in spreadsheet
against the expected sheets and columns, and loads it into the catalog
database. A spreadsheet is an .xlsx workbook or a directory holding
genes.csv, mutants.csv, size_metrics.csv and behavior_data.csv.

Database settings come from flags, then DATABASE_URL and DATABASE_TYPE
(a .env file in the working directory is read first).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cliparse.LoadEnv(); err != nil {
				return err
			}
			return setupLogging(cmd.ErrOrStderr(), v.GetString(keyLogLevel))
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(keyDatabaseURL, cliparse.DefaultDatabaseURL, "database URL or SQLite file path")
	flags.String(keyDatabaseType, string(db.DialectSQLite), "database type (sqlite or postgres)")
	flags.String(keyLogLevel, "warn", "log level (debug, info, warn, error)")

	for _, key := range []string{keyDatabaseURL, keyDatabaseType, keyLogLevel} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd.AddCommand(
		newTemplateCmd(),
		newValidateCmd(),
		newImportCmd(v),
	)
	return cmd
}

func setupLogging(w io.Writer, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q", level)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
	return nil
}
