// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command calconv converts and validates dates of the calendars of package
// calendar.
//
// Usage:
//
//	calconv list
//	calconv info <calendar>
//	calconv convert --from <calendar> [--to <calendar>] <date>
//	calconv validate --calendar <calendar> <date>
//
// Additional calendars can be loaded from a YAML file with --config. Dates
// are read and written in the layout given by --layout, which defaults to
// YYYY-MM-DD.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"gonih.org/calendar"
	"gonih.org/calendar/core"
	"gonih.org/calendar/internal/config"
)

var version = "dev"

// app holds the state shared by all subcommands.
type app struct {
	configPath string
	verbose    bool
	layout     string
	logger     *slog.Logger
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	root := &cobra.Command{
		Use:   "calconv",
		Short: "Convert dates between arithmetical calendars",
		Long: `calconv converts dates between the Gregorian, Julian, Coptic, Ethiopic,
Armenian, Zoroastrian, Egyptian and tabular Islamic calendars, and any
calendar defined in a configuration file.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML file with additional calendar definitions")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log diagnostics to stderr")
	root.PersistentFlags().StringVar(&a.layout, "layout", calendar.RFC3339, "Layout of dates, using the reference date 2006-01-02")

	root.AddCommand(listCmd(a))
	root.AddCommand(infoCmd(a))
	root.AddCommand(convertCmd(a))
	root.AddCommand(validateCmd(a))
	return root
}

// setup configures logging and loads the configuration file, if any.
func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	if a.configPath == "" {
		return nil
	}
	f, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	cals, err := f.Register()
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", a.configPath, err)
	}
	for _, c := range cals {
		a.logger.Debug("registered calendar", "key", c.Key(), "schema", c.Schema().Name(), "epoch", c.Epoch())
	}
	return nil
}

func listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the calendars of the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, key := range calendar.Keys() {
				c := calendar.MustLookup(key)
				fmt.Fprintf(w, "%-20s %-16s epoch %8d  %s .. %s\n",
					key, c.Schema().Name(), c.Epoch(), c.MinDate().Format(a.layout), c.MaxDate().Format(a.layout))
			}
			return nil
		},
	}
}

func infoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <calendar>",
		Short: "Show the schema and range of a calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := calendar.Lookup(args[0])
			if err != nil {
				return err
			}
			s, sc := c.Schema(), c.Scope()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Calendar:    %s\n", c.Key())
			fmt.Fprintf(w, "Schema:      %s\n", s.Name())
			fmt.Fprintf(w, "Algorithm:   %s\n", s.Algorithm())
			fmt.Fprintf(w, "Family:      %s\n", s.Family())
			fmt.Fprintf(w, "Adjustments: %s\n", s.Adjustments())
			fmt.Fprintf(w, "Epoch:       %d (%s)\n", c.Epoch(), epochString(c))
			fmt.Fprintf(w, "Scope:       %s\n", sc.Policy())
			fmt.Fprintf(w, "Segment:     %v\n", sc.Segment())
			fmt.Fprintf(w, "Years:       %d .. %d\n", sc.MinYear(), sc.MaxYear())
			fmt.Fprintf(w, "Dates:       %s .. %s\n", c.MinDate().Format(a.layout), c.MaxDate().Format(a.layout))
			fmt.Fprintf(w, "Day numbers: %d .. %d\n", c.Domain().Min, c.Domain().Max)
			return nil
		},
	}
}

// epochString formats the epoch of c as a Julian date.
func epochString(c *calendar.Calendar) string {
	d, err := calendar.Julian().FromDayNumber(c.Epoch())
	if err != nil {
		return "before julian:0001-01-01"
	}
	b, _ := d.MarshalText()
	return string(b)
}

func convertCmd(a *app) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "convert <date>",
		Short: "Convert a date to other calendars",
		Long: `Convert a date of the calendar given by --from to the calendar given by
--to. Without --to, the date is converted to every calendar of the catalog
that supports it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := calendar.Lookup(from)
			if err != nil {
				return err
			}
			d, err := src.Parse(a.layout, args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("parsed date", "calendar", src.Key(), "date", d, "dayNumber", d.DayNumber())

			targets := calendar.Keys()
			if to != "" {
				targets = []string{to}
			}
			w := cmd.OutOrStdout()
			for _, key := range targets {
				dst, err := calendar.Lookup(key)
				if err != nil {
					return err
				}
				e, err := d.In(dst)
				if err != nil {
					if to != "" {
						return fmt.Errorf("%s: %w", key, err)
					}
					a.logger.Info("date not supported", "calendar", key, "err", err)
					continue
				}
				if to != "" {
					fmt.Fprintln(w, e.Format(a.layout))
					continue
				}
				fmt.Fprintf(w, "%-20s %s\n", key, e.Format(a.layout))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&from, "from", "f", "gregorian", "Calendar of the input date")
	cmd.Flags().StringVarP(&to, "to", "t", "", "Calendar to convert to (default all)")
	return cmd
}

func validateCmd(a *app) *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "validate <date>",
		Short: "Check whether a date exists in a calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := calendar.Lookup(key)
			if err != nil {
				return err
			}
			d, err := c.Parse(a.layout, args[0])
			if err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "valid: %s is day %d\n", d.Format(a.layout), d.DayNumber())
				return nil
			}
			var fe *core.FieldError
			if errors.As(err, &fe) {
				fmt.Fprintf(cmd.OutOrStdout(), "invalid: %s: %s = %d\n", fe.Kind, fe.Field, fe.Value)
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&key, "calendar", "c", "gregorian", "Calendar of the date")
	return cmd
}
