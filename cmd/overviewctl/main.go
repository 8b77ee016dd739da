// Command overviewctl inspects and repairs cached dashboard overviews.
//
//	overviewctl show --user UID [--lang mr]
//	overviewctl recompute --user UID
//	overviewctl missing --user UID
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/janisto/matrimony-api/internal/app"
	"github.com/janisto/matrimony-api/internal/completeness"
	"github.com/janisto/matrimony-api/internal/i18n"
	"github.com/janisto/matrimony-api/internal/model"
	"github.com/janisto/matrimony-api/internal/platform/config"
	applog "github.com/janisto/matrimony-api/internal/platform/logging"
	"github.com/janisto/matrimony-api/internal/platform/timeutil"
)

var errNoUser = errors.New("--user is required")

// opener builds the services a command runs against and the func that releases them.
type opener func(ctx context.Context) (*app.App, func() error, error)

func openFromEnv(ctx context.Context) (*app.App, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := applog.SetLevel(cfg.LogLevel); err != nil {
		applog.Logger().Warn("invalid LOG_LEVEL", zap.String("level", cfg.LogLevel))
	}
	a, err := app.New(ctx, *cfg)
	if err != nil {
		return nil, nil, err
	}
	return a, a.Close, nil
}

type options struct {
	user    string
	lang    string
	timeout time.Duration
}

func newRootCmd(open opener) *cobra.Command {
	opts := &options{}
	var (
		a        *app.App
		closeApp func() error
	)

	root := &cobra.Command{
		Use:           "overviewctl",
		Short:         "Inspect and repair cached dashboard overviews",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.user == "" {
				return errNoUser
			}
			var err error
			a, closeApp, err = open(cmd.Context())
			return err
		},
	}
	root.PersistentFlags().StringVar(&opts.user, "user", "", "user id (Firebase uid)")
	root.PersistentFlags().StringVar(&opts.lang, "lang", string(i18n.Default), "label language (en, mr)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "overall deadline")

	run := func(fn func(ctx context.Context, out io.Writer) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) (err error) {
			// Cobra skips post-run hooks when RunE fails.
			defer func() {
				err = errors.Join(err, closeApp())
			}()
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()
			return fn(ctx, cmd.OutOrStdout())
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the cached overview, computing it from the records when absent",
			Args:  cobra.NoArgs,
			RunE: run(func(ctx context.Context, out io.Writer) error {
				o, err := a.Dashboard.Overview(ctx, opts.user)
				if err != nil {
					return fmt.Errorf("read overview: %w", err)
				}
				return writeJSON(out, toView(o, i18n.Parse(opts.lang, "")))
			}),
		},
		&cobra.Command{
			Use:   "recompute",
			Short: "Recompute the overview from the profile records and store it",
			Args:  cobra.NoArgs,
			RunE: run(func(ctx context.Context, out io.Writer) error {
				o, err := a.Dashboard.Refresh(ctx, opts.user)
				if err != nil {
					return fmt.Errorf("recompute overview: %w", err)
				}
				return writeJSON(out, toView(o, i18n.Parse(opts.lang, "")))
			}),
		},
		&cobra.Command{
			Use:   "missing",
			Short: "List the empty fields of each section",
			Args:  cobra.NoArgs,
			RunE: run(func(ctx context.Context, out io.Writer) error {
				r, err := a.Profiles.Evaluate(ctx, opts.user)
				if err != nil {
					return fmt.Errorf("evaluate profile: %w", err)
				}
				missing := make(map[string][]string, len(r.Missing))
				for s, fields := range r.Missing {
					missing[string(s)] = fields
				}
				return writeJSON(out, missing)
			}),
		},
	)
	return root
}

type sectionView struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Percent int    `json:"percent"`
	Weight  int    `json:"weight"`
	Band    string `json:"band"`
}

type overviewView struct {
	Language            string         `json:"language"`
	ProfileCompleteness int            `json:"profileCompleteness"`
	Band                string         `json:"band"`
	Sections            []sectionView  `json:"sections"`
	UpdatedAt           *timeutil.Time `json:"updatedAt,omitempty"`
}

func toView(o *model.DashboardOverview, lang i18n.Language) overviewView {
	v := overviewView{
		Language:            string(lang),
		ProfileCompleteness: o.ProfileCompleteness,
		Band:                string(completeness.BandFor(o.ProfileCompleteness)),
		UpdatedAt:           timeutil.NewOptional(o.UpdatedAt),
	}
	for _, s := range completeness.Sections() {
		pct := o.SectionCompletion[s.Key]
		v.Sections = append(v.Sections, sectionView{
			Key:     string(s.Key),
			Label:   i18n.SectionLabel(lang, s.Key),
			Percent: pct,
			Weight:  s.Weight,
			Band:    string(completeness.BandFor(pct)),
		})
	}
	return v
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func main() {
	defer func() {
		_ = applog.Sync()
	}()

	if err := newRootCmd(openFromEnv).ExecuteContext(context.Background()); err != nil {
		applog.LogError(context.Background(), "overviewctl failed", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		_ = applog.Sync()
		os.Exit(1)
	}
}
