package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thomaskoefod/newsbrief/internal/config"
	"github.com/thomaskoefod/newsbrief/internal/deliver"
	"github.com/thomaskoefod/newsbrief/internal/feed"
	"github.com/thomaskoefod/newsbrief/internal/logger"
	"github.com/thomaskoefod/newsbrief/internal/report"
	"github.com/thomaskoefod/newsbrief/pkg/models"
)

func main() {
	var (
		configPath string
		outPath    string
		dryRun     bool
		strict     bool
	)

	root := &cobra.Command{
		Use:   "newsbrief",
		Short: "newsbrief — keyword-filtered RSS digest",
		Long:  "Polls the configured feeds, keeps recent keyword matches, and writes an HTML digest. Optionally delivers it by email and chat webhook.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(configPath, outPath, dryRun, strict)
		},
	}

	root.Flags().StringVarP(&configPath, "config", "c", "", "Path to yaml config file (environment variables override it)")
	root.Flags().StringVarP(&outPath, "output", "o", "", "Report output path (overrides config)")
	root.Flags().BoolVar(&dryRun, "dry-run", false, "Build the report but write and deliver nothing")
	root.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when any feed or configured sink fails")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(configPath, outPath string, dryRun, strict bool) error {
	logger.Init()
	log := logger.Log

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if outPath != "" {
		cfg.OutFile = outPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	builder := report.NewBuilder(cfg, feed.NewFetcher())
	rep, feedErrs := builder.Build(builder.ReferenceTime())
	log.WithField("count", len(rep.Items)).Info("report built")

	if dryRun {
		fmt.Printf("dry run: %d items, %d feed errors\n", len(rep.Items), len(feedErrs))
		return exitStatus(strict, feedErrs, false)
	}

	html, err := report.Render(rep)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.OutFile, []byte(html), 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	log.WithField("path", cfg.OutFile).WithField("count", len(rep.Items)).Info("report written")

	// Delivery failures are logged and (outside strict mode) swallowed; the
	// report file above is the artifact that must always land.
	var sinkFailed bool

	switch err := deliver.NewMailer(cfg).Send(cfg.ReportTitle, html); {
	case err == nil:
		log.WithField("sink", "email").Info("delivered")
	case errors.Is(err, deliver.ErrNotConfigured):
		log.WithField("sink", "email").Debug("not configured, skipping")
	default:
		log.WithField("sink", "email").WithError(err).Error("delivery failed")
		sinkFailed = true
	}

	if len(rep.Items) > 0 {
		switch err := deliver.NewWebhook(cfg.WebhookURL).Post(report.ShortSummary(rep, 5)); {
		case err == nil:
			log.WithField("sink", "webhook").Info("delivered")
		case errors.Is(err, deliver.ErrNotConfigured):
			log.WithField("sink", "webhook").Debug("not configured, skipping")
		default:
			log.WithField("sink", "webhook").WithError(err).Error("delivery failed")
			sinkFailed = true
		}
	}

	return exitStatus(strict, feedErrs, sinkFailed)
}

// exitStatus preserves the historical always-exit-zero behavior unless
// strict mode opted in to surfacing failures.
func exitStatus(strict bool, feedErrs []models.FeedError, sinkFailed bool) error {
	if !strict {
		return nil
	}
	if sinkFailed {
		return errors.New("strict: sink delivery failed")
	}
	if len(feedErrs) > 0 {
		return fmt.Errorf("strict: %d feed(s) failed", len(feedErrs))
	}
	return nil
}
