// Command humanize runs the content humanizer from the shell: on ad-hoc text
// or against the content database.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"content-humanizer/config"
	"content-humanizer/humanizer"
	"content-humanizer/services"
	"content-humanizer/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// serviceFactory builds the database-backed service. Tests swap it out.
var serviceFactory = newDBService

func newDBService(log *zap.Logger) (*services.HumanizeService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	engine := humanizer.New(
		humanizer.WithStarterThreshold(cfg.StarterThreshold),
		humanizer.WithTouchThreshold(cfg.TouchThreshold),
	)
	return services.NewHumanizeService(store.NewGormStore(db), engine, nil, log, services.HumanizeOptions{
		Sanitize:         cfg.HumanizeSanitize,
		Concurrency:      cfg.HumanizeConcurrency,
		SampleLength:     cfg.SampleLength,
		PreviewMinLength: cfg.PreviewMinLength,
	}), nil
}

type cliOptions struct {
	verbose bool
	timeout time.Duration
	log     *zap.Logger
}

func (o *cliOptions) logger() *zap.Logger {
	if o.log != nil {
		return o.log
	}
	if !o.verbose {
		o.log = zap.NewNop()
		return o.log
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		l = zap.NewNop()
	}
	o.log = l
	return o.log
}

func (o *cliOptions) newContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), o.timeout)
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}
	root := &cobra.Command{
		Use:           "humanize",
		Short:         "Tone down promotional car copy",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Minute, "Operation timeout")

	root.AddCommand(
		newTextCmd(),
		newRunCmd(opts),
		newDiagnoseCmd(opts),
		newPreviewCmd(opts),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
