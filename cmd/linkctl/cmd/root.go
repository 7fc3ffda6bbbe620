// Package cmd implements the linkctl operator CLI.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"content-graph/app"
	"content-graph/config"
	"content-graph/db"
	"content-graph/eventbus"
	"content-graph/events/dispatcher"
)

var (
	jsonOutput bool

	// teardown 은 openApp 이 연 자원을 정리한다.
	teardown []func()
)

var rootCmd = &cobra.Command{
	Use:           "linkctl",
	Short:         "Content link graph operations: health report, linking scans, cluster watch",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.InitApp()
		config.InitLogger(config.GetConfig().Logging.Level)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		for i := len(teardown) - 1; i >= 0; i-- {
			teardown[i]()
		}
		teardown = nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
}

// openApp connects to Mongo and builds the services. Scans run synchronously in
// this process unless dispatch.mode is kafka.
func openApp(ctx context.Context) (*app.App, error) {
	cfg := config.GetConfig()
	if err := db.Init(ctx); err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	teardown = append(teardown, func() { _ = db.Close(context.Background()) })

	a := app.New(ctx, cfg, db.Database())

	if cfg.Dispatch.Mode == config.DispatchKafka {
		brokers, err := eventbus.GetBrokers()
		if err != nil {
			return nil, err
		}
		bus, err := eventbus.NewKafkaEventBus(brokers)
		if err != nil {
			return nil, err
		}
		teardown = append(teardown, bus.Close)
		d := dispatcher.NewEventDispatcher(bus, "linkctl")
		a.Scans.SetDispatcher(d)
		a.Clusters.SetDispatcher(d)
		return a, nil
	}

	a.Scans.SetDispatcher(inlineScans{exec: a.Scans})
	return a, nil
}
