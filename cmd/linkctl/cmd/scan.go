package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"content-graph/config"
	"content-graph/models"
	"content-graph/scan"
)

// inlineScans executes a started run before Start returns.
type inlineScans struct {
	exec interface {
		Execute(ctx context.Context, runID string, refs []models.ContentRef) error
	}
}

func (d inlineScans) DispatchScan(ctx context.Context, runID string, refs []models.ContentRef) error {
	if err := d.exec.Execute(ctx, runID, refs); err != nil {
		// run 은 이미 failed 로 기록되었다. Start 가 다시 fail 하지 않도록 nil 을 돌려준다.
		config.Logger.Errorf("scan %s failed: %v", runID, err)
	}
	return nil
}

var (
	scanMode        string
	scanTypes       []string
	scanTopic       string
	scanMaxExternal int
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run a linking scan over published content",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		req := buildScanRequest(scanMode, scanTypes, scanTopic, scanMaxExternal, cmd.Flags().Changed("max-external"))
		run, err := a.Scans.Start(cmd.Context(), req)
		if err != nil {
			return err
		}
		// 인라인 실행이면 이미 끝났다. kafka 모드면 running 상태로 보인다.
		if run, err = a.Scans.Get(cmd.Context(), run.ID); err != nil {
			return err
		}
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), run)
		}
		printRun(cmd.OutOrStdout(), run)
		return nil
	},
}

var scanApplyCmd = &cobra.Command{
	Use:   "apply <scan-run-id> [item-id...]",
	Short: "Apply report-only suggestions of a scan run (all unapplied items when none given)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		n, err := a.Scans.ApplyItems(cmd.Context(), args[0], args[1:])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "applied %d items\n", n)
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanMode, "mode", string(models.ScanReportOnly), "report_only or auto_apply")
	scanCmd.Flags().StringSliceVar(&scanTypes, "types", []string{string(models.KindBlogPost), string(models.KindFAQ)}, "Content types to scan")
	scanCmd.Flags().StringVar(&scanTopic, "topic", "", "Only scan content of this topic id")
	scanCmd.Flags().IntVar(&scanMaxExternal, "max-external", 0, "External citations per item (1-3, default from config)")
	scanCmd.AddCommand(scanApplyCmd)
	rootCmd.AddCommand(scanCmd)
}

func buildScanRequest(mode string, types []string, topic string, maxExternal int, maxSet bool) scan.Request {
	req := scan.Request{Mode: models.ScanMode(mode)}
	for _, t := range types {
		if t = strings.TrimSpace(t); t != "" {
			req.ContentTypes = append(req.ContentTypes, models.ContentKind(t))
		}
	}
	if topic != "" {
		req.TopicFilter = &topic
	}
	if maxSet {
		req.MaxExternalLinks = &maxExternal
	}
	return req
}

func printRun(w io.Writer, run *models.ScanRun) {
	fmt.Fprintf(w, "scan %s  %s  %s  %d/%d items\n", run.ID, run.Mode, run.Status, run.ProcessedItems, run.TotalItems)
	if run.ErrorMessage != "" {
		fmt.Fprintf(w, "error: %s\n", run.ErrorMessage)
	}
}
