package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"content-graph/config"
	"content-graph/linkgraph"
)

var (
	healthMinLinks int
	healthTopN     int
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Link health report: orphaned and under-linked content",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		minLinks := healthMinLinks
		if minLinks <= 0 {
			minLinks = config.GetConfig().LinkHealth.MinLinks
		}
		res, err := a.LinkHealth.Health(cmd.Context(), minLinks)
		if err != nil {
			return err
		}
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), res)
		}
		printHealth(cmd.OutOrStdout(), res, minLinks, healthTopN)
		return nil
	},
}

func init() {
	healthCmd.Flags().IntVar(&healthMinLinks, "min-links", 0, "Minimum incoming links (default from config)")
	healthCmd.Flags().IntVar(&healthTopN, "top-n", 10, "Number of nodes to list per section")
	rootCmd.AddCommand(healthCmd)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printHealth(w io.Writer, res linkgraph.Result, minLinks, topN int) {
	r := res.Report
	filled := r.HealthScore / 5
	fmt.Fprintf(w, "Health: [%s%s] %d/100\n", strings.Repeat("#", filled), strings.Repeat(".", 20-filled), r.HealthScore)
	fmt.Fprintf(w, "Content: %d  Orphaned: %d  Below %d links: %d  Avg incoming: %.2f\n",
		r.TotalContent, r.OrphanedContent, minLinks, r.BelowThreshold, r.AverageLinks)

	printStats(w, "Orphaned", res.Orphaned, topN)
	printStats(w, "Below threshold", res.BelowThresholdItems, topN)
}

func printStats(w io.Writer, title string, stats []linkgraph.LinkHealthStat, topN int) {
	if len(stats) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s (%d)\n", title, len(stats))
	for i, s := range stats {
		if topN > 0 && i >= topN {
			fmt.Fprintf(w, "  ... %d more\n", len(stats)-topN)
			break
		}
		fmt.Fprintf(w, "  %-9s %-40s in=%d out=%d\n", s.Kind, s.Title, s.IncomingLinks, s.OutgoingLinks)
	}
}
