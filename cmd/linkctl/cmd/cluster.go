package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"content-graph/cluster"
	"content-graph/config"
	"content-graph/models"
)

var (
	watchInterval time.Duration
	watchTimeout  time.Duration
	publishType   string
)

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Content cluster operations",
}

var clusterWatchCmd = &cobra.Command{
	Use:   "watch <cluster-id>",
	Short: "Wait until a cluster leaves pending/generating and print its items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		interval := watchInterval
		if interval <= 0 {
			interval = config.GetConfig().Cluster.PollInterval
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), watchTimeout)
		defer cancel()

		c, err := cluster.WaitWhileGenerating(ctx, a.Clusters, args[0], interval)
		if err != nil {
			return err
		}
		items, err := a.Clusters.Items(cmd.Context(), c.ID)
		if err != nil {
			return err
		}
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), map[string]any{"cluster": c, "items": items})
		}
		printCluster(cmd.OutOrStdout(), c, items)
		return nil
	},
}

var clusterPublishCmd = &cobra.Command{
	Use:   "publish <cluster-id>",
	Short: "Publish approved items of a cluster as unpublished content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		n, err := a.Clusters.Publish(cmd.Context(), args[0], publishType)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "published %d items as %s\n", n, publishType)
		return nil
	},
}

func init() {
	clusterWatchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "Poll interval (default cluster.poll_interval)")
	clusterWatchCmd.Flags().DurationVar(&watchTimeout, "timeout", 10*time.Minute, "Give up after this long")
	clusterPublishCmd.Flags().StringVar(&publishType, "type", string(models.KindBlogPost), "blog, blog_post or qa_page")
	clusterCmd.AddCommand(clusterWatchCmd, clusterPublishCmd)
	rootCmd.AddCommand(clusterCmd)
}

func printCluster(w io.Writer, c *models.Cluster, items []models.ClusterItem) {
	fmt.Fprintf(w, "cluster %s  %q  %s\n", c.ID, c.ClusterTopic, c.Status)
	if c.ErrorMessage != "" {
		fmt.Fprintf(w, "error: %s\n", c.ErrorMessage)
	}
	for _, it := range items {
		fmt.Fprintf(w, "  [%s] %-4s %-10s %s\n", it.Status, it.FunnelStage, it.ContentType, it.Title)
	}
}
