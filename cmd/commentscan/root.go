package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for commentscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commentscan",
		Short: "Crawl reader comments of a news site, date by date",
		Long: `commentscan collects the reader comments of every article a news site
lists for a date, walking backwards one day at a time from today.

For each date it pages through the article listing, crawls every article's
comment pages and reply threads with a bounded worker pool, and writes a
report with article, comment and throughput figures.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewCrawlCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
