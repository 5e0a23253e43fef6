package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent searches",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum entries to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)
	sess, err := newSession(logger)
	if err != nil {
		return err
	}
	defer sess.Close()

	if sess.store == nil {
		fmt.Println("Search history is disabled (history.enabled: false).")
		return nil
	}

	entries, err := sess.store.Recent(historyLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No searches recorded yet.")
		return nil
	}

	fmt.Printf("%-19s %-30s %s\n", "When", "Keyword", "Results")
	for _, e := range entries {
		fmt.Printf("%-19s %-30s %d\n", e.SearchedAt.Format("2006-01-02 15:04:05"), e.Keyword, e.ResultCount)
	}
	return nil
}
