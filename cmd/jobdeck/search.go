package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search postings and print the listing",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "results per page (1-20, default from config)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)
	sess, err := newSession(logger)
	if err != nil {
		return err
	}
	defer sess.Close()

	perPage := sess.perPage
	if searchLimit != 0 {
		perPage = searchLimit
	}

	text, _ := sess.assist.LoadPostings(cmd.Context(), args[0], perPage)
	fmt.Println(text)
	return nil
}
