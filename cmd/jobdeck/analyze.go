package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dpatel512/jobdeck/internal/prompt"
)

var (
	analyzeKeyword string
	analyzeKind    string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <title>",
	Short: "Search a keyword and analyze one posting by title",
	Long:  "Loads postings for --keyword, resolves <title> against them and runs the chosen analysis through the generation backend.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeKeyword, "keyword", "k", "", "search keyword to load postings for (required)")
	analyzeCmd.Flags().StringVar(&analyzeKind, "kind", "summary", "analysis kind: summary, qualifications or salary")
	analyzeCmd.MarkFlagRequired("keyword")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	kind, err := prompt.ParseKind(analyzeKind)
	if err != nil {
		return err
	}

	logger := setupLogger(debug)
	sess, err := newSession(logger)
	if err != nil {
		return err
	}
	defer sess.Close()

	// Load first so the title resolves against a fresh catalog; a failed
	// load surfaces through AnalyzeJob as "no job data loaded".
	sess.assist.LoadPostings(cmd.Context(), analyzeKeyword, sess.perPage)

	fmt.Println(sess.assist.AnalyzeJob(cmd.Context(), args[0], kind))
	return nil
}
