package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tipsKeyword string

var tipsCmd = &cobra.Command{
	Use:   "tips <title>",
	Short: "Resume improvement tips for a posting",
	Long:  "Generates resume advice for <title>. With --keyword, postings are loaded first so the posting's qualifications text feeds the prompt; otherwise a fixed placeholder is used.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTips,
}

func init() {
	tipsCmd.Flags().StringVarP(&tipsKeyword, "keyword", "k", "", "search keyword to load postings for")
	rootCmd.AddCommand(tipsCmd)
}

func runTips(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)
	sess, err := newSession(logger)
	if err != nil {
		return err
	}
	defer sess.Close()

	if tipsKeyword != "" {
		sess.assist.LoadPostings(cmd.Context(), tipsKeyword, sess.perPage)
	}

	fmt.Println(sess.assist.ResumeTips(cmd.Context(), args[0]))
	return nil
}
