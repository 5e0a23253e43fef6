package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <skills...>",
	Short: "Suggest roles for your skills",
	Long:  "Asks the generation backend for 3-5 suitable job titles given free-text skills.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRecommend,
}

func init() {
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)
	sess, err := newSession(logger)
	if err != nil {
		return err
	}
	defer sess.Close()

	fmt.Println(sess.assist.RecommendFromSkills(cmd.Context(), strings.Join(args, " ")))
	return nil
}
