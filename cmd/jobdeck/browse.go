package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dpatel512/jobdeck/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse and analyze postings interactively (TUI)",
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	// Use a discard logger — the TUI runs on the alt screen and any log
	// output before it starts corrupts the display.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sess, err := newSession(logger)
	if err != nil {
		return err
	}
	defer sess.Close()

	// Advisory probe only: analysis can still be attempted while offline,
	// the backend errors just surface as messages.
	online := sess.gen.CheckAvailable(cmd.Context())

	return tui.Run(sess.assist, sess.perPage, online)
}
