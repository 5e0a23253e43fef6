package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models installed on the generation backend",
	RunE:  runModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func runModels(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)
	sess, err := newSession(logger)
	if err != nil {
		return err
	}
	defer sess.Close()

	if !sess.gen.CheckAvailable(cmd.Context()) {
		fmt.Printf("Generation backend at %s is not reachable.\n", sess.cfg.Ollama.BaseURL)
		return nil
	}

	names, err := sess.gen.ListModels(cmd.Context())
	if err != nil {
		return err
	}

	if len(names) == 0 {
		fmt.Println("No models installed.")
		return nil
	}
	for _, name := range names {
		marker := " "
		if name == sess.cfg.Ollama.Model {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, name)
	}
	return nil
}
