package cmd

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/smarted/studykit/internal/solver"
)

var solveCmd = &cobra.Command{
	Use:   "solve <image>",
	Short: "Solve a homework problem from a photo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		image, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}
		// An empty type makes the solver sniff the content.
		mimeType := mime.TypeByExtension(filepath.Ext(args[0]))

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		provider, err := e.provider(ctx)
		if err != nil {
			return err
		}
		sol, err := solver.NewService(provider, solver.DefaultConfig()).Solve(ctx, image, mimeType)
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}

		for i, step := range sol.Steps {
			fmt.Printf("%d. %s\n", i+1, step)
		}
		fmt.Printf("\nAnswer: %s\n", sol.FinalAnswer)
		fmt.Printf("Confidence: %d%%\n", sol.Confidence)
		if len(sol.RelatedConcepts) > 0 {
			fmt.Println("\nRelated concepts")
			for _, c := range sol.RelatedConcepts {
				fmt.Printf("• %s  (search: %q)\n", c.Name, c.Query)
			}
		}
		return nil
	},
}
