package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smarted/studykit/internal/docqa"
	"github.com/smarted/studykit/internal/retrieval"
)

var askCmd = &cobra.Command{
	Use:   "ask <document-id|file> <question>",
	Short: "Ask the Study Buddy a question about a document",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		showSources, _ := cmd.Flags().GetBool("sources")
		ctx := cmd.Context()

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		text, err := e.loadText(ctx, args[0])
		if err != nil {
			return err
		}
		question := strings.Join(args[1:], " ")

		provider, err := e.provider(ctx)
		if err != nil {
			return err
		}
		cfg := docqa.DefaultConfig()
		cfg.Retrieval = e.cfg.Retrieval
		svc, err := docqa.NewService(provider, cfg)
		if err != nil {
			return err
		}

		answer, err := svc.Ask(ctx, question, text)
		if err != nil {
			return fmt.Errorf("ask: %w", err)
		}
		fmt.Println(answer.Text)

		if showSources {
			printSources(question, text)
		}
		return nil
	},
}

// printSources lists the paragraphs that matched the question, best first.
func printSources(question, text string) {
	var matched []retrieval.ScoredChunk
	for _, c := range retrieval.Rank(question, text) {
		if c.Score > 0 {
			matched = append(matched, c)
		}
	}

	fmt.Println()
	fmt.Println("Sources")
	fmt.Println(strings.Repeat("─", 60))
	if len(matched) == 0 {
		fmt.Println("No paragraph matched; the start of the document was used.")
		return
	}
	for _, c := range matched {
		fmt.Printf("¶%-3d  score %d  %s\n", c.Index+1, c.Score, truncate(oneLine(c.Text), 60))
	}
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func init() {
	askCmd.Flags().Bool("sources", false, "Show which paragraphs the answer was grounded on")
}
