package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smarted/studykit/internal/notes"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Turn a document into summaries, flashcards and mind maps",
}

// notesCommand builds a subcommand that runs fn over the text of one
// document and prints its result as text, or as JSON with --json.
func notesCommand(use, short string, fn func(cmd *cobra.Command, svc *notes.Service, text string) (any, error)) *cobra.Command {
	c := &cobra.Command{
		Use:   use + " <document-id|file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
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
			provider, err := e.provider(ctx)
			if err != nil {
				return err
			}

			result, err := fn(cmd, notes.NewService(provider, notes.DefaultConfig()), text)
			if err != nil {
				return fmt.Errorf("%s: %w", use, err)
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			printNotes(result)
			return nil
		},
	}
	c.Flags().Bool("json", false, "Print the result as JSON")
	return c
}

var notesSummarizeCmd = notesCommand("summarize", "Summarize a document as bullet points",
	func(cmd *cobra.Command, svc *notes.Service, text string) (any, error) {
		return svc.Summarize(cmd.Context(), text)
	})

var notesFlashcardsCmd = notesCommand("flashcards", "Extract key terms as flashcards",
	func(cmd *cobra.Command, svc *notes.Service, text string) (any, error) {
		return svc.Flashcards(cmd.Context(), text)
	})

var notesMindMapCmd = notesCommand("mindmap", "Build a topic mind map",
	func(cmd *cobra.Command, svc *notes.Service, text string) (any, error) {
		return svc.MindMap(cmd.Context(), text)
	})

var notesPackCmd = notesCommand("pack", "Generate summary, flashcards and mind map together",
	func(cmd *cobra.Command, svc *notes.Service, text string) (any, error) {
		return svc.BuildPack(cmd.Context(), text)
	})

var notesTitleCmd = notesCommand("title", "Suggest a title and topic tags",
	func(cmd *cobra.Command, svc *notes.Service, text string) (any, error) {
		return svc.TitleAndTags(cmd.Context(), text)
	})

func printNotes(v any) {
	switch v := v.(type) {
	case *notes.Summary:
		printSummary(v)
	case []notes.Flashcard:
		printFlashcards(v)
	case *notes.Node:
		printMindMap(os.Stdout, *v)
	case *notes.Metadata:
		fmt.Printf("Title: %s\n", v.Title)
		fmt.Printf("Tags:  %s\n", strings.Join(v.Tags, ", "))
	case *notes.Pack:
		fmt.Println("SUMMARY")
		printSummary(&v.Summary)
		fmt.Println()
		fmt.Println("FLASHCARDS")
		printFlashcards(v.Flashcards)
		fmt.Println()
		fmt.Println("MIND MAP")
		printMindMap(os.Stdout, v.MindMap)
	}
}

func printSummary(s *notes.Summary) {
	for _, p := range s.Points {
		fmt.Printf("• %s\n", p)
	}
}

func printFlashcards(cards []notes.Flashcard) {
	for i, c := range cards {
		fmt.Printf("%2d. %s\n    %s\n", i+1, c.Term, c.Definition)
	}
}

func init() {
	notesCmd.AddCommand(notesSummarizeCmd)
	notesCmd.AddCommand(notesFlashcardsCmd)
	notesCmd.AddCommand(notesMindMapCmd)
	notesCmd.AddCommand(notesPackCmd)
	notesCmd.AddCommand(notesTitleCmd)
}
