package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smarted/studykit/internal/docqa"
	"github.com/smarted/studykit/internal/extract"
	"github.com/smarted/studykit/internal/notes"
	"github.com/smarted/studykit/internal/store"
)

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Manage study documents",
}

var docAddCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Import a PDF, text or markdown file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		tags, _ := cmd.Flags().GetStringSlice("tag")
		auto, _ := cmd.Flags().GetBool("auto-label")
		ctx := cmd.Context()

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		path := args[0]
		text, err := extract.FromFile(path)
		if err != nil {
			return fmt.Errorf("extract %s: %w", path, err)
		}

		if auto && (title == "" || len(tags) == 0) {
			meta, err := suggestMetadata(cmd, e, text)
			if err != nil {
				e.log.Warn("auto-label failed", zap.Error(err))
				fmt.Println("Could not suggest a title and tags:", err)
			} else {
				if title == "" {
					title = meta.Title
				}
				if len(tags) == 0 {
					tags = meta.Tags
				}
			}
		}
		if title == "" {
			title = extract.Title(path)
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		doc := &store.Document{
			Title:      title,
			Tags:       tags,
			SourcePath: abs,
			Content:    text,
		}
		if err := e.store.DocumentRepo().SaveDocument(ctx, doc); err != nil {
			return err
		}

		fmt.Printf("Added %s  %s (%d characters)\n", shortID(doc.ID), doc.Title, len([]rune(text)))
		if len(doc.Tags) > 0 {
			fmt.Printf("Tags: %s\n", strings.Join(doc.Tags, ", "))
		}
		return nil
	},
}

func suggestMetadata(cmd *cobra.Command, e *env, text string) (*notes.Metadata, error) {
	provider, err := e.provider(cmd.Context())
	if err != nil {
		return nil, err
	}
	return notes.NewService(provider, notes.DefaultConfig()).TitleAndTags(cmd.Context(), text)
}

var docListCmd = &cobra.Command{
	Use:   "list",
	Short: "List imported documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		bookmarked, _ := cmd.Flags().GetBool("bookmarked")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		docs, err := e.store.DocumentRepo().ListDocuments(cmd.Context(),
			store.DocumentQuery{BookmarkedOnly: bookmarked})
		if err != nil {
			return err
		}
		switch {
		case len(docs) == 0 && bookmarked:
			fmt.Println("No bookmarked documents. Bookmark one with: studykit doc bookmark <id>")
		case len(docs) == 0:
			fmt.Println("No documents yet. Add one with: studykit doc add <file>")
		default:
			printDocuments(os.Stdout, docs)
		}
		return nil
	},
}

// printDocuments writes one row per document; bookmarked ones are starred.
func printDocuments(w io.Writer, docs []store.Document) {
	fmt.Fprintf(w, "   %-8s  %-16s  %-36s  %s\n", "ID", "Added", "Title", "Tags")
	fmt.Fprintln(w, strings.Repeat("─", 83))
	for _, d := range docs {
		mark := " "
		if d.Bookmarked {
			mark = "★"
		}
		fmt.Fprintf(w, "%s  %-8s  %-16s  %-36s  %s\n",
			mark,
			shortID(d.ID),
			d.CreatedAt.Local().Format("2006-01-02 15:04"),
			truncate(d.Title, 36),
			strings.Join(d.Tags, ", "),
		)
	}
}

var docBookmarkCmd = &cobra.Command{
	Use:   "bookmark <id>",
	Short: "Bookmark a document (or remove the bookmark with --remove)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		remove, _ := cmd.Flags().GetBool("remove")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		d, err := e.store.DocumentRepo().SetBookmarked(cmd.Context(), args[0], !remove)
		if err != nil {
			return fmt.Errorf("document %s: %w", args[0], err)
		}
		if d.Bookmarked {
			fmt.Printf("Bookmarked %s  %s\n", shortID(d.ID), d.Title)
		} else {
			fmt.Printf("Removed bookmark from %s  %s\n", shortID(d.ID), d.Title)
		}
		return nil
	},
}

var docShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a document's extracted text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		d, err := e.store.DocumentRepo().GetDocument(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("document %s: %w", args[0], err)
		}

		fmt.Printf("ID:      %s\n", d.ID)
		fmt.Printf("Title:   %s\n", d.Title)
		fmt.Printf("Source:  %s\n", d.SourcePath)
		fmt.Printf("Added:   %s\n", d.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		if len(d.Tags) > 0 {
			fmt.Printf("Tags:    %s\n", strings.Join(d.Tags, ", "))
		}
		if d.Bookmarked {
			fmt.Println("Bookmarked")
		}
		fmt.Println(strings.Repeat("─", 60))
		fmt.Println(d.Content)
		return nil
	},
}

var docRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := e.store.DocumentRepo().DeleteDocument(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("document %s: %w", args[0], err)
		}
		fmt.Println("Deleted.")
		return nil
	},
}

var docSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find documents related to a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		docs, err := e.store.DocumentRepo().ListDocuments(ctx, store.DocumentQuery{})
		if err != nil {
			return err
		}
		if len(docs) == 0 {
			fmt.Println("No documents to search.")
			return nil
		}

		provider, err := e.provider(ctx)
		if err != nil {
			return err
		}
		svc, err := docqa.NewService(provider, docqa.DefaultConfig())
		if err != nil {
			return err
		}

		infos := make([]docqa.DocumentInfo, len(docs))
		byID := make(map[string]store.Document, len(docs))
		for i, d := range docs {
			infos[i] = docqa.DocumentInfo{ID: d.ID, Title: d.Title, Tags: d.Tags}
			byID[d.ID] = d
		}

		ids, err := svc.Search(ctx, strings.Join(args, " "), infos)
		if err != nil {
			return fmt.Errorf("search: %w", err)
		}
		if len(ids) == 0 {
			fmt.Println("No related documents found.")
			return nil
		}
		for _, id := range ids {
			d := byID[id]
			fmt.Printf("%-8s  %s\n", shortID(d.ID), d.Title)
		}
		return nil
	},
}

// shortID is the id prefix shown in listings; any unambiguous prefix is
// accepted back.
func shortID(id string) string {
	return truncate(id, 8)
}

func init() {
	docAddCmd.Flags().String("title", "", "Document title (default: file name)")
	docAddCmd.Flags().StringSlice("tag", nil, "Topic tag (repeatable)")
	docAddCmd.Flags().Bool("auto-label", false, "Ask the model to suggest a title and tags")

	docListCmd.Flags().Bool("bookmarked", false, "Only list bookmarked documents")
	docBookmarkCmd.Flags().Bool("remove", false, "Remove the bookmark instead")

	docCmd.AddCommand(docAddCmd)
	docCmd.AddCommand(docListCmd)
	docCmd.AddCommand(docShowCmd)
	docCmd.AddCommand(docRmCmd)
	docCmd.AddCommand(docSearchCmd)
	docCmd.AddCommand(docBookmarkCmd)
}
