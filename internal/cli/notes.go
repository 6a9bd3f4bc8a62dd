package cli

import (
	"github.com/spf13/cobra"
)

func newNotesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Study note commands",
	}

	cmd.AddCommand(newNotesCreateCmd())
	cmd.AddCommand(newNotesListCmd())
	cmd.AddCommand(newNotesDeleteCmd())
	cmd.AddCommand(newNotesCompleteCmd())

	return cmd
}

func newNotesCreateCmd() *cobra.Command {
	var title, content, subject, summary string
	var tags []string
	var public bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a note (teachers can publish with --public)",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"title":   title,
				"content": content,
				"subject": subject,
				"summary": summary,
				"tags":    tags,
				"public":  public,
			}
			var result Note

			if err := client.Post("/api/v1/notes", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Note title (required)")
	cmd.Flags().StringVar(&content, "content", "", "Note content")
	cmd.Flags().StringVar(&subject, "subject", "", "Subject")
	cmd.Flags().StringVar(&summary, "summary", "", "Short summary")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tag (repeatable)")
	cmd.Flags().BoolVar(&public, "public", false, "Publish for everyone")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

func newNotesListCmd() *cobra.Command {
	var public bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your notes, or published notes with --public",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/notes"
			if public {
				path = "/api/v1/notes/public"
			}

			var result []Note
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&public, "public", false, "List published notes")

	return cmd
}

func newNotesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one of your notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/notes/" + args[0]); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Note deleted")
			return nil
		},
	}
}

func newNotesCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Complete a note and earn XP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Profile

			if err := client.Post("/api/v1/notes/"+args[0]+"/complete", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
