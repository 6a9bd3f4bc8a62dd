package cli

import (
	"github.com/spf13/cobra"
)

func newGradesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grades",
		Short: "Grade commands",
	}

	cmd.AddCommand(newGradesRecordCmd())
	cmd.AddCommand(newGradesListCmd())

	return cmd
}

func newGradesRecordCmd() *cobra.Command {
	var student, subject, test, remarks string
	var score, total int

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a grade for a student (teachers only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"student_email": student,
				"subject":       subject,
				"test_name":     test,
				"score":         score,
				"total":         total,
				"remarks":       remarks,
			}
			var result Grade

			if err := client.Post("/api/v1/grades", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&student, "student", "", "Student email (required)")
	cmd.Flags().StringVar(&subject, "subject", "", "Subject (required)")
	cmd.Flags().StringVar(&test, "test", "", "Test name")
	cmd.Flags().IntVar(&score, "score", 0, "Score (required)")
	cmd.Flags().IntVar(&total, "total", 0, "Maximum score (required)")
	cmd.Flags().StringVar(&remarks, "remarks", "", "Remarks")
	_ = cmd.MarkFlagRequired("student")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("score")
	_ = cmd.MarkFlagRequired("total")

	return cmd
}

func newGradesListCmd() *cobra.Command {
	var student string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your grades, or a student's with --student-id (teachers)",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/grades"
			if student != "" {
				path = "/api/v1/grades/student/" + student
			}

			var result []Grade
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&student, "student-id", "", "Student profile ID")

	return cmd
}
