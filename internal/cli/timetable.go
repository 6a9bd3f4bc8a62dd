package cli

import (
	"github.com/spf13/cobra"
)

func newTimetableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timetable",
		Short: "Timetable commands",
	}

	cmd.AddCommand(newTimetableAddCmd())
	cmd.AddCommand(newTimetableListCmd())
	cmd.AddCommand(newTimetableRemoveCmd())

	return cmd
}

func newTimetableAddCmd() *cobra.Command {
	var day, timeOfDay, subject, room, color string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a weekly slot",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"day":     day,
				"time":    timeOfDay,
				"subject": subject,
				"room":    room,
				"color":   color,
			}
			var result TimetableSlot

			if err := client.Post("/api/v1/timetable", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Day name, e.g. Monday (required)")
	cmd.Flags().StringVar(&timeOfDay, "time", "", "Time, e.g. 09:00")
	cmd.Flags().StringVar(&subject, "subject", "", "Subject (required)")
	cmd.Flags().StringVar(&room, "room", "", "Room")
	cmd.Flags().StringVar(&color, "color", "", "Display color")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

func newTimetableListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your timetable slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []TimetableSlot

			if err := client.Get("/api/v1/timetable", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newTimetableRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove one of your slots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/timetable/" + args[0]); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Slot removed")
			return nil
		},
	}
}
