package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session management commands",
	}

	cmd.AddCommand(newSessionLoginCmd())
	cmd.AddCommand(newSessionLogoutCmd())
	cmd.AddCommand(newSessionMeCmd())
	cmd.AddCommand(newSessionRoleCmd())

	return cmd
}

func newSessionLoginCmd() *cobra.Command {
	var email, name string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in (creates the profile on first login)",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"email": email, "name": name}
			var result Profile

			if err := client.Post("/api/v1/session/login", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&name, "name", "", "Display name (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newSessionLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out of the active session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/session/logout", nil, nil); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Logged out")
			return nil
		},
	}
}

func newSessionMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the active session's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Profile

			if err := client.Get("/api/v1/session", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionRoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "role <student|teacher|admin>",
		Short: "Choose the profile role (can be done once)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"role": args[0]}
			var result Profile

			if err := client.Post("/api/v1/session/role", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Profile editing commands",
	}

	cmd.AddCommand(newProfileUpdateCmd())
	cmd.AddCommand(newProfileCredentialCmd())

	return cmd
}

func newProfileUpdateCmd() *cobra.Command {
	var name, email, avatar, bio string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields (unset flags are left unchanged)",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{}
			if cmd.Flags().Changed("name") {
				req["name"] = name
			}
			if cmd.Flags().Changed("email") {
				req["email"] = email
			}
			if cmd.Flags().Changed("avatar") {
				req["avatar"] = avatar
			}
			if cmd.Flags().Changed("bio") {
				req["bio"] = bio
			}
			if len(req) == 0 {
				return fmt.Errorf("nothing to update")
			}

			var result Profile
			if err := client.Patch("/api/v1/profile", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar identifier")
	cmd.Flags().StringVar(&bio, "bio", "", "Bio text")

	return cmd
}

func newProfileCredentialCmd() *cobra.Command {
	var credential string

	cmd := &cobra.Command{
		Use:   "credential",
		Short: "Set the optional profile credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"credential": credential}
			var result Profile

			if err := client.Post("/api/v1/profile/credential", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Credential set")
			return nil
		},
	}

	cmd.Flags().StringVar(&credential, "credential", "", "Credential to store (required)")
	_ = cmd.MarkFlagRequired("credential")

	return cmd
}

func newXPCmd() *cobra.Command {
	var amount int

	cmd := &cobra.Command{
		Use:   "xp",
		Short: "Award XP to the active profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int{"amount": amount}
			var result Profile

			if err := client.Post("/api/v1/xp", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&amount, "amount", 0, "XP amount, may be negative (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
