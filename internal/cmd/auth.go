package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/basketeer/basketeer/internal/errors"
	"github.com/basketeer/basketeer/internal/tui"
	"github.com/basketeer/basketeer/internal/ux"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the marketplace session",
	Long: `Manage the marketplace session.

Login is phone-based: request a one-time code with send-otp, then exchange
it for a session token with login. The token is stored in your user config
directory and reused until logout.

Examples:
  basketeer auth send-otp --phone 09120000001
  basketeer auth login --phone 09120000001 --otp 1234
  basketeer auth whoami
  basketeer auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var authSendOTPCmd = &cobra.Command{
	Use:   "send-otp",
	Short: "Request a one-time code",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		phone, _ := cmd.Flags().GetString("phone")
		if phone == "" {
			phone, err = tui.PromptPhone()
			if err != nil {
				return err
			}
		}

		if err := a.session.SendOTP(cmd.Context(), phone); err != nil {
			a.logger.WithError(err).Debug("send-otp failed")
			return err
		}

		fmt.Println(ux.Success("Code sent. Check your phone."))
		return nil
	},
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Exchange a one-time code for a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		phone, _ := cmd.Flags().GetString("phone")
		otp, _ := cmd.Flags().GetString("otp")

		if phone == "" {
			phone, err = tui.PromptPhone()
			if err != nil {
				return err
			}
		}
		if otp == "" {
			otp, err = tui.PromptOTP()
			if err != nil {
				return err
			}
		}

		if err := a.session.Login(cmd.Context(), phone, otp); err != nil {
			fmt.Println(ux.Error(errors.UserMessage(err)))
			return err
		}

		user := a.session.User()
		fmt.Println(ux.Success(fmt.Sprintf("Logged in as %s", user.Phone)))
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		if !a.session.IsAuthenticated() {
			fmt.Println("Not logged in.")
			return nil
		}

		a.session.Logout(cmd.Context())
		fmt.Println(ux.Success("Logged out."))
		return nil
	},
}

var authWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		if !a.session.IsAuthenticated() {
			fmt.Println("Anonymous. Run 'basketeer auth login' to log in.")
			return nil
		}

		out, err := a.formatter()
		if err != nil {
			return err
		}
		return out.Format(a.session.User())
	},
}

func init() {
	authSendOTPCmd.Flags().String("phone", "", "phone number to send the code to")
	authLoginCmd.Flags().String("phone", "", "phone number")
	authLoginCmd.Flags().String("otp", "", "one-time code")

	authCmd.AddCommand(authSendOTPCmd)
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authWhoamiCmd)
	rootCmd.AddCommand(authCmd)
}
