package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/basketeer/basketeer/internal/api"
	"github.com/basketeer/basketeer/internal/errors"
	"github.com/basketeer/basketeer/internal/ux"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		if !a.session.IsAuthenticated() {
			return errors.New(errors.ErrCodeSessionAnonymous, "not logged in")
		}

		out, err := a.formatter()
		if err != nil {
			return err
		}
		return out.Format(a.session.User())
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		var patch api.ProfilePatch
		if cmd.Flags().Changed("first-name") {
			v, _ := cmd.Flags().GetString("first-name")
			patch.FirstName = &v
		}
		if cmd.Flags().Changed("last-name") {
			v, _ := cmd.Flags().GetString("last-name")
			patch.LastName = &v
		}
		if cmd.Flags().Changed("email") {
			v, _ := cmd.Flags().GetString("email")
			patch.Email = &v
		}

		if patch.FirstName == nil && patch.LastName == nil && patch.Email == nil {
			return errors.New(errors.ErrCodeInputRequired, "nothing to update; pass --first-name, --last-name or --email")
		}

		if err := a.session.UpdateUser(cmd.Context(), patch); err != nil {
			fmt.Println(ux.Error(errors.UserMessage(err)))
			return err
		}

		fmt.Println(ux.Success("Profile updated."))
		return nil
	},
}

func init() {
	profileUpdateCmd.Flags().String("first-name", "", "first name")
	profileUpdateCmd.Flags().String("last-name", "", "last name")
	profileUpdateCmd.Flags().String("email", "", "email address")

	profileCmd.AddCommand(profileUpdateCmd)
	rootCmd.AddCommand(profileCmd)
}
