package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/basketeer/basketeer/internal/api"
	"github.com/basketeer/basketeer/internal/errors"
	"github.com/basketeer/basketeer/internal/ux"
)

var addressesCmd = &cobra.Command{
	Use:   "addresses",
	Short: "Manage delivery addresses",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		addresses, err := a.client.Addresses(cmd.Context())
		if err != nil {
			return err
		}

		out, err := a.formatter()
		if err != nil {
			return err
		}
		if _, ok := out.(*ux.TextFormatter); !ok {
			return out.Format(addresses)
		}

		rows := make([][]string, len(addresses))
		for i, addr := range addresses {
			marker := ""
			if addr.IsDefault {
				marker = "default"
			}
			rows[i] = []string{addr.ID, addr.Title, addr.City, addr.Line, marker}
		}
		fmt.Print(ux.Table([]string{"ID", "TITLE", "CITY", "ADDRESS", ""}, rows))
		return nil
	},
}

var addressesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a delivery address",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		title, _ := cmd.Flags().GetString("title")
		line, _ := cmd.Flags().GetString("line")
		city, _ := cmd.Flags().GetString("city")
		postal, _ := cmd.Flags().GetString("postal")

		if title == "" || line == "" || city == "" {
			return errors.New(errors.ErrCodeInputRequired, "--title, --line and --city are required")
		}

		address, err := a.client.CreateAddress(cmd.Context(), api.AddressInput{
			Title:  title,
			Line:   line,
			City:   city,
			Postal: postal,
		})
		if err != nil {
			fmt.Println(ux.Error(errors.UserMessage(err)))
			return err
		}

		fmt.Println(ux.Success(fmt.Sprintf("Address %s saved.", address.ID)))
		return nil
	},
}

var addressesRemoveCmd = &cobra.Command{
	Use:   "remove <address-id>",
	Short: "Remove a delivery address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		if err := a.client.DeleteAddress(cmd.Context(), args[0]); err != nil {
			fmt.Println(ux.Error(errors.UserMessage(err)))
			return err
		}

		fmt.Println(ux.Success("Address removed."))
		return nil
	},
}

var addressesSetDefaultCmd = &cobra.Command{
	Use:   "set-default <address-id>",
	Short: "Mark an address as the default delivery target",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		if err := a.client.SetDefaultAddress(cmd.Context(), args[0]); err != nil {
			fmt.Println(ux.Error(errors.UserMessage(err)))
			return err
		}

		fmt.Println(ux.Success("Default address updated."))
		return nil
	},
}

func init() {
	addressesAddCmd.Flags().String("title", "", "address label (home, work, ...)")
	addressesAddCmd.Flags().String("line", "", "street address")
	addressesAddCmd.Flags().String("city", "", "city")
	addressesAddCmd.Flags().String("postal", "", "postal code")

	addressesCmd.AddCommand(addressesAddCmd)
	addressesCmd.AddCommand(addressesRemoveCmd)
	addressesCmd.AddCommand(addressesSetDefaultCmd)
	rootCmd.AddCommand(addressesCmd)
}
