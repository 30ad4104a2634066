package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/basketeer/basketeer/internal/errors"
	"github.com/basketeer/basketeer/internal/ux"
)

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "Track invoices and deliveries",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		invoices, err := a.client.Invoices(cmd.Context())
		if err != nil {
			return err
		}

		out, err := a.formatter()
		if err != nil {
			return err
		}
		if _, ok := out.(*ux.TextFormatter); !ok {
			return out.Format(invoices)
		}

		rows := make([][]string, len(invoices))
		for i, inv := range invoices {
			delivered := ""
			if inv.Delivered {
				delivered = "delivered"
			}
			rows[i] = []string{
				inv.ID,
				inv.OrderID,
				inv.Status,
				ux.Price(inv.Amount),
				inv.IssuedAt.Format("2006-01-02"),
				delivered,
			}
		}
		fmt.Print(ux.Table([]string{"ID", "ORDER", "STATUS", "AMOUNT", "ISSUED", ""}, rows))
		return nil
	},
}

var invoicesShowCmd = &cobra.Command{
	Use:   "show <invoice-id>",
	Short: "Show one invoice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		invoice, err := a.client.Invoice(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out, err := a.formatter()
		if err != nil {
			return err
		}
		return out.Format(invoice)
	},
}

var invoicesConfirmCmd = &cobra.Command{
	Use:   "confirm-delivery <invoice-id>",
	Short: "Confirm receipt of the delivered goods",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		if err := a.client.ConfirmDelivery(cmd.Context(), args[0]); err != nil {
			fmt.Println(ux.Error(errors.UserMessage(err)))
			return err
		}

		fmt.Println(ux.Success("Delivery confirmed."))
		return nil
	},
}

var invoicesDeliveryInfoCmd = &cobra.Command{
	Use:   "delivery-info <invoice-id>",
	Short: "Show the delivery state of an invoice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		info, err := a.client.DeliveryInfo(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out, err := a.formatter()
		if err != nil {
			return err
		}
		return out.Format(info)
	},
}

func init() {
	invoicesCmd.AddCommand(invoicesShowCmd)
	invoicesCmd.AddCommand(invoicesConfirmCmd)
	invoicesCmd.AddCommand(invoicesDeliveryInfoCmd)
	rootCmd.AddCommand(invoicesCmd)
}
