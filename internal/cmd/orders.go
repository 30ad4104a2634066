package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/basketeer/basketeer/internal/api"
	"github.com/basketeer/basketeer/internal/errors"
	"github.com/basketeer/basketeer/internal/ux"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List and place orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		orders, err := a.client.Orders(cmd.Context())
		if err != nil {
			return err
		}

		out, err := a.formatter()
		if err != nil {
			return err
		}
		if _, ok := out.(*ux.TextFormatter); !ok {
			return out.Format(orders)
		}

		rows := make([][]string, len(orders))
		for i, o := range orders {
			rows[i] = []string{
				o.ID,
				o.Status,
				ux.Price(o.Total),
				o.CreatedAt.Format("2006-01-02 15:04"),
			}
		}
		fmt.Print(ux.Table([]string{"ID", "STATUS", "TOTAL", "PLACED"}, rows))
		return nil
	},
}

var ordersShowCmd = &cobra.Command{
	Use:   "show <order-id>",
	Short: "Show one order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		order, err := a.client.Order(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out, err := a.formatter()
		if err != nil {
			return err
		}
		return out.Format(order)
	},
}

var ordersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Place an order from the current cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		if a.cart.ItemCount() == 0 {
			if err := a.cart.Load(cmd.Context()); err != nil {
				fmt.Println(ux.Error(errors.UserMessage(err)))
				return err
			}
		}
		if a.cart.ItemCount() == 0 {
			return errors.New(errors.ErrCodeCartAbsent, "cart is empty; add products first")
		}

		addressID, _ := cmd.Flags().GetString("address")
		note, _ := cmd.Flags().GetString("note")
		if addressID == "" {
			return errors.New(errors.ErrCodeInputRequired, "--address is required")
		}

		order, err := a.client.CreateOrder(cmd.Context(), api.CreateOrderRequest{
			AddressID: addressID,
			Note:      note,
		})
		if err != nil {
			fmt.Println(ux.Error(errors.UserMessage(err)))
			return err
		}

		// The cart was consumed server-side; re-sync local state.
		if err := a.cart.Load(cmd.Context()); err != nil {
			a.logger.WithError(err).Warn("cart reload after order failed")
		}

		fmt.Println(ux.Success(fmt.Sprintf("Order %s placed · total %s", order.ID, ux.Price(order.Total))))
		return nil
	},
}

func init() {
	ordersCreateCmd.Flags().String("address", "", "delivery address id")
	ordersCreateCmd.Flags().String("note", "", "note for the courier")

	ordersCmd.AddCommand(ordersShowCmd)
	ordersCmd.AddCommand(ordersCreateCmd)
	rootCmd.AddCommand(ordersCmd)
}
