package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/basketeer/basketeer/internal/errors"
	"github.com/basketeer/basketeer/internal/ux"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage your cart",
	Long: `Manage your cart. Requires a logged-in session; the cart always
reflects the server's authoritative state.

Examples:
  basketeer cart
  basketeer cart add <product-id> --quantity 2
  basketeer cart update <product-id> --quantity 3
  basketeer cart remove <product-id>
  basketeer cart clear`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		if !a.cart.Loaded() {
			if err := a.cart.Load(cmd.Context()); err != nil {
				return err
			}
		}

		items := a.cart.Items()
		if len(items) == 0 {
			fmt.Println("Your cart is empty.")
			return nil
		}

		rows := make([][]string, len(items))
		for i, item := range items {
			rows[i] = []string{
				item.ProductID,
				item.Product.Name,
				strconv.Itoa(item.Quantity),
				ux.Price(item.UnitPrice),
				ux.Price(float64(item.Quantity) * item.UnitPrice),
			}
		}
		fmt.Print(ux.Table([]string{"ID", "PRODUCT", "QTY", "UNIT", "SUBTOTAL"}, rows))
		fmt.Printf("\n%d items · total %s\n", a.cart.ItemCount(), ux.Price(a.cart.Total()))
		return nil
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		quantity, _ := cmd.Flags().GetInt("quantity")
		if err := a.cart.AddItem(cmd.Context(), args[0], quantity); err != nil {
			fmt.Println(ux.Error(errors.UserMessage(err)))
			return err
		}

		fmt.Println(ux.Success(fmt.Sprintf("Added. Cart total: %s", ux.Price(a.cart.Total()))))
		return nil
	},
}

var cartUpdateCmd = &cobra.Command{
	Use:   "update <product-id>",
	Short: "Change a cart line's quantity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		quantity, _ := cmd.Flags().GetInt("quantity")
		if err := a.cart.UpdateItemQuantity(cmd.Context(), args[0], quantity); err != nil {
			fmt.Println(ux.Error(errors.UserMessage(err)))
			return err
		}

		fmt.Println(ux.Success(fmt.Sprintf("Updated. Cart total: %s", ux.Price(a.cart.Total()))))
		return nil
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Remove a product from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		if err := a.cart.RemoveItem(cmd.Context(), args[0]); err != nil {
			fmt.Println(ux.Error(errors.UserMessage(err)))
			return err
		}

		fmt.Println(ux.Success(fmt.Sprintf("Removed. Cart total: %s", ux.Price(a.cart.Total()))))
		return nil
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		if err := a.cart.Clear(cmd.Context()); err != nil {
			fmt.Println(ux.Error(errors.UserMessage(err)))
			return err
		}

		fmt.Println(ux.Success("Cart cleared."))
		return nil
	},
}

func init() {
	cartAddCmd.Flags().Int("quantity", 1, "quantity to add")
	cartUpdateCmd.Flags().Int("quantity", 1, "new quantity (at least 1)")

	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartUpdateCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	cartCmd.AddCommand(cartClearCmd)
	rootCmd.AddCommand(cartCmd)
}
