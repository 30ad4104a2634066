package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/basketeer/basketeer/internal/api"
	"github.com/basketeer/basketeer/internal/tui"
	"github.com/basketeer/basketeer/internal/ux"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Browse the product catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		search, _ := cmd.Flags().GetString("search")
		category, _ := cmd.Flags().GetString("category")
		page, _ := cmd.Flags().GetInt("page")

		products, err := a.client.Products(cmd.Context(), api.ProductQuery{
			Search:     search,
			CategoryID: category,
			Page:       page,
		})
		if err != nil {
			return err
		}

		out, err := a.formatter()
		if err != nil {
			return err
		}
		if _, ok := out.(*ux.TextFormatter); !ok {
			return out.Format(products)
		}

		rows := make([][]string, len(products))
		for i, p := range products {
			rows[i] = []string{p.ID, p.Name, ux.Price(p.Price), strconv.Itoa(p.Stock)}
		}
		fmt.Print(ux.Table([]string{"ID", "NAME", "PRICE", "STOCK"}, rows))
		return nil
	},
}

var productsShowCmd = &cobra.Command{
	Use:   "show <product-id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		product, err := a.client.Product(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out, err := a.formatter()
		if err != nil {
			return err
		}
		return out.Format(product)
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List product categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		categories, err := a.client.Categories(cmd.Context())
		if err != nil {
			return err
		}

		out, err := a.formatter()
		if err != nil {
			return err
		}
		if _, ok := out.(*ux.TextFormatter); !ok {
			return out.Format(categories)
		}

		rows := make([][]string, len(categories))
		for i, c := range categories {
			rows[i] = []string{c.ID, c.Name}
		}
		fmt.Print(ux.Table([]string{"ID", "NAME"}, rows))
		return nil
	},
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse products interactively",
	Long: `Browse products interactively. Typing in the search box coalesces
keystrokes into a single catalog query; enter adds the highlighted
product to your cart.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		return tui.RunBrowse(a.client, a.cart)
	},
}

func init() {
	productsCmd.Flags().String("search", "", "search term")
	productsCmd.Flags().String("category", "", "filter by category id")
	productsCmd.Flags().Int("page", 0, "page number")

	productsCmd.AddCommand(productsShowCmd)
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(browseCmd)
}
