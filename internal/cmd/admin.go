package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/basketeer/basketeer/internal/api"
	"github.com/basketeer/basketeer/internal/errors"
	"github.com/basketeer/basketeer/internal/nav"
	"github.com/basketeer/basketeer/internal/ux"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administer the marketplace",
	Long: `Administer the marketplace. Which panels you can reach depends on
the permission codenames granted to your user; 'admin menu' shows yours.
The backend enforces authorization on every call.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// requirePermission fails fast when the current user lacks a codename.
// The server would reject the call anyway; this just keeps the error local.
func requirePermission(a *app, codename string) error {
	if !a.session.IsAuthenticated() {
		return errors.New(errors.ErrCodeSessionAnonymous, "not logged in")
	}
	if !a.session.HasPermission(codename) {
		return errors.Newf(errors.ErrCodeAPIValidation, "missing permission %q", codename)
	}
	return nil
}

var adminMenuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Show the panels visible to you",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}

		groups := nav.Build(a.session.Permissions())
		if len(groups) == 0 {
			fmt.Println("No admin panels available for your account.")
			return nil
		}

		out, err := a.formatter()
		if err != nil {
			return err
		}
		if _, ok := out.(*ux.TextFormatter); !ok {
			return out.Format(groups)
		}

		for _, group := range groups {
			fmt.Println(ux.Success(group.Name))
			for _, entry := range group.Entries {
				fmt.Printf("  %s  %s\n", entry.Label, ux.Muted(entry.Path))
			}
		}
		return nil
	},
}

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List marketplace users",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := requirePermission(a, "user.view"); err != nil {
			return err
		}

		page, _ := cmd.Flags().GetInt("page")
		users, err := a.client.AdminUsers(cmd.Context(), page)
		if err != nil {
			return err
		}

		out, err := a.formatter()
		if err != nil {
			return err
		}
		if _, ok := out.(*ux.TextFormatter); !ok {
			return out.Format(users)
		}

		rows := make([][]string, len(users))
		for i, u := range users {
			rows[i] = []string{u.ID, u.Phone, u.FirstName + " " + u.LastName}
		}
		fmt.Print(ux.Table([]string{"ID", "PHONE", "NAME"}, rows))
		return nil
	},
}

var adminProductsCmd = &cobra.Command{
	Use:   "products",
	Short: "Moderate products",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := requirePermission(a, "product.view"); err != nil {
			return err
		}

		status, _ := cmd.Flags().GetString("status")
		products, err := a.client.AdminProducts(cmd.Context(), status)
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
			rows[i] = []string{p.ID, p.Name, p.Status, strconv.Itoa(p.Stock)}
		}
		fmt.Print(ux.Table([]string{"ID", "NAME", "STATUS", "STOCK"}, rows))
		return nil
	},
}

var adminApproveCmd = &cobra.Command{
	Use:   "approve <product-id>",
	Short: "Approve a pending product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := requirePermission(a, "product.approve"); err != nil {
			return err
		}

		if err := a.client.ApproveProduct(cmd.Context(), args[0]); err != nil {
			fmt.Println(ux.Error(errors.UserMessage(err)))
			return err
		}
		fmt.Println(ux.Success("Product approved."))
		return nil
	},
}

var adminRejectCmd = &cobra.Command{
	Use:   "reject <product-id>",
	Short: "Reject a pending product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := requirePermission(a, "product.approve"); err != nil {
			return err
		}

		if err := a.client.RejectProduct(cmd.Context(), args[0]); err != nil {
			fmt.Println(ux.Error(errors.UserMessage(err)))
			return err
		}
		fmt.Println(ux.Success("Product rejected."))
		return nil
	},
}

var adminStockCmd = &cobra.Command{
	Use:   "stock <product-id> <stock>",
	Short: "Override a product's stock level",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := requirePermission(a, "product.stock"); err != nil {
			return err
		}

		stock, err := strconv.Atoi(args[1])
		if err != nil || stock < 0 {
			return errors.New(errors.ErrCodeInputInvalid, "stock must be a non-negative integer")
		}

		if err := a.client.SetProductStock(cmd.Context(), args[0], stock); err != nil {
			fmt.Println(ux.Error(errors.UserMessage(err)))
			return err
		}
		fmt.Println(ux.Success("Stock updated."))
		return nil
	},
}

var adminCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var adminCategoriesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := requirePermission(a, "category.manage"); err != nil {
			return err
		}

		parent, _ := cmd.Flags().GetString("parent")
		category, err := a.client.CreateCategory(cmd.Context(), api.CategoryInput{
			Name:     args[0],
			ParentID: parent,
		})
		if err != nil {
			fmt.Println(ux.Error(errors.UserMessage(err)))
			return err
		}
		fmt.Println(ux.Success(fmt.Sprintf("Category %s created.", category.ID)))
		return nil
	},
}

var adminCategoriesRenameCmd = &cobra.Command{
	Use:   "rename <category-id> <name>",
	Short: "Rename a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := requirePermission(a, "category.manage"); err != nil {
			return err
		}

		if _, err := a.client.UpdateCategory(cmd.Context(), args[0], api.CategoryInput{Name: args[1]}); err != nil {
			fmt.Println(ux.Error(errors.UserMessage(err)))
			return err
		}
		fmt.Println(ux.Success("Category renamed."))
		return nil
	},
}

var adminCategoriesRemoveCmd = &cobra.Command{
	Use:   "remove <category-id>",
	Short: "Delete a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := requirePermission(a, "category.manage"); err != nil {
			return err
		}

		if err := a.client.DeleteCategory(cmd.Context(), args[0]); err != nil {
			fmt.Println(ux.Error(errors.UserMessage(err)))
			return err
		}
		fmt.Println(ux.Success("Category deleted."))
		return nil
	},
}

var adminNotificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "List broadcast notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := requirePermission(a, "notification.view"); err != nil {
			return err
		}

		notifications, err := a.client.Notifications(cmd.Context())
		if err != nil {
			return err
		}

		out, err := a.formatter()
		if err != nil {
			return err
		}
		return out.Format(notifications)
	},
}

var adminNotifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Broadcast a notification",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := requirePermission(a, "notification.send"); err != nil {
			return err
		}

		title, _ := cmd.Flags().GetString("title")
		body, _ := cmd.Flags().GetString("body")
		if title == "" || body == "" {
			return errors.New(errors.ErrCodeInputRequired, "--title and --body are required")
		}

		if err := a.client.SendNotification(cmd.Context(), api.NotificationInput{
			Title: title,
			Body:  body,
		}); err != nil {
			fmt.Println(ux.Error(errors.UserMessage(err)))
			return err
		}
		fmt.Println(ux.Success("Notification sent."))
		return nil
	},
}

var adminPermissionsCmd = &cobra.Command{
	Use:   "permissions",
	Short: "List all permission codenames",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		if err := requirePermission(a, "permission.view"); err != nil {
			return err
		}

		perms, err := a.client.AllPermissions(cmd.Context())
		if err != nil {
			return err
		}

		out, err := a.formatter()
		if err != nil {
			return err
		}
		return out.Format(perms)
	},
}

func init() {
	adminUsersCmd.Flags().Int("page", 0, "page number")
	adminProductsCmd.Flags().String("status", "", "filter by status (pending, approved, rejected)")
	adminCategoriesAddCmd.Flags().String("parent", "", "parent category id")
	adminNotifyCmd.Flags().String("title", "", "notification title")
	adminNotifyCmd.Flags().String("body", "", "notification body")

	adminCategoriesCmd.AddCommand(adminCategoriesAddCmd)
	adminCategoriesCmd.AddCommand(adminCategoriesRenameCmd)
	adminCategoriesCmd.AddCommand(adminCategoriesRemoveCmd)

	adminProductsCmd.AddCommand(adminApproveCmd)
	adminProductsCmd.AddCommand(adminRejectCmd)
	adminProductsCmd.AddCommand(adminStockCmd)

	adminCmd.AddCommand(adminMenuCmd)
	adminCmd.AddCommand(adminUsersCmd)
	adminCmd.AddCommand(adminProductsCmd)
	adminCmd.AddCommand(adminCategoriesCmd)
	adminCmd.AddCommand(adminNotificationsCmd)
	adminCmd.AddCommand(adminNotifyCmd)
	adminCmd.AddCommand(adminPermissionsCmd)
	rootCmd.AddCommand(adminCmd)
}
