package api

import (
	"context"
	"net/url"
	"strconv"
)

// Admin endpoints. The backend enforces authorization; the client only
// gates visibility of the corresponding commands (see internal/nav).

type setStockRequest struct {
	Stock int `json:"stock"`
}

// CategoryInput is the payload for creating or updating a category
type CategoryInput struct {
	Name     string `json:"name"`
	ParentID string `json:"parent_id,omitempty"`
}

// NotificationInput is the payload for sending a broadcast notification
type NotificationInput struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// AdminUsers lists all marketplace users
func (c *Client) AdminUsers(ctx context.Context, page int) ([]User, error) {
	path := "/users"
	if page > 0 {
		values := url.Values{}
		values.Set("page", strconv.Itoa(page))
		path += "?" + values.Encode()
	}
	var users []User
	if err := c.do(ctx, "GET", path, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AdminProducts lists products filtered by moderation status
// (e.g. "pending", "approved", "rejected")
func (c *Client) AdminProducts(ctx context.Context, status string) ([]Product, error) {
	path := "/products"
	if status != "" {
		values := url.Values{}
		values.Set("status", status)
		path += "?" + values.Encode()
	}
	var products []Product
	if err := c.do(ctx, "GET", path, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ApproveProduct approves a pending product
func (c *Client) ApproveProduct(ctx context.Context, id string) error {
	return c.do(ctx, "POST", pathf("/products/%s/approve", id), nil, nil)
}

// RejectProduct rejects a pending product
func (c *Client) RejectProduct(ctx context.Context, id string) error {
	return c.do(ctx, "POST", pathf("/products/%s/reject", id), nil, nil)
}

// SetProductStock overrides a product's stock level
func (c *Client) SetProductStock(ctx context.Context, id string, stock int) error {
	return c.do(ctx, "PUT", pathf("/products/%s/stock", id), setStockRequest{Stock: stock}, nil)
}

// CreateCategory adds a product category
func (c *Client) CreateCategory(ctx context.Context, input CategoryInput) (*Category, error) {
	var category Category
	if err := c.do(ctx, "POST", "/categories", input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory replaces a product category
func (c *Client) UpdateCategory(ctx context.Context, id string, input CategoryInput) (*Category, error) {
	var category Category
	if err := c.do(ctx, "PUT", pathf("/categories/%s", id), input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a product category
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", pathf("/categories/%s", id), nil, nil)
}

// Notifications lists broadcast notifications
func (c *Client) Notifications(ctx context.Context) ([]Notification, error) {
	var notifications []Notification
	if err := c.do(ctx, "GET", "/notifications", nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// SendNotification broadcasts a notification to users
func (c *Client) SendNotification(ctx context.Context, input NotificationInput) error {
	return c.do(ctx, "POST", "/notifications", input, nil)
}

// AllPermissions lists every permission codename known to the backend
func (c *Client) AllPermissions(ctx context.Context) ([]Permission, error) {
	var perms []Permission
	if err := c.do(ctx, "GET", "/permissions", nil, &perms); err != nil {
		return nil, err
	}
	return perms, nil
}
