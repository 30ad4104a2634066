package api

import "time"

// User represents the authenticated marketplace user
type User struct {
	ID        string   `json:"id"`
	Phone     string   `json:"phone"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email,omitempty"`
	Roles     []string `json:"roles"`
}

// Permission is a capability codename granted to a user (e.g. "product.approve")
type Permission struct {
	Codename string `json:"codename"`
}

// ProfilePatch is a partial profile update; nil fields are left unchanged server-side
type ProfilePatch struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// Product represents a catalog product
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	CategoryID  string  `json:"category_id"`
	ImageURL    string  `json:"image_url,omitempty"`
	Status      string  `json:"status,omitempty"`
}

// Category represents a product category
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parent_id,omitempty"`
}

// ProductSnapshot is the denormalized product data embedded in a cart item
type ProductSnapshot struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url,omitempty"`
	Stock    int    `json:"stock"`
}

// CartItem is one line of the cart. Quantity is always >= 1; removal is
// represented by the item's absence, never by a zero quantity.
type CartItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice float64         `json:"unit_price"`
	Product   ProductSnapshot `json:"product"`
}

// Cart is the authoritative cart snapshot returned by the backend after
// every read or mutation.
type Cart struct {
	Items []CartItem `json:"items"`
}

// OrderItem is one line of a placed order
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Order represents a placed order
type Order struct {
	ID        string      `json:"id"`
	Status    string      `json:"status"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	AddressID string      `json:"address_id"`
	CreatedAt time.Time   `json:"created_at"`
}

// CreateOrderRequest places an order from the current cart
type CreateOrderRequest struct {
	AddressID     string `json:"address_id"`
	PaymentMethod string `json:"payment_method,omitempty"`
	Note          string `json:"note,omitempty"`
}

// Address represents a delivery address
type Address struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Line      string  `json:"line"`
	City      string  `json:"city"`
	Postal    string  `json:"postal_code,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	IsDefault bool    `json:"is_default"`
}

// Invoice represents a billing document for an order
type Invoice struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	Amount    float64   `json:"amount"`
	IssuedAt  time.Time `json:"issued_at"`
	DueAt     time.Time `json:"due_at,omitempty"`
	Delivered bool      `json:"delivered"`
}

// DeliveryInfo describes the delivery state of an invoice
type DeliveryInfo struct {
	InvoiceID   string    `json:"invoice_id"`
	Carrier     string    `json:"carrier,omitempty"`
	Status      string    `json:"status"`
	DeliveredAt time.Time `json:"delivered_at,omitempty"`
	Note        string    `json:"note,omitempty"`
}

// Notification is an admin-issued broadcast message
type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse is the payload of a successful OTP verification
type TokenResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ProductQuery narrows a catalog listing
type ProductQuery struct {
	Search     string
	CategoryID string
	Page       int
	PageSize   int
}
