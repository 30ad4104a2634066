package api

import (
	"context"

	"github.com/google/uuid"
)

// CreateOrder places an order from the current cart. A client-generated
// idempotency key guards against double submission on re-click.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	var order Order
	headers := map[string]string{"Idempotency-Key": uuid.NewString()}
	if err := c.doWithHeaders(ctx, "POST", "/orders/create", req, &order, headers); err != nil {
		return nil, err
	}
	return &order, nil
}

// Orders lists the current user's orders
func (c *Client) Orders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, "GET", "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Order retrieves a single order
func (c *Client) Order(ctx context.Context, id string) (*Order, error) {
	var order Order
	if err := c.do(ctx, "GET", pathf("/orders/%s", id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
