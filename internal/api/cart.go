package api

import "context"

type addToCartRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// Cart retrieves the current cart snapshot
func (c *Client) Cart(ctx context.Context) (*Cart, error) {
	var cart Cart
	if err := c.do(ctx, "GET", "/cart", nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddToCart adds a product and returns the authoritative post-mutation
// snapshot. The server decides the merge policy when the product is
// already present.
func (c *Client) AddToCart(ctx context.Context, productID string, quantity int) (*Cart, error) {
	var cart Cart
	req := addToCartRequest{ProductID: productID, Quantity: quantity}
	if err := c.do(ctx, "POST", "/cart/add", req, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// UpdateCartItem sets the quantity of a cart line and returns the snapshot
func (c *Client) UpdateCartItem(ctx context.Context, productID string, quantity int) (*Cart, error) {
	var cart Cart
	req := updateCartItemRequest{Quantity: quantity}
	if err := c.do(ctx, "PUT", pathf("/cart/items/%s", productID), req, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// RemoveCartItem deletes a cart line. It intentionally returns no snapshot;
// callers must re-fetch the cart afterwards.
func (c *Client) RemoveCartItem(ctx context.Context, productID string) error {
	return c.do(ctx, "DELETE", pathf("/cart/items/%s", productID), nil, nil)
}

// ClearCart empties the cart
func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, "POST", "/cart/clear", nil, nil)
}
