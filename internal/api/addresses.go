package api

import "context"

// AddressInput is the payload for creating or updating an address
type AddressInput struct {
	Title     string  `json:"title"`
	Line      string  `json:"line"`
	City      string  `json:"city"`
	Postal    string  `json:"postal_code,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// Addresses lists the current user's delivery addresses
func (c *Client) Addresses(ctx context.Context) ([]Address, error) {
	var addresses []Address
	if err := c.do(ctx, "GET", "/addresses", nil, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

// CreateAddress adds a delivery address
func (c *Client) CreateAddress(ctx context.Context, input AddressInput) (*Address, error) {
	var address Address
	if err := c.do(ctx, "POST", "/addresses", input, &address); err != nil {
		return nil, err
	}
	return &address, nil
}

// UpdateAddress replaces a delivery address
func (c *Client) UpdateAddress(ctx context.Context, id string, input AddressInput) (*Address, error) {
	var address Address
	if err := c.do(ctx, "PUT", pathf("/addresses/%s", id), input, &address); err != nil {
		return nil, err
	}
	return &address, nil
}

// DeleteAddress removes a delivery address
func (c *Client) DeleteAddress(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", pathf("/addresses/%s", id), nil, nil)
}

// SetDefaultAddress marks an address as the default delivery target
func (c *Client) SetDefaultAddress(ctx context.Context, id string) error {
	return c.do(ctx, "PUT", pathf("/addresses/%s/default", id), nil, nil)
}
