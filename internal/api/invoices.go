package api

import "context"

// Invoices lists the current user's invoices
func (c *Client) Invoices(ctx context.Context) ([]Invoice, error) {
	var invoices []Invoice
	if err := c.do(ctx, "GET", "/invoices", nil, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// Invoice retrieves a single invoice
func (c *Client) Invoice(ctx context.Context, id string) (*Invoice, error) {
	var invoice Invoice
	if err := c.do(ctx, "GET", pathf("/invoices/%s", id), nil, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// ConfirmDelivery acknowledges receipt of an invoice's goods
func (c *Client) ConfirmDelivery(ctx context.Context, id string) error {
	return c.do(ctx, "POST", pathf("/invoices/%s/confirm-delivery", id), nil, nil)
}

// DeliveryInfo retrieves the delivery state of an invoice
func (c *Client) DeliveryInfo(ctx context.Context, id string) (*DeliveryInfo, error) {
	var info DeliveryInfo
	if err := c.do(ctx, "GET", pathf("/invoices/%s/delivery-info", id), nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
