package api

import (
	"context"
	"net/url"
	"strconv"
)

func (q ProductQuery) encode() string {
	values := url.Values{}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.CategoryID != "" {
		values.Set("category_id", q.CategoryID)
	}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		values.Set("page_size", strconv.Itoa(q.PageSize))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

// Products lists catalog products matching the query
func (c *Client) Products(ctx context.Context, query ProductQuery) ([]Product, error) {
	var products []Product
	if err := c.do(ctx, "GET", "/products"+query.encode(), nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product retrieves a single product
func (c *Client) Product(ctx context.Context, id string) (*Product, error) {
	var product Product
	if err := c.do(ctx, "GET", pathf("/products/%s", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Categories lists all product categories
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.do(ctx, "GET", "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Category retrieves a single category
func (c *Client) Category(ctx context.Context, id string) (*Category, error) {
	var category Category
	if err := c.do(ctx, "GET", pathf("/categories/%s", id), nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}
