package api

import "context"

// Profile retrieves the currently authenticated user
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, "GET", "/users/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies a partial profile update and returns the
// server-confirmed user document
func (c *Client) UpdateProfile(ctx context.Context, patch ProfilePatch) (*User, error) {
	var user User
	if err := c.do(ctx, "PUT", "/users/profile", patch, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Permissions retrieves the permission codenames granted to the current user.
// Fetched separately from the profile.
func (c *Client) Permissions(ctx context.Context) ([]Permission, error) {
	var perms []Permission
	if err := c.do(ctx, "GET", "/users/permissions", nil, &perms); err != nil {
		return nil, err
	}
	return perms, nil
}
