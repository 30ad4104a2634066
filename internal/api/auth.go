package api

import "context"

type sendOTPRequest struct {
	Phone string `json:"phone"`
}

type verifyOTPRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

// SendOTP requests a one-time code to be issued to the given phone number
func (c *Client) SendOTP(ctx context.Context, phone string) error {
	return c.do(ctx, "POST", "/auth/send-otp", sendOTPRequest{Phone: phone}, nil)
}

// VerifyOTP exchanges a one-time code for a token and user pair
func (c *Client) VerifyOTP(ctx context.Context, phone, otp string) (*TokenResponse, error) {
	var resp TokenResponse
	if err := c.do(ctx, "POST", "/auth/verify-otp", verifyOTPRequest{Phone: phone, OTP: otp}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
