package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/basketeer/basketeer/internal/errors"
)

// PromptPhone asks for the phone number an OTP should be sent to
func PromptPhone() (string, error) {
	var phone string

	input := huh.NewInput().
		Title("Phone number").
		Placeholder("09xxxxxxxxx").
		Validate(ValidatePhone).
		Value(&phone)

	if err := huh.NewForm(huh.NewGroup(input)).Run(); err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return phone, nil
}

// PromptOTP asks for the one-time code delivered to the user's phone
func PromptOTP() (string, error) {
	var otp string

	input := huh.NewInput().
		Title("One-time code").
		Placeholder("1234").
		Validate(ValidateOTP).
		Value(&otp)

	if err := huh.NewForm(huh.NewGroup(input)).Run(); err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return otp, nil
}

// PromptConfirm displays a yes/no confirmation prompt
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	confirmed := defaultValue

	confirm := huh.NewConfirm().
		Title(message).
		Value(&confirmed)

	if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return confirmed, nil
}

// ValidatePhone checks the shape of a phone number: digits only, at
// least 10 of them. The backend is the real authority.
func ValidatePhone(phone string) error {
	trimmed := strings.TrimSpace(phone)
	if len(trimmed) < 10 {
		return errors.New(errors.ErrCodeInputInvalid, "phone number is too short")
	}
	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return errors.New(errors.ErrCodeInputInvalid, "phone number must contain only digits")
		}
	}
	return nil
}

// ValidateOTP checks the shape of a one-time code
func ValidateOTP(otp string) error {
	trimmed := strings.TrimSpace(otp)
	if len(trimmed) < 4 || len(trimmed) > 8 {
		return errors.New(errors.ErrCodeInputInvalid, "code must be 4 to 8 digits")
	}
	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return errors.New(errors.ErrCodeInputInvalid, "code must contain only digits")
		}
	}
	return nil
}
