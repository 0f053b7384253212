package service

import (
	"fmt"
	"unicode"

	"github.com/northcart/northcart/internal/config"
)

func validatePassword(policy config.PasswordPolicyConfig, password string) error {
	if policy.MinLength <= 0 &&
		!policy.RequireUpper &&
		!policy.RequireLower &&
		!policy.RequireNumber &&
		!policy.RequireSpecial {
		return nil
	}

	if policy.MinLength > 0 {
		if len([]rune(password)) < policy.MinLength {
			return fmt.Errorf("password must be at least %d characters: %w", policy.MinLength, ErrPasswordTooWeak)
		}
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		default:
			hasSpecial = true
		}
	}

	if policy.RequireUpper && !hasUpper {
		return fmt.Errorf("password must contain an uppercase letter: %w", ErrPasswordTooWeak)
	}
	if policy.RequireLower && !hasLower {
		return fmt.Errorf("password must contain a lowercase letter: %w", ErrPasswordTooWeak)
	}
	if policy.RequireNumber && !hasNumber {
		return fmt.Errorf("password must contain a number: %w", ErrPasswordTooWeak)
	}
	if policy.RequireSpecial && !hasSpecial {
		return fmt.Errorf("password must contain a special character: %w", ErrPasswordTooWeak)
	}

	return nil
}
