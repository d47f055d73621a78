package auth

import "strings"

const minPasswordLength = 6

// ValidateCredentials checks login form fields before any network call.
func ValidateCredentials(email, password string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return &ValidationError{Field: "password", Reason: "is required"}
	}
	return nil
}

// ValidateRegistration checks the registration form fields before any network call.
func ValidateRegistration(reg Registration) error {
	if err := validateEmail(reg.Email); err != nil {
		return err
	}
	if len(reg.Password) < minPasswordLength {
		return &ValidationError{Field: "password", Reason: "must be at least 6 characters"}
	}
	if strings.TrimSpace(reg.Nickname) == "" {
		return &ValidationError{Field: "nickname", Reason: "is required"}
	}
	if reg.AgeGroup == "" {
		return &ValidationError{Field: "age_group", Reason: "is required"}
	}
	return nil
}

// ValidatePasswordChange checks the change-password form fields.
func ValidatePasswordChange(currentPassword, newPassword string) error {
	if currentPassword == "" {
		return &ValidationError{Field: "current_password", Reason: "is required"}
	}
	if len(newPassword) < minPasswordLength {
		return &ValidationError{Field: "new_password", Reason: "must be at least 6 characters"}
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return &ValidationError{Field: "email", Reason: "is required"}
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return &ValidationError{Field: "email", Reason: "is not a valid address"}
	}
	return nil
}
