package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidationError - ошибка формата с сообщением для конкретного поля
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}

func Username(username string) error {
	if username == "" {
		return invalid("Username is required.")
	}

	if !usernameRegex.MatchString(username) {
		return invalid("Username must be 3-20 characters and only contain letters, numbers, or underscores.")
	}

	return nil
}

func Password(password string) error {
	if password == "" {
		return invalid("Password is required.")
	}

	if utf8.RuneCountInString(password) < 8 {
		return invalid("Password must be at least 8 characters long.")
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	if !hasUpper {
		return invalid("Password must include at least one uppercase letter.")
	}

	if !hasLower {
		return invalid("Password must include at least one lowercase letter.")
	}

	if !hasDigit {
		return invalid("Password must include at least one number.")
	}

	if !hasSymbol {
		return invalid("Password must include at least one symbol.")
	}

	return nil
}

func Email(email string) error {
	if strings.TrimSpace(email) == "" {
		return invalid("Email is required.")
	}

	if !emailRegex.MatchString(email) {
		return invalid("Email format is invalid.")
	}

	return nil
}

func Bio(bio string) error {
	if utf8.RuneCountInString(bio) > 200 {
		return invalid("Bio must be 200 characters or fewer.")
	}

	return nil
}

func PostContent(content string) error {
	length := utf8.RuneCountInString(content)
	if length < 1 || length > 280 {
		return invalid("Post content must be between 1 and 280 characters.")
	}

	return nil
}
