package auth

import (
	"fmt"
	"os"
	"strings"
)

// weakPasswordList contains common weak passwords that must be rejected.
var weakPasswordList = []string{
	"admin",
	"password",
	"123456",
	"secret",
	"admin123",
	"password123",
	"123456789",
	"12345678",
	"qwerty",
	"abc123",
	"letmein",
	"welcome",
	"contrasena",
	"1234567890",
	"password1",
	"admin1",
	"test",
	"test123",
	"default",
	"root",
}

// minPasswordLength is the minimum required admin password length.
const minPasswordLength = 12

// DefaultWeakPasswords returns the weak password blacklist for provider
// construction.
func DefaultWeakPasswords() []string {
	return weakPasswordList
}

// MinPasswordLength returns the minimum admin password length.
func MinPasswordLength() int {
	return minPasswordLength
}

// ValidateAdminCredentials validates ADMIN_USER / ADMIN_USER_PASSWORD at
// startup, before the server accepts traffic. Error messages are safe to
// log and never include the credential values.
func ValidateAdminCredentials() error {
	user := os.Getenv("ADMIN_USER")
	pass := os.Getenv("ADMIN_USER_PASSWORD")

	if user == "" {
		return fmt.Errorf("admin credentials validation failed: ADMIN_USER must not be empty")
	}
	if pass == "" {
		return fmt.Errorf("admin credentials validation failed: ADMIN_USER_PASSWORD must not be empty")
	}
	if len(pass) < minPasswordLength {
		return fmt.Errorf("admin credentials validation failed: ADMIN_USER_PASSWORD must be at least %d characters (current length: %d)", minPasswordLength, len(pass))
	}

	if isSimpleNumericPattern(pass) {
		return fmt.Errorf("admin credentials validation failed: ADMIN_USER_PASSWORD must not be a simple numeric pattern")
	}
	if isKeyboardPattern(pass) {
		return fmt.Errorf("admin credentials validation failed: ADMIN_USER_PASSWORD must not be a keyboard pattern")
	}

	lowerPass := strings.ToLower(pass)
	for _, weak := range weakPasswordList {
		if lowerPass == weak {
			return fmt.Errorf("admin credentials validation failed: ADMIN_USER_PASSWORD must not be a weak password")
		}
		// Catches variations like "admin1234567890".
		if strings.HasPrefix(lowerPass, weak) && len(pass) < minPasswordLength+5 {
			return fmt.Errorf("admin credentials validation failed: ADMIN_USER_PASSWORD must not be based on common weak passwords")
		}
	}

	return nil
}

// isSimpleNumericPattern reports whether the password is a repeated
// character or an all-digit ascending/descending sequence.
func isSimpleNumericPattern(pass string) bool {
	if len(pass) < minPasswordLength {
		return false
	}
	if isRepeatedChar(pass) {
		return true
	}

	for _, ch := range pass {
		if ch < '0' || ch > '9' {
			return false
		}
	}

	isAscending := true
	isDescending := true
	for i := 1; i < len(pass); i++ {
		diff := int(pass[i]) - int(pass[i-1])
		if diff != 1 && diff != -9 { // 9 wraps to 0
			isAscending = false
		}
		if diff != -1 && diff != 9 { // 0 wraps to 9
			isDescending = false
		}
	}
	return isAscending || isDescending
}

func isRepeatedChar(pass string) bool {
	if len(pass) == 0 {
		return false
	}
	first := pass[0]
	for i := 1; i < len(pass); i++ {
		if pass[i] != first {
			return false
		}
	}
	return true
}

var keyboardPatterns = []string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
	"qwerty",
	"asdfgh",
	"zxcvb",
}

func isKeyboardPattern(pass string) bool {
	lowerPass := strings.ToLower(pass)
	for _, pattern := range keyboardPatterns {
		if strings.Contains(lowerPass, pattern) || strings.Contains(lowerPass, reverse(pattern)) {
			return true
		}
	}
	return false
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
