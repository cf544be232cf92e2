package security

import (
	"crypto/rand"
	"math"
	"math/big"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	htmlPolicy = newHTMLPolicy()

	htmlTagRe     = regexp.MustCompile(`<[^>]*>`)
	emailRe       = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	idRe          = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,50}$`)
	nonDigitRe    = regexp.MustCompile(`\D`)
	fileNameRe    = regexp.MustCompile(`[^a-zA-Z0-9._-]`)
	underscoresRe = regexp.MustCompile(`_{2,}`)
)

func newHTMLPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "br", "strong", "em", "u", "ol", "ul", "li",
		"h1", "h2", "h3", "h4", "h5", "h6")
	p.AllowAttrs("href", "target").OnElements("a")
	p.AllowStandardURLs()
	return p
}

// SanitizeHTML filters rich-text input down to the allow-list used by the
// SOP editor and contract templates: basic formatting tags plus href/target.
// Script, style and event-handler attributes never survive.
func SanitizeHTML(input string) string {
	if input == "" {
		return ""
	}
	return htmlPolicy.Sanitize(input)
}

// SanitizeText strips all markup and dangerous characters from plain-text
// input and caps its length.
func SanitizeText(input string, maxLength int) string {
	if input == "" {
		return ""
	}
	if maxLength <= 0 {
		maxLength = 255
	}

	cleaned := htmlTagRe.ReplaceAllString(input, "")
	cleaned = strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', '"', '\'', '&':
			return -1
		}
		return r
	}, cleaned)
	cleaned = strings.TrimSpace(cleaned)

	// Cap by characters, not bytes, so a limit landing inside a multibyte
	// rune cannot leave invalid UTF-8 behind.
	if runes := []rune(cleaned); len(runes) > maxLength {
		cleaned = string(runes[:maxLength])
	}
	return cleaned
}

// ValidateEmail reports whether the input looks like an email address.
func ValidateEmail(email string) bool {
	if email == "" || len(email) > 254 {
		return false
	}
	return emailRe.MatchString(email)
}

// ValidatePhone reports whether the input is a plausible phone number
// (10 to 15 digits once formatting is stripped).
func ValidatePhone(phone string) bool {
	if phone == "" {
		return false
	}
	digits := nonDigitRe.ReplaceAllString(phone, "")
	return len(digits) >= 10 && len(digits) <= 15
}

// SanitizePhone keeps digits and a single leading plus sign.
func SanitizePhone(phone string) string {
	if phone == "" {
		return ""
	}

	var b strings.Builder
	for i, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateCurrency reports whether the amount is a sane non-negative value.
func ValidateCurrency(amount float64) bool {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return false
	}
	return amount >= 0 && amount <= 999999999999
}

// SanitizeFileName makes an upload filename filesystem-safe.
func SanitizeFileName(fileName string) string {
	if fileName == "" {
		return ""
	}

	cleaned := fileNameRe.ReplaceAllString(fileName, "_")
	cleaned = underscoresRe.ReplaceAllString(cleaned, "_")
	if len(cleaned) > 255 {
		cleaned = cleaned[:255]
	}
	return cleaned
}

// ValidateFileExtension reports whether the filename carries one of the
// allowed extensions.
func ValidateFileExtension(fileName string, allowedExtensions []string) bool {
	if fileName == "" {
		return false
	}

	idx := strings.LastIndex(fileName, ".")
	if idx < 0 || idx == len(fileName)-1 {
		return false
	}

	ext := strings.ToLower(fileName[idx+1:])
	for _, allowed := range allowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// ValidateID reports whether the input is a well-formed record or portal
// access identifier (alphanumeric, hyphen, underscore, max 50 chars).
func ValidateID(id string) bool {
	return idRe.MatchString(id)
}

const tokenChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateSecureToken returns a random alphanumeric token, used for portal
// access ids and share links.
func GenerateSecureToken(length int) (string, error) {
	if length <= 0 {
		length = 32
	}

	b := make([]byte, length)
	max := big.NewInt(int64(len(tokenChars)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = tokenChars[n.Int64()]
	}
	return string(b), nil
}
