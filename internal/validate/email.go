package validate

import "regexp"

// nonSpace matches one character that is neither whitespace nor '@'.
// \pZ and U+FEFF widen RE2's ASCII-only \s to the full Unicode whitespace set.
const nonSpace = `[^\s\v\pZ\x{feff}@]`

var (
	emailPattern  = regexp.MustCompile(`^` + nonSpace + `+@` + nonSpace + `+\.` + nonSpace + `+$`)
	domainPattern = regexp.MustCompile(`@([^.]+\.[^.]+)$`)
)

// IsValidEmail reports whether s is syntactically an e-mail address:
// local part, '@', a host containing at least one dot. No trimming or
// case folding is applied and no existence check is made.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ExtractDomain returns the "label.tld" that ends the address, or "" when
// the host after '@' does not consist of exactly two dot-separated labels.
// "user@mail.sub.example.com" therefore yields "".
func ExtractDomain(email string) string {
	m := domainPattern.FindStringSubmatch(email)
	if m == nil {
		return ""
	}
	return m[1]
}
