package models

import (
	"strings"
	"unicode"
)

// Payment-rail prefixes banks prepend to the merchant text
var merchantPrefixes = []string{
	"DEBIT CARD PURCHASE - ",
	"DEBIT CARD PURCHASE ",
	"CARD PURCHASE ",
	"POS PURCHASE ",
	"CONTACTLESS ",
	"PURCHASE ",
	"PAYPAL *",
	"SQ *",
	"POS ",
	"TST* ",
}

// NormalizeMerchant derives the grouping key for a transaction description.
//
// Contract:
//   - the result is upper-cased with surrounding whitespace removed and inner whitespace collapsed
//   - known payment-rail prefixes (POS, CARD PURCHASE, SQ *, PAYPAL *, ...) are removed
//   - text after a '*' separator is dropped when it contains a digit ("NETFLIX.COM*AB12C")
//   - after the first word, reference-like tokens are removed: tokens starting with '#',
//     REF/REF:/REF# markers and their value, and tokens with three or more digits
//     (terminal ids, dates, card suffixes)
//   - trailing punctuation is trimmed
//   - the first word is always kept, so the result is never empty for non-blank input
func NormalizeMerchant(description string) string {
	s := strings.ToUpper(strings.Join(strings.Fields(description), " "))
	if s == "" {
		return ""
	}

	for _, prefix := range merchantPrefixes {
		if strings.HasPrefix(s, prefix) && len(s) > len(prefix) {
			s = strings.TrimSpace(s[len(prefix):])
			break
		}
	}

	if idx := strings.Index(s, "*"); idx > 0 {
		if strings.IndexFunc(s[idx+1:], unicode.IsDigit) >= 0 {
			s = strings.TrimSpace(s[:idx])
		}
	}

	tokens := strings.Fields(s)
	kept := make([]string, 0, len(tokens))
	skipNext := false
	for i, token := range tokens {
		if skipNext {
			skipNext = false
			continue
		}
		if i == 0 {
			kept = append(kept, token)
			continue
		}
		if token == "REF" || token == "REF:" || token == "REF#" || token == "REF.NO" {
			skipNext = true
			continue
		}
		if isReferenceToken(token) {
			continue
		}
		kept = append(kept, token)
	}

	result := strings.TrimRight(strings.Join(kept, " "), " -.,:;/")
	if result == "" {
		return tokens[0]
	}
	return result
}

// NormalizeDescription collapses whitespace so cosmetic spacing differences
// do not produce distinct fingerprints.
func NormalizeDescription(description string) string {
	return strings.Join(strings.Fields(description), " ")
}

func isReferenceToken(token string) bool {
	if token == "" {
		return false
	}
	if strings.HasPrefix(token, "#") {
		return true
	}
	if strings.HasPrefix(token, "REF:") || strings.HasPrefix(token, "REF#") {
		return true
	}

	digits := 0
	for _, r := range token {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= 3
}
