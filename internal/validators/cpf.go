// Package validators provides input validation for the records managed by
// the application, decoupled from storage and UI so the rules stay reusable
// and testable.
package validators

import "strings"

// CPFDigits strips every non-digit rune from cpf, so formatted
// ("123.456.789-01") and bare ("12345678901") values compare equal.
func CPFDigits(cpf string) string {
	var b strings.Builder
	b.Grow(len(cpf))
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCPF reports whether cpf is a structurally valid Brazilian CPF:
// exactly 11 digits, not all equal, with both check digits matching the
// mod-11 weighting scheme.
func ValidCPF(cpf string) bool {
	digits := CPFDigits(cpf)
	if len(digits) != 11 {
		return false
	}

	allEqual := true
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	// first check digit: weights 10..2 over the first 9 digits
	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(digits[i]-'0') * (10 - i)
	}
	dv1 := 11 - sum%11
	if sum%11 < 2 {
		dv1 = 0
	}

	// second check digit: weights 11..2 over the first 10 digits
	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(digits[i]-'0') * (11 - i)
	}
	dv2 := 11 - sum%11
	if sum%11 < 2 {
		dv2 = 0
	}

	return int(digits[9]-'0') == dv1 && int(digits[10]-'0') == dv2
}
