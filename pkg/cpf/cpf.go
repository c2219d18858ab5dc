// Package cpf validates Brazilian CPF numbers (Cadastro de Pessoas Físicas).
package cpf

// IsValid reports whether raw contains a checksum-valid CPF.
// Non-digit characters are ignored, so both "529.982.247-25" and
// "52998224725" are accepted. A CPF with 11 identical digits is invalid
// even though its check digits match.
func IsValid(raw string) bool {
	digits := stripNonDigits(raw)
	if len(digits) != 11 || allIdentical(digits) {
		return false
	}

	// First check digit: weights 10..2 over positions 0..8.
	sum := 0
	for i := 1; i <= 9; i++ {
		sum += int(digits[i-1]-'0') * (11 - i)
	}
	if checkDigit(sum) != int(digits[9]-'0') {
		return false
	}

	// Second check digit: weights 11..2 over positions 0..9.
	sum = 0
	for i := 1; i <= 10; i++ {
		sum += int(digits[i-1]-'0') * (12 - i)
	}
	return checkDigit(sum) == int(digits[10]-'0')
}

// checkDigit computes (sum*10) mod 11, mapping 10 and 11 to 0.
func checkDigit(sum int) int {
	d := (sum * 10) % 11
	if d == 10 || d == 11 {
		d = 0
	}
	return d
}

func stripNonDigits(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

func allIdentical(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
