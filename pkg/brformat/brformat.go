// Package brformat applies Brazilian display conventions: CPF and phone
// input masks, currency with a comma decimal separator, DD/MM/YYYY dates.
package brformat

import (
	"fmt"
	"strings"
	"time"
)

const (
	cpfMaxDigits   = 11
	phoneMaxDigits = 11
)

// CPF re-applies the DDD.DDD.DDD-DD mask to accumulated input.
// Partial input yields partial formatting ("1234" -> "123.4").
// Formatting an already-masked string is a no-op.
func CPF(raw string) string {
	d := onlyDigits(raw, cpfMaxDigits)

	var b strings.Builder
	for i := 0; i < len(d); i++ {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteByte(d[i])
	}
	return b.String()
}

// Phone re-applies the (DD) DDDDD-DDDD mask to accumulated input.
// Both mobile (11 digits) and landline (10 digits) lengths are supported:
// "(11) 91234-5678" and "(11) 1234-5678". Idempotent.
func Phone(raw string) string {
	d := onlyDigits(raw, phoneMaxDigits)
	if len(d) <= 2 {
		return d
	}

	rest := d[2:]
	if len(rest) >= 5 {
		rest = rest[:len(rest)-4] + "-" + rest[len(rest)-4:]
	}
	return "(" + d[:2] + ") " + rest
}

// Price formats a currency amount as "R$ D,DD".
func Price(v float64) string {
	return "R$ " + strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}

// Date formats a calendar date as DD/MM/YYYY.
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}

func onlyDigits(s string, max int) string {
	out := make([]byte, 0, max)
	for i := 0; i < len(s) && len(out) < max; i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
