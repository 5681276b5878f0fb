// Package decimal relocates the decimal point in price strings without ever
// touching a floating-point type. Currency and power conversions are powers
// of ten by construction (fraction unit = x100, kWh = /1000), so moving the
// point is exact where float multiplication and division are not.
//
// Internally a value is an integer mantissa plus a scale; strings only exist
// at the boundary.
package decimal

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidDecimal = errors.New("invalid decimal value")

// fixed is digits interpreted as an integer, divided by 10^scale.
type fixed struct {
	neg    bool
	digits string
	scale  int
}

func parse(value string) (fixed, error) {
	s := value
	neg := false
	if len(s) > 0 {
		switch s[0] {
		case '-':
			neg = true
			s = s[1:]
		case '+':
			s = s[1:]
		}
	}
	if s == "" {
		return fixed{}, fmt.Errorf("%w: %q", ErrInvalidDecimal, value)
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
		if strings.IndexByte(fracPart, '.') >= 0 {
			return fixed{}, fmt.Errorf("%w: %q", ErrInvalidDecimal, value)
		}
	}
	if intPart == "" && fracPart == "" {
		return fixed{}, fmt.Errorf("%w: %q", ErrInvalidDecimal, value)
	}
	for _, part := range []string{intPart, fracPart} {
		for i := 0; i < len(part); i++ {
			if part[i] < '0' || part[i] > '9' {
				return fixed{}, fmt.Errorf("%w: %q", ErrInvalidDecimal, value)
			}
		}
	}

	return fixed{neg: neg, digits: intPart + fracPart, scale: len(fracPart)}, nil
}

// shift moves the point `places` to the right when positive, left when
// negative, by adjusting the scale. The mantissa only grows when the point
// moves past the last digit.
func (f fixed) shift(places int) fixed {
	scale := f.scale - places
	digits := f.digits
	if scale < 0 {
		digits += strings.Repeat("0", -scale)
		scale = 0
	}
	return fixed{neg: f.neg, digits: digits, scale: scale}
}

func (f fixed) format() string {
	digits := f.digits
	for len(digits) < f.scale {
		digits = "0" + digits
	}

	intPart := strings.TrimLeft(digits[:len(digits)-f.scale], "0")
	if intPart == "" {
		intPart = "0"
	}
	fracPart := strings.TrimRight(digits[len(digits)-f.scale:], "0")

	out := intPart
	if fracPart != "" {
		out += "." + fracPart
	}
	if f.neg && out != "0" {
		out = "-" + out
	}
	return out
}

// ShiftRight multiplies value by 10^places, exactly.
func ShiftRight(value string, places int) (string, error) {
	f, err := parse(value)
	if err != nil {
		return "", err
	}
	return f.shift(places).format(), nil
}

// ShiftLeft divides value by 10^places, exactly.
func ShiftLeft(value string, places int) (string, error) {
	f, err := parse(value)
	if err != nil {
		return "", err
	}
	return f.shift(-places).format(), nil
}

// Normalize strips redundant leading and trailing zeros, e.g. "0167.680"
// becomes "167.68".
func Normalize(value string) (string, error) {
	f, err := parse(value)
	if err != nil {
		return "", err
	}
	return f.format(), nil
}

// Valid reports whether value parses as a well-formed signed decimal.
func Valid(value string) bool {
	_, err := parse(value)
	return err == nil
}
