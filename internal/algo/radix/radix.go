package radix

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Errors reported by the converter. Callers match with errors.Is.
var (
	// ErrInvalidFormat covers literals that are empty or not parseable
	// as a number at all.
	ErrInvalidFormat = errors.New("invalid number format")

	// ErrInvalidDigit covers characters outside the declared base's
	// digit alphabet.
	ErrInvalidDigit = errors.New("invalid digit")

	// ErrUnsupportedBase covers bases outside {2, 8, 10, 16}.
	ErrUnsupportedBase = errors.New("unsupported base")
)

// Bases lists the supported bases in display order.
var Bases = []int{2, 8, 10, 16}

const hexDigits = "0123456789ABCDEF"

// Convert converts a signed integer literal from one base to another,
// pivoting through decimal. The literal may contain interior spaces and a
// leading minus sign; hex digits are case-insensitive.
func Convert(literal string, fromBase, toBase int) (string, error) {
	if !supported(fromBase) {
		return "", fmt.Errorf("%w: %d", ErrUnsupportedBase, fromBase)
	}
	if !supported(toBase) {
		return "", fmt.Errorf("%w: %d", ErrUnsupportedBase, toBase)
	}

	decimal, err := ToDecimal(literal, fromBase)
	if err != nil {
		return "", err
	}
	return FromDecimal(decimal, toBase)
}

// ConvertAll converts the literal to every supported base other than
// fromBase. Targets that individually fail are omitted rather than failing
// the whole view.
func ConvertAll(literal string, fromBase int) (map[int]string, error) {
	if !supported(fromBase) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBase, fromBase)
	}

	decimal, err := ToDecimal(literal, fromBase)
	if err != nil {
		return nil, err
	}

	out := make(map[int]string, len(Bases)-1)
	for _, base := range Bases {
		if base == fromBase {
			continue
		}
		rendered, err := FromDecimal(decimal, base)
		if err != nil {
			continue
		}
		out[base] = rendered
	}
	return out, nil
}

// ToDecimal parses a literal in the given base into a decimal value.
// Sign is detached before digit conversion and reattached afterwards.
func ToDecimal(literal string, base int) (int64, error) {
	if !supported(base) {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedBase, base)
	}

	s := strings.ReplaceAll(literal, " ", "")
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidFormat)
	}
	if strings.HasPrefix(s, "+") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, literal)
	}

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
		if s == "" {
			return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, literal)
		}
	}

	if base == 10 {
		value, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
				return 0, fmt.Errorf("%w: %q out of range", ErrInvalidFormat, literal)
			}
			return 0, fmt.Errorf("%w: %q is not a decimal number", ErrInvalidDigit, s)
		}
		if negative {
			value = -value
		}
		return value, nil
	}

	var magnitude int64
	for _, c := range strings.ToUpper(s) {
		dv := strings.IndexRune(hexDigits[:base], c)
		if dv < 0 {
			return 0, fmt.Errorf("%w: %q for base %d", ErrInvalidDigit, string(c), base)
		}
		if magnitude > (math.MaxInt64-int64(dv))/int64(base) {
			return 0, fmt.Errorf("%w: %q out of range", ErrInvalidFormat, literal)
		}
		magnitude = magnitude*int64(base) + int64(dv)
	}
	if negative {
		magnitude = -magnitude
	}
	return magnitude, nil
}

// FromDecimal renders a decimal value in the given base, using digits
// 0-9 then A-F. Negative values keep a leading minus sign.
func FromDecimal(decimal int64, base int) (string, error) {
	if !supported(base) {
		return "", fmt.Errorf("%w: %d", ErrUnsupportedBase, base)
	}
	if decimal == 0 {
		return "0", nil
	}
	if base == 10 {
		return strconv.FormatInt(decimal, 10), nil
	}

	negative := decimal < 0
	num := decimal
	if negative {
		num = -num
	}

	var digits []byte
	for num > 0 {
		digits = append(digits, hexDigits[num%int64(base)])
		num /= int64(base)
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	if negative {
		return "-" + string(digits), nil
	}
	return string(digits), nil
}

func supported(base int) bool {
	switch base {
	case 2, 8, 10, 16:
		return true
	}
	return false
}
