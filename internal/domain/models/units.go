package models

import (
	"fmt"
	"math/big"
	"strings"
)

// EtherDecimals is the fixed-point scale of native currency and governance votes
const EtherDecimals = 18

// ParseUnits converts a decimal string such as "1.5" into an integer scaled by 10^decimals.
// More fractional digits than decimals is an error rather than a silent truncation.
func ParseUnits(amount string, decimals uint8) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, fmt.Errorf("empty amount")
	}

	negative := strings.HasPrefix(amount, "-")
	amount = strings.TrimPrefix(amount, "-")

	whole, frac, _ := strings.Cut(amount, ".")
	if !isDigits(whole) || !isDigits(frac) || whole+frac == "" {
		return nil, fmt.Errorf("invalid amount %q", amount)
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > int(decimals) {
		return nil, fmt.Errorf("amount %q has more than %d decimal places", amount, decimals)
	}
	frac += strings.Repeat("0", int(decimals)-len(frac))

	v, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", amount)
	}
	if negative {
		v.Neg(v)
	}
	return v, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FormatUnits renders an integer scaled by 10^decimals as a decimal string with
// trailing fractional zeros removed.
func FormatUnits(v *big.Int, decimals uint8) string {
	if v == nil {
		return "0"
	}

	s := new(big.Int).Abs(v).String()
	if len(s) <= int(decimals) {
		s = strings.Repeat("0", int(decimals)-len(s)+1) + s
	}

	whole := s[:len(s)-int(decimals)]
	frac := strings.TrimRight(s[len(s)-int(decimals):], "0")

	out := whole
	if frac != "" {
		out += "." + frac
	}
	if v.Sign() < 0 {
		out = "-" + out
	}
	return out
}

// FormatEther renders wei as ether
func FormatEther(wei *big.Int) string {
	return FormatUnits(wei, EtherDecimals)
}
