package render

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/grantdao/grantdao-cli/internal/domain/models"
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[mGKHF]`)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	// Keep only the innermost part of a wrapped error chain
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]

	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// categoryColors maps state categories onto terminal colors
var categoryColors = map[models.StateCategory]*color.Color{
	models.CategoryYellow:  color.New(color.FgYellow),
	models.CategoryBlue:    color.New(color.FgBlue),
	models.CategoryGray:    color.New(color.FgWhite, color.Faint),
	models.CategoryRed:     color.New(color.FgRed),
	models.CategoryGreen:   color.New(color.FgGreen),
	models.CategoryPurple:  color.New(color.FgMagenta),
	models.CategoryOrange:  color.New(color.FgHiYellow),
	models.CategoryEmerald: color.New(color.FgHiGreen, color.Bold),
}

// StateBadge renders a state label in its category color
func StateBadge(label string, category models.StateCategory) string {
	c, ok := categoryColors[category]
	if !ok {
		c = color.New(color.FgWhite)
	}
	return c.Sprint(label)
}

// FormatTokens renders a base-unit amount in whole tokens with digit grouping
func FormatTokens(v *big.Int, decimals uint8) string {
	if v == nil {
		return "0"
	}
	whole, frac, _ := strings.Cut(models.FormatUnits(v, decimals), ".")
	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return whole
	}
	grouped := humanize.BigComma(n)
	if frac != "" && frac != "0" {
		return grouped + "." + frac
	}
	return grouped
}

// stripAnsiCodes removes ANSI escape sequences from a string
func stripAnsiCodes(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// truncate shortens s to n runes with an ellipsis
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

func bigString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
