package common

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCents renders a cent amount as a Euro string, e.g. 350 -> "3.50 EUR".
func FormatCents(cents int) string {
	euros := decimal.NewFromInt(int64(cents)).Div(decimal.NewFromInt(100))
	return euros.StringFixed(2) + " EUR"
}

const (
	// Default separator width for report output
	DefaultWidth = 80
)

// PrintSeparator prints a separator line of the given char and width
func PrintSeparator(char string, width int) {
	fmt.Println(strings.Repeat(char, width))
}

// PrintHeader prints a formatted header with title and separators
func PrintHeader(title string, width int) {
	fmt.Println("\n" + strings.Repeat("=", width))
	fmt.Println(title)
	PrintSeparator("=", width)
}

// PrintFooter prints a formatted footer with message and separators
func PrintFooter(message string, width int) {
	fmt.Println("\n" + strings.Repeat("=", width))
	fmt.Println(message)
	fmt.Println(strings.Repeat("=", width) + "\n")
}

// PrintBoxSeparator prints a box-drawing separator line (for sub-sections)
func PrintBoxSeparator(width int) {
	fmt.Println("├" + strings.Repeat("─", width))
}

// BoxPrefix returns the appropriate box-drawing prefix for list items
func BoxPrefix(isLast bool) string {
	if isLast {
		return "└  "
	}
	return "│  "
}
