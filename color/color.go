// Package color names the terminal colors used across the CLI.
package color

import "github.com/charmbracelet/lipgloss"

func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	Black  = New("8")
)

var (
	HiRed    = New("9")
	HiGreen  = New("10")
	HiPurple = New("13")
	HiBlack  = New("16")
)

// Brand colors. Services are tagged with one of these two accents.
var (
	Orange = New("#FF8C00")
	Forest = New("#2E8B57")
	Gray   = New("#808080")
)
