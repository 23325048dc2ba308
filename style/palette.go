package style

import "github.com/charmbracelet/lipgloss"

var (
	Base    = lipgloss.Color("#1b1b1b")
	Text    = lipgloss.Color("#f4f1ea")
	Subtext = lipgloss.Color("#b9b4a8")
	Overlay = lipgloss.Color("#6f6a60")
	Surface = lipgloss.Color("#2d2a26")

	Orange = lipgloss.Color("#FF8C00")
	Amber  = lipgloss.Color("#FFB347")
	Green  = lipgloss.Color("#2E8B57")
	Mint   = lipgloss.Color("#8FD694")
	Red    = lipgloss.Color("#E05A4F")
	Yellow = lipgloss.Color("#F2C14E")

	AccentColor    = Orange
	SecondaryColor = Green
	SuccessColor   = Mint
	WarningColor   = Yellow
	ErrorColor     = Red
	FaintColor     = Overlay

	BorderColor       = Surface
	ActiveBorderColor = AccentColor
)
