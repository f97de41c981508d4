package tui

import "github.com/charmbracelet/lipgloss"

// One Dark palette
var (
	ColorFgPrimary = lipgloss.Color("#ABB2BF")
	ColorFgMuted   = lipgloss.Color("#636B78")
	ColorRed       = lipgloss.Color("#E06C75")
	ColorGreen     = lipgloss.Color("#98C379")
	ColorYellow    = lipgloss.Color("#E5C07B")
	ColorBlue      = lipgloss.Color("#61AFEF")
	ColorMagenta   = lipgloss.Color("#C678DD")
	ColorBorder    = lipgloss.Color("#3F4451")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorMagenta).
			Bold(true).
			MarginBottom(1)

	OptionStyle = lipgloss.NewStyle().
			Foreground(ColorFgPrimary).
			PaddingLeft(2)

	SelectedOptionStyle = lipgloss.NewStyle().
				Foreground(ColorBlue).
				Bold(true).
				PaddingLeft(2)

	LogoFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	CorrectStyle = lipgloss.NewStyle().Foreground(ColorGreen)
	WrongStyle   = lipgloss.NewStyle().Foreground(ColorRed)
	HelpStyle    = lipgloss.NewStyle().Foreground(ColorFgMuted).MarginTop(1)

	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorYellow).
			Padding(1, 3)

	DialogTitleStyle = lipgloss.NewStyle().
				Foreground(ColorYellow).
				Bold(true).
				MarginBottom(1)
)
