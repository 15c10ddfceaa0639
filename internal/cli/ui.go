package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorGreen = lipgloss.Color("35")  // optimal tiles
	colorCyan  = lipgloss.Color("36")  // start and goal
	colorDim   = lipgloss.Color("240") // walls
)

var (
	styleTile   = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleMarker = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleWall   = lipgloss.NewStyle().Foreground(colorDim)
)
