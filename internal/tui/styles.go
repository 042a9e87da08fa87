package tui

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorBlue   = lipgloss.AdaptiveColor{Light: "26", Dark: "39"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Layout styles.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})

	focusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorWhite)

	unfocusedBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim)
)

// Tab styles.
var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true).
			Foreground(colorWhite)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Node styles by execution status.
var (
	nodeIdleStyle      = lipgloss.NewStyle().Foreground(colorDim)
	nodeRunningStyle   = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	nodeCompletedStyle = lipgloss.NewStyle().Foreground(colorGreen)
	nodeErrorStyle     = lipgloss.NewStyle().Foreground(colorRed).Bold(true)

	selectedItemStyle = lipgloss.NewStyle().
				Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})

	columnHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorDim)
)

// Edge styles by tone. Doctor path renders white, patient path blue,
// everything else dim gray.
var (
	edgeNeutralStyle = lipgloss.NewStyle().Foreground(colorDim)
	edgeDoctorStyle  = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	edgePatientStyle = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
)

// Role badge styles.
var (
	badgeUnknownStyle = lipgloss.NewStyle().Foreground(colorDim)
	badgeDoctorStyle  = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	badgePatientStyle = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	badgePausedStyle  = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
)

// Log level styles.
var (
	logInfoStyle    = lipgloss.NewStyle().Foreground(colorCyan)
	logWarningStyle = lipgloss.NewStyle().Foreground(colorYellow)
	logErrorStyle   = lipgloss.NewStyle().Foreground(colorRed)
	logDebugStyle   = lipgloss.NewStyle().Foreground(colorDim)
	logTimeStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// Description feed styles.
var (
	descTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	descTimeStyle  = lipgloss.NewStyle().Foreground(colorDim)
	descBodyStyle  = lipgloss.NewStyle().Foreground(colorWhite)
	descDoneStyle  = lipgloss.NewStyle().Foreground(colorGreen)
)

// Stats styles.
var (
	statLabelStyle = lipgloss.NewStyle().Width(16).Foreground(colorDim)
	statValueStyle = lipgloss.NewStyle().Foreground(colorWhite)

	sectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite)
)

// Key hint styles for status bar.
var (
	keyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	hintStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// Inline error style for the graph panel.
var panelErrorStyle = lipgloss.NewStyle().Foreground(colorRed)
