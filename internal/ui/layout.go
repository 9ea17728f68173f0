package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops
	// secondary fields.
	LayoutCompactWidth = 100

	// LayoutActionsWidth is the minimum width to show the actions column.
	LayoutActionsWidth = 70
)

// Table column widths. The name column takes what is left.
const (
	colIDWidth      = 8
	colSalaryWidth  = 14
	colAgeWidth     = 5
	colActionsWidth = 15
	colMinNameWidth = 8
	colGap          = 2
)

// Timing constants.
const (
	// DefaultUIInterval is how often the model re-reads the current page.
	DefaultUIInterval = 500 * time.Millisecond

	// StatusTTL is how long a status message stays in the header.
	StatusTTL = 6 * time.Second
)
