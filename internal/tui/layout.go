package tui

// CardLayout holds calculated dimensions for the milestone card grid.
type CardLayout struct {
	// Columns is the number of cards per row.
	Columns int
	// CardWidth is the outer width of one card.
	CardWidth int
	// ContentHeight is the height available below the header and above the footer.
	ContentHeight int
}

// LayoutManager calculates the card grid based on terminal size.
type LayoutManager struct {
	totalWidth   int
	totalHeight  int
	headerHeight int
	footerHeight int
}

// NewLayoutManager creates a new LayoutManager with the given terminal dimensions.
func NewLayoutManager(width, height int) *LayoutManager {
	return &LayoutManager{
		totalWidth:   width,
		totalHeight:  height,
		headerHeight: 4,
		footerHeight: 1,
	}
}

// SetSize updates the terminal dimensions.
func (l *LayoutManager) SetSize(width, height int) {
	l.totalWidth = width
	l.totalHeight = height
}

// SetHeaderHeight sets the header height (use 0 to disable header).
func (l *LayoutManager) SetHeaderHeight(height int) {
	l.headerHeight = height
}

// Calculate returns the card grid for the current terminal size and card count.
// Narrow terminals get one column; wide ones up to three.
func (l *LayoutManager) Calculate(cards int) CardLayout {
	const (
		minCardWidth = 40
		maxColumns   = 3
	)

	cols := l.totalWidth / minCardWidth
	if cols > maxColumns {
		cols = maxColumns
	}
	if cards > 0 && cols > cards {
		cols = cards
	}
	if cols < 1 {
		cols = 1
	}

	cardWidth := l.totalWidth / cols
	if cardWidth < 20 {
		cardWidth = 20
	}

	contentHeight := l.totalHeight - l.headerHeight - l.footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	return CardLayout{
		Columns:       cols,
		CardWidth:     cardWidth,
		ContentHeight: contentHeight,
	}
}

// TotalWidth returns the current terminal width.
func (l *LayoutManager) TotalWidth() int {
	return l.totalWidth
}
