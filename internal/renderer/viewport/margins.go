package viewport

// MarginConfig holds scroll margin configuration.
type MarginConfig struct {
	Top    int // Lines to keep above the caret
	Bottom int // Lines to keep below the caret
	Left   int // Columns to keep left of the caret
	Right  int // Columns to keep right of the caret
}

// DefaultMargins returns comfortable margins for large views.
func DefaultMargins() MarginConfig {
	return MarginConfig{
		Top:    5,
		Bottom: 5,
		Left:   10,
		Right:  10,
	}
}

// NoMargins returns zero margins (caret can go to edge). This is the
// editor default.
func NoMargins() MarginConfig {
	return MarginConfig{}
}

// SetMargins sets the scroll margins. Negative values are treated as zero.
func (v *Viewport) SetMargins(config MarginConfig) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.margins = MarginConfig{
		Top:    max(config.Top, 0),
		Bottom: max(config.Bottom, 0),
		Left:   max(config.Left, 0),
		Right:  max(config.Right, 0),
	}
}

// Margins returns the configured margins.
func (v *Viewport) Margins() MarginConfig {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.margins
}

// maxMarginRatio limits margins to 1/3 of viewport dimension to ensure
// there's always usable space in the center.
const maxMarginRatio = 3

// EffectiveMargins returns margins adjusted for viewport size.
func (v *Viewport) EffectiveMargins() MarginConfig {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.effectiveMargins()
}

// effectiveMargins returns clamped margins (internal, no lock).
func (v *Viewport) effectiveMargins() MarginConfig {
	config := v.margins

	maxVertical := v.height / maxMarginRatio
	config.Top = min(config.Top, maxVertical)
	config.Bottom = min(config.Bottom, maxVertical)

	maxHorizontal := v.width / maxMarginRatio
	config.Left = min(config.Left, maxHorizontal)
	config.Right = min(config.Right, maxHorizontal)

	return config
}
