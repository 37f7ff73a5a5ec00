package tui

// Button is a main-menu button with hover and press states, rendered with
// the looks of a [Theme].
type Button struct {
	label   string
	hovered bool
	pressed bool
}

// NewButton returns a button in its normal state.
func NewButton(label string) Button {
	return Button{label: label}
}

// Label returns the button text.
func (b Button) Label() string {
	return b.label
}

// Hovered reports whether the pointer or the keyboard focus is on the button.
func (b Button) Hovered() bool {
	return b.hovered
}

// Pressed reports whether the button is held down.
func (b Button) Pressed() bool {
	return b.pressed
}

// View renders the button; pressed takes precedence over hovered.
func (b Button) View(theme Theme) string {
	switch {
	case b.pressed:
		return theme.Pressed.Render(b.label)
	case b.hovered:
		return theme.Hovered.Render(b.label)
	default:
		return theme.Normal.Render(b.label)
	}
}
