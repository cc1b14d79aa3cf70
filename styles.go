package madlibs

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for all visual elements of the form and story.
type Styles struct {
	Title       ColorPair // Form and story headings
	Label       ColorPair // Input field labels
	Input       ColorPair // Text typed into the focused field
	Placeholder ColorPair // Placeholder text in empty fields
	Story       ColorPair // Literal story text
	Slot        ColorPair // Words substituted into the story
	Help        ColorPair // Key help line
	Status      ColorPair // Transient status messages
}

// Theme provides styles for rendering the form and story.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
}
