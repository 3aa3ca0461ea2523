package glimpse

// Dialog shows blocking modal message boxes.
type Dialog interface {
	// Confirm asks a yes/no question and returns true on yes.
	Confirm(title, text string) bool

	// Error shows an error message with a single OK button.
	Error(title, text string)
}

// SystemDialog returns the message boxes of the operating system.
func SystemDialog() Dialog {
	return systemDialog{}
}

type systemDialog struct{}
