package domain

// Stats and Report are passed through from the backend untouched; their keys
// are decided by the backend and only read by templates.
type (
	Stats  map[string]any
	Report map[string]any
)
