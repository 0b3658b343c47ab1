package domain

// Service is a single search result.
// Subtitle and ID both carry the bundle path; Title is the display name.
type Service struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ID       string `json:"id"`
}

// NewService builds a Service for the given path and display title.
func NewService(title, path string) Service {
	return Service{
		Title:    title,
		Subtitle: path,
		ID:       path,
	}
}
