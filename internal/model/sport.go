// Package model defines the core domain models used throughout the application.
package model

// Sport is a static reference entity loaded once at startup.
type Sport struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// Team identifies one side of an event.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Event is a transient query parameter describing a single fixture.
// It is never persisted; TeamA.ID != TeamB.ID must hold before any
// inference request is constructed.
type Event struct {
	ID    string `json:"id"`
	Sport string `json:"sport"`
	Date  string `json:"date"` // ISO calendar date (YYYY-MM-DD)
	TeamA Team   `json:"teamA"`
	TeamB Team   `json:"teamB"`
}
