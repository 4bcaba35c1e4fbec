// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Event is a curated historical event. Year and EndYear are equal for
// point events; EndYear >= Year holds for ranged events.
type Event struct {
	// ID is a stable identifier of the form EVENT_<n>.
	ID string `json:"id" yaml:"id"`

	// Name is the display name used in question text.
	Name string `json:"name" yaml:"name"`

	// Year is the start (or only) year of the event.
	Year int `json:"year" yaml:"year"`

	// EndYear is the final year of the event; equals Year for point events.
	EndYear int `json:"end_year" yaml:"end_year"`

	// Location is the country or region where the event took place.
	Location string `json:"location" yaml:"location"`

	// Casualties is the approximate death toll; zero for non-violent events.
	Casualties int `json:"casualties" yaml:"casualties"`

	// Domain tags the event category (military, science, politics, ...).
	Domain string `json:"domain" yaml:"domain"`

	// Source records where the entry came from.
	Source string `json:"source" yaml:"source"`
}

// Ranged reports whether the event spans more than one year.
func (e Event) Ranged() bool {
	return e.EndYear > e.Year
}

// Person is a curated notable figure.
type Person struct {
	ID string `json:"id" yaml:"id"`

	Name string `json:"name" yaml:"name"`

	BirthYear int `json:"birth_year" yaml:"birth_year"`

	// DeathYear is zero for living people.
	DeathYear int `json:"death_year,omitempty" yaml:"death_year,omitempty"`

	Country string `json:"country" yaml:"country"`

	// Field tags the person's area (Physics, Politics, Technology, ...).
	Field string `json:"field" yaml:"field"`

	Source string `json:"source" yaml:"source"`
}

// Organization is a curated institution or company.
type Organization struct {
	ID string `json:"id" yaml:"id"`

	Name string `json:"name" yaml:"name"`

	InceptionYear int `json:"inception_year" yaml:"inception_year"`

	Country string `json:"country" yaml:"country"`

	// Type describes the organization kind (Space Agency, Technology Company, ...).
	Type string `json:"type" yaml:"type"`

	Source string `json:"source" yaml:"source"`
}
