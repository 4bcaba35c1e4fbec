// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package knowledge holds the curated temporal knowledge base the
// generator draws from. The base is loaded once and read-only thereafter;
// it is shared across all batches and question types.
package knowledge

import (
	"fmt"
	"io"

	"github.com/hjy895/MegaTempQA/pkg/types"
)

// Base is the in-memory knowledge base: three ordered collections of
// curated entities.
type Base struct {
	Events        []types.Event
	People        []types.Person
	Organizations []types.Organization
}

// Load populates the base from the curated tables and reports counts to w.
func Load(w io.Writer) *Base {
	fmt.Fprintln(w, "Loading knowledge base...")
	b := &Base{
		Events:        curatedEvents(),
		People:        curatedPeople(),
		Organizations: curatedOrganizations(),
	}
	fmt.Fprintf(w, "Loaded: %d events, %d people, %d organizations\n",
		len(b.Events), len(b.People), len(b.Organizations))
	return b
}

// Stats holds entity counts per collection.
type Stats struct {
	Events        int `json:"events" yaml:"events"`
	People        int `json:"people" yaml:"people"`
	Organizations int `json:"organizations" yaml:"organizations"`
}

// Stats returns entity counts for reporting.
func (b *Base) Stats() Stats {
	return Stats{
		Events:        len(b.Events),
		People:        len(b.People),
		Organizations: len(b.Organizations),
	}
}

// EventsInDomain returns the events whose domain matches and whose start
// year falls within the inclusive [startYear, endYear] range.
func (b *Base) EventsInDomain(domain string, startYear, endYear int) []types.Event {
	var out []types.Event
	for _, e := range b.Events {
		if e.Domain == domain && e.Year >= startYear && e.Year <= endYear {
			out = append(out, e)
		}
	}
	return out
}

// PeopleInField returns the people whose field matches and whose birth
// year falls within the inclusive [startYear, endYear] range.
func (b *Base) PeopleInField(field string, startYear, endYear int) []types.Person {
	var out []types.Person
	for _, p := range b.People {
		if p.Field == field && p.BirthYear >= startYear && p.BirthYear <= endYear {
			out = append(out, p)
		}
	}
	return out
}
