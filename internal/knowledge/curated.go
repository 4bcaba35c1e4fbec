// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package knowledge

import (
	"fmt"

	"github.com/hjy895/MegaTempQA/pkg/types"
)

// curatedEvents returns the fixed event table. IDs are assigned from the
// slice position so re-loads are stable.
func curatedEvents() []types.Event {
	events := []types.Event{
		// Major wars.
		{Name: "World War I", Year: 1914, EndYear: 1918, Location: "Europe", Casualties: 17_000_000, Domain: "military"},
		{Name: "World War II", Year: 1939, EndYear: 1945, Location: "Global", Casualties: 75_000_000, Domain: "military"},
		{Name: "Korean War", Year: 1950, EndYear: 1953, Location: "Korea", Casualties: 3_000_000, Domain: "military"},
		{Name: "Vietnam War", Year: 1955, EndYear: 1975, Location: "Vietnam", Casualties: 3_800_000, Domain: "military"},

		// Space exploration.
		{Name: "Sputnik Launch", Year: 1957, Location: "Soviet Union", Domain: "science"},
		{Name: "Moon Landing", Year: 1969, Location: "United States", Domain: "science"},
		{Name: "First Human in Space", Year: 1961, Location: "Soviet Union", Domain: "science"},

		// Natural disasters.
		{Name: "2004 Indian Ocean Tsunami", Year: 2004, Location: "Indian Ocean", Casualties: 280_000, Domain: "disaster"},
		{Name: "Hurricane Katrina", Year: 2005, Location: "United States", Casualties: 1_800, Domain: "disaster"},
		{Name: "Haiti Earthquake", Year: 2010, Location: "Haiti", Casualties: 316_000, Domain: "disaster"},

		// Modern events.
		{Name: "September 11 Attacks", Year: 2001, Location: "United States", Casualties: 3_000, Domain: "terrorism"},
		{Name: "COVID-19 Pandemic", Year: 2020, Location: "Global", Casualties: 7_000_000, Domain: "health"},
		{Name: "Arab Spring", Year: 2011, Location: "Middle East", Casualties: 100_000, Domain: "politics"},

		// Technology.
		{Name: "Internet Creation", Year: 1989, Location: "Global", Domain: "technology"},
		{Name: "iPhone Launch", Year: 2007, Location: "United States", Domain: "technology"},
		{Name: "Facebook Launch", Year: 2004, Location: "United States", Domain: "technology"},
	}

	for i := range events {
		events[i].ID = fmt.Sprintf("EVENT_%d", i)
		if events[i].EndYear == 0 {
			events[i].EndYear = events[i].Year
		}
		events[i].Source = types.SourceCurated
	}
	return events
}

// curatedPeople returns the fixed people table. DeathYear zero means the
// person is living.
func curatedPeople() []types.Person {
	people := []types.Person{
		// Scientists.
		{Name: "Albert Einstein", BirthYear: 1879, DeathYear: 1955, Country: "Germany", Field: "Physics"},
		{Name: "Marie Curie", BirthYear: 1867, DeathYear: 1934, Country: "Poland", Field: "Chemistry"},
		{Name: "Stephen Hawking", BirthYear: 1942, DeathYear: 2018, Country: "United Kingdom", Field: "Physics"},

		// Politicians.
		{Name: "Winston Churchill", BirthYear: 1874, DeathYear: 1965, Country: "United Kingdom", Field: "Politics"},
		{Name: "Nelson Mandela", BirthYear: 1918, DeathYear: 2013, Country: "South Africa", Field: "Politics"},
		{Name: "John F. Kennedy", BirthYear: 1917, DeathYear: 1963, Country: "United States", Field: "Politics"},

		// Technology.
		{Name: "Steve Jobs", BirthYear: 1955, DeathYear: 2011, Country: "United States", Field: "Technology"},
		{Name: "Bill Gates", BirthYear: 1955, Country: "United States", Field: "Technology"},
		{Name: "Elon Musk", BirthYear: 1971, Country: "United States", Field: "Technology"},
	}

	for i := range people {
		people[i].ID = fmt.Sprintf("PERSON_%d", i)
		people[i].Source = types.SourceCurated
	}
	return people
}

func curatedOrganizations() []types.Organization {
	orgs := []types.Organization{
		{Name: "United Nations", InceptionYear: 1945, Country: "International", Type: "International Organization"},
		{Name: "NASA", InceptionYear: 1958, Country: "United States", Type: "Space Agency"},
		{Name: "Apple Inc.", InceptionYear: 1976, Country: "United States", Type: "Technology Company"},
		{Name: "Microsoft Corporation", InceptionYear: 1975, Country: "United States", Type: "Technology Company"},
		{Name: "Google", InceptionYear: 1998, Country: "United States", Type: "Technology Company"},
	}

	for i := range orgs {
		orgs[i].ID = fmt.Sprintf("ORG_%d", i)
		orgs[i].Source = types.SourceCurated
	}
	return orgs
}
