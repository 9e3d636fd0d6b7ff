// Package catalog holds the static datasets behind the browse pages
// (tourism, transport, entertainment, support, connect, map, packages)
// and their filter predicates. All prices are in ZAR, the base currency.
package catalog

import "strings"

type Attraction struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Region      string   `json:"region"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Price       float64  `json:"price"`
	Duration    string   `json:"duration"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
	BestTime    string   `json:"best_time"`
}

type TransportOption struct {
	ID       int      `json:"id"`
	Type     string   `json:"type"`
	Provider string   `json:"provider"`
	Vehicle  string   `json:"vehicle"`
	From     string   `json:"from"`
	To       string   `json:"to"`
	Price    float64  `json:"price"`
	Duration string   `json:"duration"`
	Rating   float64  `json:"rating"`
	Reviews  int      `json:"reviews"`
	Image    string   `json:"image"`
	Features []string `json:"features"`
	Capacity int      `json:"capacity"`
}

type Event struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	City        string  `json:"city"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Location    string  `json:"location"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	Attendees   int     `json:"attendees"`
}

type SupportService struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Service      string   `json:"service"`
	Category     string   `json:"category"`
	Location     string   `json:"location"`
	Rating       float64  `json:"rating"`
	Reviews      int      `json:"reviews"`
	Price        float64  `json:"price"`
	Availability string   `json:"availability"`
	Image        string   `json:"image"`
	Description  string   `json:"description"`
	Skills       []string `json:"skills"`
}

type Post struct {
	ID       int    `json:"id"`
	Author   string `json:"author"`
	Location string `json:"location"`
	Avatar   string `json:"avatar"`
	Content  string `json:"content"`
	Image    string `json:"image"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
	Time     string `json:"time"`
}

type TravelBuddy struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Location        string   `json:"location"`
	Avatar          string   `json:"avatar"`
	Interests       []string `json:"interests"`
	NextDestination string   `json:"next_destination"`
	Languages       []string `json:"languages"`
}

type MapLocation struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Rating  float64 `json:"rating"`
	Reviews int     `json:"reviews"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Image   string  `json:"image"`
}

type Package struct {
	ID         int      `json:"id"`
	Title      string   `json:"title"`
	Duration   string   `json:"duration"`
	Price      float64  `json:"price"`
	Rating     float64  `json:"rating"`
	Image      string   `json:"image"`
	Includes   []string `json:"includes"`
	Highlights []string `json:"highlights"`
}

// ─── Filters ──────────────────────────────────────────────────────────────────
//
// Each filter is a single predicate over the in-memory dataset with AND
// semantics across fields. "all" (or an empty value) matches everything.

func matches(filter, value string) bool {
	return filter == "" || filter == "all" || filter == value
}

func FilterAttractions(category, region string) []Attraction {
	out := make([]Attraction, 0, len(Attractions))
	for _, a := range Attractions {
		if matches(category, a.Category) && matches(region, a.Region) {
			out = append(out, a)
		}
	}
	return out
}

func FilterTransport(transportType string) []TransportOption {
	out := make([]TransportOption, 0, len(TransportOptions))
	for _, t := range TransportOptions {
		if matches(transportType, t.Type) {
			out = append(out, t)
		}
	}
	return out
}

func FilterEvents(category, city string) []Event {
	out := make([]Event, 0, len(Events))
	for _, e := range Events {
		if matches(category, e.Category) && matches(city, e.City) {
			out = append(out, e)
		}
	}
	return out
}

func FilterServices(category, search string) []SupportService {
	search = strings.ToLower(search)
	out := make([]SupportService, 0, len(Services))
	for _, s := range Services {
		if !matches(category, s.Category) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(s.Name), search) &&
			!strings.Contains(strings.ToLower(s.Service), search) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func FilterMapLocations(locationType, search string) []MapLocation {
	search = strings.ToLower(search)
	out := make([]MapLocation, 0, len(MapLocations))
	for _, l := range MapLocations {
		if !matches(locationType, l.Type) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(l.Name), search) &&
			!strings.Contains(strings.ToLower(l.City), search) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// PackageByID returns the recommended package with the given id.
func PackageByID(id int) (Package, bool) {
	for _, p := range Packages {
		if p.ID == id {
			return p, true
		}
	}
	return Package{}, false
}
