// Package catalog merges the compiled-in event list with events fetched
// from the backend and applies the category/city/search filters. Ids are
// namespaced by source so a backend id colliding with a built-in entry can
// never alias it.
package catalog

import (
	"fmt"
	"strings"

	"github.com/avryabov/eventhub-cli/internal/client/models"
)

// Source tells which side an entry came from.
type Source string

const (
	SourceBuiltin Source = "builtin"
	SourceRemote  Source = "remote"
)

// FilterAll is the sentinel meaning "no restriction" for category and city.
const FilterAll = "all"

// Entry is a catalog event tagged with its provenance.
type Entry struct {
	models.Event
	Source Source
}

// Key is the source-namespaced identifier, e.g. "remote:42". Saved-event
// records use it so the two id spaces cannot collide.
func (e Entry) Key() string {
	return fmt.Sprintf("%s:%d", e.Source, e.ID)
}

// Filter is the catalog predicate. Zero values ("" or FilterAll) match
// everything for their field.
type Filter struct {
	Category string
	City     string
	Query    string
}

// Matches reports whether e passes all three conditions: category, city,
// and a case-insensitive substring search over title and description.
func (f Filter) Matches(e Entry) bool {
	if f.Category != "" && f.Category != FilterAll && string(e.Category) != f.Category {
		return false
	}
	if f.City != "" && f.City != FilterAll && e.City != f.City {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(e.Title), q) &&
			!strings.Contains(strings.ToLower(e.Description), q) {
			return false
		}
	}
	return true
}

// Catalog holds the two event sources. Built-in entries are fixed at
// construction; remote entries are replaced wholesale on each refresh.
type Catalog struct {
	builtin []Entry
	remote  []Entry
}

func New() *Catalog {
	return &Catalog{builtin: builtinEvents()}
}

// SetRemote replaces the fetched event set.
func (c *Catalog) SetRemote(events []models.Event) {
	entries := make([]Entry, 0, len(events))
	for _, e := range events {
		entries = append(entries, Entry{Event: e, Source: SourceRemote})
	}
	c.remote = entries
}

// Events returns the merged list: built-in first, then fetched, by
// concatenation. No deduplication across sources; keys keep them apart.
func (c *Catalog) Events() []Entry {
	merged := make([]Entry, 0, len(c.builtin)+len(c.remote))
	merged = append(merged, c.builtin...)
	merged = append(merged, c.remote...)
	return merged
}

// Filter returns exactly the subset of merged events matching f.
func (c *Catalog) Filter(f Filter) []Entry {
	var out []Entry
	for _, e := range c.Events() {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// Find looks an entry up by its namespaced key.
func (c *Catalog) Find(key string) (Entry, bool) {
	for _, e := range c.Events() {
		if e.Key() == key {
			return e, true
		}
	}
	return Entry{}, false
}

// CountByCity returns how many merged events are in the given city.
func (c *Catalog) CountByCity(city string) int {
	n := 0
	for _, e := range c.Events() {
		if e.City == city {
			n++
		}
	}
	return n
}
