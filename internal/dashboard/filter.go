// Package dashboard slices already-fetched registration data for coordinator
// and admin tables. Everything here is pure: no I/O, input order preserved.
package dashboard

import (
	"sort"
	"strings"

	"fest-proposal-service/internal/model"

	"github.com/google/uuid"
)

// DefaultPageSize is the registration table page size.
const DefaultPageSize = 50

// FilterAllEvents is the event filter wildcard.
const FilterAllEvents = "all"

// reservedEventIDKey is dropped from discovered columns; some historical
// registrations carried the event id inside their form data.
const reservedEventIDKey = "eventId"

// Filter keeps a registration iff the search term occurs (case-insensitive)
// in the textual rendering of its form data, and the event filter matches.
// An empty term and the "all" event id each match everything.
func Filter(registrations []*model.Registration, searchTerm, eventID string) []*model.Registration {
	term := strings.ToLower(searchTerm)

	filtered := make([]*model.Registration, 0, len(registrations))
	for _, reg := range registrations {
		if term != "" && !strings.Contains(strings.ToLower(reg.FormData.Render()), term) {
			continue
		}
		if eventID != FilterAllEvents && reg.EventID.String() != eventID {
			continue
		}
		filtered = append(filtered, reg)
	}
	return filtered
}

// Paginate returns the half-open window [(page-1)*size, page*size) clamped
// to the available length, and the total page count. Callers must re-clamp
// their current page with ClampPage whenever the underlying sequence length
// changes, e.g. after a new filter.
func Paginate(registrations []*model.Registration, page, size int) ([]*model.Registration, int) {
	if size < 1 {
		size = DefaultPageSize
	}
	totalPages := (len(registrations) + size - 1) / size

	start := (page - 1) * size
	if start < 0 {
		start = 0
	}
	if start >= len(registrations) {
		return []*model.Registration{}, totalPages
	}
	end := start + size
	if end > len(registrations) {
		end = len(registrations)
	}
	return registrations[start:end], totalPages
}

// ClampPage forces a page number into [1, max(1, totalPages)].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Columns discovers the data columns for the current page from the FIRST
// record's form data, minus the reserved eventId key. Registrations made
// under an older schema can therefore render inconsistently against newer
// ones; that heuristic is the documented behavior, not derived from the
// event's current schema.
func Columns(page []*model.Registration) []string {
	if len(page) == 0 {
		return []string{}
	}

	columns := make([]string, 0, len(page[0].FormData))
	for key := range page[0].FormData {
		if key == reservedEventIDKey {
			continue
		}
		columns = append(columns, key)
	}
	sort.Strings(columns)
	return columns
}

// EventName resolves an event id against the fetched event list for table
// display; unknown ids render as "-", matching how stale registrations for
// deleted events are shown.
func EventName(events []*model.Event, eventID uuid.UUID) string {
	for _, event := range events {
		if event.ID == eventID {
			return event.Name
		}
	}
	return "-"
}
