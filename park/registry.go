package park

import (
	"fmt"
	"slices"

	"parksim/constants"
	"parksim/logidx"
	"parksim/tariff"
)

// Registry tracks every live park in creation order. Listing follows that
// order; only removal output re-sorts alphabetically.
type Registry struct {
	parks []*Park
	limit int
	topts logidx.Options
}

// NewRegistry builds an empty registry holding at most limit parks. A
// non-positive limit selects constants.MaxParks. Every park created
// through the registry gets a log table with the given options.
func NewRegistry(limit int, topts logidx.Options) *Registry {
	if limit <= 0 {
		limit = constants.MaxParks
	}
	return &Registry{
		parks: make([]*Park, 0, limit),
		limit: limit,
		topts: topts,
	}
}

// Len returns the number of live parks.
func (r *Registry) Len() int { return len(r.parks) }

// Get finds a park by exact name.
func (r *Registry) Get(name string) (*Park, bool) {
	for _, p := range r.parks {
		if p.name == name {
			return p, true
		}
	}
	return nil, false
}

// Add creates a park. Checks run in a fixed order and the first failure
// wins: duplicate name, then capacity, then tariff, then the park limit.
// The returned error text is the protocol line to print.
func (r *Registry) Add(name string, capacity int, fee tariff.Tariff) (*Park, error) {
	if _, ok := r.Get(name); ok {
		return nil, fmt.Errorf("%s: %w", name, ErrParkExists)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("%d: %w", capacity, ErrInvalidCapacity)
	}
	if !fee.Valid() {
		return nil, ErrInvalidTariff
	}
	if len(r.parks) >= r.limit {
		return nil, ErrTooManyParks
	}
	p := newPark(name, capacity, fee, r.topts)
	r.parks = append(r.parks, p)
	return p, nil
}

// Remove deletes a park and its whole movement history; the records go to
// the collector with the table. The creation order of the remaining parks
// is preserved, and the freed slot becomes available again.
func (r *Registry) Remove(name string) error {
	for i, p := range r.parks {
		if p.name == name {
			r.parks = append(r.parks[:i], r.parks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%s: %w", name, ErrNoSuchPark)
}

// Each visits every park in creation order.
func (r *Registry) Each(fn func(*Park)) {
	for _, p := range r.parks {
		fn(p)
	}
}

// NamesSorted returns the live park names in alphabetical order, as the
// removal acknowledgement prints them.
func (r *Registry) NamesSorted() []string {
	names := make([]string, len(r.parks))
	for i, p := range r.parks {
		names[i] = p.name
	}
	slices.Sort(names)
	return names
}

// OpenAnywhere reports whether the plate has an open session in any park.
// Entry validation uses it: a vehicle cannot be in two parks at once.
func (r *Registry) OpenAnywhere(plateStr string) bool {
	for _, p := range r.parks {
		if p.HasOpen(plateStr) {
			return true
		}
	}
	return false
}
