// README: Provider registry loaded once from garages.json; read-only afterwards.
package dispatch

import (
	"encoding/json"
	"fmt"
	"os"

	"roadside/internal/types"
)

// Registry holds the garages and dispatch rules. It is loaded once at
// startup and never mutated, so concurrent Decide calls read it without
// synchronization. A hot-reload, if ever added, must swap the whole
// Registry pointer rather than touch records in place.
type Registry struct {
	garages []Garage
	rules   map[IssueCategory]Rule
}

type garageDoc struct {
	Name             string   `json:"name"`
	Address          string   `json:"address"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	Services         []string `json:"services"`
	EstimatedArrival string   `json:"estimated_arrival"`
}

type ruleDoc struct {
	ServiceType        string   `json:"service_type"`
	RequiredService    string   `json:"required_service"`
	Priority           string   `json:"priority"`
	AdditionalServices []string `json:"additional_services"`
}

type registryDoc struct {
	Garages       []garageDoc        `json:"garages"`
	DispatchRules map[string]ruleDoc `json:"dispatch_rules"`
}

// LoadRegistry reads and validates the registry document. Any problem is
// a fatal configuration error for the caller: the engine must never run
// against a partially loaded registry.
func LoadRegistry(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("registry: read %s: %w", path, err)
	}

	var doc registryDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("registry: parse %s: %w", path, err)
	}
	if len(doc.Garages) == 0 {
		return nil, fmt.Errorf("registry: %s contains no garages", path)
	}

	garages := make([]Garage, 0, len(doc.Garages))
	for i, g := range doc.Garages {
		if g.Latitude < -90 || g.Latitude > 90 || g.Longitude < -180 || g.Longitude > 180 {
			return nil, fmt.Errorf("registry: garage %d (%q): coordinate out of range (%f, %f)",
				i, g.Name, g.Latitude, g.Longitude)
		}
		garages = append(garages, Garage{
			Name:             g.Name,
			Address:          g.Address,
			Position:         types.Point{Lat: g.Latitude, Lng: g.Longitude},
			Services:         g.Services,
			EstimatedArrival: g.EstimatedArrival,
		})
	}

	rules := make(map[IssueCategory]Rule, len(doc.DispatchRules))
	for cat, r := range doc.DispatchRules {
		st := ServiceType(r.ServiceType)
		if st != ServiceTowTruck && st != ServiceRepairTruck {
			return nil, fmt.Errorf("registry: rule %q: unknown service_type %q", cat, r.ServiceType)
		}
		if r.RequiredService == "" {
			return nil, fmt.Errorf("registry: rule %q: missing required_service", cat)
		}
		rules[IssueCategory(cat)] = Rule{
			ServiceType:        st,
			RequiredService:    r.RequiredService,
			Priority:           r.Priority,
			AdditionalServices: r.AdditionalServices,
		}
	}

	return &Registry{garages: garages, rules: rules}, nil
}

// Garages returns the providers in registry order. The slice is shared;
// callers must not modify it.
func (r *Registry) Garages() []Garage {
	return r.garages
}

// RuleFor returns the dispatch rule for a category. The second result is
// false when the category has no rule, which the engine reports as a
// no-decision outcome rather than an error.
func (r *Registry) RuleFor(cat IssueCategory) (Rule, bool) {
	rule, ok := r.rules[cat]
	return rule, ok
}
