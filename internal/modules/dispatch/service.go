// README: Dispatch decision engine: classify, resolve, filter, rank, decide.
package dispatch

import (
	"context"
)

// Service composes the classifier, geocoder and registry into the
// decision engine. It holds no mutable state and performs no I/O, so a
// single instance is safe for any number of concurrent callers.
type Service struct {
	registry *Registry
	geocoder Geocoder
}

func NewService(registry *Registry, geocoder Geocoder) *Service {
	return &Service{registry: registry, geocoder: geocoder}
}

// Decide selects the garage for the given location and issue. The second
// result is false when no dispatch is possible: either the issue category
// has no rule or no garage offers the required capability. Both are
// expected business outcomes (hold for manual dispatch), not errors.
//
// Ties on distance go to the garage that appears first in the registry.
// Rating or quality signals are deliberately not consulted.
func (s *Service) Decide(ctx context.Context, location, issue string) (Decision, bool) {
	category := Classify(issue)

	rule, ok := s.registry.RuleFor(category)
	if !ok {
		return Decision{}, false
	}

	customer := s.geocoder.Resolve(ctx, location)

	var best *Garage
	var bestDist float64
	for i := range s.registry.Garages() {
		g := &s.registry.Garages()[i]
		if !g.offers(rule.RequiredService) {
			continue
		}
		d := haversineKm(customer, g.Position)
		if best == nil || d < bestDist {
			best = g
			bestDist = d
		}
	}
	if best == nil {
		return Decision{}, false
	}

	// Copy the rule's service list so the decision stays a snapshot even
	// if a future registry swap reuses backing arrays.
	extras := make([]string, len(rule.AdditionalServices))
	copy(extras, rule.AdditionalServices)

	return Decision{
		GarageName:         best.Name,
		GarageAddress:      best.Address,
		ServiceType:        rule.ServiceType,
		EstimatedArrival:   best.EstimatedArrival,
		AdditionalServices: extras,
		Priority:           rule.Priority,
	}, true
}
