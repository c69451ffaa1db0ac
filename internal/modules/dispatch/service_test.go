package dispatch

import (
	"context"
	"reflect"
	"testing"

	"roadside/internal/types"
)

func testRegistry() *Registry {
	return &Registry{
		garages: []Garage{
			{
				Name:             "Bay Area Auto Repair",
				Address:          "1234 Mission St, San Francisco, CA",
				Position:         types.Point{Lat: 37.7849, Lng: -122.4074},
				Services:         []string{"tire_repair", "battery_replacement", "towing", "engine_repair"},
				EstimatedArrival: "15-20 minutes",
			},
			{
				Name:             "Oakland Quick Fix",
				Address:          "567 Broadway, Oakland, CA",
				Position:         types.Point{Lat: 37.8050, Lng: -122.2708},
				Services:         []string{"tire_repair", "battery_replacement", "towing"},
				EstimatedArrival: "10-15 minutes",
			},
			{
				Name:             "Peninsula Motors",
				Address:          "890 El Camino Real, Palo Alto, CA",
				Position:         types.Point{Lat: 37.4430, Lng: -122.1650},
				Services:         []string{"engine_repair", "transmission_repair", "towing"},
				EstimatedArrival: "20-30 minutes",
			},
			{
				Name:             "South Bay Towing & Repair",
				Address:          "321 First St, San Jose, CA",
				Position:         types.Point{Lat: 37.3380, Lng: -121.8850},
				Services:         []string{"towing", "engine_repair", "accident_recovery", "tire_repair"},
				EstimatedArrival: "25-35 minutes",
			},
		},
		rules: map[IssueCategory]Rule{
			IssueFlatTire:    {ServiceType: ServiceRepairTruck, RequiredService: "tire_repair", Priority: "normal"},
			IssueBatteryDead: {ServiceType: ServiceRepairTruck, RequiredService: "battery_replacement", Priority: "normal"},
			IssueEngineFail:  {ServiceType: ServiceTowTruck, RequiredService: "towing", Priority: "high", AdditionalServices: []string{"taxi"}},
			IssueTransmission: {ServiceType: ServiceTowTruck, RequiredService: "towing", Priority: "high", AdditionalServices: []string{"rental_car"}},
			IssueAccident:    {ServiceType: ServiceTowTruck, RequiredService: "accident_recovery", Priority: "urgent", AdditionalServices: []string{"taxi", "rental_car"}},
		},
	}
}

func TestDecide_Scenarios(t *testing.T) {
	svc := NewService(testRegistry(), KeywordGeocoder{})
	ctx := context.Background()

	tests := []struct {
		name        string
		location    string
		issue       string
		wantGarage  string
		wantService ServiceType
	}{
		{
			name:        "flat tire in San Francisco",
			location:    "San Francisco, CA",
			issue:       "I have a flat tire",
			wantGarage:  "Bay Area Auto Repair",
			wantService: ServiceRepairTruck,
		},
		{
			name:        "dead battery in Oakland",
			location:    "Oakland, CA",
			issue:       "My battery is dead",
			wantGarage:  "Oakland Quick Fix",
			wantService: ServiceRepairTruck,
		},
		{
			name:        "smoking engine on Highway 101",
			location:    "Highway 101",
			issue:       "Engine is smoking",
			wantGarage:  "Bay Area Auto Repair",
			wantService: ServiceTowTruck,
		},
		{
			name:        "transmission near Stanford tows from Palo Alto",
			location:    "near Stanford",
			issue:       "stuck in gear",
			wantGarage:  "Peninsula Motors",
			wantService: ServiceTowTruck,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := svc.Decide(ctx, tt.location, tt.issue)
			if !ok {
				t.Fatalf("Decide(%q, %q) = no decision", tt.location, tt.issue)
			}
			if d.GarageName != tt.wantGarage {
				t.Errorf("garage = %q, want %q", d.GarageName, tt.wantGarage)
			}
			if d.ServiceType != tt.wantService {
				t.Errorf("service = %q, want %q", d.ServiceType, tt.wantService)
			}
		})
	}
}

func TestDecide_NoRuleForCategory(t *testing.T) {
	reg := testRegistry()
	delete(reg.rules, IssueTransmission)
	svc := NewService(reg, KeywordGeocoder{})

	if _, ok := svc.Decide(context.Background(), "Oakland", "transmission trouble"); ok {
		t.Errorf("Decide() produced a decision for a category without a rule")
	}
}

func TestDecide_NoCapableGarage(t *testing.T) {
	reg := testRegistry()
	// Only the San Jose garage handles accidents; take it out of play.
	reg.garages = reg.garages[:3]
	svc := NewService(reg, KeywordGeocoder{})

	if _, ok := svc.Decide(context.Background(), "San Francisco", "I was in a crash"); ok {
		t.Errorf("Decide() produced a decision with no capable garage")
	}
}

func TestDecide_Deterministic(t *testing.T) {
	svc := NewService(testRegistry(), KeywordGeocoder{})
	ctx := context.Background()

	d1, ok1 := svc.Decide(ctx, "Palo Alto", "engine overheating")
	d2, ok2 := svc.Decide(ctx, "Palo Alto", "engine overheating")
	if !ok1 || !ok2 {
		t.Fatalf("expected decisions, got ok1=%v ok2=%v", ok1, ok2)
	}
	if !reflect.DeepEqual(d1, d2) {
		t.Errorf("identical inputs produced different decisions:\n%+v\n%+v", d1, d2)
	}
}

// Equidistant garages resolve to the one listed first in the registry.
func TestDecide_TieBreakRegistryOrder(t *testing.T) {
	pos := types.Point{Lat: 37.7749, Lng: -122.4194}
	reg := &Registry{
		garages: []Garage{
			{Name: "First Listed", Address: "a", Position: pos, Services: []string{"towing"}, EstimatedArrival: "5 minutes"},
			{Name: "Second Listed", Address: "b", Position: pos, Services: []string{"towing"}, EstimatedArrival: "5 minutes"},
		},
		rules: map[IssueCategory]Rule{
			IssueEngineFail: {ServiceType: ServiceTowTruck, RequiredService: "towing", Priority: "high"},
		},
	}
	svc := NewService(reg, KeywordGeocoder{})

	d, ok := svc.Decide(context.Background(), "San Francisco", "engine trouble")
	if !ok {
		t.Fatalf("expected a decision")
	}
	if d.GarageName != "First Listed" {
		t.Errorf("tie-break picked %q, want %q", d.GarageName, "First Listed")
	}
}

// The decision must be a snapshot: its service list is not aliased to the
// registry's rule data.
func TestDecide_DecisionIsSnapshot(t *testing.T) {
	svc := NewService(testRegistry(), KeywordGeocoder{})
	ctx := context.Background()

	d1, ok := svc.Decide(ctx, "San Jose", "collision on the ramp")
	if !ok {
		t.Fatalf("expected a decision")
	}
	d1.AdditionalServices[0] = "mutated"

	d2, _ := svc.Decide(ctx, "San Jose", "collision on the ramp")
	if d2.AdditionalServices[0] != "taxi" {
		t.Errorf("rule data leaked through decision snapshot: %v", d2.AdditionalServices)
	}
}
