package dispatch

import (
	"strings"
	"testing"
)

func TestSummary(t *testing.T) {
	d := Decision{
		GarageName:         "Bay Area Auto Repair",
		GarageAddress:      "1234 Mission St, San Francisco, CA",
		ServiceType:        ServiceTowTruck,
		EstimatedArrival:   "15-20 minutes",
		AdditionalServices: []string{"rental_car"},
		Priority:           "high",
	}

	got := Summary(d, "John Doe")

	wants := []string{
		"Dispatch Summary for John Doe:",
		"• Service: Tow Truck",
		"• Garage: Bay Area Auto Repair",
		"• Location: 1234 Mission St, San Francisco, CA",
		"• ETA: 15-20 minutes",
		"• Priority: HIGH",
		"• Additional Services: Rental Car",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestSummary_FieldOrder(t *testing.T) {
	d := Decision{
		GarageName:       "Oakland Quick Fix",
		GarageAddress:    "567 Broadway, Oakland, CA",
		ServiceType:      ServiceRepairTruck,
		EstimatedArrival: "10-15 minutes",
		Priority:         "normal",
	}
	got := Summary(d, "Jane")

	order := []string{"Jane", "Repair Truck", "Oakland Quick Fix", "567 Broadway", "10-15 minutes", "NORMAL"}
	last := -1
	for _, token := range order {
		idx := strings.Index(got, token)
		if idx < 0 {
			t.Fatalf("summary missing %q:\n%s", token, got)
		}
		if idx < last {
			t.Errorf("%q appears out of order:\n%s", token, got)
		}
		last = idx
	}
}

func TestSummary_OmitsEmptyAdditionalServices(t *testing.T) {
	d := Decision{
		GarageName:       "Oakland Quick Fix",
		GarageAddress:    "567 Broadway, Oakland, CA",
		ServiceType:      ServiceRepairTruck,
		EstimatedArrival: "10-15 minutes",
		Priority:         "normal",
	}
	if got := Summary(d, "Jane"); strings.Contains(got, "Additional Services") {
		t.Errorf("summary should omit the additional-services line when empty:\n%s", got)
	}
}

func TestSummary_MultipleAdditionalServices(t *testing.T) {
	d := Decision{
		GarageName:         "South Bay Towing & Repair",
		GarageAddress:      "321 First St, San Jose, CA",
		ServiceType:        ServiceTowTruck,
		EstimatedArrival:   "25-35 minutes",
		AdditionalServices: []string{"taxi", "rental_car"},
		Priority:           "urgent",
	}
	got := Summary(d, "Sam")
	if !strings.Contains(got, "Additional Services: Taxi, Rental Car") {
		t.Errorf("unexpected additional services rendering:\n%s", got)
	}
}
