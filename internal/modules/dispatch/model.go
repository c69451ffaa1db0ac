// README: Dispatch domain model: issue categories, garages, rules, decisions.
package dispatch

import "roadside/internal/types"

// IssueCategory is the fixed taxonomy the classifier maps free text onto.
type IssueCategory string

const (
	IssueFlatTire     IssueCategory = "flat_tire"
	IssueBatteryDead  IssueCategory = "battery_dead"
	IssueEngineFail   IssueCategory = "engine_failure"
	IssueTransmission IssueCategory = "transmission_issue"
	IssueAccident     IssueCategory = "accident_damage"
)

// ServiceType is the kind of vehicle dispatched to the customer.
type ServiceType string

const (
	ServiceTowTruck    ServiceType = "tow_truck"
	ServiceRepairTruck ServiceType = "repair_truck"
)

// Garage is a service provider loaded from the registry document.
// Treated as immutable for the lifetime of the process. Names are not
// required to be unique; duplicates are evaluated independently.
type Garage struct {
	Name             string
	Address          string
	Position         types.Point
	Services         []string
	EstimatedArrival string
}

// offers reports whether the garage provides the named capability.
func (g Garage) offers(capability string) bool {
	for _, s := range g.Services {
		if s == capability {
			return true
		}
	}
	return false
}

// Rule maps an issue category to the service to dispatch.
type Rule struct {
	ServiceType        ServiceType
	RequiredService    string
	Priority           string
	AdditionalServices []string
}

// Decision is the immutable outcome of a dispatch request. It is a
// point-in-time snapshot: later registry changes never alter an
// already-issued decision.
type Decision struct {
	GarageName         string      `json:"garage_name"`
	GarageAddress      string      `json:"garage_address"`
	ServiceType        ServiceType `json:"service_type"`
	EstimatedArrival   string      `json:"estimated_arrival"`
	AdditionalServices []string    `json:"additional_services"`
	Priority           string      `json:"priority"`
}
