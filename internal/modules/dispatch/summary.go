// README: Human-readable dispatch summary rendering.
package dispatch

import "strings"

// Summary renders a dispatch notice for the customer. Output is
// deterministic; the customer name is used as given.
func Summary(d Decision, customerName string) string {
	serviceName := "tow truck"
	if d.ServiceType == ServiceRepairTruck {
		serviceName = "repair truck"
	}

	var b strings.Builder
	b.WriteString("Dispatch Summary for " + customerName + ":\n")
	b.WriteString("• Service: " + titleCase(serviceName) + "\n")
	b.WriteString("• Garage: " + d.GarageName + "\n")
	b.WriteString("• Location: " + d.GarageAddress + "\n")
	b.WriteString("• ETA: " + d.EstimatedArrival + "\n")
	b.WriteString("• Priority: " + strings.ToUpper(d.Priority) + "\n")

	if len(d.AdditionalServices) > 0 {
		joined := strings.ReplaceAll(strings.Join(d.AdditionalServices, ", "), "_", " ")
		b.WriteString("• Additional Services: " + titleCase(joined) + "\n")
	}

	return b.String()
}

// titleCase upper-cases the first letter of every space-separated word.
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
