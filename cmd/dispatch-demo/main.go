// README: Small CLI that runs the dispatch engine against a few sample breakdowns.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"roadside/internal/modules/dispatch"
)

func main() {
	path := "data/garages.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	registry, err := dispatch.LoadRegistry(path)
	if err != nil {
		log.Fatal(err)
	}
	svc := dispatch.NewService(registry, dispatch.KeywordGeocoder{})

	scenarios := []struct {
		location string
		issue    string
	}{
		{"San Francisco, CA", "I have a flat tire"},
		{"Oakland, CA", "My battery is dead"},
		{"Highway 101", "Engine is smoking"},
	}

	ctx := context.Background()
	for _, s := range scenarios {
		fmt.Printf("Location: %s | Issue: %s\n", s.location, s.issue)
		d, ok := svc.Decide(ctx, s.location, s.issue)
		if !ok {
			fmt.Println("No suitable garage found")
		} else {
			fmt.Println(dispatch.Summary(d, "John Doe"))
		}
		fmt.Println()
	}
}
