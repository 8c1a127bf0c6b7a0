// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/seekspot/pkg/types"
)

// FormatTable writes places as a human-readable table to w.
func FormatTable(places []types.Place, w io.Writer) {
	if len(places) == 0 {
		fmt.Fprintln(w, "No places found. Try a wider radius or different preferences.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-36s  %-22s  %-6s  %-8s  %s\n",
		"#", "Name", "Category", "Rating", "Price", "Distance")
	fmt.Fprintln(w, strings.Repeat("-", 94))

	for i, p := range places {
		category := ""
		if len(p.Categories) > 0 {
			category = p.Categories[0]
		}
		fmt.Fprintf(w, "%-4d  %-36s  %-22s  %-6s  %-8s  %s\n",
			i+1, truncate(p.Name, 36), truncate(category, 22), p.Rating,
			fmt.Sprintf("%.0f", p.Price), formatDistance(p.Distance))
	}

	fmt.Fprintf(w, "\n%d places\n", len(places))
}

// FormatJSON writes places as indented JSON to w.
func FormatJSON(places []types.Place, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(places)
}

func formatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0f m", meters)
	}
	return fmt.Sprintf("%.1f km", meters/1000)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
