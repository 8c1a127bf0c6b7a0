// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/seekspot/internal/search"
	"github.com/pdiddy/seekspot/internal/session"
	"github.com/pdiddy/seekspot/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [location]",
	Short: "Search for places near a location",
	Long: `Search geocodes the location, maps preferences to place categories, and
queries the maps provider for matching places within the radius and budget.
Results are sorted by distance unless --sort says otherwise.

The number of places shown depends on the session tier: free users see a few,
a trial spends one of its searches per run, and premium shows everything.
Use --save to keep the full result as YAML and --load to view it again
without querying the provider.`,
	RunE: runSearch,
}

func init() {
	addSearchFlags(searchCmd)
	rootCmd.AddCommand(searchCmd)
}

func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().String("location", "", "location to search around (city, district, or address)")
	cmd.Flags().StringSlice("prefs", nil, "preferences, comma-separated (e.g. coffee,wine,spa)")
	cmd.Flags().Float64("budget", 0, "budget per person; must be positive")
	cmd.Flags().Float64("radius", types.DefaultRadiusMeters, "search radius in meters")
	cmd.Flags().String("sort", "distance", "sort by: distance, rating, price")
	cmd.Flags().String("category", "", "only show places with a category containing this text")
	cmd.Flags().Bool("json", false, "output results as JSON")
	cmd.Flags().String("save", "", "write the full search result to this YAML file")
	cmd.Flags().String("load", "", "show a saved search file instead of searching")
}

func runSearch(cmd *cobra.Command, args []string) error {
	sortKey, err := search.ParseSortKey(mustString(cmd, "sort"))
	if err != nil {
		return err
	}
	category := mustString(cmd, "category")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if path := mustString(cmd, "load"); path != "" {
		sf, err := search.ReadSearchFile(path)
		if err != nil {
			return err
		}
		places := search.FilterByCategory(sf.Places, category)
		search.SortPlaces(places, sortKey)
		return render(os.Stdout, places, jsonOutput)
	}

	req, err := searchRequestFromFlags(cmd, args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	searcher, _, err := newSearcher(cfg)
	if err != nil {
		return err
	}
	sess, closeSession, err := openSession(cfg)
	if err != nil {
		return err
	}
	defer closeSession()

	grant, err := sess.UseSearch()
	if err != nil {
		if errors.Is(err, session.ErrNoSearchesRemaining) {
			return fmt.Errorf("you have used all your trial searches; run 'seekspot session premium' to keep searching")
		}
		return err
	}

	out := searcher.Run(context.Background(), req)
	if path := mustString(cmd, "save"); path != "" {
		if err := search.WriteSearchFile(path, out); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved %d places to %s\n", len(out.Places), path)
	}

	places := search.FilterByCategory(out.Places, category)
	search.SortPlaces(places, sortKey)
	shown := search.Limit(places, grant.Limit)

	fmt.Fprintf(os.Stderr, "Searching %q around %.4f, %.4f (%s, %d provider results)\n",
		req.Location, out.Origin.Latitude, out.Origin.Longitude, out.Source, out.RawResults)
	if len(shown) < len(places) {
		fmt.Fprintf(os.Stderr, "Showing %d of %d places on the %s tier.\n", len(shown), len(places), grant.Tier)
	}
	if grant.Tier == session.TierTrial {
		fmt.Fprintf(os.Stderr, "%d trial searches remaining.\n", grant.SearchesRemaining)
	}
	return render(os.Stdout, shown, jsonOutput)
}

func searchRequestFromFlags(cmd *cobra.Command, args []string) (types.SearchRequest, error) {
	location := mustString(cmd, "location")
	if location == "" && len(args) > 0 {
		location = strings.Join(args, " ")
	}
	prefs, _ := cmd.Flags().GetStringSlice("prefs")
	budget, _ := cmd.Flags().GetFloat64("budget")
	radius, _ := cmd.Flags().GetFloat64("radius")

	req := types.SearchRequest{
		Location:     strings.TrimSpace(location),
		Preferences:  prefs,
		Budget:       budget,
		RadiusMeters: radius,
	}
	if req.Location == "" {
		return req, fmt.Errorf("provide a location as an argument or with --location")
	}
	if req.Budget <= 0 {
		return req, fmt.Errorf("--budget must be a positive number")
	}
	if req.RadiusMeters < 0 {
		return req, fmt.Errorf("--radius must not be negative")
	}
	return req.Normalized(), nil
}

// render writes places as a table, or as a JSON array when jsonOutput is set.
// An empty result renders as [] rather than null.
func render(w io.Writer, places []types.Place, jsonOutput bool) error {
	if jsonOutput {
		if places == nil {
			places = []types.Place{}
		}
		return search.FormatJSON(places, w)
	}
	search.FormatTable(places, w)
	return nil
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return strings.TrimSpace(v)
}
