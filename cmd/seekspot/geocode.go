package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var geocodeCmd = &cobra.Command{
	Use:   "geocode <location>",
	Short: "Resolve a location to coordinates",
	Long: `Geocode resolves free-text location to latitude and longitude using the
maps provider, then the built-in city table, then a fixed default. The
source of the answer is printed alongside the coordinates.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		_, g, err := newSearcher(cfg)
		if err != nil {
			return err
		}

		location := strings.Join(args, " ")
		coord, source := g.ResolveWithSource(context.Background(), location)

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"location":  location,
				"latitude":  coord.Latitude,
				"longitude": coord.Longitude,
				"source":    source,
			})
		}
		fmt.Printf("%s: %.6f, %.6f (%s)\n", location, coord.Latitude, coord.Longitude, source)
		return nil
	},
}

func init() {
	geocodeCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(geocodeCmd)
}
