package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/seekspot/internal/prefs"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories [preferences...]",
	Short: "Show which place categories preferences map to",
	Long: `Categories maps each preference through the synonym dictionary and prints
the resulting provider categories. Unknown preferences fall back to the
generic point_of_interest category.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tokens := preferenceTokens(args)
		for _, tok := range tokens {
			if !prefs.IsKnown(tok) {
				fmt.Fprintf(os.Stderr, "%q is not in the dictionary, searching by keyword\n", tok)
			}
			fmt.Printf("%-16s %s\n", tok, strings.Join(prefs.Labels(prefs.Lookup(tok)), ", "))
		}

		merged := prefs.MapToCategories(tokens)
		fmt.Printf("\nSearch categories: %s\n", strings.Join(prefs.Labels(merged), ", "))
		return nil
	},
}

// preferenceTokens splits comma-separated args into trimmed, non-blank tokens.
func preferenceTokens(args []string) []string {
	var tokens []string
	for _, a := range args {
		for _, tok := range strings.Split(a, ",") {
			if tok = strings.TrimSpace(tok); tok != "" {
				tokens = append(tokens, tok)
			}
		}
	}
	return tokens
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
