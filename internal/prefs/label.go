// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prefs

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Label turns a category tag or preference token into a display label:
// underscores become spaces and each word is title-cased
// ("shopping_mall" becomes "Shopping Mall").
func Label(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "_", " "))
	if s == "" {
		return ""
	}
	// A Caser keeps state between calls, so each call gets its own.
	return cases.Title(language.English).String(s)
}

// Labels applies Label to every element, dropping blanks.
func Labels[S ~string](items []S) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if l := Label(string(it)); l != "" {
			out = append(out, l)
		}
	}
	return out
}
