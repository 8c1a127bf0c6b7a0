// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package locale holds location-keyed lookup tables: city coordinates,
// street names, cuisines, and bar types. A lookup matches rule names as
// substrings of the lowercased location text. When several rules match, the
// most specific level wins (a district beats a city), then the longest name,
// then table order. "Kadikoy, Istanbul" therefore selects the Kadikoy rule
// no matter where the Istanbul rule sits in the table.
package locale

import (
	"strings"

	"github.com/pdiddy/seekspot/pkg/types"
)

// Level ranks how specific a rule is.
type Level int

const (
	CityLevel Level = iota
	DistrictLevel
)

// Rule maps a lowercase location substring to a value.
type Rule[T any] struct {
	Name  string
	Value T
	Level Level
}

func city[T any](name string, v T) Rule[T] {
	return Rule[T]{Name: name, Value: v, Level: CityLevel}
}

func district[T any](name string, v T) Rule[T] {
	return Rule[T]{Name: name, Value: v, Level: DistrictLevel}
}

// beats reports whether r should replace the current best match.
func (r Rule[T]) beats(best Rule[T]) bool {
	if r.Level != best.Level {
		return r.Level > best.Level
	}
	return len(r.Name) > len(best.Name)
}

// Table is an ordered list of rules with a fallback value.
type Table[T any] struct {
	Rules   []Rule[T]
	Default T
}

// Match returns the value of the best matching rule and whether any rule
// matched. Full ties go to the earlier rule.
func (t Table[T]) Match(location string) (T, bool) {
	normalized := strings.ToLower(location)
	best := -1
	for i, r := range t.Rules {
		if r.Name == "" || !strings.Contains(normalized, r.Name) {
			continue
		}
		if best < 0 || r.beats(t.Rules[best]) {
			best = i
		}
	}
	if best < 0 {
		var zero T
		return zero, false
	}
	return t.Rules[best].Value, true
}

// Lookup returns the matched value or the table default.
func (t Table[T]) Lookup(location string) T {
	if v, ok := t.Match(location); ok {
		return v
	}
	return t.Default
}

// NewYork is the coordinate used when a location matches nothing.
var NewYork = types.Coordinate{Latitude: 40.7128, Longitude: -74.0060}

func coord(lat, lng float64) types.Coordinate {
	return types.Coordinate{Latitude: lat, Longitude: lng}
}

// Cities maps well-known cities and Istanbul districts to coordinates.
var Cities = Table[types.Coordinate]{
	Default: NewYork,
	Rules: []Rule[types.Coordinate]{
		city("new york", coord(40.7128, -74.0060)),
		city("los angeles", coord(34.0522, -118.2437)),
		city("chicago", coord(41.8781, -87.6298)),
		city("london", coord(51.5074, -0.1278)),
		city("paris", coord(48.8566, 2.3522)),
		city("tokyo", coord(35.6762, 139.6503)),
		city("sydney", coord(-33.8688, 151.2093)),
		city("berlin", coord(52.5200, 13.4050)),
		city("rome", coord(41.9028, 12.4964)),
		city("madrid", coord(40.4168, -3.7038)),
		city("toronto", coord(43.6532, -79.3832)),
		city("cairo", coord(30.0444, 31.2357)),
		city("cape town", coord(-33.9249, 18.4241)),
		city("johannesburg", coord(-26.2041, 28.0473)),
		city("nairobi", coord(-1.2921, 36.8219)),
		city("mumbai", coord(19.0760, 72.8777)),
		city("delhi", coord(28.6139, 77.2090)),
		city("beijing", coord(39.9042, 116.4074)),
		city("shanghai", coord(31.2304, 121.4737)),
		city("seoul", coord(37.5665, 126.9780)),
		city("mexico city", coord(19.4326, -99.1332)),
		city("rio de janeiro", coord(-22.9068, -43.1729)),
		city("sao paulo", coord(-23.5505, -46.6333)),
		city("buenos aires", coord(-34.6037, -58.3816)),
		city("santiago", coord(-33.4489, -70.6693)),
		city("istanbul", coord(41.0082, 28.9784)),
		city("moscow", coord(55.7558, 37.6173)),
		city("dubai", coord(25.2048, 55.2708)),
		city("singapore", coord(1.3521, 103.8198)),
		city("hong kong", coord(22.3193, 114.1694)),
		city("bangkok", coord(13.7563, 100.5018)),
		city("san francisco", coord(37.7749, -122.4194)),
		city("miami", coord(25.7617, -80.1918)),
		city("seattle", coord(47.6062, -122.3321)),
		city("austin", coord(30.2672, -97.7431)),
		city("boston", coord(42.3601, -71.0589)),
		city("vancouver", coord(49.2827, -123.1207)),
		city("montreal", coord(45.5017, -73.5673)),
		city("amsterdam", coord(52.3676, 4.9041)),
		city("barcelona", coord(41.3851, 2.1734)),
		city("munich", coord(48.1351, 11.5820)),
		city("vienna", coord(48.2082, 16.3738)),
		city("prague", coord(50.0755, 14.4378)),
		city("budapest", coord(47.4979, 19.0402)),
		city("copenhagen", coord(55.6761, 12.5683)),
		city("stockholm", coord(59.3293, 18.0686)),
		city("oslo", coord(59.9139, 10.7522)),
		city("helsinki", coord(60.1699, 24.9384)),
		city("athens", coord(37.9838, 23.7275)),
		district("kadikoy", coord(40.9906, 29.0306)),
		district("caddebostan", coord(40.9642, 29.0634)),
		district("besiktas", coord(41.0422, 29.0083)),
		district("sisli", coord(41.0602, 28.9877)),
		district("beyoglu", coord(41.0370, 28.9850)),
		district("fatih", coord(41.0186, 28.9395)),
		district("uskudar", coord(41.0233, 29.0151)),
	},
}

// Streets maps locations to plausible local street names.
var Streets = Table[[]string]{
	Default: []string{"Main St", "High St", "Park Ave", "Market St", "Broadway", "Church St", "Station Rd"},
	Rules: []Rule[[]string]{
		city("new york", []string{"Broadway", "Park Ave", "5th Ave", "Madison Ave", "Lexington Ave", "Wall St"}),
		city("los angeles", []string{"Sunset Blvd", "Hollywood Blvd", "Rodeo Dr", "Melrose Ave", "Wilshire Blvd"}),
		city("chicago", []string{"Michigan Ave", "State St", "Wacker Dr", "Clark St", "Lake Shore Dr"}),
		city("toronto", []string{"Yonge St", "Queen St", "King St", "Bloor St", "Dundas St"}),
		city("london", []string{"Oxford St", "Regent St", "Baker St", "Bond St", "Piccadilly"}),
		city("paris", []string{"Rue de Rivoli", "Avenue des Champs-Élysées", "Boulevard Saint-Germain", "Rue Saint-Honoré"}),
		city("istanbul", []string{"İstiklal Caddesi", "Bağdat Caddesi", "Abdi İpekçi Caddesi", "Nispetiye Caddesi", "Barbaros Bulvarı"}),
		district("kadikoy", []string{"Bahariye Caddesi", "Moda Caddesi", "Söğütlüçeşme Caddesi", "Karakolhane Caddesi", "Mühürdar Caddesi"}),
		district("caddebostan", []string{"Bağdat Caddesi", "Operatör Cemil Topuzlu Caddesi", "Göztepe Caddesi", "Cemil Topuzlu Caddesi"}),
		district("besiktas", []string{"Barbaros Bulvarı", "Çırağan Caddesi", "Nispetiye Caddesi", "Ihlamurdere Caddesi"}),
		district("sisli", []string{"Halaskargazi Caddesi", "Büyükdere Caddesi", "Rumeli Caddesi", "Teşvikiye Caddesi"}),
		district("beyoglu", []string{"İstiklal Caddesi", "Meşrutiyet Caddesi", "Siraselviler Caddesi", "Tarlabaşı Bulvarı"}),
		district("uskudar", []string{"Bağlarbaşı Caddesi", "Altunizade Caddesi", "Nuhkuyusu Caddesi", "Selimiye Caddesi"}),
		city("tokyo", []string{"Ginza Dori", "Omotesando", "Takeshita Dori", "Nakamise Dori", "Chuo Dori"}),
		city("sydney", []string{"George St", "Pitt St", "Oxford St", "Crown St", "King St"}),
		city("berlin", []string{"Unter den Linden", "Kurfürstendamm", "Friedrichstraße", "Alexanderplatz", "Potsdamer Platz"}),
		city("rome", []string{"Via del Corso", "Via Veneto", "Via Condotti", "Via Nazionale", "Via Appia Antica"}),
		city("madrid", []string{"Gran Vía", "Calle de Alcalá", "Paseo del Prado", "Calle Mayor", "Calle de Serrano"}),
	},
}

// Cuisines maps locations to typical local cuisines.
var Cuisines = Table[[]string]{
	Default: []string{"Local", "International", "Fusion", "Traditional", "Modern", "Bistro", "Grill"},
	Rules: []Rule[[]string]{
		city("new york", []string{"Pizza", "Bagel", "Deli", "Italian", "Chinese", "American"}),
		city("los angeles", []string{"Mexican", "Korean", "Sushi", "Vegan", "Fusion", "Taco"}),
		city("chicago", []string{"Deep Dish Pizza", "Hot Dog", "Italian Beef", "Steakhouse", "Polish"}),
		city("san francisco", []string{"Seafood", "Sourdough", "Chinese", "Mexican", "Farm-to-Table"}),
		city("new orleans", []string{"Cajun", "Creole", "Seafood", "Gumbo", "Po Boy"}),
		city("miami", []string{"Cuban", "Caribbean", "Seafood", "Latin", "Fusion"}),
		city("london", []string{"Fish & Chips", "Indian", "Pub Food", "British", "Middle Eastern"}),
		city("paris", []string{"French", "Bistro", "Patisserie", "Boulangerie", "Wine Bar"}),
		city("rome", []string{"Italian", "Pizza", "Pasta", "Gelato", "Espresso"}),
		city("barcelona", []string{"Tapas", "Paella", "Catalan", "Seafood", "Spanish"}),
		city("berlin", []string{"German", "Currywurst", "Turkish", "Döner", "International"}),
		city("amsterdam", []string{"Dutch", "Pancake", "Cheese", "Herring", "Indonesian"}),
		city("tokyo", []string{"Sushi", "Ramen", "Izakaya", "Tempura", "Yakitori"}),
		city("bangkok", []string{"Thai", "Street Food", "Curry", "Noodle", "Seafood"}),
		city("hong kong", []string{"Dim Sum", "Cantonese", "Seafood", "Roast", "Noodle"}),
		city("singapore", []string{"Hawker", "Laksa", "Chili Crab", "Chinese", "Indian"}),
		city("seoul", []string{"Korean BBQ", "Bibimbap", "Fried Chicken", "Kimchi", "Street Food"}),
		city("mumbai", []string{"Indian", "Street Food", "Curry", "Tandoori", "Vegetarian"}),
		city("istanbul", []string{"Turkish", "Kebab", "Mezes", "Seafood", "Baklava"}),
		city("dubai", []string{"Arabic", "Lebanese", "Indian", "International", "Seafood"}),
		city("sydney", []string{"Seafood", "Modern Australian", "Asian Fusion", "Brunch", "Coffee"}),
		city("melbourne", []string{"Coffee", "Brunch", "Italian", "Greek", "Vietnamese"}),
		city("buenos aires", []string{"Steak", "Empanadas", "Argentinian", "Italian", "Parrilla"}),
		city("rio de janeiro", []string{"Brazilian", "Churrasco", "Seafood", "Feijoada", "Street Food"}),
	},
}

// BarTypes maps locations to typical local bar styles.
var BarTypes = Table[[]string]{
	Default: []string{"Bar", "Pub", "Cocktail Bar", "Wine Bar", "Beer Bar", "Lounge", "Tavern"},
	Rules: []Rule[[]string]{
		city("new york", []string{"Cocktail Bar", "Speakeasy", "Rooftop Bar", "Dive Bar", "Wine Bar"}),
		city("los angeles", []string{"Rooftop Bar", "Cocktail Lounge", "Beach Bar", "Wine Bar", "Craft Beer"}),
		city("chicago", []string{"Sports Bar", "Cocktail Bar", "Brewery", "Jazz Bar", "Dive Bar"}),
		city("san francisco", []string{"Craft Beer", "Wine Bar", "Cocktail Bar", "Brewpub", "Speakeasy"}),
		city("new orleans", []string{"Jazz Bar", "Cocktail Bar", "Historic Bar", "Dive Bar", "Bourbon Bar"}),
		city("miami", []string{"Beach Bar", "Nightclub", "Cocktail Bar", "Rooftop Bar", "Latin Bar"}),
		city("london", []string{"Pub", "Cocktail Bar", "Wine Bar", "Gin Bar", "Historic Tavern"}),
		city("paris", []string{"Wine Bar", "Cocktail Bar", "Café Bar", "Jazz Bar", "Bistro Bar"}),
		city("rome", []string{"Wine Bar", "Aperitivo Bar", "Cocktail Bar", "Rooftop Bar", "Café Bar"}),
		city("barcelona", []string{"Tapas Bar", "Wine Bar", "Cocktail Bar", "Beach Bar", "Vermouth Bar"}),
		city("berlin", []string{"Beer Garden", "Cocktail Bar", "Club Bar", "Craft Beer", "Dive Bar"}),
		city("amsterdam", []string{"Brown Café", "Cocktail Bar", "Beer Bar", "Canal Bar", "Jenever Bar"}),
		city("tokyo", []string{"Izakaya", "Whisky Bar", "Beer Bar", "Cocktail Bar", "Sake Bar"}),
		city("bangkok", []string{"Rooftop Bar", "Cocktail Bar", "Beer Bar", "Night Market Bar", "Club Bar"}),
		city("hong kong", []string{"Rooftop Bar", "Cocktail Bar", "Wine Bar", "Speakeasy", "Club Bar"}),
		city("singapore", []string{"Cocktail Bar", "Rooftop Bar", "Speakeasy", "Craft Beer", "Hotel Bar"}),
		city("seoul", []string{"Soju Bar", "Craft Beer", "Cocktail Bar", "Makgeolli Bar", "Club Bar"}),
		city("istanbul", []string{"Meyhane", "Rooftop Bar", "Cocktail Bar", "Raki Bar", "Nargile Café"}),
		city("dubai", []string{"Rooftop Bar", "Beach Bar", "Cocktail Bar", "Hotel Bar", "Club Bar"}),
		city("sydney", []string{"Beach Bar", "Pub", "Cocktail Bar", "Wine Bar", "Rooftop Bar"}),
		city("melbourne", []string{"Laneway Bar", "Cocktail Bar", "Wine Bar", "Rooftop Bar", "Pub"}),
	},
}
