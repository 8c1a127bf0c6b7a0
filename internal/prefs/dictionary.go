// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prefs

import "github.com/pdiddy/seekspot/pkg/types"

// synonyms maps lowercase preference tokens to provider category tags.
var synonyms = map[string][]types.CategoryTag{
	// Food & Drink
	"steak":      {"restaurant"},
	"whisky":     {"bar"},
	"whiskey":    {"bar"},
	"cocktails":  {"bar"},
	"bar":        {"bar"},
	"nightclub":  {"night_club"},
	"club":       {"night_club"},
	"restaurant": {"restaurant"},
	"food":       {"restaurant"},
	"coffee":     {"cafe"},
	"cafe":       {"cafe"},
	"pizza":      {"restaurant"},
	"burger":     {"restaurant"},
	"sushi":      {"restaurant"},
	"italian":    {"restaurant"},
	"mexican":    {"restaurant"},
	"chinese":    {"restaurant"},
	"japanese":   {"restaurant"},
	"indian":     {"restaurant"},
	"thai":       {"restaurant"},
	"vegetarian": {"restaurant"},
	"vegan":      {"restaurant"},
	"bakery":     {"bakery"},
	"dessert":    {"bakery", "cafe"},
	"ice cream":  {"ice_cream"},
	"fast food":  {"meal_takeaway", "restaurant"},
	"takeaway":   {"meal_takeaway"},
	"delivery":   {"meal_delivery"},
	"breakfast":  {"restaurant", "cafe"},
	"lunch":      {"restaurant"},
	"dinner":     {"restaurant"},
	"brunch":     {"restaurant", "cafe"},
	"seafood":    {"restaurant"},
	"fish":       {"restaurant"},
	"meat":       {"restaurant"},
	"grill":      {"restaurant"},
	"bbq":        {"restaurant"},
	"barbecue":   {"restaurant"},
	"pub":        {"bar"},
	"wine":       {"bar"},
	"beer":       {"bar"},
	"brewery":    {"bar"},
	"lounge":     {"bar", "night_club"},
	"dance":      {"night_club"},
	"dancing":    {"night_club"},
	"music":      {"night_club"},
	"live music": {"night_club", "bar"},
	"jazz":       {"night_club", "bar"},
	"rock":       {"night_club", "bar"},
	"electronic": {"night_club"},
	"dj":         {"night_club"},
	"karaoke":    {"night_club", "bar"},

	// Shopping
	"shop":        {"store", "shopping_mall", "department_store"},
	"store":       {"store", "shopping_mall", "department_store"},
	"market":      {"grocery_or_supermarket", "supermarket"},
	"supermarket": {"grocery_or_supermarket", "supermarket"},
	"mall":        {"shopping_mall"},
	"shopping":    {"shopping_mall", "department_store", "store"},
	"boutique":    {"clothing_store"},
	"clothes":     {"clothing_store"},
	"fashion":     {"clothing_store"},
	"shoes":       {"shoe_store"},
	"jewelry":     {"jewelry_store"},
	"electronics": {"electronics_store"},
	"books":       {"book_store"},
	"furniture":   {"furniture_store"},
	"hardware":    {"hardware_store"},
	"grocery":     {"grocery_or_supermarket"},

	// Accommodation
	"hotel":             {"lodging", "hotel"},
	"motel":             {"lodging"},
	"hostel":            {"lodging"},
	"resort":            {"lodging"},
	"inn":               {"lodging"},
	"bed and breakfast": {"lodging"},
	"apartment":         {"real_estate_agency"},
	"accommodation":     {"lodging"},
	"stay":              {"lodging"},

	// Health & Beauty
	"spa":       {"spa"},
	"massage":   {"spa"},
	"salon":     {"beauty_salon", "hair_care"},
	"hair":      {"hair_care", "beauty_salon"},
	"nails":     {"beauty_salon"},
	"beauty":    {"beauty_salon"},
	"barber":    {"hair_care"},
	"gym":       {"gym"},
	"fitness":   {"gym"},
	"yoga":      {"gym"},
	"pilates":   {"gym"},
	"wellness":  {"spa", "gym"},
	"health":    {"health", "doctor", "hospital", "pharmacy"},
	"doctor":    {"doctor", "health"},
	"dentist":   {"dentist"},
	"hospital":  {"hospital"},
	"clinic":    {"doctor", "health"},
	"pharmacy":  {"pharmacy"},
	"drugstore": {"pharmacy"},

	// Entertainment & Recreation
	"movie":      {"movie_theater"},
	"cinema":     {"movie_theater"},
	"theater":    {"movie_theater"},
	"theatre":    {"movie_theater"},
	"concert":    {"stadium"},
	"museum":     {"museum"},
	"art":        {"art_gallery", "museum"},
	"gallery":    {"art_gallery"},
	"park":       {"park"},
	"garden":     {"park"},
	"zoo":        {"zoo"},
	"aquarium":   {"aquarium"},
	"amusement":  {"amusement_park"},
	"theme park": {"amusement_park"},
	"bowling":    {"bowling_alley"},
	"casino":     {"casino"},
	"game":       {"bowling_alley", "casino"},
	"arcade":     {"amusement_park"},

	// Sports & Recreation
	"sports":     {"stadium", "gym"},
	"stadium":    {"stadium"},
	"arena":      {"stadium"},
	"golf":       {"golf_course"},
	"tennis":     {"gym"},
	"swimming":   {"gym"},
	"pool":       {"gym"},
	"beach":      {"natural_feature"},
	"hiking":     {"park", "natural_feature"},
	"biking":     {"park"},
	"cycling":    {"park"},
	"running":    {"park"},
	"football":   {"stadium"},
	"soccer":     {"stadium"},
	"basketball": {"stadium"},
	"baseball":   {"stadium"},

	// Services
	"bank":         {"bank", "atm"},
	"atm":          {"atm"},
	"post office":  {"post_office"},
	"laundry":      {"laundry"},
	"dry cleaning": {"laundry"},
	"gas":          {"gas_station"},
	"petrol":       {"gas_station"},
	"car":          {"car_dealer", "car_rental", "car_repair", "car_wash"},
	"rental":       {"car_rental"},
	"repair":       {"car_repair"},
	"wash":         {"car_wash"},
	"police":       {"police"},
	"fire":         {"fire_station"},
	"library":      {"library"},
	"school":       {"school"},
	"university":   {"university"},
	"college":      {"university"},
	"church":       {"church"},
	"mosque":       {"mosque"},
	"temple":       {"hindu_temple", "buddhist_temple"},
	"synagogue":    {"synagogue"},
	"worship":      {"church", "mosque", "hindu_temple", "buddhist_temple", "synagogue"},

	// Transportation
	"airport": {"airport"},
	"train":   {"train_station", "transit_station"},
	"bus":     {"bus_station", "transit_station"},
	"subway":  {"subway_station", "transit_station"},
	"metro":   {"subway_station", "transit_station"},
	"taxi":    {"taxi_stand"},
	"parking": {"parking"},
	"transit": {"transit_station"},
	"station": {"transit_station", "train_station", "bus_station", "subway_station"},

	// Tourist Attractions
	"tourist":     {"tourist_attraction"},
	"attraction":  {"tourist_attraction"},
	"landmark":    {"tourist_attraction"},
	"monument":    {"tourist_attraction"},
	"sightseeing": {"tourist_attraction"},
	"tour":        {"tourist_attraction", "travel_agency"},
	"travel":      {"travel_agency"},

	// Miscellaneous
	"local":        {"point_of_interest"},
	"popular":      {"point_of_interest"},
	"best":         {"point_of_interest"},
	"top":          {"point_of_interest"},
	"recommended":  {"point_of_interest"},
	"famous":       {"point_of_interest"},
	"hidden gem":   {"point_of_interest"},
	"cheap":        {"point_of_interest"},
	"expensive":    {"point_of_interest"},
	"luxury":       {"point_of_interest"},
	"budget":       {"point_of_interest"},
	"family":       {"point_of_interest"},
	"kids":         {"point_of_interest"},
	"pet friendly": {"point_of_interest"},
	"outdoor":      {"park", "natural_feature"},
	"indoor":       {"point_of_interest"},
	"view":         {"point_of_interest"},
	"rooftop":      {"point_of_interest"},
	"waterfront":   {"point_of_interest"},
	"historic":     {"point_of_interest"},
	"modern":       {"point_of_interest"},
	"traditional":  {"point_of_interest"},
	"authentic":    {"point_of_interest"},
	"trendy":       {"point_of_interest"},
	"hipster":      {"point_of_interest"},
	"romantic":     {"point_of_interest"},
	"quiet":        {"point_of_interest"},
	"lively":       {"point_of_interest"},
	"cozy":         {"point_of_interest"},
	"elegant":      {"point_of_interest"},
	"casual":       {"point_of_interest"},
}

// ExtendedCategories is the broad tag list walked by the secondary fan-out
// when a search has no preferences to drive it.
var ExtendedCategories = []types.CategoryTag{
	"restaurant", "bar", "cafe", "bakery", "meal_takeaway", "night_club",
	"lodging", "hotel",
	"shopping_mall", "department_store", "clothing_store", "shoe_store", "jewelry_store",
	"electronics_store", "book_store", "furniture_store", "hardware_store", "grocery_or_supermarket",
	"spa", "beauty_salon", "hair_care", "gym",
	"movie_theater", "museum", "art_gallery", "park", "zoo", "aquarium", "amusement_park",
	"bowling_alley", "casino",
	"stadium", "golf_course",
	"bank", "atm", "post_office", "laundry", "gas_station", "car_dealer", "car_rental",
	"car_repair", "car_wash", "police", "fire_station", "library", "school", "university",
	"church", "mosque", "hindu_temple", "buddhist_temple", "synagogue",
	"airport", "train_station", "bus_station", "subway_station", "taxi_stand", "parking",
	"tourist_attraction", "travel_agency",
	"point_of_interest", "natural_feature",
}
