package geo

// Fallback es la ciudad para códigos desconocidos o ausentes.
const Fallback = "Others"

var cityByRegion = map[int]string{
	1:  "Mumbai",
	2:  "Delhi",
	3:  "Bangalore",
	4:  "Hyderabad",
	5:  "Chennai",
	6:  "Ahmedabad",
	7:  "Jaipur",
	8:  "Pune",
	9:  "Kolkata",
	10: "Surat",
	11: "Lucknow",
	12: "Coimbatore",
	13: "Indore",
	14: "Nagpur",
	15: "Chandigarh",
	16: "Vadodara",
	17: "Ludhiana",
	18: "Kochi",
	19: "Nashik",
	20: "Kanpur",
	29: "Vizag",
	30: "Trivandrum",
}

// CityFor es total: nil o código fuera de tabla -> Fallback, nunca falla.
func CityFor(code *int) string {
	if code == nil {
		return Fallback
	}
	if city, ok := cityByRegion[*code]; ok {
		return city
	}
	return Fallback
}
