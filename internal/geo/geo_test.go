package geo

import "testing"

func TestCityForKnownCodes(t *testing.T) {
	cases := map[int]string{
		1:  "Mumbai",
		8:  "Pune",
		20: "Kanpur",
		29: "Vizag",
		30: "Trivandrum",
	}
	for code, want := range cases {
		c := code
		if got := CityFor(&c); got != want {
			t.Fatalf("CityFor(%d) = %q, want %q", code, got, want)
		}
	}
}

func TestCityForIsTotal(t *testing.T) {
	// cualquier entero, incluso fuera de tabla, y nil: nunca vacío
	for _, code := range []int{-1, 0, 21, 28, 31, 999, 1 << 30} {
		c := code
		if got := CityFor(&c); got != Fallback {
			t.Fatalf("CityFor(%d) = %q, want %q", code, got, Fallback)
		}
	}
	if got := CityFor(nil); got != Fallback {
		t.Fatalf("CityFor(nil) = %q, want %q", got, Fallback)
	}
}
