package pipeline

import (
	"sort"

	"github.com/AngelCh415/geoacq-etl/internal/geo"
	"github.com/AngelCh415/geoacq-etl/internal/models"
)

// ConvOutput son las dos salidas de un canal de conversión de app (UAC/UACe).
type ConvOutput struct {
	City []models.ConvCityAgg
	Key  map[string]models.ConvCounts
}

// NormalizeUACe procesa el canal de engagement: la categoría de vehículo sale
// de la tabla VEHICLE_ID y el nombre/id de campaña se extraen del texto
// "Nombre (12345)". Filas sin nombre extraíble no entran al reporte por ciudad;
// filas sin id no entran al agregado por key.
func NormalizeUACe(data []byte) (*ConvOutput, error) {
	t, err := readCSV("uace", data,
		"VEHICLE_ID", "FREQ", "GEO_REGION_ID", "CAMPAIGN_NAME", "ORDER_DATE", "CUSTOMER_ID")
	if err != nil {
		return nil, err
	}

	cityAgg := map[models.CityKey]*models.ConvCityAgg{}
	keyAgg := map[string]models.ConvCounts{}

	for _, row := range t.rows {
		date, err := normDate("uace", t.get(row, "ORDER_DATE"))
		if err != nil {
			return nil, err
		}

		vehicle := vehicleFor(atoiOr0(t.get(row, "VEHICLE_ID")))
		counts := convCounts(vehicle, atoiOr0(t.get(row, "FREQ")))
		city := geo.CityFor(atoiPtr(t.get(row, "GEO_REGION_ID")))

		raw := t.get(row, "CAMPAIGN_NAME")
		if name := extractCampaignName(raw); name != "" {
			ck := models.CityKey{Date: date, Campaign: name, City: city}
			agg, ok := cityAgg[ck]
			if !ok {
				agg = &models.ConvCityAgg{Key: ck}
				cityAgg[ck] = agg
			}
			agg.Customers += b2i(t.get(row, "CUSTOMER_ID") != "")
			agg.Counts.Add(counts)
		}

		if id := extractCampaignID(raw); id != "" {
			key := id + "_" + date
			kc := keyAgg[key]
			kc.Add(counts)
			keyAgg[key] = kc
		}
	}

	return &ConvOutput{City: sortedConvCity(cityAgg), Key: keyAgg}, nil
}

func sortedConvCity(m map[models.CityKey]*models.ConvCityAgg) []models.ConvCityAgg {
	out := make([]models.ConvCityAgg, 0, len(m))
	for _, v := range m {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Key, out[j].Key
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Campaign != b.Campaign {
			return a.Campaign < b.Campaign
		}
		return a.City < b.City
	})
	return out
}
