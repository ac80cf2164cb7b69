package pipeline

import (
	"sort"

	"github.com/AngelCh415/geoacq-etl/internal/geo"
	"github.com/AngelCh415/geoacq-etl/internal/models"
)

// LeadsOutput son las dos salidas del canal de leads: reporte por ciudad y
// agregado por key para el merge contra el costo.
type LeadsOutput struct {
	City []models.LeadCityAgg
	Key  map[string]models.LeadCounts
}

// NormalizeLeads procesa el CSV "2W & Spot": filtra CUSTOMER == 1, deriva flags
// de segmento, mapea región a ciudad y agrega en los dos niveles.
func NormalizeLeads(data []byte) (*LeadsOutput, error) {
	t, err := readCSV("leads", data,
		"UTM_CAMPAIGN", "LEAD_DATE", "CUSTOMER", "FREQUENCY_ENUM", "FIRST_CATEGORY",
		"REG_GEO_ID", "CAMPAIGN_NAME", "ACQ_2W", "ACQ_TRUCKS", "ACQ_HCV", "ACQ_LCV", "PNM_CONV")
	if err != nil {
		return nil, err
	}

	cityAgg := map[models.CityKey]*models.LeadCounts{}
	keyAgg := map[string]models.LeadCounts{}

	for _, row := range t.rows {
		cust := atoiOr0(t.get(row, "CUSTOMER"))
		if cust != 1 { // solo customers
			continue
		}
		date, err := normDate("leads", t.get(row, "LEAD_DATE"))
		if err != nil {
			return nil, err
		}

		freq := atoiOr0(t.get(row, "FREQUENCY_ENUM"))
		cat := t.get(row, "FIRST_CATEGORY")
		// derivación primero, null-fill a 0 de contadores después, antes de agregar
		counts := models.LeadCounts{
			Customer:  cust,
			Acq2W:     atoiOr0(t.get(row, "ACQ_2W")),
			AcqTrucks: atoiOr0(t.get(row, "ACQ_TRUCKS")),
			AcqHCV:    atoiOr0(t.get(row, "ACQ_HCV")),
			AcqLCV:    atoiOr0(t.get(row, "ACQ_LCV")),
			PNMConv:   atoiOr0(t.get(row, "PNM_CONV")),
			SME:       smeFlag(freq),
			Retail:    retailFlag(freq),
			SME2W:     b2i(freq == 4 && cat == "2w"),
			SMETrucks: b2i(freq == 4 && (cat == "LCV" || cat == "HCV")),
		}

		city := geo.CityFor(atoiPtr(t.get(row, "REG_GEO_ID")))
		ck := models.CityKey{Date: date, Campaign: t.get(row, "CAMPAIGN_NAME"), City: city}
		agg, ok := cityAgg[ck]
		if !ok {
			agg = &models.LeadCounts{}
			cityAgg[ck] = agg
		}
		agg.Add(counts)

		key := t.get(row, "UTM_CAMPAIGN") + "_" + date
		kc := keyAgg[key]
		kc.Add(counts)
		keyAgg[key] = kc
	}

	return &LeadsOutput{City: sortedLeadCity(cityAgg), Key: keyAgg}, nil
}

func sortedLeadCity(m map[models.CityKey]*models.LeadCounts) []models.LeadCityAgg {
	out := make([]models.LeadCityAgg, 0, len(m))
	for k, v := range m {
		out = append(out, models.LeadCityAgg{Key: k, Counts: *v})
	}
	// orden determinista: la clave del groupby
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
