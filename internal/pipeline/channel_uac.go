package pipeline

import (
	"strings"

	"github.com/AngelCh415/geoacq-etl/internal/geo"
	"github.com/AngelCh415/geoacq-etl/internal/models"
)

// uacCampaignMarker filtra las campañas del canal UAC después del join con la referencia.
const uacCampaignMarker = "UAC_ROI_tCPA"

// NormalizeUAC procesa el canal de conversión universal de app. La fuente no
// trae campaign id propio: se obtiene con un inner join contra la referencia
// (filas sin match se descartan, igual que en el mapper de costos).
func NormalizeUAC(data []byte, refs []models.CampaignRef) (*ConvOutput, error) {
	t, err := readCSV("uac", data,
		"VEHICLE_TYPE", "FREQ", "GEO_REGION_ID", "CAMPAIGN_NAME", "REG_DATE_FORMATED", "MOBILE_NUMBER")
	if err != nil {
		return nil, err
	}

	byName := refIndex(refs)
	cityAgg := map[models.CityKey]*models.ConvCityAgg{}
	keyAgg := map[string]models.ConvCounts{}

	for _, row := range t.rows {
		counts := convCounts(t.get(row, "VEHICLE_TYPE"), atoiOr0(t.get(row, "FREQ")))

		ref, ok := byName[strings.TrimSpace(t.get(row, "CAMPAIGN_NAME"))]
		if !ok { // inner join
			continue
		}
		if !strings.Contains(ref.Campaign, uacCampaignMarker) {
			continue
		}
		date, err := normDate("uac", t.get(row, "REG_DATE_FORMATED"))
		if err != nil {
			return nil, err
		}
		city := geo.CityFor(atoiPtr(t.get(row, "GEO_REGION_ID")))

		ck := models.CityKey{Date: date, Campaign: ref.Campaign, City: city}
		agg, aok := cityAgg[ck]
		if !aok {
			agg = &models.ConvCityAgg{Key: ck}
			cityAgg[ck] = agg
		}
		agg.Customers += b2i(t.get(row, "MOBILE_NUMBER") != "")
		agg.Counts.Add(counts)

		key := ref.CampaignID + "_" + date
		kc := keyAgg[key]
		kc.Add(counts)
		keyAgg[key] = kc
	}

	return &ConvOutput{City: sortedConvCity(cityAgg), Key: keyAgg}, nil
}
