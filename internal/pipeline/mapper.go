package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/AngelCh415/geoacq-etl/internal/models"
)

// MapCampaigns une el costo con la referencia por nombre de campaña recortado.
// Inner join: gasto de campañas fuera de la referencia se descarta en silencio
// (comportamiento del reporte, no un error). No hay dedup entre accounts: la
// misma campaña+fecha en dos accounts produce dos filas.
func MapCampaigns(costs []models.CostRecord, refs []models.CampaignRef) ([]models.MappedCost, error) {
	byName := refIndex(refs)

	out := make([]models.MappedCost, 0, len(costs))
	for _, c := range costs {
		ref, ok := byName[strings.TrimSpace(c.CampaignName)]
		if !ok {
			continue
		}
		d, err := time.Parse("2006-01-02", strings.TrimSpace(c.Date))
		if err != nil {
			return nil, fmt.Errorf("%w: cost: bad date %q", ErrMalformedInput, c.Date)
		}
		date := d.Format("02-01-2006")
		out = append(out, models.MappedCost{
			Date:         date,
			CampaignID:   ref.CampaignID, // el id de la referencia, no el del API
			CampaignName: ref.Campaign,
			City:         ref.City,
			Category:     ref.Category,
			Cost:         c.Cost,
			Key:          ref.CampaignID + "_" + date,
		})
	}
	return out, nil
}
