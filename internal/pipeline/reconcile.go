package pipeline

import "github.com/AngelCh415/geoacq-etl/internal/models"

// Reconcile hace los tres left joins por key sobre el costo mapeado y calcula
// los totales. Keys sin match quedan en cero (el zero value ya es el fill).
// El costo mapeado NO se re-agrupa por key: filas duplicadas de distintos
// accounts toman cada una el mismo agregado de canal, a propósito.
func Reconcile(mapped []models.MappedCost, leads map[string]models.LeadCounts, uace, uac map[string]models.ConvCounts) []models.ReconciledRow {
	out := make([]models.ReconciledRow, 0, len(mapped))
	for _, m := range mapped {
		row := models.ReconciledRow{
			Date:         m.Date,
			CampaignID:   m.CampaignID,
			CampaignName: m.CampaignName,
			City:         m.City,
			Category:     m.Category,
			Cost:         m.Cost,
		}
		if c, ok := leads[m.Key]; ok {
			row.Leads = c
		}
		if c, ok := uace[m.Key]; ok {
			row.UACe = c
		}
		if c, ok := uac[m.Key]; ok {
			row.UAC = c
		}

		row.Acq2WTotal = row.Leads.Acq2W + row.UAC.Acq2W + row.UACe.Acq2W
		row.AcqLCVTotal = row.Leads.AcqLCV + row.UAC.AcqLCV + row.UACe.AcqLCV
		row.AcqHCVTotal = row.Leads.AcqHCV + row.UAC.AcqHCV + row.UACe.AcqHCV
		row.AcqTrucksTotal = row.Leads.AcqTrucks + row.UAC.AcqTrucks + row.UACe.AcqTrucks
		row.PNMAcq = row.Leads.PNMConv
		row.AllAcqTotal = row.Acq2WTotal + row.AcqTrucksTotal + row.PNMAcq
		row.SMETotal = row.Leads.SME + row.UAC.SME + row.UACe.SME
		row.RetailTotal = row.Leads.Retail + row.UAC.Retail + row.UACe.Retail
		row.SME2WTotal = row.Leads.SME2W + row.UAC.SME2W + row.UACe.SME2W
		row.SMETrucksTotal = row.Leads.SMETrucks + row.UAC.SMETrucks + row.UACe.SMETrucks

		out = append(out, row)
	}
	return out
}
