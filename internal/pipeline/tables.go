package pipeline

import "github.com/AngelCh415/geoacq-etl/internal/models"

// Proyecciones fijas para el sink: el orden de columnas debe coincidir con el
// que espera la hoja destino, no cambiarlo.

func LeadsCityTable(aggs []models.LeadCityAgg) models.Table {
	t := models.Table{Header: []string{
		"LEAD_DATE", "City", "CAMPAIGN_NAME", "CUSTOMER",
		"ACQ_2W", "ACQ_TRUCKS", "ACQ_HCV", "ACQ_LCV", "PNM_CONV",
		"SME", "Retail", "SME_2W", "SME_Trucks",
	}}
	t.Rows = make([][]interface{}, 0, len(aggs))
	for _, a := range aggs {
		c := a.Counts
		t.Rows = append(t.Rows, []interface{}{
			a.Key.Date, a.Key.City, a.Key.Campaign, c.Customer,
			c.Acq2W, c.AcqTrucks, c.AcqHCV, c.AcqLCV, c.PNMConv,
			c.SME, c.Retail, c.SME2W, c.SMETrucks,
		})
	}
	return t
}

func UACeCityTable(aggs []models.ConvCityAgg) models.Table {
	t := models.Table{Header: []string{
		"ORDER_DATE", "City", "Campaign", "CUSTOMER_ID",
		"2W_UACe", "LCV_UACe", "HCV_UACe", "Trucks_UACe", "Total_UACe",
		"SME_UACe", "Retail_UACe", "SME_2W_UACe", "SME_Trucks_UACe",
	}}
	t.Rows = convCityRows(aggs)
	return t
}

func UACCityTable(aggs []models.ConvCityAgg) models.Table {
	t := models.Table{Header: []string{
		"REG_DATE_FORMATED", "City", "Campaign", "MOBILE_NUMBER",
		"2W_UAC", "LCV_UAC", "HCV_UAC", "Trucks_UAC", "Total_UAC",
		"SME_UAC", "Retail_UAC", "SME_2W_UAC", "SME_Trucks_UAC",
	}}
	t.Rows = convCityRows(aggs)
	return t
}

func convCityRows(aggs []models.ConvCityAgg) [][]interface{} {
	rows := make([][]interface{}, 0, len(aggs))
	for _, a := range aggs {
		c := a.Counts
		rows = append(rows, []interface{}{
			a.Key.Date, a.Key.City, a.Key.Campaign, a.Customers,
			c.Acq2W, c.AcqLCV, c.AcqHCV, c.AcqTrucks, c.AcqTotal,
			c.SME, c.Retail, c.SME2W, c.SMETrucks,
		})
	}
	return rows
}

func ReconciledTable(rows []models.ReconciledRow) models.Table {
	t := models.Table{Header: []string{
		"Date", "Campaign ID", "Campaign Name", "City", "Category",
		"2W_acq_total", "HCV_acq_total", "LCV_acq_total", "Trucks_acq_total", "PNM_acq", "all_acq_total",
		"ACQ_2W", "ACQ_HCV", "ACQ_LCV", "ACQ_TRUCKS",
		"2W_UAC", "HCV_UAC", "LCV_UAC", "Trucks_UAC", "Total_UAC",
		"2W_UACe", "HCV_UACe", "LCV_UACe", "Trucks_UACe", "Total_UACe",
		"SME_total", "Retail_total", "SME_2W_total", "SME_Trucks_total",
		"SME", "Retail", "SME_UAC", "Retail_UAC", "SME_UACe", "Retail_UACe",
	}}
	t.Rows = make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		t.Rows = append(t.Rows, []interface{}{
			r.Date, r.CampaignID, r.CampaignName, r.City, r.Category,
			r.Acq2WTotal, r.AcqHCVTotal, r.AcqLCVTotal, r.AcqTrucksTotal, r.PNMAcq, r.AllAcqTotal,
			r.Leads.Acq2W, r.Leads.AcqHCV, r.Leads.AcqLCV, r.Leads.AcqTrucks,
			r.UAC.Acq2W, r.UAC.AcqHCV, r.UAC.AcqLCV, r.UAC.AcqTrucks, r.UAC.AcqTotal,
			r.UACe.Acq2W, r.UACe.AcqHCV, r.UACe.AcqLCV, r.UACe.AcqTrucks, r.UACe.AcqTotal,
			r.SMETotal, r.RetailTotal, r.SME2WTotal, r.SMETrucksTotal,
			r.Leads.SME, r.Leads.Retail, r.UAC.SME, r.UAC.Retail, r.UACe.SME, r.UACe.Retail,
		})
	}
	return t
}
