package models

// CostRecord es una fila (campaña, día) de un account de ads; Cost ya en unidades mayores.
type CostRecord struct {
	Date         string // YYYY-MM-DD tal como llega del API
	CampaignID   string
	CampaignName string
	Cost         float64
}

// CampaignRef es una fila de la tabla de referencia Campaign -> (City, Category).
type CampaignRef struct {
	Campaign   string
	City       string
	Category   string
	CampaignID string
}

// MappedCost es el resultado del join costo x referencia.
type MappedCost struct {
	Date         string // DD-MM-YYYY
	CampaignID   string // el de la referencia
	CampaignName string
	City         string
	Category     string
	Cost         float64
	Key          string // CampaignID + "_" + Date
}

// LeadCounts son los contadores del canal de leads (2W & Spot).
type LeadCounts struct {
	Customer  int
	Acq2W     int
	AcqTrucks int
	AcqHCV    int
	AcqLCV    int
	PNMConv   int
	SME       int
	Retail    int
	SME2W     int
	SMETrucks int
}

func (c *LeadCounts) Add(o LeadCounts) {
	c.Customer += o.Customer
	c.Acq2W += o.Acq2W
	c.AcqTrucks += o.AcqTrucks
	c.AcqHCV += o.AcqHCV
	c.AcqLCV += o.AcqLCV
	c.PNMConv += o.PNMConv
	c.SME += o.SME
	c.Retail += o.Retail
	c.SME2W += o.SME2W
	c.SMETrucks += o.SMETrucks
}

// ConvCounts son los one-hot derivados de los canales UAC y UACe.
type ConvCounts struct {
	Acq2W     int
	AcqLCV    int
	AcqHCV    int
	AcqTrucks int
	AcqTotal  int
	SME       int
	Retail    int
	SME2W     int
	SMETrucks int
}

func (c *ConvCounts) Add(o ConvCounts) {
	c.Acq2W += o.Acq2W
	c.AcqLCV += o.AcqLCV
	c.AcqHCV += o.AcqHCV
	c.AcqTrucks += o.AcqTrucks
	c.AcqTotal += o.AcqTotal
	c.SME += o.SME
	c.Retail += o.Retail
	c.SME2W += o.SME2W
	c.SMETrucks += o.SMETrucks
}

type CityKey struct {
	Date     string
	Campaign string
	City     string
}

// LeadCityAgg es una celda del reporte por ciudad del canal de leads.
type LeadCityAgg struct {
	Key    CityKey
	Counts LeadCounts
}

// ConvCityAgg es una celda por ciudad de UAC/UACe; Customers es un count, no un sum.
type ConvCityAgg struct {
	Key       CityKey
	Customers int
	Counts    ConvCounts
}

// ReconciledRow es la fila final: costo mapeado + agregados de los tres canales + totales.
type ReconciledRow struct {
	Date         string
	CampaignID   string
	CampaignName string
	City         string
	Category     string
	Cost         float64

	Leads LeadCounts
	UACe  ConvCounts
	UAC   ConvCounts

	Acq2WTotal     int
	AcqLCVTotal    int
	AcqHCVTotal    int
	AcqTrucksTotal int
	PNMAcq         int
	AllAcqTotal    int
	SMETotal       int
	RetailTotal    int
	SME2WTotal     int
	SMETrucksTotal int
}

// Table es lo que se publica: header + filas, el orden de columnas importa.
type Table struct {
	Header []string
	Rows   [][]interface{}
}
