package pipeline

import (
	"regexp"
	"strings"

	"github.com/AngelCh415/geoacq-etl/internal/models"
)

// Segmentos por frequency enum: 4 = SME, 5 o 6 = Retail.
func smeFlag(freq int) int {
	if freq == 4 {
		return 1
	}
	return 0
}

func retailFlag(freq int) int {
	if freq == 5 || freq == 6 {
		return 1
	}
	return 0
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// vehicleByID mapea VEHICLE_ID a categoría; IDs fuera de tabla -> "0" (sin categoría).
var vehicleByID = map[int]string{
	97:  "2W",
	126: "LCV",
	1:   "LCV",
	9:   "HCV",
	91:  "LCV",
	128: "HCV",
	2:   "HCV",
	10:  "HCV",
	7:   "LCV",
	3:   "HCV",
	110: "HCV",
	8:   "HCV",
	14:  "LCV",
	101: "LCV",
	104: "LCV",
	133: "0",
	109: "HCV",
	103: "LCV",
	111: "HCV",
	114: "HCV",
	106: "HCV",
	88:  "LCV",
	107: "HCV",
	132: "0",
	105: "LCV",
	100: "HCV",
	108: "HCV",
	112: "HCV",
	0:   "0",
}

func vehicleFor(id int) string {
	if v, ok := vehicleByID[id]; ok {
		return v
	}
	return "0"
}

// convCounts deriva los one-hot de vehículo y los flags de segmento para UAC/UACe.
func convCounts(vehicle string, freq int) models.ConvCounts {
	c := models.ConvCounts{
		Acq2W:  b2i(vehicle == "2W"),
		AcqLCV: b2i(vehicle == "LCV"),
		AcqHCV: b2i(vehicle == "HCV"),
	}
	c.AcqTrucks = c.AcqLCV + c.AcqHCV
	c.AcqTotal = c.Acq2W + c.AcqTrucks
	c.SME = smeFlag(freq)
	c.Retail = retailFlag(freq)
	c.SME2W = b2i(freq == 4 && vehicle == "2W")
	c.SMETrucks = b2i(freq == 4 && (vehicle == "LCV" || vehicle == "HCV"))
	return c
}

var (
	campaignPrefixRe = regexp.MustCompile(`^([^(]*)\(`)
	campaignIDRe     = regexp.MustCompile(`\((\d+)\)$`)
)

// extractCampaignName toma el prefijo antes del primer paréntesis; sin match -> "".
func extractCampaignName(s string) string {
	m := campaignPrefixRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// extractCampaignID toma los dígitos del paréntesis final; sin match -> "".
func extractCampaignID(s string) string {
	m := campaignIDRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return ""
	}
	return m[1]
}

// refIndex indexa la referencia por nombre de campaña ya recortado.
func refIndex(refs []models.CampaignRef) map[string]models.CampaignRef {
	byName := make(map[string]models.CampaignRef, len(refs))
	for _, r := range refs {
		byName[strings.TrimSpace(r.Campaign)] = r
	}
	return byName
}
