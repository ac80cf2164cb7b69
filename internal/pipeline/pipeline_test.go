package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AngelCh415/geoacq-etl/internal/config"
	"github.com/AngelCh415/geoacq-etl/internal/gsheet"
	"github.com/AngelCh415/geoacq-etl/internal/models"
)

type fakeAds struct {
	rows []models.CostRecord
	err  error
}

func (f *fakeAds) FetchAll(ctx context.Context, accountIDs []string, start, end string) ([]models.CostRecord, error) {
	return f.rows, f.err
}

type fakeSheets struct {
	refs      []models.CampaignRef
	published map[string]models.Table
	failOn    string
	failErr   error
}

func (f *fakeSheets) ReadReference(ctx context.Context, spreadsheetID, worksheet string) ([]models.CampaignRef, error) {
	return f.refs, nil
}

func (f *fakeSheets) Publish(ctx context.Context, spreadsheetID, worksheet, clearRange string, t models.Table) error {
	if worksheet == f.failOn {
		return f.failErr
	}
	if f.published == nil {
		f.published = map[string]models.Table{}
	}
	f.published[worksheet] = t
	return nil
}

func testConfig() config.Config {
	return config.Config{
		AdsAccountIDs:      []string{"9680382253", "4840834180"},
		SpreadsheetID:      "sheet-1",
		ReferenceWorksheet: "Mapping_ref",
		ReportWorksheet:    "Trial",
		LeadsWorksheet:     "Geo_acq_2w_spot",
		UACeWorksheet:      "Geo_acq_uace",
		UACWorksheet:       "Geo_acq_uac",
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// leads en latin-1 para ejercer la detección de charset del pipeline
func latin1(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		out = append(out, byte(r))
	}
	return out
}

func TestRunEndToEnd(t *testing.T) {
	adsc := &fakeAds{rows: []models.CostRecord{
		{Date: "2024-01-01", CampaignID: "999", CampaignName: "Campaign_A ", Cost: 2.0},
		{Date: "2024-01-01", CampaignID: "998", CampaignName: "Campaign_A", Cost: 1.0},
		{Date: "2024-01-01", CampaignID: "997", CampaignName: "Sin_Referencia", Cost: 9.0},
	}}
	sheets := &fakeSheets{refs: refFixture()}

	leads := "UTM_CAMPAIGN,LEAD_DATE,CUSTOMER,FREQUENCY_ENUM,FIRST_CATEGORY,REG_GEO_ID,CAMPAIGN_NAME,ACQ_2W,ACQ_TRUCKS,ACQ_HCV,ACQ_LCV,PNM_CONV\n" +
		"123,01-01-2024,1,4,2w,1,Campaña_España_Más,3,0,0,0,0\n"
	uace := "VEHICLE_ID,FREQ,GEO_REGION_ID,CAMPAIGN_NAME,ORDER_DATE,CUSTOMER_ID\n" +
		"97,5,2,Engage (123),01-01-2024,C1\n"
	uac := "VEHICLE_TYPE,FREQ,GEO_REGION_ID,CAMPAIGN_NAME,REG_DATE_FORMATED,MOBILE_NUMBER\n" +
		"HCV,4,5,UAC_ROI_tCPA_South,01-01-2024,911\n"

	p := New(adsc, sheets, nil, testLogger(), testConfig())
	res, err := p.Run(context.Background(), Input{
		Start: "2024-01-01",
		End:   "2024-01-31",
		Leads: latin1(leads),
		UACe:  []byte(uace),
		UAC:   []byte(uac),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, res.CostRows)
	assert.Equal(t, 2, res.MappedRows, "Sin_Referencia se descarta")
	assert.Equal(t, 2, res.ReconciledRows)
	assert.Equal(t, 1, res.LeadsCityRows)
	require.Len(t, res.Published, 4)
	for _, st := range res.Published {
		assert.Empty(t, st.Error)
	}

	report, ok := sheets.published["Trial"]
	require.True(t, ok)
	require.Len(t, report.Rows, 2)
	// las dos filas de costo comparten el agregado del canal: leads 3 + uace 1
	assert.Equal(t, 4, report.Rows[0][5], "2W_acq_total")
	assert.Equal(t, 4, report.Rows[1][5], "2W_acq_total")
	// el charset latin-1 del archivo de leads se decodificó antes de parsear
	leadsTbl := sheets.published["Geo_acq_2w_spot"]
	require.Len(t, leadsTbl.Rows, 1)
	assert.Equal(t, "Campaña_España_Más", leadsTbl.Rows[0][2])
}

func TestRunPublishFailureIsIsolated(t *testing.T) {
	adsc := &fakeAds{}
	sheets := &fakeSheets{
		refs:    refFixture(),
		failOn:  "Geo_acq_uace",
		failErr: fmt.Errorf("%w: title Geo_acq_uace", gsheet.ErrWorksheetNotFound),
	}

	p := New(adsc, sheets, nil, testLogger(), testConfig())
	res, err := p.Run(context.Background(), Input{
		Start: "2024-01-01",
		End:   "2024-01-31",
		Leads: []byte("UTM_CAMPAIGN,LEAD_DATE,CUSTOMER,FREQUENCY_ENUM,FIRST_CATEGORY,REG_GEO_ID,CAMPAIGN_NAME,ACQ_2W,ACQ_TRUCKS,ACQ_HCV,ACQ_LCV,PNM_CONV\n"),
		UACe:  []byte("VEHICLE_ID,FREQ,GEO_REGION_ID,CAMPAIGN_NAME,ORDER_DATE,CUSTOMER_ID\n"),
		UAC:   []byte("VEHICLE_TYPE,FREQ,GEO_REGION_ID,CAMPAIGN_NAME,REG_DATE_FORMATED,MOBILE_NUMBER\n"),
	})
	require.NoError(t, err, "un destino caído no tumba el run")

	require.Len(t, res.Published, 4)
	var failed, succeeded int
	for _, st := range res.Published {
		if st.Error != "" {
			failed++
			assert.Equal(t, "Geo_acq_uace", st.Worksheet)
			assert.Contains(t, st.Error, "worksheet not found")
			assert.Contains(t, st.Error, "Geo_acq_uace")
		} else {
			succeeded++
		}
	}
	assert.Equal(t, 1, failed)
	assert.Equal(t, 3, succeeded)
}

func TestRunMalformedCSVFatal(t *testing.T) {
	p := New(&fakeAds{}, &fakeSheets{refs: refFixture()}, nil, testLogger(), testConfig())
	_, err := p.Run(context.Background(), Input{
		Start: "2024-01-01",
		End:   "2024-01-31",
		Leads: []byte("UTM_CAMPAIGN\n1\n"), // faltan columnas
		UACe:  []byte("VEHICLE_ID,FREQ,GEO_REGION_ID,CAMPAIGN_NAME,ORDER_DATE,CUSTOMER_ID\n"),
		UAC:   []byte("VEHICLE_TYPE,FREQ,GEO_REGION_ID,CAMPAIGN_NAME,REG_DATE_FORMATED,MOBILE_NUMBER\n"),
	})
	require.ErrorIs(t, err, ErrMalformedInput)
}
