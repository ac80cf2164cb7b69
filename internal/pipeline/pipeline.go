package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/AngelCh415/geoacq-etl/internal/config"
	"github.com/AngelCh415/geoacq-etl/internal/gsheet"
	"github.com/AngelCh415/geoacq-etl/internal/metrics"
	"github.com/AngelCh415/geoacq-etl/internal/models"
	"github.com/AngelCh415/geoacq-etl/internal/textenc"
)

const (
	clearRangeReport = "A:AI"
	clearRangeCity   = "A:M"
)

type AdsClient interface {
	FetchAll(ctx context.Context, accountIDs []string, start, end string) ([]models.CostRecord, error)
}

type SheetClient interface {
	ReadReference(ctx context.Context, spreadsheetID, worksheet string) ([]models.CampaignRef, error)
	Publish(ctx context.Context, spreadsheetID, worksheet, clearRange string, t models.Table) error
}

// Pipeline corre el batch completo: extract -> map -> normalizar x3 -> reconcile -> publish.
// Todo síncrono y de un solo hilo; dos runs simultáneos contra el mismo destino
// terminan en last-writer-wins, limitación conocida de este reporte.
type Pipeline struct {
	ads    AdsClient
	sheets SheetClient
	m      *metrics.Service
	log    *slog.Logger
	cfg    config.Config
}

func New(ads AdsClient, sheets SheetClient, m *metrics.Service, log *slog.Logger, cfg config.Config) *Pipeline {
	return &Pipeline{ads: ads, sheets: sheets, m: m, log: log, cfg: cfg}
}

// Input es un run: rango de fechas YYYY-MM-DD y los tres CSV subidos.
type Input struct {
	Start string
	End   string
	Leads []byte
	UACe  []byte
	UAC   []byte
}

type PublishStatus struct {
	Worksheet string `json:"worksheet"`
	Rows      int    `json:"rows"`
	Error     string `json:"error,omitempty"`
}

type RunResult struct {
	CostRows       int             `json:"cost_rows"`
	MappedRows     int             `json:"mapped_rows"`
	ReconciledRows int             `json:"reconciled_rows"`
	LeadsCityRows  int             `json:"leads_city_rows"`
	UACeCityRows   int             `json:"uace_city_rows"`
	UACCityRows    int             `json:"uac_city_rows"`
	Published      []PublishStatus `json:"published"`
}

func (p *Pipeline) Run(ctx context.Context, in Input) (*RunResult, error) {
	start := time.Now()
	res, err := p.run(ctx, in)
	status := "ok"
	if err != nil {
		status = "error"
	}
	p.m.ObserveRun(status, time.Since(start))
	return res, err
}

func (p *Pipeline) run(ctx context.Context, in Input) (*RunResult, error) {
	costs, err := p.ads.FetchAll(ctx, p.cfg.AdsAccountIDs, in.Start, in.End)
	if err != nil {
		return nil, err
	}

	refs, err := p.sheets.ReadReference(ctx, p.cfg.SpreadsheetID, p.cfg.ReferenceWorksheet)
	if err != nil {
		return nil, err
	}

	mapped, err := MapCampaigns(costs, refs)
	if err != nil {
		return nil, err
	}

	// detección de charset solo en el archivo de leads
	leadsData, err := textenc.DecodeUTF8(in.Leads)
	if err != nil {
		return nil, fmt.Errorf("%w: leads: %v", ErrMalformedInput, err)
	}
	leads, err := NormalizeLeads(leadsData)
	if err != nil {
		return nil, err
	}
	uace, err := NormalizeUACe(in.UACe)
	if err != nil {
		return nil, err
	}
	uac, err := NormalizeUAC(in.UAC, refs)
	if err != nil {
		return nil, err
	}

	rows := Reconcile(mapped, leads.Key, uace.Key, uac.Key)

	res := &RunResult{
		CostRows:       len(costs),
		MappedRows:     len(mapped),
		ReconciledRows: len(rows),
		LeadsCityRows:  len(leads.City),
		UACeCityRows:   len(uace.City),
		UACCityRows:    len(uac.City),
	}

	targets := []struct {
		worksheet  string
		clearRange string
		table      models.Table
	}{
		{p.cfg.ReportWorksheet, clearRangeReport, ReconciledTable(rows)},
		{p.cfg.LeadsWorksheet, clearRangeCity, LeadsCityTable(leads.City)},
		{p.cfg.UACeWorksheet, clearRangeCity, UACeCityTable(uace.City)},
		{p.cfg.UACWorksheet, clearRangeCity, UACCityTable(uac.City)},
	}
	for _, tg := range targets {
		st := PublishStatus{Worksheet: tg.worksheet, Rows: len(tg.table.Rows)}
		// un destino que falla no frena a los demás
		if err := p.sheets.Publish(ctx, p.cfg.SpreadsheetID, tg.worksheet, tg.clearRange, tg.table); err != nil {
			st.Error = publishMessage(err, tg.worksheet)
			st.Rows = 0
			p.log.Error("publish failed", slog.String("worksheet", tg.worksheet), slog.String("err", err.Error()))
		} else {
			p.m.SetPublishedRows(tg.worksheet, len(tg.table.Rows))
		}
		res.Published = append(res.Published, st)
	}

	return res, nil
}

// publishMessage arma el mensaje accionable para el operador: un "not found"
// se corrige con IDs o permisos, no con reintentos.
func publishMessage(err error, worksheet string) string {
	switch {
	case errors.Is(err, gsheet.ErrSpreadsheetNotFound):
		return fmt.Sprintf("%v - check the sheet ID and service account permissions", err)
	case errors.Is(err, gsheet.ErrWorksheetNotFound):
		return fmt.Sprintf("%v - check the worksheet title %q", err, worksheet)
	default:
		return fmt.Sprintf("unexpected error publishing %q: %v", worksheet, err)
	}
}
