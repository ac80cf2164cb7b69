package gsheet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/AngelCh415/geoacq-etl/internal/models"
)

var (
	ErrSpreadsheetNotFound = errors.New("spreadsheet not found")
	ErrWorksheetNotFound   = errors.New("worksheet not found")
)

// Service envuelve sheets/v4 para leer la tabla de referencia y publicar reportes.
type Service struct {
	srv *sheets.Service
	log *slog.Logger
}

func NewService(ctx context.Context, credentialsJSON []byte, log *slog.Logger, extra ...option.ClientOption) (*Service, error) {
	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	if len(credentialsJSON) > 0 {
		opts = append(opts, option.WithCredentialsJSON(credentialsJSON))
	}
	opts = append(opts, extra...)
	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Service{srv: srv, log: log}, nil
}

// ReadReference lee la tabla Campaign -> (City, Category, Campaign ID).
// La primera fila es el header; columnas requeridas por nombre.
func (s *Service) ReadReference(ctx context.Context, spreadsheetID, worksheet string) ([]models.CampaignRef, error) {
	readRange := worksheet + "!A:D"
	resp, err := s.srv.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, classify(err, spreadsheetID, worksheet)
	}
	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("worksheet %s is empty", worksheet)
	}

	idx := map[string]int{}
	for i, h := range resp.Values[0] {
		idx[strings.TrimSpace(fmt.Sprint(h))] = i
	}
	for _, col := range []string{"Campaign", "City", "Category", "Campaign ID"} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("worksheet %s: missing required column %q", worksheet, col)
		}
	}

	out := make([]models.CampaignRef, 0, len(resp.Values)-1)
	for _, row := range resp.Values[1:] {
		out = append(out, models.CampaignRef{
			Campaign:   cell(row, idx["Campaign"]),
			City:       cell(row, idx["City"]),
			Category:   cell(row, idx["Category"]),
			CampaignID: cell(row, idx["Campaign ID"]), // siempre como string
		})
	}
	s.log.Info("reference loaded", slog.String("worksheet", worksheet), slog.Int("rows", len(out)))
	return out, nil
}

// Publish limpia el rango completo y sobrescribe desde A1 (header + filas).
// No es un upsert incremental.
func (s *Service) Publish(ctx context.Context, spreadsheetID, worksheet, clearRange string, t models.Table) error {
	clr := worksheet + "!" + clearRange
	if _, err := s.srv.Spreadsheets.Values.Clear(spreadsheetID, clr, &sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return classify(err, spreadsheetID, worksheet)
	}

	vals := make([][]interface{}, 0, len(t.Rows)+1)
	header := make([]interface{}, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	vals = append(vals, header)
	vals = append(vals, t.Rows...)

	_, err := s.srv.Spreadsheets.Values.
		Update(spreadsheetID, worksheet+"!A1", &sheets.ValueRange{Values: vals}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return classify(err, spreadsheetID, worksheet)
	}
	s.log.Info("worksheet updated", slog.String("worksheet", worksheet), slog.Int("rows", len(t.Rows)))
	return nil
}

// classify separa "no existe" de fallas genéricas para que el operador
// pueda corregir IDs o permisos sin adivinar.
func classify(err error, spreadsheetID, worksheet string) error {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		switch {
		case gErr.Code == http.StatusNotFound:
			return fmt.Errorf("%w: id %s", ErrSpreadsheetNotFound, spreadsheetID)
		case gErr.Code == http.StatusBadRequest && strings.Contains(gErr.Message, "Unable to parse range"):
			return fmt.Errorf("%w: title %s", ErrWorksheetNotFound, worksheet)
		}
	}
	return fmt.Errorf("sheets %s/%s: %w", spreadsheetID, worksheet, err)
}

func cell(row []interface{}, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[i]))
}
