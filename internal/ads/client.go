package ads

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/AngelCh415/geoacq-etl/internal/models"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func NewHTTPClient(timeout time.Duration) HTTPClient {
	return &http.Client{Timeout: timeout}
}

// Client lee el gasto diario por campaña de la fuente de ads ya autenticada.
type Client struct {
	c       HTTPClient
	baseURL string
	log     *slog.Logger
}

func NewClient(c HTTPClient, baseURL string, log *slog.Logger) *Client {
	return &Client{c: c, baseURL: baseURL, log: log}
}

type costResp []struct {
	Date         string  `json:"date"`
	CampaignID   string  `json:"campaign_id"`
	CampaignName string  `json:"campaign_name"`
	CostMicros   float64 `json:"cost_micros"`
}

// Fetch trae una fila por (campaña, día) para un account en el rango dado.
// Campos ausentes: identificadores -> "NA", costo -> 0. Sin reintentos.
func (c *Client) Fetch(ctx context.Context, accountID, start, end string) ([]models.CostRecord, error) {
	if c.baseURL == "" {
		return nil, errors.New("ads url not configured")
	}
	q := url.Values{}
	q.Set("customer_id", accountID)
	q.Set("start_date", start)
	q.Set("end_date", end)

	var resp costResp
	if err := c.getJSON(ctx, c.baseURL+"?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("ads fetch account %s: %w", accountID, err)
	}

	out := make([]models.CostRecord, 0, len(resp))
	for _, r := range resp {
		out = append(out, models.CostRecord{
			Date:         orNA(r.Date),
			CampaignID:   orNA(r.CampaignID),
			CampaignName: orNA(r.CampaignName),
			Cost:         r.CostMicros / 1e6, // micros a unidades mayores
		})
	}
	c.log.Info("ads fetched", slog.String("account", accountID), slog.Int("rows", len(out)))
	return out, nil
}

// FetchAll concatena los accounts en orden; sin dedup entre accounts.
func (c *Client) FetchAll(ctx context.Context, accountIDs []string, start, end string) ([]models.CostRecord, error) {
	var out []models.CostRecord
	for _, id := range accountIDs {
		rows, err := c.Fetch(ctx, id, start, end)
		if err != nil {
			return nil, err
		}
		out = append(out, rows...)
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, u string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("non-2xx: %d body=%s", resp.StatusCode, string(b))
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

func orNA(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	return s
}
