package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

type Config struct {
	Port        string
	HTTPTimeout time.Duration
	LogLevel    slog.Level

	AdsURL        string
	AdsAccountIDs []string

	CredentialsJSON    string
	SpreadsheetID      string
	ReferenceWorksheet string
	ReportWorksheet    string
	LeadsWorksheet     string
	UACeWorksheet      string
	UACWorksheet       string
}

func FromEnv() Config {
	to := 15 * time.Second
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if d, err := time.ParseDuration(v + "s"); err == nil {
			to = d
		}
	}
	lvl := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		lvl = slog.LevelDebug
	}
	return Config{
		Port:        envOr("PORT", "8080"),
		HTTPTimeout: to,
		LogLevel:    lvl,

		AdsURL:        os.Getenv("ADS_API_URL"),
		AdsAccountIDs: splitCSV(envOr("ADS_ACCOUNT_IDS", "9680382253,4840834180")),

		CredentialsJSON:    os.Getenv("GOOGLE_SA_JSON"),
		SpreadsheetID:      os.Getenv("SPREADSHEET_ID"),
		ReferenceWorksheet: envOr("REFERENCE_WORKSHEET", "Mapping_ref"),
		ReportWorksheet:    envOr("REPORT_WORKSHEET", "Trial"),
		LeadsWorksheet:     envOr("LEADS_WORKSHEET", "Geo_acq_2w_spot"),
		UACeWorksheet:      envOr("UACE_WORKSHEET", "Geo_acq_uace"),
		UACWorksheet:       envOr("UAC_WORKSHEET", "Geo_acq_uac"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
