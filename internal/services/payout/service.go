// Package payout computes what each verified player is owed for their kills.
package payout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/torneokills/torneo/internal/model"
	"github.com/torneokills/torneo/internal/services/rate"
	"github.com/torneokills/torneo/internal/storage"
)

// Default amounts in USD
const (
	DefaultPerKillUSD  = 1.00
	DefaultEntryFeeUSD = 1.50
)

// Config holds the payout amounts
type Config struct {
	PerKillUSD  float64
	EntryFeeUSD float64
}

// DefaultConfig returns $1.00 per kill and a $1.50 entry fee
func DefaultConfig() Config {
	return Config{
		PerKillUSD:  DefaultPerKillUSD,
		EntryFeeUSD: DefaultEntryFeeUSD,
	}
}

// Row is one player's payout
type Row struct {
	model.EnrollmentDetail
	AmountUSD   float64
	AmountLocal float64
}

// Report is the payout report for every verified enrollment with kills
type Report struct {
	Rate       float64
	Rows       []Row
	TotalUSD   float64
	TotalLocal float64
}

// FormData is what the entry form needs to render
type FormData struct {
	Rate        float64
	EntryFeeBs  string
	Tournaments []model.Tournament
}

// Service builds payout reports
type Service struct {
	storage storage.Storage
	rates   rate.Provider
	cfg     Config
	logger  *slog.Logger
}

// New creates a payout service
func New(storage storage.Storage, rates rate.Provider, cfg Config, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		rates:   rates,
		cfg:     cfg,
		logger:  logger,
	}
}

// Config returns the payout amounts in use
func (s *Service) Config() Config {
	return s.cfg
}

// Report fetches the rate, then the verified enrollments with kills, and
// converts each kill count to USD and Bs. A rate failure aborts the report.
func (s *Service) Report(ctx context.Context) (*Report, error) {
	value, err := s.rates.GetOfficialRate(ctx)
	if err != nil {
		return nil, err
	}

	filter := model.VerifiedPayment()
	filter.WithKills = true
	details, err := s.storage.ListEnrollments(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list enrollments for report", "error", err)
		return nil, fmt.Errorf("list enrollments: %w", err)
	}

	report := &Report{Rate: value, Rows: make([]Row, 0, len(details))}
	for _, d := range details {
		usd := float64(d.Kills) * s.cfg.PerKillUSD
		local := usd * value
		report.Rows = append(report.Rows, Row{
			EnrollmentDetail: d,
			AmountUSD:        usd,
			AmountLocal:      local,
		})
		report.TotalUSD += usd
		report.TotalLocal += local
	}
	return report, nil
}

// EntryFeeLocal returns the entry fee in Bs. at the given rate, two decimals
func (s *Service) EntryFeeLocal(rateValue float64) string {
	return FormatAmount(rateValue * s.cfg.EntryFeeUSD)
}

// FormData fetches the rate and the tournament list for the entry form
func (s *Service) FormData(ctx context.Context) (*FormData, error) {
	value, err := s.rates.GetOfficialRate(ctx)
	if err != nil {
		return nil, err
	}

	tournaments, err := s.storage.ListTournaments(ctx)
	if err != nil {
		s.logger.Error("failed to list tournaments", "error", err)
		return nil, fmt.Errorf("list tournaments: %w", err)
	}

	return &FormData{
		Rate:        value,
		EntryFeeBs:  s.EntryFeeLocal(value),
		Tournaments: tournaments,
	}, nil
}

// FormatAmount renders an amount with two decimals
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
