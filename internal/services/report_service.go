package services

import (
	"fmt"
	"sort"

	"holdup_backend/internal/models"
	"holdup_backend/internal/repositories"
)

// --- ReportService Interface ---

// ReportService serves the pure-read reporting endpoints. A location-bound
// actor only ever sees their own location's analytics.
type ReportService interface {
	GetAnalytics(actor models.AuthContext, locationID *int64) (*models.AnalyticsSummary, error)
	GetReorderAlerts() ([]models.LowStockAlert, error)
	GetProfitMargins() ([]models.ProfitMarginEntry, error)
	GetDeadStock() ([]models.DeadStockEntry, error)
}

type reportService struct {
	reportRepo repositories.ReportRepository
}

// NewReportService creates a new instance of ReportService.
func NewReportService(rr repositories.ReportRepository) ReportService {
	return &reportService{reportRepo: rr}
}

func (s *reportService) GetAnalytics(actor models.AuthContext, locationID *int64) (*models.AnalyticsSummary, error) {
	scope := locationID
	if actor.LocationID != nil {
		scope = actor.LocationID
	}
	summary, err := s.reportRepo.GetAnalyticsSummary(scope)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate analytics: %w", err)
	}
	return summary, nil
}

func (s *reportService) GetReorderAlerts() ([]models.LowStockAlert, error) {
	alerts, err := s.reportRepo.GetReorderAlerts()
	if err != nil {
		return nil, fmt.Errorf("failed to get reorder alerts: %w", err)
	}
	return alerts, nil
}

// GetProfitMargins computes the per-product margin percentage and sorts
// highest margin first.
func (s *reportService) GetProfitMargins() ([]models.ProfitMarginEntry, error) {
	products, err := s.reportRepo.GetCatalogPricing()
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog pricing: %w", err)
	}

	entries := make([]models.ProfitMarginEntry, 0, len(products))
	for _, p := range products {
		entry := models.ProfitMarginEntry{Product: p}
		entry.Profit = p.SellingPrice - p.CostPrice
		if p.SellingPrice > 0 {
			entry.MarginPct = entry.Profit / p.SellingPrice * 100
		}
		entries = append(entries, entry)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].MarginPct > entries[j].MarginPct
	})
	return entries, nil
}

// GetDeadStock values unsold inventory at stock x cost price, highest held
// capital first.
func (s *reportService) GetDeadStock() ([]models.DeadStockEntry, error) {
	entries, err := s.reportRepo.GetDeadStockRows()
	if err != nil {
		return nil, fmt.Errorf("failed to get dead stock rows: %w", err)
	}

	for i := range entries {
		entries[i].DeadCapital = float64(entries[i].TotalStock) * entries[i].CostPrice
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DeadCapital > entries[j].DeadCapital
	})
	return entries, nil
}
