package service

import (
	"go-inventory-api/internal/repository"
)

type DashboardService interface {
	GetSummary() (*repository.DashboardSummary, error)
}

type dashboardService struct {
	dashRepo repository.DashboardRepository
}

func NewDashboardService(dashRepo repository.DashboardRepository) DashboardService {
	return &dashboardService{dashRepo: dashRepo}
}

func (s *dashboardService) GetSummary() (*repository.DashboardSummary, error) {
	return s.dashRepo.GetSummary()
}
