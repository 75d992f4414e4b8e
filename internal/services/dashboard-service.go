package services

import (
	"context"
	"sync"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"gearguard/internal/authz"
	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
)

type DashboardServiceInterface interface {
	GetStats(ctx context.Context, actor *entities.User) (interface{}, error)
	GetRecentActivity(ctx context.Context, actor *entities.User) ([]dto.ActivityItemDTO, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepositoryInterface
	logger        *zap.Logger
}

func NewDashboardService(dashboardRepo repositories.DashboardRepositoryInterface, logger *zap.Logger) DashboardServiceInterface {
	return &DashboardService{dashboardRepo: dashboardRepo, logger: logger}
}

// errGroup collects the first error from a set of concurrent queries.
type errGroup struct {
	wg  sync.WaitGroup
	mu  sync.Mutex
	err error
}

func (g *errGroup) run(fn func() error) {
	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		if err := fn(); err != nil {
			g.mu.Lock()
			if g.err == nil {
				g.err = err
			}
			g.mu.Unlock()
		}
	}()
}

func (g *errGroup) wait() error {
	g.wg.Wait()
	return g.err
}

// GetStats assembles the dashboard slice matching the actor's role. The
// independent aggregate queries run concurrently.
func (s *DashboardService) GetStats(ctx context.Context, actor *entities.User) (interface{}, error) {
	switch actor.Role {
	case entities.RoleAdmin:
		return s.adminStats(ctx)
	case entities.RoleTechnician:
		return s.technicianStats(ctx, actor)
	default:
		return s.userStats(ctx, actor)
	}
}

func (s *DashboardService) adminStats(ctx context.Context) (*dto.AdminStatsDTO, error) {
	stats := &dto.AdminStatsDTO{}
	g := &errGroup{}

	g.run(func() error {
		count, err := s.dashboardRepo.CountActiveEquipment(ctx)
		stats.TotalEquipment = count
		return err
	})
	g.run(func() error {
		counts, err := s.dashboardRepo.GetRequestCounts(ctx, nil)
		if counts != nil {
			stats.Requests = *counts
		}
		return err
	})
	g.run(func() error {
		count, err := s.dashboardRepo.CountTeams(ctx)
		stats.TotalTeams = count
		return err
	})
	g.run(func() error {
		total, err := s.dashboardRepo.SumCost(ctx, nil)
		stats.TotalCost = total
		return err
	})
	g.run(func() error {
		count, err := s.dashboardRepo.CountOverdue(ctx)
		stats.OverdueRequests = count
		return err
	})

	if err := g.wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *DashboardService) technicianStats(ctx context.Context, actor *entities.User) (*dto.TechnicianStatsDTO, error) {
	stats := &dto.TechnicianStatsDTO{}
	g := &errGroup{}

	g.run(func() error {
		counts, err := s.dashboardRepo.GetRequestCounts(ctx, authz.RequestScope(actor))
		if counts != nil {
			stats.TeamRequests = *counts
		}
		return err
	})
	g.run(func() error {
		counts, err := s.dashboardRepo.GetTaskCounts(ctx, actor.ID)
		if counts != nil {
			stats.MyTasks = *counts
		}
		return err
	})
	g.run(func() error {
		total, err := s.dashboardRepo.SumCost(ctx, sq.Eq{"mr.technician_id": actor.ID})
		stats.TotalCost = total
		return err
	})

	if err := g.wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *DashboardService) userStats(ctx context.Context, actor *entities.User) (*dto.UserStatsDTO, error) {
	counts, err := s.dashboardRepo.GetRequestCounts(ctx, sq.Eq{"mr.created_by": actor.ID})
	if err != nil {
		return nil, err
	}
	return &dto.UserStatsDTO{MyRequests: *counts}, nil
}

func (s *DashboardService) GetRecentActivity(ctx context.Context, actor *entities.User) ([]dto.ActivityItemDTO, error) {
	return s.dashboardRepo.GetRecentActivity(ctx, authz.RequestScope(actor))
}
