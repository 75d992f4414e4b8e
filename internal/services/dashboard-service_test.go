package services

import (
	"context"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
)

type fakeDashboardRepo struct {
	costScopes []sq.Sqlizer
}

func (r *fakeDashboardRepo) CountActiveEquipment(_ context.Context) (uint64, error) { return 10, nil }
func (r *fakeDashboardRepo) CountTeams(_ context.Context) (uint64, error)           { return 4, nil }
func (r *fakeDashboardRepo) CountOverdue(_ context.Context) (uint64, error)         { return 2, nil }

func (r *fakeDashboardRepo) GetRequestCounts(_ context.Context, scope sq.Sqlizer) (*dto.RequestCountsDTO, error) {
	if scope == nil {
		return &dto.RequestCountsDTO{Total: 8, New: 3, InProgress: 3, Repaired: 2}, nil
	}
	return &dto.RequestCountsDTO{Total: 4, New: 1, InProgress: 2, Repaired: 1}, nil
}

func (r *fakeDashboardRepo) GetTaskCounts(_ context.Context, _ uint64) (*dto.TaskCountsDTO, error) {
	return &dto.TaskCountsDTO{Total: 3, InProgress: 2, Completed: 1}, nil
}

func (r *fakeDashboardRepo) SumCost(_ context.Context, scope sq.Sqlizer) (float64, error) {
	r.costScopes = append(r.costScopes, scope)
	return 650, nil
}

func (r *fakeDashboardRepo) GetRecentActivity(_ context.Context, _ sq.Sqlizer) ([]dto.ActivityItemDTO, error) {
	return []dto.ActivityItemDTO{{RequestID: 1, Subject: "Generator not starting"}}, nil
}

func TestGetStatsAdmin(t *testing.T) {
	svc := NewDashboardService(&fakeDashboardRepo{}, zap.NewNop())
	admin := &entities.User{ID: 1, Role: entities.RoleAdmin}

	res, err := svc.GetStats(context.Background(), admin)
	require.NoError(t, err)

	stats, ok := res.(*dto.AdminStatsDTO)
	require.True(t, ok)
	assert.Equal(t, uint64(10), stats.TotalEquipment)
	assert.Equal(t, uint64(4), stats.TotalTeams)
	assert.Equal(t, uint64(2), stats.OverdueRequests)
	assert.Equal(t, uint64(8), stats.Requests.Total)
	assert.Equal(t, 650.0, stats.TotalCost)
}

func TestGetStatsTechnician(t *testing.T) {
	repo := &fakeDashboardRepo{}
	svc := NewDashboardService(repo, zap.NewNop())
	tech := &entities.User{ID: 3, Role: entities.RoleTechnician, TeamID: uintPtr(2)}

	res, err := svc.GetStats(context.Background(), tech)
	require.NoError(t, err)

	stats, ok := res.(*dto.TechnicianStatsDTO)
	require.True(t, ok)
	assert.Equal(t, uint64(4), stats.TeamRequests.Total)
	assert.Equal(t, uint64(3), stats.MyTasks.Total)

	// Cost is summed over the technician's own tasks, not the team's.
	require.Len(t, repo.costScopes, 1)
	assert.Equal(t, sq.Eq{"mr.technician_id": uint64(3)}, repo.costScopes[0])
}

func TestGetStatsUser(t *testing.T) {
	svc := NewDashboardService(&fakeDashboardRepo{}, zap.NewNop())
	user := &entities.User{ID: 7, Role: entities.RoleUser}

	res, err := svc.GetStats(context.Background(), user)
	require.NoError(t, err)

	stats, ok := res.(*dto.UserStatsDTO)
	require.True(t, ok)
	assert.Equal(t, uint64(4), stats.MyRequests.Total)
}

func TestGetRecentActivity(t *testing.T) {
	svc := NewDashboardService(&fakeDashboardRepo{}, zap.NewNop())
	user := &entities.User{ID: 7, Role: entities.RoleUser}

	items, err := svc.GetRecentActivity(context.Background(), user)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Generator not starting", items[0].Subject)
}
