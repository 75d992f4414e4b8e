package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
)

type DashboardRepositoryInterface interface {
	CountActiveEquipment(ctx context.Context) (uint64, error)
	CountTeams(ctx context.Context) (uint64, error)
	GetRequestCounts(ctx context.Context, scope sq.Sqlizer) (*dto.RequestCountsDTO, error)
	GetTaskCounts(ctx context.Context, technicianID uint64) (*dto.TaskCountsDTO, error)
	SumCost(ctx context.Context, scope sq.Sqlizer) (float64, error)
	CountOverdue(ctx context.Context) (uint64, error)
	GetRecentActivity(ctx context.Context, scope sq.Sqlizer) ([]dto.ActivityItemDTO, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewDashboardRepository(storage *pgxpool.Pool, logger *zap.Logger) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage, logger: logger}
}

func applyScope(b sq.SelectBuilder, scope sq.Sqlizer) sq.SelectBuilder {
	if scope != nil {
		return b.Where(scope)
	}
	return b
}

func (r *DashboardRepository) CountActiveEquipment(ctx context.Context) (uint64, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("COUNT(*)").
		From(equipmentTable).
		Where(sq.Eq{"status": entities.EquipmentActive}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count uint64
	err = r.storage.QueryRow(ctx, query, args...).Scan(&count)
	return count, err
}

func (r *DashboardRepository) CountTeams(ctx context.Context) (uint64, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("COUNT(*)").
		From(teamTable).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count uint64
	err = r.storage.QueryRow(ctx, query, args...).Scan(&count)
	return count, err
}

func (r *DashboardRepository) GetRequestCounts(ctx context.Context, scope sq.Sqlizer) (*dto.RequestCountsDTO, error) {
	base := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(
			"COUNT(*)",
			"COUNT(*) FILTER (WHERE mr.status = 'NEW')",
			"COUNT(*) FILTER (WHERE mr.status = 'IN_PROGRESS')",
			"COUNT(*) FILTER (WHERE mr.status = 'REPAIRED')",
			"COUNT(*) FILTER (WHERE mr.status = 'SCRAP')",
		).
		From(requestTable + " AS mr")

	query, args, err := applyScope(base, scope).ToSql()
	if err != nil {
		return nil, err
	}

	counts := &dto.RequestCountsDTO{}
	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&counts.Total, &counts.New, &counts.InProgress, &counts.Repaired, &counts.Scrap,
	)
	return counts, err
}

func (r *DashboardRepository) GetTaskCounts(ctx context.Context, technicianID uint64) (*dto.TaskCountsDTO, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(
			"COUNT(*)",
			"COUNT(*) FILTER (WHERE mr.status = 'IN_PROGRESS')",
			"COUNT(*) FILTER (WHERE mr.status = 'REPAIRED')",
		).
		From(requestTable + " AS mr").
		Where(sq.Eq{"mr.technician_id": technicianID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	counts := &dto.TaskCountsDTO{}
	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&counts.Total, &counts.InProgress, &counts.Completed,
	)
	return counts, err
}

func (r *DashboardRepository) SumCost(ctx context.Context, scope sq.Sqlizer) (float64, error) {
	base := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("COALESCE(SUM(mr.cost_estimation), 0)").
		From(requestTable + " AS mr").
		Where("mr.cost_estimation IS NOT NULL")

	query, args, err := applyScope(base, scope).ToSql()
	if err != nil {
		return 0, err
	}

	var total float64
	err = r.storage.QueryRow(ctx, query, args...).Scan(&total)
	return total, err
}

// CountOverdue counts unresolved requests whose schedule date has passed.
func (r *DashboardRepository) CountOverdue(ctx context.Context) (uint64, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("COUNT(*)").
		From(requestTable + " AS mr").
		Where("mr.scheduled_date < CURRENT_DATE").
		Where(sq.NotEq{"mr.status": entities.ResolvedStatuses}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count uint64
	err = r.storage.QueryRow(ctx, query, args...).Scan(&count)
	return count, err
}

func (r *DashboardRepository) GetRecentActivity(ctx context.Context, scope sq.Sqlizer) ([]dto.ActivityItemDTO, error) {
	base := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(
			"mr.id", "mr.subject", "mr.status", "mr.created_at", "mr.updated_at",
			"e.name", "tech.name", "creator.name",
		).
		From(requestTable + " AS mr").
		Join(equipmentTable + " e ON mr.equipment_id = e.id").
		LeftJoin(userTable + " tech ON mr.technician_id = tech.id").
		Join(userTable + " creator ON mr.created_by = creator.id").
		OrderBy("mr.updated_at DESC").
		Limit(10)

	query, args, err := applyScope(base, scope).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]dto.ActivityItemDTO, 0)
	for rows.Next() {
		var item dto.ActivityItemDTO
		err := rows.Scan(
			&item.RequestID, &item.Subject, &item.Status,
			&item.CreatedAt, &item.UpdatedAt,
			&item.EquipmentName, &item.TechnicianName, &item.CreatedByName,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
