package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

const requestTable = "maintenance_requests"

var requestListColumns = []string{
	"mr.id", "mr.subject", "mr.equipment_id", "mr.team_id", "mr.technician_id",
	"mr.request_type", "mr.status", "mr.scheduled_date", "mr.duration_hours",
	"mr.cost_estimation", "mr.completion_notes", "mr.created_by",
	"mr.created_at", "mr.updated_at",
	"e.name", "e.serial_number", "mt.team_name", "tech.name", "creator.name",
}

type RequestRepositoryInterface interface {
	GetRequests(ctx context.Context, scope sq.Sqlizer) ([]entities.MaintenanceRequest, error)
	FindRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, request *entities.MaintenanceRequest) (*entities.MaintenanceRequest, error)
	UpdateRequest(ctx context.Context, id uint64, patch entities.RequestPatch) error
	AssignRequest(ctx context.Context, id uint64, technicianID *uint64, status *entities.RequestStatus) error
	DeleteRequest(ctx context.Context, id uint64) error
}

type RequestRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewRequestRepository(storage *pgxpool.Pool, logger *zap.Logger) RequestRepositoryInterface {
	return &RequestRepository{storage: storage, logger: logger}
}

func requestBaseQuery(columns []string) sq.SelectBuilder {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(columns...).
		From(requestTable + " AS mr").
		Join(equipmentTable + " e ON mr.equipment_id = e.id").
		LeftJoin(teamTable + " mt ON mr.team_id = mt.id").
		LeftJoin(userTable + " tech ON mr.technician_id = tech.id").
		Join(userTable + " creator ON mr.created_by = creator.id")
}

// GetRequests lists requests newest-first. The scope predicate, when not
// nil, is the caller's row-visibility filter.
func (r *RequestRepository) GetRequests(ctx context.Context, scope sq.Sqlizer) ([]entities.MaintenanceRequest, error) {
	builder := requestBaseQuery(requestListColumns).OrderBy("mr.created_at DESC")
	if scope != nil {
		builder = builder.Where(scope)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]entities.MaintenanceRequest, 0)
	for rows.Next() {
		var mr entities.MaintenanceRequest
		err := rows.Scan(
			&mr.ID, &mr.Subject, &mr.EquipmentID, &mr.TeamID, &mr.TechnicianID,
			&mr.RequestType, &mr.Status, &mr.ScheduledDate, &mr.DurationHours,
			&mr.CostEstimation, &mr.CompletionNotes, &mr.CreatedBy,
			&mr.CreatedAt, &mr.UpdatedAt,
			&mr.EquipmentName, &mr.SerialNumber, &mr.TeamName, &mr.TechnicianName, &mr.CreatedByName,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, mr)
	}
	return requests, rows.Err()
}

func (r *RequestRepository) FindRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error) {
	columns := append(append([]string{}, requestListColumns...), "e.location", "creator.email")
	query, args, err := requestBaseQuery(columns).
		Where(sq.Eq{"mr.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var mr entities.MaintenanceRequest
	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&mr.ID, &mr.Subject, &mr.EquipmentID, &mr.TeamID, &mr.TechnicianID,
		&mr.RequestType, &mr.Status, &mr.ScheduledDate, &mr.DurationHours,
		&mr.CostEstimation, &mr.CompletionNotes, &mr.CreatedBy,
		&mr.CreatedAt, &mr.UpdatedAt,
		&mr.EquipmentName, &mr.SerialNumber, &mr.TeamName, &mr.TechnicianName, &mr.CreatedByName,
		&mr.Location, &mr.CreatedByEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &mr, nil
}

func (r *RequestRepository) CreateRequest(ctx context.Context, request *entities.MaintenanceRequest) (*entities.MaintenanceRequest, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Insert(requestTable).
		Columns("subject", "equipment_id", "team_id", "request_type", "status", "scheduled_date", "created_by").
		Values(request.Subject, request.EquipmentID, request.TeamID,
			request.RequestType, request.Status, request.ScheduledDate, request.CreatedBy).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var id uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		r.logger.Error("failed to insert maintenance request",
			zap.String("subject", request.Subject), zap.Error(err))
		return nil, err
	}

	return r.FindRequest(ctx, id)
}

// UpdateRequest applies the non-nil patch fields and refreshes updated_at.
func (r *RequestRepository) UpdateRequest(ctx context.Context, id uint64, patch entities.RequestPatch) error {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Update(requestTable).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id})

	if patch.Subject != nil {
		builder = builder.Set("subject", *patch.Subject)
	}
	if patch.Status != nil {
		builder = builder.Set("status", *patch.Status)
	}
	if patch.TechnicianID != nil {
		builder = builder.Set("technician_id", *patch.TechnicianID)
	}
	if patch.ScheduledDate != nil {
		builder = builder.Set("scheduled_date", *patch.ScheduledDate)
	}
	if patch.DurationHours != nil {
		builder = builder.Set("duration_hours", *patch.DurationHours)
	}
	if patch.CostEstimation != nil {
		builder = builder.Set("cost_estimation", *patch.CostEstimation)
	}
	if patch.CompletionNotes != nil {
		builder = builder.Set("completion_notes", *patch.CompletionNotes)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AssignRequest sets the technician and, for self-assignment, the forced
// status. A nil status leaves the current one untouched.
func (r *RequestRepository) AssignRequest(ctx context.Context, id uint64, technicianID *uint64, status *entities.RequestStatus) error {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Update(requestTable).
		Set("technician_id", technicianID).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id})

	if status != nil {
		builder = builder.Set("status", *status)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *RequestRepository) DeleteRequest(ctx context.Context, id uint64) error {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Delete(requestTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
