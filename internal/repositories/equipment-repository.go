package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

const equipmentTable = "equipment"

var equipmentSelectColumns = []string{
	"e.id", "e.name", "e.serial_number", "e.location", "e.department",
	"e.team_id", "e.status", "e.created_at", "mt.team_name",
}

type EquipmentRepositoryInterface interface {
	GetEquipment(ctx context.Context, scope sq.Sqlizer) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	SerialNumberExists(ctx context.Context, serialNumber string) (bool, error)
	CreateEquipment(ctx context.Context, equipment *entities.Equipment) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uint64, equipment *entities.Equipment) error
	DeleteEquipment(ctx context.Context, id uint64) error
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewEquipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage, logger: logger}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.ID, &e.Name, &e.SerialNumber, &e.Location, &e.Department,
		&e.TeamID, &e.Status, &e.CreatedAt, &e.TeamName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// GetEquipment lists equipment newest-first. The scope predicate, when not
// nil, restricts visibility to the caller's rows.
func (r *EquipmentRepository) GetEquipment(ctx context.Context, scope sq.Sqlizer) ([]entities.Equipment, error) {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(equipmentSelectColumns...).
		From(equipmentTable + " AS e").
		LeftJoin(teamTable + " mt ON e.team_id = mt.id").
		OrderBy("e.created_at DESC")

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

	equipment := make([]entities.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		equipment = append(equipment, *e)
	}
	return equipment, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(equipmentSelectColumns...).
		From(equipmentTable + " AS e").
		LeftJoin(teamTable + " mt ON e.team_id = mt.id").
		Where(sq.Eq{"e.id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanEquipment(r.storage.QueryRow(ctx, query, args...))
}

func (r *EquipmentRepository) SerialNumberExists(ctx context.Context, serialNumber string) (bool, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("COUNT(id)").
		From(equipmentTable).
		Where(sq.Eq{"serial_number": serialNumber}).
		ToSql()
	if err != nil {
		return false, err
	}

	var count int
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, equipment *entities.Equipment) (*entities.Equipment, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Insert(equipmentTable).
		Columns("name", "serial_number", "location", "department", "team_id", "status").
		Values(equipment.Name, equipment.SerialNumber, equipment.Location,
			equipment.Department, equipment.TeamID, equipment.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var id uint64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		r.logger.Error("failed to insert equipment",
			zap.String("serial_number", equipment.SerialNumber), zap.Error(err))
		return nil, err
	}

	return r.FindEquipment(ctx, id)
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, equipment *entities.Equipment) error {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Update(equipmentTable).
		Set("name", equipment.Name).
		Set("serial_number", equipment.SerialNumber).
		Set("location", equipment.Location).
		Set("department", equipment.Department).
		Set("team_id", equipment.TeamID).
		Set("status", equipment.Status).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	result, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrConflict
		}
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEquipment relies on the FK cascade to remove dependent requests.
func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uint64) error {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Delete(equipmentTable).
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
