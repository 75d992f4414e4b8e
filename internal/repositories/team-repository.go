package repositories

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

const teamTable = "maintenance_teams"

type TeamRepositoryInterface interface {
	GetTeams(ctx context.Context) ([]entities.Team, error)
	FindTeam(ctx context.Context, id uint64) (*entities.Team, error)
	GetTeamMembers(ctx context.Context, teamID uint64) ([]dto.TeamMemberDTO, error)
	GetTeamEquipment(ctx context.Context, teamID uint64) ([]dto.TeamEquipmentDTO, error)
	CreateTeam(ctx context.Context, teamName string) (*entities.Team, error)
	UpdateTeam(ctx context.Context, id uint64, teamName string) (*entities.Team, error)
	DeleteTeam(ctx context.Context, id uint64) error
}

type TeamRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewTeamRepository(storage *pgxpool.Pool, logger *zap.Logger) TeamRepositoryInterface {
	return &TeamRepository{storage: storage, logger: logger}
}

func (r *TeamRepository) GetTeams(ctx context.Context) ([]entities.Team, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(
			"mt.id", "mt.team_name", "mt.created_at",
			"COUNT(DISTINCT u.id) AS technician_count",
			"COUNT(DISTINCT e.id) AS equipment_count",
		).
		From(teamTable + " AS mt").
		LeftJoin("users u ON mt.id = u.team_id AND u.role = 'TECHNICIAN'").
		LeftJoin("equipment e ON mt.id = e.team_id").
		GroupBy("mt.id").
		OrderBy("mt.team_name").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		var t entities.Team
		if err := rows.Scan(&t.ID, &t.TeamName, &t.CreatedAt, &t.TechnicianCount, &t.EquipmentCount); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *TeamRepository) FindTeam(ctx context.Context, id uint64) (*entities.Team, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("id", "team_name", "created_at").
		From(teamTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var t entities.Team
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&t.ID, &t.TeamName, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TeamRepository) GetTeamMembers(ctx context.Context, teamID uint64) ([]dto.TeamMemberDTO, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("id", "name", "email").
		From("users").
		Where(sq.Eq{"team_id": teamID, "role": "TECHNICIAN"}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]dto.TeamMemberDTO, 0)
	for rows.Next() {
		var m dto.TeamMemberDTO
		if err := rows.Scan(&m.ID, &m.Name, &m.Email); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *TeamRepository) GetTeamEquipment(ctx context.Context, teamID uint64) ([]dto.TeamEquipmentDTO, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("id", "name", "serial_number", "status").
		From("equipment").
		Where(sq.Eq{"team_id": teamID}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	equipment := make([]dto.TeamEquipmentDTO, 0)
	for rows.Next() {
		var e dto.TeamEquipmentDTO
		if err := rows.Scan(&e.ID, &e.Name, &e.SerialNumber, &e.Status); err != nil {
			return nil, err
		}
		equipment = append(equipment, e)
	}
	return equipment, rows.Err()
}

func (r *TeamRepository) CreateTeam(ctx context.Context, teamName string) (*entities.Team, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Insert(teamTable).
		Columns("team_name").
		Values(teamName).
		Suffix("RETURNING id, team_name, created_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	var t entities.Team
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&t.ID, &t.TeamName, &t.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		r.logger.Error("failed to insert team", zap.String("team_name", teamName), zap.Error(err))
		return nil, err
	}
	return &t, nil
}

func (r *TeamRepository) UpdateTeam(ctx context.Context, id uint64, teamName string) (*entities.Team, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Update(teamTable).
		Set("team_name", teamName).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, team_name, created_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	var t entities.Team
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&t.ID, &t.TeamName, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		return nil, err
	}
	return &t, nil
}

func (r *TeamRepository) DeleteTeam(ctx context.Context, id uint64) error {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Delete(teamTable).
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
