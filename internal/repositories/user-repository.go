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

const userTable = "users"

var userColumns = []string{"id", "name", "email", "password", "role", "team_id", "created_at"}

type UserRepositoryInterface interface {
	FindUserByID(ctx context.Context, id uint64) (*entities.User, error)
	FindUserByEmail(ctx context.Context, email string) (*entities.User, error)
	CreateUser(ctx context.Context, user *entities.User) (*entities.User, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewUserRepository(storage *pgxpool.Pool, logger *zap.Logger) UserRepositoryInterface {
	return &UserRepository{storage: storage, logger: logger}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Password,
		&user.Role, &user.TeamID, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(userColumns...).
		From(userTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.storage.QueryRow(ctx, query, args...))
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(userColumns...).
		From(userTable).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.storage.QueryRow(ctx, query, args...))
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Insert(userTable).
		Columns("name", "email", "password", "role", "team_id").
		Values(user.Name, user.Email, user.Password, user.Role, user.TeamID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := r.storage.QueryRow(ctx, query, args...).Scan(&user.ID, &user.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrConflict
		}
		r.logger.Error("failed to insert user", zap.String("email", user.Email), zap.Error(err))
		return nil, err
	}

	return user, nil
}
