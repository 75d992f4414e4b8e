package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
)

type TeamServiceInterface interface {
	GetTeams(ctx context.Context) ([]entities.Team, error)
	FindTeam(ctx context.Context, id uint64) (*dto.TeamDetailDTO, error)
	CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*entities.Team, error)
	UpdateTeam(ctx context.Context, id uint64, payload dto.UpdateTeamDTO) (*entities.Team, error)
	DeleteTeam(ctx context.Context, id uint64) error
}

type TeamService struct {
	teamRepo repositories.TeamRepositoryInterface
	logger   *zap.Logger
}

func NewTeamService(teamRepo repositories.TeamRepositoryInterface, logger *zap.Logger) TeamServiceInterface {
	return &TeamService{teamRepo: teamRepo, logger: logger}
}

func (s *TeamService) GetTeams(ctx context.Context) ([]entities.Team, error) {
	return s.teamRepo.GetTeams(ctx)
}

// FindTeam returns the team together with its technician roster and
// assigned equipment.
func (s *TeamService) FindTeam(ctx context.Context, id uint64) (*dto.TeamDetailDTO, error) {
	team, err := s.teamRepo.FindTeam(ctx, id)
	if err != nil {
		return nil, err
	}

	members, err := s.teamRepo.GetTeamMembers(ctx, id)
	if err != nil {
		return nil, err
	}

	equipment, err := s.teamRepo.GetTeamEquipment(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.TeamDetailDTO{Team: *team, Members: members, Equipment: equipment}, nil
}

func (s *TeamService) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*entities.Team, error) {
	team, err := s.teamRepo.CreateTeam(ctx, payload.TeamName)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewConflictError("team name is already taken")
		}
		return nil, err
	}
	return team, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, id uint64, payload dto.UpdateTeamDTO) (*entities.Team, error) {
	team, err := s.teamRepo.UpdateTeam(ctx, id, payload.TeamName)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewConflictError("team name is already taken")
		}
		return nil, err
	}
	return team, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, id uint64) error {
	return s.teamRepo.DeleteTeam(ctx, id)
}
