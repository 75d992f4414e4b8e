package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"gearguard/internal/authz"
	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
)

type RequestServiceInterface interface {
	GetRequests(ctx context.Context, actor *entities.User) ([]entities.MaintenanceRequest, error)
	FindRequest(ctx context.Context, actor *entities.User, id uint64) (*entities.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, actor *entities.User, payload dto.CreateRequestDTO) (*entities.MaintenanceRequest, error)
	UpdateRequest(ctx context.Context, actor *entities.User, id uint64, payload dto.UpdateRequestDTO) (*entities.MaintenanceRequest, error)
	AssignRequest(ctx context.Context, actor *entities.User, id uint64, payload dto.AssignRequestDTO) (*entities.MaintenanceRequest, error)
	DeleteRequest(ctx context.Context, id uint64) error
}

type RequestService struct {
	requestRepo   repositories.RequestRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	userRepo      repositories.UserRepositoryInterface
	logger        *zap.Logger
}

func NewRequestService(
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *zap.Logger,
) RequestServiceInterface {
	return &RequestService{
		requestRepo:   requestRepo,
		equipmentRepo: equipmentRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

func (s *RequestService) GetRequests(ctx context.Context, actor *entities.User) ([]entities.MaintenanceRequest, error) {
	return s.requestRepo.GetRequests(ctx, authz.RequestScope(actor))
}

func (s *RequestService) FindRequest(ctx context.Context, actor *entities.User, id uint64) (*entities.MaintenanceRequest, error) {
	request, err := s.requestRepo.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanReadRequest(actor, request) {
		return nil, apperrors.ErrForbidden
	}
	return request, nil
}

// CreateRequest files a request on behalf of the actor. The responsible
// team is always derived from the equipment, and the status always starts
// at NEW regardless of what the caller sent.
func (s *RequestService) CreateRequest(ctx context.Context, actor *entities.User, payload dto.CreateRequestDTO) (*entities.MaintenanceRequest, error) {
	equipment, err := s.equipmentRepo.FindEquipment(ctx, payload.EquipmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("equipment not found")
		}
		return nil, err
	}

	scheduledDate, err := parseScheduledDate(payload.ScheduledDate)
	if err != nil {
		return nil, err
	}

	request := &entities.MaintenanceRequest{
		Subject:       payload.Subject,
		EquipmentID:   equipment.ID,
		TeamID:        equipment.TeamID,
		RequestType:   entities.RequestType(payload.RequestType),
		Status:        entities.RequestNew,
		ScheduledDate: scheduledDate,
		CreatedBy:     actor.ID,
	}

	return s.requestRepo.CreateRequest(ctx, request)
}

func (s *RequestService) UpdateRequest(ctx context.Context, actor *entities.User, id uint64, payload dto.UpdateRequestDTO) (*entities.MaintenanceRequest, error) {
	scheduledDate, err := parseScheduledDate(payload.ScheduledDate)
	if err != nil {
		return nil, err
	}

	patch := entities.RequestPatch{
		Subject:         payload.Subject,
		TechnicianID:    payload.TechnicianID,
		ScheduledDate:   scheduledDate,
		DurationHours:   payload.DurationHours,
		CostEstimation:  payload.CostEstimation,
		CompletionNotes: payload.CompletionNotes,
	}
	if payload.Status != nil {
		status := entities.RequestStatus(*payload.Status)
		patch.Status = &status
	}
	if patch.IsEmpty() {
		return nil, apperrors.NewBadRequestError("no updatable fields provided")
	}

	request, err := s.requestRepo.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanUpdateRequest(actor, request) {
		return nil, apperrors.ErrForbidden
	}

	if patch.TechnicianID != nil {
		if err := s.checkTechnician(ctx, *patch.TechnicianID); err != nil {
			return nil, err
		}
	}

	if err := s.requestRepo.UpdateRequest(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.requestRepo.FindRequest(ctx, id)
}

// AssignRequest has two modes. A technician may only take the request for
// themselves, which also moves it to IN_PROGRESS. An admin assigns any
// technician and the status is left untouched.
func (s *RequestService) AssignRequest(ctx context.Context, actor *entities.User, id uint64, payload dto.AssignRequestDTO) (*entities.MaintenanceRequest, error) {
	request, err := s.requestRepo.FindRequest(ctx, id)
	if err != nil {
		return nil, err
	}

	var technicianID uint64
	var status *entities.RequestStatus

	switch actor.Role {
	case entities.RoleTechnician:
		if payload.TechnicianID != nil && *payload.TechnicianID != actor.ID {
			return nil, apperrors.NewForbiddenError("technicians can only assign requests to themselves")
		}
		if !authz.CanSelfAssign(actor, request) {
			return nil, apperrors.ErrForbidden
		}
		technicianID = actor.ID
		inProgress := entities.RequestInProgress
		status = &inProgress
	case entities.RoleAdmin:
		if payload.TechnicianID == nil {
			return nil, apperrors.NewBadRequestError("technician_id is required")
		}
		if err := s.checkTechnician(ctx, *payload.TechnicianID); err != nil {
			return nil, err
		}
		technicianID = *payload.TechnicianID
	default:
		return nil, apperrors.ErrForbidden
	}

	if err := s.requestRepo.AssignRequest(ctx, id, &technicianID, status); err != nil {
		return nil, err
	}
	return s.requestRepo.FindRequest(ctx, id)
}

func (s *RequestService) DeleteRequest(ctx context.Context, id uint64) error {
	return s.requestRepo.DeleteRequest(ctx, id)
}

func (s *RequestService) checkTechnician(ctx context.Context, id uint64) error {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewBadRequestError("technician does not exist")
		}
		return err
	}
	if user.Role != entities.RoleTechnician {
		return apperrors.NewBadRequestError("assignee must have the TECHNICIAN role")
	}
	return nil
}

func parseScheduledDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, apperrors.NewBadRequestError("scheduled_date must be formatted as YYYY-MM-DD")
	}
	return &parsed, nil
}
