package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gearguard/internal/authz"
	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
)

type EquipmentServiceInterface interface {
	GetEquipment(ctx context.Context, actor *entities.User) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, actor *entities.User, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id uint64) error
	ImportEquipment(ctx context.Context, file io.Reader) (*dto.ImportReportDTO, error)
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	teamRepo      repositories.TeamRepositoryInterface
	logger        *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{equipmentRepo: equipmentRepo, teamRepo: teamRepo, logger: logger}
}

func (s *EquipmentService) GetEquipment(ctx context.Context, actor *entities.User) ([]entities.Equipment, error) {
	return s.equipmentRepo.GetEquipment(ctx, authz.EquipmentScope(actor))
}

func (s *EquipmentService) FindEquipment(ctx context.Context, actor *entities.User, id uint64) (*entities.Equipment, error) {
	equipment, err := s.equipmentRepo.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	return equipment, nil
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	if err := s.checkTeamExists(ctx, payload.TeamID); err != nil {
		return nil, err
	}

	status := entities.EquipmentActive
	if payload.Status != "" {
		status = entities.EquipmentStatus(payload.Status)
	}

	equipment := &entities.Equipment{
		Name:         payload.Name,
		SerialNumber: payload.SerialNumber,
		Location:     payload.Location,
		Department:   payload.Department,
		TeamID:       payload.TeamID,
		Status:       status,
	}

	created, err := s.equipmentRepo.CreateEquipment(ctx, equipment)
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewConflictError("serial number is already in use")
		}
		return nil, err
	}
	return created, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	if err := s.checkTeamExists(ctx, payload.TeamID); err != nil {
		return nil, err
	}

	equipment := &entities.Equipment{
		Name:         payload.Name,
		SerialNumber: payload.SerialNumber,
		Location:     payload.Location,
		Department:   payload.Department,
		TeamID:       payload.TeamID,
		Status:       entities.EquipmentStatus(payload.Status),
	}

	if err := s.equipmentRepo.UpdateEquipment(ctx, id, equipment); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.NewConflictError("serial number is already in use")
		}
		return nil, err
	}
	return s.equipmentRepo.FindEquipment(ctx, id)
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id uint64) error {
	return s.equipmentRepo.DeleteEquipment(ctx, id)
}

func (s *EquipmentService) checkTeamExists(ctx context.Context, teamID *uint64) error {
	if teamID == nil {
		return nil
	}
	if _, err := s.teamRepo.FindTeam(ctx, *teamID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewBadRequestError("maintenance team does not exist")
		}
		return err
	}
	return nil
}

// importColumns maps spreadsheet headers to their expected positions.
var importColumns = []string{"name", "serial_number", "location", "department", "team_id", "status"}

// ImportEquipment reads an xlsx sheet row by row. Rows with a duplicate
// serial number are skipped, malformed rows are reported and skipped.
func (s *EquipmentService) ImportEquipment(ctx context.Context, file io.Reader) (*dto.ImportReportDTO, error) {
	book, err := excelize.OpenReader(file)
	if err != nil {
		return nil, apperrors.NewBadRequestError("file is not a valid xlsx workbook")
	}
	defer book.Close()

	sheet := book.GetSheetName(0)
	rows, err := book.GetRows(sheet)
	if err != nil {
		return nil, apperrors.NewBadRequestError("failed to read worksheet")
	}
	if len(rows) < 2 {
		return nil, apperrors.NewBadRequestError("worksheet has no data rows")
	}

	report := &dto.ImportReportDTO{Errors: []string{}}
	for i, row := range rows[1:] {
		rowNum := i + 2

		equipment, err := s.parseImportRow(ctx, row)
		if err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}

		exists, err := s.equipmentRepo.SerialNumberExists(ctx, equipment.SerialNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			report.Skipped++
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: serial number %q already exists", rowNum, equipment.SerialNumber))
			continue
		}

		if _, err := s.equipmentRepo.CreateEquipment(ctx, equipment); err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		report.Imported++
	}

	s.logger.Info("equipment import finished",
		zap.Int("imported", report.Imported),
		zap.Int("skipped", report.Skipped),
	)
	return report, nil
}

func (s *EquipmentService) parseImportRow(ctx context.Context, row []string) (*entities.Equipment, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	for i := 0; i < 4; i++ {
		if cell(i) == "" {
			return nil, fmt.Errorf("column %q is required", importColumns[i])
		}
	}

	var teamID *uint64
	if raw := cell(4); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid team_id %q", raw)
		}
		if _, err := s.teamRepo.FindTeam(ctx, id); err != nil {
			return nil, fmt.Errorf("team %d does not exist", id)
		}
		teamID = &id
	}

	status := entities.EquipmentActive
	if raw := strings.ToUpper(cell(5)); raw != "" {
		if raw != string(entities.EquipmentActive) && raw != string(entities.EquipmentScrapped) {
			return nil, fmt.Errorf("invalid status %q", raw)
		}
		status = entities.EquipmentStatus(raw)
	}

	return &entities.Equipment{
		Name:         cell(0),
		SerialNumber: cell(1),
		Location:     cell(2),
		Department:   cell(3),
		TeamID:       teamID,
		Status:       status,
	}, nil
}
