package services

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

func newEquipmentFixture() (EquipmentServiceInterface, *fakeEquipmentRepo, *fakeTeamRepo) {
	equipmentRepo := newFakeEquipmentRepo(&entities.Equipment{
		ID:           1,
		Name:         "Generator 5000W",
		SerialNumber: "GEN-001",
		Location:     "Building A",
		Department:   "Operations",
		TeamID:       uintPtr(1),
		Status:       entities.EquipmentActive,
	})
	teamRepo := newFakeTeamRepo(&entities.Team{ID: 1, TeamName: "Electrical Team"})
	return NewEquipmentService(equipmentRepo, teamRepo, zap.NewNop()), equipmentRepo, teamRepo
}

func TestCreateEquipmentDefaultsToActive(t *testing.T) {
	svc, _, _ := newEquipmentFixture()

	created, err := svc.CreateEquipment(context.Background(), dto.CreateEquipmentDTO{
		Name:         "Air Compressor",
		SerialNumber: "AC-102",
		Location:     "Workshop",
		Department:   "Maintenance",
		TeamID:       uintPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, entities.EquipmentActive, created.Status)
}

func TestCreateEquipmentDuplicateSerial(t *testing.T) {
	svc, _, _ := newEquipmentFixture()

	_, err := svc.CreateEquipment(context.Background(), dto.CreateEquipmentDTO{
		Name:         "Another Generator",
		SerialNumber: "GEN-001",
		Location:     "Building B",
		Department:   "Operations",
	})
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusConflict, httpErr.Code)
}

func TestCreateEquipmentUnknownTeam(t *testing.T) {
	svc, _, _ := newEquipmentFixture()

	_, err := svc.CreateEquipment(context.Background(), dto.CreateEquipmentDTO{
		Name:         "Cooling Tower",
		SerialNumber: "CT-701",
		Location:     "Roof",
		Department:   "Facilities",
		TeamID:       uintPtr(42),
	})
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func buildImportWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	book := excelize.NewFile()
	sheet := book.GetSheetName(0)

	header := []interface{}{"name", "serial_number", "location", "department", "team_id", "status"}
	require.NoError(t, book.SetSheetRow(sheet, "A1", &header))
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		require.NoError(t, book.SetSheetRow(sheet, cell, &row))
	}

	buf, err := book.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestImportEquipment(t *testing.T) {
	svc, equipmentRepo, _ := newEquipmentFixture()

	buf := buildImportWorkbook(t, [][]interface{}{
		{"UPS System", "UPS-801", "Data Center", "IT", "1", "ACTIVE"},
		{"Duplicate Generator", "GEN-001", "Building A", "Operations", "", ""},
		{"", "X-1", "Nowhere", "None", "", ""},
		{"Forklift", "FLT-501", "Warehouse", "Logistics", "42", ""},
	})

	report, err := svc.ImportEquipment(context.Background(), buf)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Imported)
	assert.Equal(t, 3, report.Skipped)
	assert.Len(t, report.Errors, 3)

	require.Len(t, equipmentRepo.created, 1)
	assert.Equal(t, "UPS-801", equipmentRepo.created[0].SerialNumber)
}

func TestImportEquipmentRejectsGarbage(t *testing.T) {
	svc, _, _ := newEquipmentFixture()

	_, err := svc.ImportEquipment(context.Background(), bytes.NewBufferString("not an xlsx file"))
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
