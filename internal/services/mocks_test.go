package services

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

// Hand-rolled fakes keyed by id maps. They cover exactly what the service
// tests exercise.

type fakeUserRepo struct {
	users map[uint64]*entities.User
}

func newFakeUserRepo(users ...*entities.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uint64]*entities.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) FindUserByID(_ context.Context, id uint64) (*entities.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepo) FindUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *entities.User) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, apperrors.ErrConflict
		}
	}
	user.ID = uint64(len(r.users) + 1)
	user.CreatedAt = time.Now()
	r.users[user.ID] = user
	return user, nil
}

type fakeEquipmentRepo struct {
	equipment map[uint64]*entities.Equipment
	serials   map[string]bool
	created   []*entities.Equipment
}

func newFakeEquipmentRepo(items ...*entities.Equipment) *fakeEquipmentRepo {
	repo := &fakeEquipmentRepo{
		equipment: make(map[uint64]*entities.Equipment),
		serials:   make(map[string]bool),
	}
	for _, e := range items {
		repo.equipment[e.ID] = e
		repo.serials[e.SerialNumber] = true
	}
	return repo
}

func (r *fakeEquipmentRepo) GetEquipment(_ context.Context, _ sq.Sqlizer) ([]entities.Equipment, error) {
	out := make([]entities.Equipment, 0, len(r.equipment))
	for _, e := range r.equipment {
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeEquipmentRepo) FindEquipment(_ context.Context, id uint64) (*entities.Equipment, error) {
	if e, ok := r.equipment[id]; ok {
		return e, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeEquipmentRepo) SerialNumberExists(_ context.Context, serial string) (bool, error) {
	return r.serials[serial], nil
}

func (r *fakeEquipmentRepo) CreateEquipment(_ context.Context, equipment *entities.Equipment) (*entities.Equipment, error) {
	if r.serials[equipment.SerialNumber] {
		return nil, apperrors.ErrConflict
	}
	equipment.ID = uint64(len(r.equipment) + 1)
	r.equipment[equipment.ID] = equipment
	r.serials[equipment.SerialNumber] = true
	r.created = append(r.created, equipment)
	return equipment, nil
}

func (r *fakeEquipmentRepo) UpdateEquipment(_ context.Context, id uint64, equipment *entities.Equipment) error {
	if _, ok := r.equipment[id]; !ok {
		return apperrors.ErrNotFound
	}
	equipment.ID = id
	r.equipment[id] = equipment
	return nil
}

func (r *fakeEquipmentRepo) DeleteEquipment(_ context.Context, id uint64) error {
	if _, ok := r.equipment[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.equipment, id)
	return nil
}

type fakeRequestRepo struct {
	requests   map[uint64]*entities.MaintenanceRequest
	lastPatch  *entities.RequestPatch
	lastAssign struct {
		technicianID *uint64
		status       *entities.RequestStatus
	}
}

func newFakeRequestRepo(items ...*entities.MaintenanceRequest) *fakeRequestRepo {
	repo := &fakeRequestRepo{requests: make(map[uint64]*entities.MaintenanceRequest)}
	for _, r2 := range items {
		repo.requests[r2.ID] = r2
	}
	return repo
}

func (r *fakeRequestRepo) GetRequests(_ context.Context, _ sq.Sqlizer) ([]entities.MaintenanceRequest, error) {
	out := make([]entities.MaintenanceRequest, 0, len(r.requests))
	for _, req := range r.requests {
		out = append(out, *req)
	}
	return out, nil
}

func (r *fakeRequestRepo) FindRequest(_ context.Context, id uint64) (*entities.MaintenanceRequest, error) {
	if req, ok := r.requests[id]; ok {
		return req, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeRequestRepo) CreateRequest(_ context.Context, request *entities.MaintenanceRequest) (*entities.MaintenanceRequest, error) {
	request.ID = uint64(len(r.requests) + 1)
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	r.requests[request.ID] = request
	return request, nil
}

func (r *fakeRequestRepo) UpdateRequest(_ context.Context, id uint64, patch entities.RequestPatch) error {
	req, ok := r.requests[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	r.lastPatch = &patch
	if patch.Subject != nil {
		req.Subject = *patch.Subject
	}
	if patch.Status != nil {
		req.Status = *patch.Status
	}
	if patch.TechnicianID != nil {
		req.TechnicianID = patch.TechnicianID
	}
	return nil
}

func (r *fakeRequestRepo) AssignRequest(_ context.Context, id uint64, technicianID *uint64, status *entities.RequestStatus) error {
	req, ok := r.requests[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	r.lastAssign.technicianID = technicianID
	r.lastAssign.status = status
	req.TechnicianID = technicianID
	if status != nil {
		req.Status = *status
	}
	return nil
}

func (r *fakeRequestRepo) DeleteRequest(_ context.Context, id uint64) error {
	if _, ok := r.requests[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.requests, id)
	return nil
}

type fakeTeamRepo struct {
	teams map[uint64]*entities.Team
}

func newFakeTeamRepo(teams ...*entities.Team) *fakeTeamRepo {
	repo := &fakeTeamRepo{teams: make(map[uint64]*entities.Team)}
	for _, t := range teams {
		repo.teams[t.ID] = t
	}
	return repo
}

func (r *fakeTeamRepo) GetTeams(_ context.Context) ([]entities.Team, error) {
	out := make([]entities.Team, 0, len(r.teams))
	for _, t := range r.teams {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTeamRepo) FindTeam(_ context.Context, id uint64) (*entities.Team, error) {
	if t, ok := r.teams[id]; ok {
		return t, nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeTeamRepo) GetTeamMembers(_ context.Context, _ uint64) ([]dto.TeamMemberDTO, error) {
	return nil, nil
}

func (r *fakeTeamRepo) GetTeamEquipment(_ context.Context, _ uint64) ([]dto.TeamEquipmentDTO, error) {
	return nil, nil
}

func (r *fakeTeamRepo) CreateTeam(_ context.Context, teamName string) (*entities.Team, error) {
	for _, t := range r.teams {
		if t.TeamName == teamName {
			return nil, apperrors.ErrConflict
		}
	}
	team := &entities.Team{ID: uint64(len(r.teams) + 1), TeamName: teamName}
	r.teams[team.ID] = team
	return team, nil
}

func (r *fakeTeamRepo) UpdateTeam(_ context.Context, id uint64, teamName string) (*entities.Team, error) {
	t, ok := r.teams[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	t.TeamName = teamName
	return t, nil
}

func (r *fakeTeamRepo) DeleteTeam(_ context.Context, id uint64) error {
	if _, ok := r.teams[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.teams, id)
	return nil
}

type fakeCacheRepo struct {
	counters map[string]int64
	ttls     map[string]time.Duration
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{counters: make(map[string]int64), ttls: make(map[string]time.Duration)}
}

func (r *fakeCacheRepo) Incr(_ context.Context, key string) (int64, error) {
	r.counters[key]++
	return r.counters[key], nil
}

func (r *fakeCacheRepo) Expire(_ context.Context, key string, ttl time.Duration) error {
	r.ttls[key] = ttl
	return nil
}

func (r *fakeCacheRepo) GetInt(_ context.Context, key string) (int64, error) {
	return r.counters[key], nil
}

func (r *fakeCacheRepo) TTL(_ context.Context, key string) (time.Duration, error) {
	return r.ttls[key], nil
}

func (r *fakeCacheRepo) Del(_ context.Context, key string) error {
	delete(r.counters, key)
	delete(r.ttls, key)
	return nil
}
