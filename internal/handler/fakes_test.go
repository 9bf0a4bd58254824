package handler

import (
	"context"
	"sync"

	"github.com/iliyamo/vehicle-registry/internal/model"
	"github.com/iliyamo/vehicle-registry/internal/queue"
	"github.com/iliyamo/vehicle-registry/internal/repository"
)

// fakeAdminStore keeps admins in insertion order and enforces the same email
// uniqueness the real store's unique index provides.
type fakeAdminStore struct {
	mu     sync.Mutex
	admins []*model.Admin
	nextID uint64
}

func newFakeAdminStore() *fakeAdminStore { return &fakeAdminStore{nextID: 1} }

func (s *fakeAdminStore) Create(_ context.Context, a *model.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.admins {
		if existing.Email == a.Email {
			return repository.ErrEmailExists
		}
	}
	a.ID = s.nextID
	s.nextID++
	cp := *a
	s.admins = append(s.admins, &cp)
	return nil
}

func (s *fakeAdminStore) GetByID(_ context.Context, id uint64) (*model.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.admins {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repository.ErrAdminNotFound
}

func (s *fakeAdminStore) GetByEmail(_ context.Context, email string) (*model.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.admins {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repository.ErrAdminNotFound
}

func (s *fakeAdminStore) ListAll(_ context.Context) ([]*model.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.Admin, len(s.admins))
	copy(out, s.admins)
	return out, nil
}

// fakeVehicleStore keeps vehicles in insertion order with no uniqueness rule,
// matching the real table.
type fakeVehicleStore struct {
	mu       sync.Mutex
	vehicles []*model.Vehicle
	nextID   uint64
}

func newFakeVehicleStore() *fakeVehicleStore { return &fakeVehicleStore{nextID: 1} }

func (s *fakeVehicleStore) Create(_ context.Context, v *model.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v.ID = s.nextID
	s.nextID++
	cp := *v
	s.vehicles = append(s.vehicles, &cp)
	return nil
}

func (s *fakeVehicleStore) GetByID(_ context.Context, id uint64) (*model.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.vehicles {
		if v.ID == id {
			cp := *v
			return &cp, nil
		}
	}
	return nil, repository.ErrVehicleNotFound
}

func (s *fakeVehicleStore) ListAll(_ context.Context) ([]*model.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out, nil
}

func (s *fakeVehicleStore) Update(_ context.Context, v *model.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.vehicles {
		if existing.ID == v.ID {
			cp := *v
			s.vehicles[i] = &cp
			return nil
		}
	}
	return repository.ErrVehicleNotFound
}

func (s *fakeVehicleStore) Delete(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.vehicles {
		if v.ID == id {
			s.vehicles = append(s.vehicles[:i], s.vehicles[i+1:]...)
			return nil
		}
	}
	return repository.ErrVehicleNotFound
}

// recordingPublisher captures published audit events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []queue.VehicleEvent
}

func (p *recordingPublisher) PublishVehicleEvent(_ context.Context, ev queue.VehicleEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return nil
}
