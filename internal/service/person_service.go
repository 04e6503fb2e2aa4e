package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/ludus/internal/api"
	"github.com/mmynk/ludus/internal/api/apiconnect"
	"github.com/mmynk/ludus/internal/models"
	"github.com/mmynk/ludus/internal/storage"
)

var _ apiconnect.PersonServiceHandler = (*PersonService)(nil)

// PersonService implements the Connect PersonService.
type PersonService struct {
	store storage.PersonStore
	opts  options
}

// NewPersonService creates a new PersonService with the given storage backend.
func NewPersonService(store storage.PersonStore, opts ...Option) *PersonService {
	return &PersonService{store: store, opts: newOptions(opts)}
}

// CreatePerson registers a new, active person with a generated enrollment code.
func (s *PersonService) CreatePerson(ctx context.Context, req *connect.Request[api.CreatePersonRequest]) (*connect.Response[api.PersonResponse], error) {
	slog.Info("CreatePerson request received", "name", req.Msg.Name)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	now := s.opts.now().Unix()
	person := &models.Person{
		Name:       req.Msg.Name,
		BirthDate:  req.Msg.BirthDate,
		NationalID: req.Msg.NationalID,
		PhotoURL:   req.Msg.PhotoURL,
		Status:     models.PersonActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// Save to storage (generates ID and enrollment code)
	if err := s.store.CreatePerson(ctx, person); err != nil {
		return nil, storeError("CreatePerson", err)
	}

	slog.Info("Person created", "person_id", person.ID, "enrollment_code", person.EnrollmentCode)
	return s.reread(ctx, "CreatePerson", person.ID)
}

// ListPersons returns every person, newest first.
func (s *PersonService) ListPersons(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.PersonListResponse], error) {
	slog.Info("ListPersons request received")

	persons, err := s.store.ListPersons(ctx)
	if err != nil {
		return nil, storeError("ListPersons", err)
	}

	slog.Info("ListPersons successful", "count", len(persons))
	return connect.NewResponse(&api.PersonListResponse{Persons: nonNil(persons)}), nil
}

// GetPerson retrieves a person by ID.
func (s *PersonService) GetPerson(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.PersonResponse], error) {
	slog.Info("GetPerson request received", "person_id", req.Msg.ID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	person, err := s.store.GetPerson(ctx, req.Msg.ID)
	if err != nil {
		return nil, storeError("GetPerson", err, "person_id", req.Msg.ID)
	}
	return connect.NewResponse(&api.PersonResponse{Person: person}), nil
}

// UpdatePerson merges the fields present in the request into the stored person.
func (s *PersonService) UpdatePerson(ctx context.Context, req *connect.Request[api.UpdatePersonRequest]) (*connect.Response[api.PersonResponse], error) {
	slog.Info("UpdatePerson request received", "person_id", req.Msg.ID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	person, err := s.store.GetPerson(ctx, req.Msg.ID)
	if err != nil {
		return nil, storeError("UpdatePerson", err, "person_id", req.Msg.ID)
	}

	models.PersonPatch{
		Name:       req.Msg.Name,
		BirthDate:  req.Msg.BirthDate,
		NationalID: req.Msg.NationalID,
		PhotoURL:   req.Msg.PhotoURL,
		Status:     req.Msg.Status,
	}.Apply(person)
	person.UpdatedAt = s.opts.now().Unix()

	if err := s.store.UpdatePerson(ctx, person); err != nil {
		return nil, storeError("UpdatePerson", err, "person_id", person.ID)
	}

	slog.Info("Person updated", "person_id", person.ID, "status", person.Status)
	return s.reread(ctx, "UpdatePerson", person.ID)
}

// DeletePerson removes a person. Rosters, revenues and attendance that
// reference the person are left in place.
func (s *PersonService) DeletePerson(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	slog.Info("DeletePerson request received", "person_id", req.Msg.ID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if err := s.store.DeletePerson(ctx, req.Msg.ID); err != nil {
		return nil, storeError("DeletePerson", err, "person_id", req.Msg.ID)
	}

	slog.Info("Person deleted", "person_id", req.Msg.ID)
	return connect.NewResponse(&api.Empty{}), nil
}

// ListPersonsByStatus returns the persons with the given status, newest first.
func (s *PersonService) ListPersonsByStatus(ctx context.Context, req *connect.Request[api.ListPersonsByStatusRequest]) (*connect.Response[api.PersonListResponse], error) {
	slog.Info("ListPersonsByStatus request received", "status", req.Msg.Status)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	persons, err := s.store.ListPersonsByStatus(ctx, req.Msg.Status)
	if err != nil {
		return nil, storeError("ListPersonsByStatus", err, "status", req.Msg.Status)
	}
	return connect.NewResponse(&api.PersonListResponse{Persons: nonNil(persons)}), nil
}

// reread fetches the stored person so responses carry the authoritative record.
func (s *PersonService) reread(ctx context.Context, op, id string) (*connect.Response[api.PersonResponse], error) {
	person, err := s.store.GetPerson(ctx, id)
	if err != nil {
		return nil, storeError(op, err, "person_id", id)
	}
	return connect.NewResponse(&api.PersonResponse{Person: person}), nil
}

// nonNil turns a nil slice into an empty one so lists encode as [].
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
