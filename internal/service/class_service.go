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

var _ apiconnect.ClassServiceHandler = (*ClassService)(nil)

// ClassService implements the Connect ClassService.
type ClassService struct {
	store storage.ClassStore
	opts  options
}

// NewClassService creates a new ClassService with the given storage backend.
func NewClassService(store storage.ClassStore, opts ...Option) *ClassService {
	return &ClassService{store: store, opts: newOptions(opts)}
}

// CreateClass creates a new class with its weekdays and initial roster.
func (s *ClassService) CreateClass(ctx context.Context, req *connect.Request[api.CreateClassRequest]) (*connect.Response[api.ClassResponse], error) {
	slog.Info("CreateClass request received",
		"name", req.Msg.Name,
		"weekdays", req.Msg.Weekdays,
		"persons_count", len(req.Msg.PersonIDs),
	)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	now := s.opts.now().Unix()
	class := &models.Class{
		Name:      req.Msg.Name,
		Weekdays:  req.Msg.Weekdays,
		PersonIDs: req.Msg.PersonIDs,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.CreateClass(ctx, class); err != nil {
		return nil, storeError("CreateClass", err)
	}

	slog.Info("Class created", "class_id", class.ID)
	return s.reread(ctx, "CreateClass", class.ID)
}

// ListClasses returns every class, newest first.
func (s *ClassService) ListClasses(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.ClassListResponse], error) {
	slog.Info("ListClasses request received")

	classes, err := s.store.ListClasses(ctx)
	if err != nil {
		return nil, storeError("ListClasses", err)
	}

	for _, class := range classes {
		normalizeClass(class)
	}

	slog.Info("ListClasses successful", "count", len(classes))
	return connect.NewResponse(&api.ClassListResponse{Classes: nonNil(classes)}), nil
}

// GetClass retrieves a class by ID.
func (s *ClassService) GetClass(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.ClassResponse], error) {
	slog.Info("GetClass request received", "class_id", req.Msg.ID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}
	return s.reread(ctx, "GetClass", req.Msg.ID)
}

// UpdateClass changes the name and/or weekdays of a class.
func (s *ClassService) UpdateClass(ctx context.Context, req *connect.Request[api.UpdateClassRequest]) (*connect.Response[api.ClassResponse], error) {
	slog.Info("UpdateClass request received", "class_id", req.Msg.ID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	class, err := s.store.GetClass(ctx, req.Msg.ID)
	if err != nil {
		return nil, storeError("UpdateClass", err, "class_id", req.Msg.ID)
	}

	if req.Msg.Name != nil {
		class.Name = *req.Msg.Name
	}
	if req.Msg.Weekdays != nil {
		class.Weekdays = *req.Msg.Weekdays
	}
	class.UpdatedAt = s.opts.now().Unix()

	if err := s.store.UpdateClass(ctx, class); err != nil {
		return nil, storeError("UpdateClass", err, "class_id", class.ID)
	}

	slog.Info("Class updated", "class_id", class.ID)
	return s.reread(ctx, "UpdateClass", class.ID)
}

// DeleteClass removes a class. Attendance records of the class are kept.
func (s *ClassService) DeleteClass(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	slog.Info("DeleteClass request received", "class_id", req.Msg.ID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if err := s.store.DeleteClass(ctx, req.Msg.ID); err != nil {
		return nil, storeError("DeleteClass", err, "class_id", req.Msg.ID)
	}

	slog.Info("Class deleted", "class_id", req.Msg.ID)
	return connect.NewResponse(&api.Empty{}), nil
}

// AddPersonToClass appends a person to the roster. Adding a person who is
// already on the roster leaves the class unchanged.
func (s *ClassService) AddPersonToClass(ctx context.Context, req *connect.Request[api.ClassMemberRequest]) (*connect.Response[api.ClassResponse], error) {
	slog.Info("AddPersonToClass request received", "class_id", req.Msg.ClassID, "person_id", req.Msg.PersonID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	added, err := s.store.AddClassMember(ctx, req.Msg.ClassID, req.Msg.PersonID, s.opts.now().Unix())
	if err != nil {
		return nil, storeError("AddPersonToClass", err, "class_id", req.Msg.ClassID)
	}

	slog.Info("AddPersonToClass successful", "class_id", req.Msg.ClassID, "person_id", req.Msg.PersonID, "added", added)
	return s.reread(ctx, "AddPersonToClass", req.Msg.ClassID)
}

// RemovePersonFromClass removes a person from the roster if present.
func (s *ClassService) RemovePersonFromClass(ctx context.Context, req *connect.Request[api.ClassMemberRequest]) (*connect.Response[api.ClassResponse], error) {
	slog.Info("RemovePersonFromClass request received", "class_id", req.Msg.ClassID, "person_id", req.Msg.PersonID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if err := s.store.RemoveClassMember(ctx, req.Msg.ClassID, req.Msg.PersonID, s.opts.now().Unix()); err != nil {
		return nil, storeError("RemovePersonFromClass", err, "class_id", req.Msg.ClassID)
	}

	return s.reread(ctx, "RemovePersonFromClass", req.Msg.ClassID)
}

func (s *ClassService) reread(ctx context.Context, op, id string) (*connect.Response[api.ClassResponse], error) {
	class, err := s.store.GetClass(ctx, id)
	if err != nil {
		return nil, storeError(op, err, "class_id", id)
	}
	normalizeClass(class)
	return connect.NewResponse(&api.ClassResponse{Class: class}), nil
}

// normalizeClass makes empty lists encode as [] rather than null.
func normalizeClass(class *models.Class) {
	class.Weekdays = nonNil(class.Weekdays)
	class.PersonIDs = nonNil(class.PersonIDs)
}
