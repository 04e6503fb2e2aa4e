package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/ludus/internal/api"
	"github.com/mmynk/ludus/internal/api/apiconnect"
	"github.com/mmynk/ludus/internal/calculator"
	"github.com/mmynk/ludus/internal/models"
	"github.com/mmynk/ludus/internal/storage"
)

var _ apiconnect.AttendanceServiceHandler = (*AttendanceService)(nil)

// AttendanceService implements the Connect AttendanceService.
type AttendanceService struct {
	store storage.AttendanceStore
	opts  options
}

// NewAttendanceService creates a new AttendanceService with the given storage backend.
func NewAttendanceService(store storage.AttendanceStore, opts ...Option) *AttendanceService {
	return &AttendanceService{store: store, opts: newOptions(opts)}
}

// RegisterAttendance records a person's presence at a class session. Saving
// the same class, person and date again updates the existing record.
func (s *AttendanceService) RegisterAttendance(ctx context.Context, req *connect.Request[api.RegisterAttendanceRequest]) (*connect.Response[api.AttendanceResponse], error) {
	slog.Info("RegisterAttendance request received",
		"class_id", req.Msg.ClassID,
		"person_id", req.Msg.PersonID,
		"date", req.Msg.Date,
		"present", req.Msg.Present,
	)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	now := s.opts.now().Unix()
	attendance := &models.Attendance{
		ClassID:   req.Msg.ClassID,
		PersonID:  req.Msg.PersonID,
		Date:      req.Msg.Date,
		Present:   req.Msg.Present,
		Note:      req.Msg.Note,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.store.UpsertAttendance(ctx, attendance)
	if err != nil {
		return nil, storeError("RegisterAttendance", err, "class_id", req.Msg.ClassID, "person_id", req.Msg.PersonID)
	}

	slog.Info("Attendance registered", "attendance_id", attendance.ID, "created", created)

	stored, err := s.store.GetAttendance(ctx, attendance.ID)
	if err != nil {
		return nil, storeError("RegisterAttendance", err, "attendance_id", attendance.ID)
	}
	return connect.NewResponse(&api.AttendanceResponse{Attendance: stored, Created: created}), nil
}

// ListAttendanceByClassAndDate returns the records of one class session.
func (s *AttendanceService) ListAttendanceByClassAndDate(ctx context.Context, req *connect.Request[api.ClassDateRequest]) (*connect.Response[api.AttendanceListResponse], error) {
	slog.Info("ListAttendanceByClassAndDate request received", "class_id", req.Msg.ClassID, "date", req.Msg.Date)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	records, err := s.store.ListAttendanceByClassAndDate(ctx, req.Msg.ClassID, req.Msg.Date)
	if err != nil {
		return nil, storeError("ListAttendanceByClassAndDate", err, "class_id", req.Msg.ClassID)
	}
	return attendanceList(records), nil
}

// ListAttendanceByPerson returns a person's records, latest date first.
func (s *AttendanceService) ListAttendanceByPerson(ctx context.Context, req *connect.Request[api.ListAttendanceByPersonRequest]) (*connect.Response[api.AttendanceListResponse], error) {
	slog.Info("ListAttendanceByPerson request received", "person_id", req.Msg.PersonID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	records, err := s.store.ListAttendanceByPerson(ctx, req.Msg.PersonID, "", "")
	if err != nil {
		return nil, storeError("ListAttendanceByPerson", err, "person_id", req.Msg.PersonID)
	}
	return attendanceList(records), nil
}

// ListAttendanceByClass returns a class's records, latest date first.
func (s *AttendanceService) ListAttendanceByClass(ctx context.Context, req *connect.Request[api.ListAttendanceByClassRequest]) (*connect.Response[api.AttendanceListResponse], error) {
	slog.Info("ListAttendanceByClass request received", "class_id", req.Msg.ClassID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	records, err := s.store.ListAttendanceByClass(ctx, req.Msg.ClassID)
	if err != nil {
		return nil, storeError("ListAttendanceByClass", err, "class_id", req.Msg.ClassID)
	}
	return attendanceList(records), nil
}

// UpdateAttendance merges the fields present in the request into the stored
// record. Moving a record onto a class, person and date that already has
// one fails with AlreadyExists.
func (s *AttendanceService) UpdateAttendance(ctx context.Context, req *connect.Request[api.UpdateAttendanceRequest]) (*connect.Response[api.AttendanceResponse], error) {
	slog.Info("UpdateAttendance request received", "attendance_id", req.Msg.ID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	attendance, err := s.store.GetAttendance(ctx, req.Msg.ID)
	if err != nil {
		return nil, storeError("UpdateAttendance", err, "attendance_id", req.Msg.ID)
	}

	models.AttendancePatch{
		ClassID:  req.Msg.ClassID,
		PersonID: req.Msg.PersonID,
		Date:     req.Msg.Date,
		Present:  req.Msg.Present,
		Note:     req.Msg.Note,
	}.Apply(attendance)
	attendance.UpdatedAt = s.opts.now().Unix()

	if err := s.store.UpdateAttendance(ctx, attendance); err != nil {
		return nil, storeError("UpdateAttendance", err, "attendance_id", attendance.ID)
	}

	stored, err := s.store.GetAttendance(ctx, attendance.ID)
	if err != nil {
		return nil, storeError("UpdateAttendance", err, "attendance_id", attendance.ID)
	}

	slog.Info("Attendance updated", "attendance_id", stored.ID, "present", stored.Present)
	return connect.NewResponse(&api.AttendanceResponse{Attendance: stored}), nil
}

// DeleteAttendance removes an attendance record.
func (s *AttendanceService) DeleteAttendance(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	slog.Info("DeleteAttendance request received", "attendance_id", req.Msg.ID)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if err := s.store.DeleteAttendance(ctx, req.Msg.ID); err != nil {
		return nil, storeError("DeleteAttendance", err, "attendance_id", req.Msg.ID)
	}
	return connect.NewResponse(&api.Empty{}), nil
}

// GetAttendanceRate computes a person's presence percentage over an optional
// date range.
func (s *AttendanceService) GetAttendanceRate(ctx context.Context, req *connect.Request[api.AttendanceRateRequest]) (*connect.Response[api.AttendanceRateResponse], error) {
	slog.Info("GetAttendanceRate request received",
		"person_id", req.Msg.PersonID,
		"from", req.Msg.From,
		"to", req.Msg.To,
	)

	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	records, err := s.store.ListAttendanceByPerson(ctx, req.Msg.PersonID, req.Msg.From, req.Msg.To)
	if err != nil {
		return nil, storeError("GetAttendanceRate", err, "person_id", req.Msg.PersonID)
	}

	rate := calculator.AttendanceRate(records)
	slog.Info("GetAttendanceRate successful",
		"person_id", req.Msg.PersonID,
		"total", rate.TotalClasses,
		"present", rate.PresentCount,
		"rate", rate.Rate,
	)

	return connect.NewResponse(&api.AttendanceRateResponse{
		PersonID: req.Msg.PersonID,
		Rate:     rate,
	}), nil
}

func attendanceList(records []*models.Attendance) *connect.Response[api.AttendanceListResponse] {
	return connect.NewResponse(&api.AttendanceListResponse{Records: nonNil(records)})
}
