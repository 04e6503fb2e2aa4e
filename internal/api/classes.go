package api

import "github.com/mmynk/ludus/internal/models"

type CreateClassRequest struct {
	Name      string   `json:"name" validate:"required"`
	Weekdays  []string `json:"weekdays" validate:"dive,required"`
	PersonIDs []string `json:"personIds" validate:"dive,required"`
}

// UpdateClassRequest changes the name and/or weekdays of a class. The roster
// is changed through AddPersonToClass and RemovePersonFromClass.
type UpdateClassRequest struct {
	ID       string    `json:"id" validate:"required"`
	Name     *string   `json:"name,omitempty" validate:"omitempty,min=1"`
	Weekdays *[]string `json:"weekdays,omitempty" validate:"omitempty,dive,required"`
}

type ClassMemberRequest struct {
	ClassID  string `json:"classId" validate:"required"`
	PersonID string `json:"personId" validate:"required"`
}

type ClassResponse struct {
	Class *models.Class `json:"class"`
}

type ClassListResponse struct {
	Classes []*models.Class `json:"classes"`
}
