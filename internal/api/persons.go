package api

import "github.com/mmynk/ludus/internal/models"

type CreatePersonRequest struct {
	Name       string `json:"name" validate:"required"`
	BirthDate  string `json:"birthDate" validate:"required,datetime=2006-01-02"`
	NationalID string `json:"nationalId,omitempty"`
	PhotoURL   string `json:"photoUrl,omitempty" validate:"omitempty,url"`
}

// UpdatePersonRequest carries a partial update; nil fields are left untouched.
type UpdatePersonRequest struct {
	ID         string               `json:"id" validate:"required"`
	Name       *string              `json:"name,omitempty" validate:"omitempty,min=1"`
	BirthDate  *string              `json:"birthDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	NationalID *string              `json:"nationalId,omitempty"`
	PhotoURL   *string              `json:"photoUrl,omitempty"`
	Status     *models.PersonStatus `json:"status,omitempty" validate:"omitempty,oneof=active locked inactive"`
}

type ListPersonsByStatusRequest struct {
	Status models.PersonStatus `json:"status" validate:"required,oneof=active locked inactive"`
}

type PersonResponse struct {
	Person *models.Person `json:"person"`
}

type PersonListResponse struct {
	Persons []*models.Person `json:"persons"`
}
