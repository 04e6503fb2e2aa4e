package models

// PersonStatus is the enrollment state of a person.
type PersonStatus string

const (
	PersonActive   PersonStatus = "active"
	PersonLocked   PersonStatus = "locked"
	PersonInactive PersonStatus = "inactive"
)

// EnrollmentCodeLength is the number of characters in a generated enrollment code.
const EnrollmentCodeLength = 7

// Person represents a registered student.
type Person struct {
	// ID is the unique identifier for the person (UUID format).
	ID string `json:"id"`

	// Name is the full name of the person.
	Name string `json:"name"`

	// BirthDate is the date of birth (YYYY-MM-DD).
	BirthDate string `json:"birthDate"`

	// NationalID is the optional identity document number.
	NationalID string `json:"nationalId,omitempty"`

	// PhotoURL is the optional location of the person's photo.
	PhotoURL string `json:"photoUrl,omitempty"`

	// EnrollmentCode is generated at creation and unique across persons.
	EnrollmentCode string `json:"enrollmentCode"`

	// Status defaults to active on creation.
	Status PersonStatus `json:"status"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// PersonPatch holds the fields of a partial person update.
// Nil fields are left untouched.
type PersonPatch struct {
	Name       *string
	BirthDate  *string
	NationalID *string
	PhotoURL   *string
	Status     *PersonStatus
}

// Apply merges the set fields of the patch into p.
func (patch PersonPatch) Apply(p *Person) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.BirthDate != nil {
		p.BirthDate = *patch.BirthDate
	}
	if patch.NationalID != nil {
		p.NationalID = *patch.NationalID
	}
	if patch.PhotoURL != nil {
		p.PhotoURL = *patch.PhotoURL
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
}
