package models

// Attendance records whether a person was present at a class on a date.
// There is at most one record per (ClassID, PersonID, Date).
type Attendance struct {
	ID       string `json:"id"`
	ClassID  string `json:"classId"`
	PersonID string `json:"personId"`

	// Date is the class date (YYYY-MM-DD).
	Date    string `json:"date"`
	Present bool   `json:"present"`
	Note    string `json:"note,omitempty"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// AttendancePatch holds the fields of a partial attendance update.
type AttendancePatch struct {
	ClassID  *string
	PersonID *string
	Date     *string
	Present  *bool
	Note     *string
}

// Apply merges the set fields of the patch into a.
func (patch AttendancePatch) Apply(a *Attendance) {
	if patch.ClassID != nil {
		a.ClassID = *patch.ClassID
	}
	if patch.PersonID != nil {
		a.PersonID = *patch.PersonID
	}
	if patch.Date != nil {
		a.Date = *patch.Date
	}
	if patch.Present != nil {
		a.Present = *patch.Present
	}
	if patch.Note != nil {
		a.Note = *patch.Note
	}
}

// AttendanceRate summarizes a person's attendance over a set of records.
type AttendanceRate struct {
	TotalClasses int `json:"totalClasses"`
	PresentCount int `json:"presentCount"`

	// Rate is PresentCount/TotalClasses as a percentage, rounded to 2 decimals.
	// It is 0 when there are no records.
	Rate float64 `json:"rate"`
}
