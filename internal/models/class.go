package models

// Class represents a named group of persons meeting on given weekdays.
type Class struct {
	// ID is the unique identifier for the class (UUID format).
	ID string `json:"id"`

	// Name is the display name of the class (e.g., "Futsal Sub-11").
	Name string `json:"name"`

	// Weekdays lists the days the class meets, in display order.
	Weekdays []string `json:"weekdays"`

	// PersonIDs is the class roster in insertion order.
	// IDs are not checked against the person registry.
	PersonIDs []string `json:"personIds"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// HasPerson reports whether personID is on the roster.
func (c *Class) HasPerson(personID string) bool {
	for _, id := range c.PersonIDs {
		if id == personID {
			return true
		}
	}
	return false
}
