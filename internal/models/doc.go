// Package models defines the core domain models for Ludus.
//
// # Entities
//
//   - Person: a registered student, identified by a generated enrollment code
//   - Class: a named group meeting on given weekdays, with a roster of person IDs
//   - Revenue: a charge owed by a person (enrollment fee, monthly fee, ...)
//   - Cost: a school expense not tied to any person
//   - Attendance: a presence flag for one person in one class on one date
//   - User: a staff account (admin or instructor) able to log in
//
// # Conventions
//
// Every entity has a string ID (UUID format) and CreatedAt/UpdatedAt Unix
// timestamps. Calendar dates (birth date, due date, attendance date, ...) are
// ISO "YYYY-MM-DD" strings so they sort lexically in storage.
//
// Relationships are expressed as ID strings, never pointers. A class roster or
// a revenue may reference a person that has since been deleted; consumers must
// tolerate dangling IDs.
package models

// DateLayout is the layout of every calendar date field.
const DateLayout = "2006-01-02"

// MonthLayout is the layout of month references such as Revenue.Reference.
const MonthLayout = "2006-01"
