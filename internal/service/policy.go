package service

import (
	"github.com/mmynk/ludus/internal/api/apiconnect"
	"github.com/mmynk/ludus/internal/middleware"
)

// publicProcedures can be called without a session.
var publicProcedures = []string{
	apiconnect.AuthServiceLoginProcedure,
}

// instructorProcedures are the procedures open to instructors. Everything
// else requires an admin.
var instructorProcedures = []string{
	apiconnect.AuthServiceGetCurrentUserProcedure,

	apiconnect.AttendanceServiceRegisterAttendanceProcedure,
	apiconnect.AttendanceServiceListAttendanceByClassAndDateProcedure,
	apiconnect.AttendanceServiceListAttendanceByPersonProcedure,
	apiconnect.AttendanceServiceListAttendanceByClassProcedure,
	apiconnect.AttendanceServiceUpdateAttendanceProcedure,
	apiconnect.AttendanceServiceDeleteAttendanceProcedure,
	apiconnect.AttendanceServiceGetAttendanceRateProcedure,

	apiconnect.PersonServiceListPersonsProcedure,
	apiconnect.PersonServiceGetPersonProcedure,
	apiconnect.PersonServiceListPersonsByStatusProcedure,

	apiconnect.ClassServiceListClassesProcedure,
	apiconnect.ClassServiceGetClassProcedure,
}

// NewAccessPolicy returns the role policy of the Ludus services.
func NewAccessPolicy() *middleware.AccessPolicy {
	return middleware.NewAccessPolicy(publicProcedures, instructorProcedures)
}
