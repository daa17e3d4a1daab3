package auth

import (
	"github.com/mertcan/coursehub/internal/app/models"
)

// Actor is the capability context for a request: who is acting and with
// which role. It is threaded explicitly into services so their guards stay
// pure functions of their inputs instead of reading ambient flags.
type Actor struct {
	UserID int64
	Role   models.Role
}

// IsAdmin reports whether the actor carries the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// IsTeacher reports whether the actor carries the teacher role.
func (a Actor) IsTeacher() bool {
	return a.Role == models.RoleTeacher
}

// CanCreateCourse reports whether the actor may create course drafts.
func (a Actor) CanCreateCourse() bool {
	return a.IsTeacher() || a.IsAdmin()
}

// CanAssignTeacher reports whether the actor may create a course on behalf
// of another teacher.
func (a Actor) CanAssignTeacher() bool {
	return a.IsAdmin()
}

// CanModifyCourse reports whether the actor may mutate the given course:
// admins always, teachers only their own.
func (a Actor) CanModifyCourse(course *models.Course) bool {
	if a.IsAdmin() {
		return true
	}
	return a.IsTeacher() && course.TeacherID == a.UserID
}

// CanReview reports whether the actor may approve or reject pending courses.
func (a Actor) CanReview() bool {
	return a.IsAdmin()
}
