package directory

// Repository is the directory store: the single owner of all entity
// collections. Reads return snapshots in insertion order; writes swap a
// whole collection at once. Implementations must serialize access so the
// store stays consistent even if several callers fire concurrently, but no
// partial/transactional update is offered.
type Repository interface {
	AllUsers() ([]User, error)
	ReplaceUsers(users []User) error

	AllCourses() ([]Course, error)
	ReplaceCourses(courses []Course) error

	AllEnrollments() ([]Enrollment, error)
	ReplaceEnrollments(enrollments []Enrollment) error

	AllMaterials() ([]Material, error)
	ReplaceMaterials(materials []Material) error

	AllAssignments() ([]Assignment, error)
	ReplaceAssignments(assignments []Assignment) error

	AllSubmissions() ([]Submission, error)
	ReplaceSubmissions(submissions []Submission) error

	AllGrades() ([]Grade, error)
	ReplaceGrades(grades []Grade) error

	AllAnnouncements() ([]Announcement, error)
	ReplaceAnnouncements(announcements []Announcement) error
}
