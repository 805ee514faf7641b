package directory

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/chuo/core"
)

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

type Course struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Code         string `json:"code"`
	InstructorID int    `json:"instructor_id"`
	Semester     string `json:"semester"`
	Description  string `json:"description"`

	// EnrolledStudents is the headcount carried over from the legacy seed
	// records. It is NOT reconciled with Enrollment rows; use
	// EnrollmentCount for a live count.
	EnrolledStudents int `json:"enrolled_students"`
}

type Enrollment struct {
	StudentID    int       `json:"student_id"`
	CourseID     int       `json:"course_id"`
	EnrolledDate time.Time `json:"enrolled_date"`
}

type Material struct {
	ID         int       `json:"id"`
	CourseID   int       `json:"course_id"`
	Title      string    `json:"title"`
	Type       string    `json:"type"` // "PDF", "PPT", "Video", "Document", ...
	UploadDate time.Time `json:"upload_date"`
	File       string    `json:"file"`
}

type Assignment struct {
	ID          int       `json:"id"`
	CourseID    int       `json:"course_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	MaxMarks    int       `json:"max_marks"`
}

// Submission lifecycle: Submitted (Grade unset) -> Graded (Grade set) -> re-graded
// (Grade/Feedback overwritten). A graded submission never reverts to pending;
// a Grade of 0 counts as graded.
type Submission struct {
	ID            int         `json:"id"`
	AssignmentID  int         `json:"assignment_id"`
	StudentID     int         `json:"student_id"`
	SubmittedDate time.Time   `json:"submitted_date"`
	File          string      `json:"file"`
	Grade         null.Int    `json:"grade,omitempty"`
	Feedback      null.String `json:"feedback,omitempty"`
}

func (s Submission) Graded() bool { return s.Grade.Valid }

// Grade is a finalized transcript entry, kept independently of the
// (revisable) grade on a Submission. PublishGrade copies one into the other.
type Grade struct {
	StudentID int    `json:"student_id"`
	CourseID  int    `json:"course_id"`
	Marks     int    `json:"marks"`
	MaxMarks  int    `json:"max_marks"`
	Feedback  string `json:"feedback"`
}

func (g Grade) Percentage() float64 {
	if g.MaxMarks == 0 {
		return 0
	}
	return float64(g.Marks) / float64(g.MaxMarks) * 100
}

type Announcement struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	AuthorID     int       `json:"author_id"`
	Date         time.Time `json:"date"`
	CourseID     null.Int  `json:"course_id,omitempty"`
	IsSystemWide bool      `json:"is_system_wide"`
}

// Viewer is the identity queries are scoped by.
type Viewer struct {
	ID   int
	Role Role
}

func (u User) Viewer() Viewer { return Viewer{ID: u.ID, Role: u.Role} }

// NewUser contains information needed to create a new User.
type NewUser struct {
	Name  string `json:"name" validate:"required,notblank"`
	Email string `json:"email" validate:"required,email"`
	Role  Role   `json:"role" validate:"required,role"`
}

func (nu *NewUser) Validate() error {
	nu.Name = core.CleanString(nu.Name)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	return core.Validate.Struct(nu)
}

// UpdateUser defines what information may be provided to modify an existing User.
type UpdateUser struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
	Role  Role   `json:"role" validate:"omitempty,role"`
}

func (uu *UpdateUser) Validate(orig User) error {
	name := core.CleanString(uu.Name)
	if name != "" {
		uu.Name = name
	} else {
		uu.Name = orig.Name
	}

	email := core.CleanString(uu.Email, true /* lower */)
	if email != "" {
		uu.Email = email
	} else {
		uu.Email = orig.Email
	}

	if uu.Role == "" {
		uu.Role = orig.Role
	}
	return core.Validate.Struct(uu)
}

type NewCourse struct {
	Title        string `json:"title" validate:"required,notblank"`
	Code         string `json:"code" validate:"required,notblank"`
	InstructorID int    `json:"instructor_id" validate:"required"`
	Semester     string `json:"semester"`
	Description  string `json:"description"`
}

func (nc *NewCourse) Validate() error {
	nc.Title = core.CleanString(nc.Title)
	nc.Code = core.CleanString(nc.Code)
	return core.Validate.Struct(nc)
}

type UpdateCourse struct {
	Title        string `json:"title"`
	Code         string `json:"code"`
	InstructorID int    `json:"instructor_id"`
	Semester     string `json:"semester"`
	Description  string `json:"description"`
}

func (uc *UpdateCourse) Validate(orig Course) error {
	if title := core.CleanString(uc.Title); title != "" {
		uc.Title = title
	} else {
		uc.Title = orig.Title
	}
	if code := core.CleanString(uc.Code); code != "" {
		uc.Code = code
	} else {
		uc.Code = orig.Code
	}
	if uc.InstructorID == 0 {
		uc.InstructorID = orig.InstructorID
	}
	if uc.Semester == "" {
		uc.Semester = orig.Semester
	}
	if uc.Description == "" {
		uc.Description = orig.Description
	}
	return core.Validate.Struct(uc)
}

type NewMaterial struct {
	CourseID int    `json:"course_id" validate:"required"`
	Title    string `json:"title" validate:"required,notblank"`
	Type     string `json:"type" validate:"required,notblank"`
	File     string `json:"file" validate:"required,notblank"`
}

func (nm *NewMaterial) Validate() error {
	nm.Title = core.CleanString(nm.Title)
	nm.Type = core.CleanString(nm.Type)
	nm.File = core.CleanString(nm.File)
	return core.Validate.Struct(nm)
}

type NewAssignment struct {
	CourseID    int       `json:"course_id" validate:"required"`
	Title       string    `json:"title" validate:"required,notblank"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date" validate:"required"`
	MaxMarks    int       `json:"max_marks" validate:"required,gt=0"`
}

func (na *NewAssignment) Validate() error {
	na.Title = core.CleanString(na.Title)
	return core.Validate.Struct(na)
}

type NewSubmission struct {
	AssignmentID int    `json:"assignment_id" validate:"required"`
	StudentID    int    `json:"student_id" validate:"required"`
	File         string `json:"file" validate:"required,notblank"`
}

func (ns *NewSubmission) Validate() error {
	ns.File = core.CleanString(ns.File)
	return core.Validate.Struct(ns)
}

// GradeInput carries the marks and feedback an instructor enters for a
// submission. Marks are bounds-checked against the assignment's MaxMarks
// by the service.
type GradeInput struct {
	Marks    int    `json:"marks" validate:"gte=0"`
	Feedback string `json:"feedback"`
}

func (gi *GradeInput) Validate() error {
	gi.Feedback = core.CleanString(gi.Feedback)
	return core.Validate.Struct(gi)
}

type NewAnnouncement struct {
	Title        string   `json:"title" validate:"required,notblank"`
	Content      string   `json:"content" validate:"required,notblank"`
	CourseID     null.Int `json:"course_id"`
	IsSystemWide bool     `json:"is_system_wide"`
}

func (na *NewAnnouncement) Validate() error {
	na.Title = core.CleanString(na.Title)
	na.Content = core.CleanString(na.Content)
	return core.Validate.Struct(na)
}
