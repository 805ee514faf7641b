package directory

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/chuo/core"
)

var (
	// errors
	ErrUserNotFound       = errors.New("user not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrMaterialNotFound   = errors.New("material not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrNotGraded          = errors.New("submission has not been graded")

	errMarksOutOfRange = "marks cannot exceed the assignment's max marks"

	nowFunc = time.Now // mockable
)

// Service applies mutations to the directory store. Every write goes
// through here so ordering and visibility are well-defined regardless of
// how many views sit on top.
type Service struct {
	repo    Repository
	mailSvc core.EmailService
}

func NewService(repo Repository, mailSvc core.EmailService) *Service {
	return &Service{repo: repo, mailSvc: mailSvc}
}

func (svc *Service) Repo() Repository { return svc.repo }

// Users

func (svc *Service) CreateUser(nu NewUser) (User, error) {
	users, err := svc.repo.AllUsers()
	if err != nil {
		return User{}, err
	}
	usr := User{
		ID:    nextUserID(users),
		Name:  nu.Name,
		Email: nu.Email,
		Role:  nu.Role,
	}
	if err := svc.repo.ReplaceUsers(append(users, usr)); err != nil {
		return User{}, err
	}
	return usr, nil
}

func (svc *Service) UpdateUser(id int, uu UpdateUser) (User, error) {
	users, err := svc.repo.AllUsers()
	if err != nil {
		return User{}, err
	}
	for i, u := range users {
		if u.ID == id {
			u.Name = uu.Name
			u.Email = uu.Email
			u.Role = uu.Role
			users[i] = u
			if err := svc.repo.ReplaceUsers(users); err != nil {
				return User{}, err
			}
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

// DeleteUser removes the user record only. Enrollments, submissions and
// grades referencing the user are left in place; dangling references
// resolve to empty results at query time.
func (svc *Service) DeleteUser(id int) error {
	users, err := svc.repo.AllUsers()
	if err != nil {
		return err
	}
	kept := make([]User, 0, len(users))
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	return svc.repo.ReplaceUsers(kept)
}

func (svc *Service) GetUser(id int) (User, error) {
	users, err := svc.repo.AllUsers()
	if err != nil {
		return User{}, err
	}
	if usr, ok := FindUser(users, id); ok {
		return usr, nil
	}
	return User{}, ErrUserNotFound
}

func (svc *Service) GetUserByEmail(email string) (User, error) {
	users, err := svc.repo.AllUsers()
	if err != nil {
		return User{}, err
	}
	email = core.CleanString(email, true /* lower */)
	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

// Courses

func (svc *Service) CreateCourse(nc NewCourse) (Course, error) {
	courses, err := svc.repo.AllCourses()
	if err != nil {
		return Course{}, err
	}
	crs := Course{
		ID:           nextCourseID(courses),
		Title:        nc.Title,
		Code:         nc.Code,
		InstructorID: nc.InstructorID,
		Semester:     nc.Semester,
		Description:  nc.Description,
	}
	if err := svc.repo.ReplaceCourses(append(courses, crs)); err != nil {
		return Course{}, err
	}
	return crs, nil
}

func (svc *Service) UpdateCourse(id int, uc UpdateCourse) (Course, error) {
	courses, err := svc.repo.AllCourses()
	if err != nil {
		return Course{}, err
	}
	for i, c := range courses {
		if c.ID == id {
			c.Title = uc.Title
			c.Code = uc.Code
			c.InstructorID = uc.InstructorID
			c.Semester = uc.Semester
			c.Description = uc.Description
			courses[i] = c
			if err := svc.repo.ReplaceCourses(courses); err != nil {
				return Course{}, err
			}
			return c, nil
		}
	}
	return Course{}, ErrCourseNotFound
}

func (svc *Service) DeleteCourse(id int) error {
	courses, err := svc.repo.AllCourses()
	if err != nil {
		return err
	}
	kept := make([]Course, 0, len(courses))
	for _, c := range courses {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return svc.repo.ReplaceCourses(kept)
}

// ToggleEnrollment removes the (student, course) enrollment if present,
// otherwise adds one dated now. Toggling twice restores the original state.
func (svc *Service) ToggleEnrollment(studentID, courseID int) (enrolled bool, err error) {
	enrollments, err := svc.repo.AllEnrollments()
	if err != nil {
		return false, err
	}
	kept := make([]Enrollment, 0, len(enrollments))
	for _, e := range enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) < len(enrollments) { // was enrolled; drop it
		return false, svc.repo.ReplaceEnrollments(kept)
	}
	kept = append(kept, Enrollment{
		StudentID:    studentID,
		CourseID:     courseID,
		EnrolledDate: nowFunc().UTC(),
	})
	return true, svc.repo.ReplaceEnrollments(kept)
}

// Materials

func (svc *Service) CreateMaterial(nm NewMaterial) (Material, error) {
	materials, err := svc.repo.AllMaterials()
	if err != nil {
		return Material{}, err
	}
	mat := Material{
		ID:         nextMaterialID(materials),
		CourseID:   nm.CourseID,
		Title:      nm.Title,
		Type:       nm.Type,
		UploadDate: nowFunc().UTC(),
		File:       nm.File,
	}
	if err := svc.repo.ReplaceMaterials(append(materials, mat)); err != nil {
		return Material{}, err
	}
	return mat, nil
}

func (svc *Service) DeleteMaterial(id int) error {
	materials, err := svc.repo.AllMaterials()
	if err != nil {
		return err
	}
	kept := make([]Material, 0, len(materials))
	for _, m := range materials {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	return svc.repo.ReplaceMaterials(kept)
}

// Assignments

func (svc *Service) CreateAssignment(na NewAssignment) (Assignment, error) {
	assignments, err := svc.repo.AllAssignments()
	if err != nil {
		return Assignment{}, err
	}
	asg := Assignment{
		ID:          nextAssignmentID(assignments),
		CourseID:    na.CourseID,
		Title:       na.Title,
		Description: na.Description,
		DueDate:     na.DueDate,
		MaxMarks:    na.MaxMarks,
	}
	if err := svc.repo.ReplaceAssignments(append(assignments, asg)); err != nil {
		return Assignment{}, err
	}
	return asg, nil
}

func (svc *Service) DeleteAssignment(id int) error {
	assignments, err := svc.repo.AllAssignments()
	if err != nil {
		return err
	}
	kept := make([]Assignment, 0, len(assignments))
	for _, a := range assignments {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	return svc.repo.ReplaceAssignments(kept)
}

// Submissions

// Submit records a student's submission for an assignment. Resubmission is
// not deduplicated; each call appends a new row.
func (svc *Service) Submit(ns NewSubmission) (Submission, error) {
	assignments, err := svc.repo.AllAssignments()
	if err != nil {
		return Submission{}, err
	}
	if _, ok := FindAssignment(assignments, ns.AssignmentID); !ok {
		return Submission{}, ErrAssignmentNotFound
	}
	submissions, err := svc.repo.AllSubmissions()
	if err != nil {
		return Submission{}, err
	}
	sub := Submission{
		ID:            nextSubmissionID(submissions),
		AssignmentID:  ns.AssignmentID,
		StudentID:     ns.StudentID,
		SubmittedDate: nowFunc().UTC(),
		File:          ns.File,
	}
	if err := svc.repo.ReplaceSubmissions(append(submissions, sub)); err != nil {
		return Submission{}, err
	}
	return sub, nil
}

// GradeSubmission sets (or overwrites) the grade and feedback on a
// submission. Marks are clamped to [0, assignment.MaxMarks]; a graded
// submission never reverts to pending.
func (svc *Service) GradeSubmission(id int, gi GradeInput) (Submission, error) {
	submissions, err := svc.repo.AllSubmissions()
	if err != nil {
		return Submission{}, err
	}
	sub, ok := FindSubmission(submissions, id)
	if !ok {
		return Submission{}, ErrSubmissionNotFound
	}

	assignments, err := svc.repo.AllAssignments()
	if err != nil {
		return Submission{}, err
	}
	if asg, ok := FindAssignment(assignments, sub.AssignmentID); ok && gi.Marks > asg.MaxMarks {
		return Submission{}, core.NewValidationError(nil, core.FieldError{Field: "marks", Error: errMarksOutOfRange})
	}

	sub.Grade = null.IntFrom(gi.Marks)
	sub.Feedback = null.NewString(gi.Feedback, gi.Feedback != "")
	for i := range submissions {
		if submissions[i].ID == id {
			submissions[i] = sub
		}
	}
	if err := svc.repo.ReplaceSubmissions(submissions); err != nil {
		return Submission{}, err
	}
	return sub, nil
}

// PublishGrade copies a graded submission into the transcript as a Grade
// row for (student, course), overwriting any previous entry for that pair.
// The submission itself is left untouched and may still be re-graded.
func (svc *Service) PublishGrade(submissionID int) (Grade, error) {
	submissions, err := svc.repo.AllSubmissions()
	if err != nil {
		return Grade{}, err
	}
	sub, ok := FindSubmission(submissions, submissionID)
	if !ok {
		return Grade{}, ErrSubmissionNotFound
	}
	if !sub.Graded() {
		return Grade{}, ErrNotGraded
	}

	assignments, err := svc.repo.AllAssignments()
	if err != nil {
		return Grade{}, err
	}
	asg, ok := FindAssignment(assignments, sub.AssignmentID)
	if !ok {
		return Grade{}, ErrAssignmentNotFound
	}

	grd := Grade{
		StudentID: sub.StudentID,
		CourseID:  asg.CourseID,
		Marks:     sub.Grade.Int,
		MaxMarks:  asg.MaxMarks,
		Feedback:  sub.Feedback.String,
	}

	grades, err := svc.repo.AllGrades()
	if err != nil {
		return Grade{}, err
	}
	kept := make([]Grade, 0, len(grades)+1)
	for _, g := range grades {
		if g.StudentID == grd.StudentID && g.CourseID == grd.CourseID {
			continue
		}
		kept = append(kept, g)
	}
	kept = append(kept, grd)
	if err := svc.repo.ReplaceGrades(kept); err != nil {
		return Grade{}, err
	}
	return grd, nil
}

// Announcements

// CreateAnnouncement posts an announcement by the given author and
// notifies its audience by email. Only admins may post system-wide; the
// flag is silently dropped for anyone else.
func (svc *Service) CreateAnnouncement(author User, na NewAnnouncement) (Announcement, error) {
	announcements, err := svc.repo.AllAnnouncements()
	if err != nil {
		return Announcement{}, err
	}
	if !author.Role.Capabilities().CanPostSystemWide {
		na.IsSystemWide = false
	}
	ann := Announcement{
		ID:           nextAnnouncementID(announcements),
		Title:        na.Title,
		Content:      na.Content,
		AuthorID:     author.ID,
		Date:         nowFunc().UTC(),
		CourseID:     na.CourseID,
		IsSystemWide: na.IsSystemWide,
	}
	if err := svc.repo.ReplaceAnnouncements(append(announcements, ann)); err != nil {
		return Announcement{}, err
	}
	svc.notifyAudience(author, ann)
	return ann, nil
}

func (svc *Service) DeleteAnnouncement(id int) error {
	announcements, err := svc.repo.AllAnnouncements()
	if err != nil {
		return err
	}
	kept := make([]Announcement, 0, len(announcements))
	for _, a := range announcements {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	return svc.repo.ReplaceAnnouncements(kept)
}

// notifyAudience emails a system-wide announcement to every user; a
// course-scoped one goes to the enrolled students. Failures only log:
// announcements must post even when mail is down.
func (svc *Service) notifyAudience(author User, ann Announcement) {
	if svc.mailSvc == nil {
		return
	}
	users, err := svc.repo.AllUsers()
	if err != nil {
		return
	}

	var recipients []mail.Address
	switch {
	case ann.IsSystemWide:
		for _, u := range users {
			if u.ID != author.ID {
				recipients = append(recipients, mail.Address{Name: u.Name, Address: u.Email})
			}
		}
	case ann.CourseID.Valid:
		enrollments, err := svc.repo.AllEnrollments()
		if err != nil {
			return
		}
		for _, e := range enrollments {
			if e.CourseID == ann.CourseID.Int {
				if u, ok := FindUser(users, e.StudentID); ok {
					recipients = append(recipients, mail.Address{Name: u.Name, Address: u.Email})
				}
			}
		}
	default:
		return // staff-only note; nobody to notify
	}

	if len(recipients) == 0 {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		Bcc:     recipients,
		Subject: ann.Title,
		BodyStr: fmt.Sprintf("%s\n\n- %s", ann.Content, author.Name),
	})
}

// next*ID scans for the highest id in the collection; ids are small ints
// unique within their collection, never reused from the middle.

func nextUserID(users []User) int {
	max := 0
	for _, u := range users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

func nextCourseID(courses []Course) int {
	max := 0
	for _, c := range courses {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}

func nextMaterialID(materials []Material) int {
	max := 0
	for _, m := range materials {
		if m.ID > max {
			max = m.ID
		}
	}
	return max + 1
}

func nextAssignmentID(assignments []Assignment) int {
	max := 0
	for _, a := range assignments {
		if a.ID > max {
			max = a.ID
		}
	}
	return max + 1
}

func nextSubmissionID(submissions []Submission) int {
	max := 0
	for _, s := range submissions {
		if s.ID > max {
			max = s.ID
		}
	}
	return max + 1
}

func nextAnnouncementID(announcements []Announcement) int {
	max := 0
	for _, a := range announcements {
		if a.ID > max {
			max = a.ID
		}
	}
	return max + 1
}
