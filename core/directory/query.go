package directory

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Query layer: pure, total derivations over store snapshots. Absence always
// yields an empty result, never an error.

// CoursesFor returns the courses visible to the viewer: an instructor sees
// the courses they teach, a student the courses they are enrolled in, an
// admin all of them.
func CoursesFor(v Viewer, courses []Course, enrollments []Enrollment) []Course {
	switch v.Role {
	case RoleAdmin:
		res := make([]Course, len(courses))
		copy(res, courses)
		return res
	case RoleInstructor:
		res := make([]Course, 0, len(courses))
		for _, c := range courses {
			if c.InstructorID == v.ID {
				res = append(res, c)
			}
		}
		return res
	case RoleStudent:
		enrolled := enrolledCourseIDs(v.ID, enrollments)
		res := make([]Course, 0, len(enrolled))
		for _, c := range courses {
			if enrolled[c.ID] {
				res = append(res, c)
			}
		}
		return res
	}
	return nil
}

// AssignmentsVisibleTo restricts assignments to the viewer's courses;
// admins see all assignments.
func AssignmentsVisibleTo(v Viewer, assignments []Assignment, courses []Course, enrollments []Enrollment) []Assignment {
	if v.Role == RoleAdmin {
		res := make([]Assignment, len(assignments))
		copy(res, assignments)
		return res
	}
	visible := make(map[int]bool)
	for _, c := range CoursesFor(v, courses, enrollments) {
		visible[c.ID] = true
	}
	res := make([]Assignment, 0, len(assignments))
	for _, a := range assignments {
		if visible[a.CourseID] {
			res = append(res, a)
		}
	}
	return res
}

// PendingVsGraded partitions submissions by the presence of a grade.
// A set grade of 0 counts as graded.
func PendingVsGraded(submissions []Submission) (pending, graded []Submission) {
	pending = make([]Submission, 0, len(submissions))
	graded = make([]Submission, 0, len(submissions))
	for _, s := range submissions {
		if s.Graded() {
			graded = append(graded, s)
		} else {
			pending = append(pending, s)
		}
	}
	return pending, graded
}

// AnnouncementsVisibleTo returns all announcements for staff. A student
// sees system-wide announcements plus those scoped to a course they are
// enrolled in. An announcement that is neither system-wide nor
// course-scoped is a staff-only system note: no student ever sees it.
func AnnouncementsVisibleTo(v Viewer, announcements []Announcement, enrollments []Enrollment) []Announcement {
	if v.Role == RoleAdmin || v.Role == RoleInstructor {
		res := make([]Announcement, len(announcements))
		copy(res, announcements)
		return res
	}
	enrolled := enrolledCourseIDs(v.ID, enrollments)
	res := make([]Announcement, 0, len(announcements))
	for _, a := range announcements {
		if a.IsSystemWide || (a.CourseID.Valid && enrolled[a.CourseID.Int]) {
			res = append(res, a)
		}
	}
	return res
}

// StudentPerformance averages marks/maxMarks percentages across the
// student's transcript entries. A student with no grades scores 0.
func StudentPerformance(studentID int, grades []Grade) float64 {
	var sum float64
	var n int
	for _, g := range grades {
		if g.StudentID == studentID {
			sum += g.Percentage()
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// FormatPercent renders a percentage with one decimal, e.g. "87.5%".
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// CourseSizeFunc reports how many students a course holds. The seed data
// carries a headcount that is independent of the Enrollment rows, so the
// two strategies can disagree; callers pick one explicitly.
type CourseSizeFunc func(c Course, enrollments []Enrollment) int

// SeededCourseSize uses the headcount stored on the Course record.
func SeededCourseSize(c Course, _ []Enrollment) int { return c.EnrolledStudents }

// LiveCourseSize counts actual Enrollment rows for the course.
func LiveCourseSize(c Course, enrollments []Enrollment) int {
	return EnrollmentCount(c.ID, enrollments)
}

// Load summarizes an instructor's teaching load.
type Load struct {
	Courses  int `json:"courses"`
	Students int `json:"students"`
}

// InstructorLoad reports the course count and total student headcount for
// an instructor, sized by the given CourseSizeFunc.
func InstructorLoad(instructorID int, courses []Course, enrollments []Enrollment, size CourseSizeFunc) Load {
	var load Load
	for _, c := range courses {
		if c.InstructorID == instructorID {
			load.Courses++
			load.Students += size(c, enrollments)
		}
	}
	return load
}

// StudentRank pairs a student with their average performance.
type StudentRank struct {
	Student User    `json:"student"`
	Average float64 `json:"average"`
}

// TopStudents ranks students by average performance, best first. The sort
// is stable: ties keep the students' original order.
func TopStudents(n int, users []User, grades []Grade) []StudentRank {
	ranks := make([]StudentRank, 0, len(users))
	for _, u := range users {
		if u.Role != RoleStudent {
			continue
		}
		ranks = append(ranks, StudentRank{Student: u, Average: StudentPerformance(u.ID, grades)})
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].Average > ranks[j].Average })
	if n >= 0 && n < len(ranks) {
		ranks = ranks[:n]
	}
	return ranks
}

// GradeLetter maps a percentage to a letter grade. Bands are inclusive on
// the lower bound, first match wins.
func GradeLetter(pct float64) string {
	switch {
	case pct >= 90:
		return "A+"
	case pct >= 80:
		return "A"
	case pct >= 70:
		return "B"
	case pct >= 60:
		return "C"
	case pct >= 50:
		return "D"
	default:
		return "F"
	}
}

// DueStatus bands
const (
	DueStatusOverdue DueStatus = "Overdue"
	DueStatusDueSoon DueStatus = "Due Soon"
	DueStatusPending DueStatus = "Pending"
)

type DueStatus string

// DaysRemaining reports whole days until the due date, rounding up: a due
// date later today counts as 0, tomorrow as 1, yesterday as -1.
func DaysRemaining(due, now time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}

// DueStatusFor bands a days-remaining value: negative is overdue, 0..3 is
// due soon, anything later is pending.
func DueStatusFor(daysRemaining int) DueStatus {
	switch {
	case daysRemaining < 0:
		return DueStatusOverdue
	case daysRemaining <= 3:
		return DueStatusDueSoon
	default:
		return DueStatusPending
	}
}

// EnrollmentCount counts Enrollment rows for a course.
func EnrollmentCount(courseID int, enrollments []Enrollment) int {
	var n int
	for _, e := range enrollments {
		if e.CourseID == courseID {
			n++
		}
	}
	return n
}

// IsEnrolled reports whether the student has an Enrollment row for the course.
func IsEnrolled(studentID, courseID int, enrollments []Enrollment) bool {
	for _, e := range enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			return true
		}
	}
	return false
}

// HasSubmitted reports whether the student has submitted for the assignment.
// Submission state is derived per (assignment, student) pair, never stored
// on the Assignment itself.
func HasSubmitted(assignmentID, studentID int, submissions []Submission) bool {
	for _, s := range submissions {
		if s.AssignmentID == assignmentID && s.StudentID == studentID {
			return true
		}
	}
	return false
}

// Lookup helpers; display names resolve through these joins instead of
// being copied onto related records.

func FindUser(users []User, id int) (User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

func FindCourse(courses []Course, id int) (Course, bool) {
	for _, c := range courses {
		if c.ID == id {
			return c, true
		}
	}
	return Course{}, false
}

func FindAssignment(assignments []Assignment, id int) (Assignment, bool) {
	for _, a := range assignments {
		if a.ID == id {
			return a, true
		}
	}
	return Assignment{}, false
}

func FindSubmission(submissions []Submission, id int) (Submission, bool) {
	for _, s := range submissions {
		if s.ID == id {
			return s, true
		}
	}
	return Submission{}, false
}

func enrolledCourseIDs(studentID int, enrollments []Enrollment) map[int]bool {
	ids := make(map[int]bool)
	for _, e := range enrollments {
		if e.StudentID == studentID {
			ids[e.CourseID] = true
		}
	}
	return ids
}
