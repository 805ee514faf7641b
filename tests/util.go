package testutil

import (
	"testing"
	"time"

	"github.com/trezcool/chuo/core/directory"
	"github.com/trezcool/chuo/storage/memory"
)

// PrepareStore returns a fresh empty store.
func PrepareStore(t *testing.T) *memorystore.Store {
	t.Helper()
	db, err := memorystore.Open()
	if err != nil {
		t.Fatalf("PrepareStore() failed: %v", err)
	}
	return db
}

// SeedStore returns a store loaded with the sample dataset.
func SeedStore(t *testing.T) *memorystore.Store {
	t.Helper()
	db := PrepareStore(t)
	if err := memorystore.Seed(db); err != nil {
		t.Fatalf("SeedStore() failed: %v", err)
	}
	return db
}

func CreateUser(
	t *testing.T,
	svc *directory.Service,
	name, email string,
	role directory.Role,
) directory.User {
	t.Helper()
	usr, err := svc.CreateUser(directory.NewUser{Name: name, Email: email, Role: role})
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateCourse(
	t *testing.T,
	svc *directory.Service,
	title, code string,
	instructorID int,
) directory.Course {
	t.Helper()
	crs, err := svc.CreateCourse(directory.NewCourse{Title: title, Code: code, InstructorID: instructorID})
	if err != nil {
		t.Fatalf("CreateCourse() failed: %v", err)
	}
	return crs
}

func CreateAssignment(
	t *testing.T,
	svc *directory.Service,
	courseID int,
	title string,
	dueDate time.Time,
	maxMarks int,
) directory.Assignment {
	t.Helper()
	asg, err := svc.CreateAssignment(directory.NewAssignment{
		CourseID: courseID,
		Title:    title,
		DueDate:  dueDate,
		MaxMarks: maxMarks,
	})
	if err != nil {
		t.Fatalf("CreateAssignment() failed: %v", err)
	}
	return asg
}

func Enroll(t *testing.T, svc *directory.Service, studentID, courseID int) {
	t.Helper()
	enrolled, err := svc.ToggleEnrollment(studentID, courseID)
	if err != nil {
		t.Fatalf("Enroll() failed: %v", err)
	}
	if !enrolled {
		t.Fatalf("Enroll() unexpectedly removed an enrollment for (%d, %d)", studentID, courseID)
	}
}

func Submit(t *testing.T, svc *directory.Service, assignmentID, studentID int, file string) directory.Submission {
	t.Helper()
	sub, err := svc.Submit(directory.NewSubmission{AssignmentID: assignmentID, StudentID: studentID, File: file})
	if err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	return sub
}
