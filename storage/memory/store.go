// Package memorystore holds the directory collections in process memory.
// Snapshots preserve insertion order and everything resets on restart.
package memorystore

import (
	"sync"

	"github.com/trezcool/chuo/core/directory"
)

type Store struct {
	mu sync.RWMutex

	users         []directory.User
	courses       []directory.Course
	enrollments   []directory.Enrollment
	materials     []directory.Material
	assignments   []directory.Assignment
	submissions   []directory.Submission
	grades        []directory.Grade
	announcements []directory.Announcement
}

var _ directory.Repository = (*Store)(nil)

func Open() (*Store, error) {
	return &Store{}, nil
}

func (s *Store) AllUsers() ([]directory.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]directory.User, len(s.users))
	copy(res, s.users)
	return res, nil
}

func (s *Store) ReplaceUsers(users []directory.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = make([]directory.User, len(users))
	copy(s.users, users)
	return nil
}

func (s *Store) AllCourses() ([]directory.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]directory.Course, len(s.courses))
	copy(res, s.courses)
	return res, nil
}

func (s *Store) ReplaceCourses(courses []directory.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses = make([]directory.Course, len(courses))
	copy(s.courses, courses)
	return nil
}

func (s *Store) AllEnrollments() ([]directory.Enrollment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]directory.Enrollment, len(s.enrollments))
	copy(res, s.enrollments)
	return res, nil
}

func (s *Store) ReplaceEnrollments(enrollments []directory.Enrollment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enrollments = make([]directory.Enrollment, len(enrollments))
	copy(s.enrollments, enrollments)
	return nil
}

func (s *Store) AllMaterials() ([]directory.Material, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]directory.Material, len(s.materials))
	copy(res, s.materials)
	return res, nil
}

func (s *Store) ReplaceMaterials(materials []directory.Material) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.materials = make([]directory.Material, len(materials))
	copy(s.materials, materials)
	return nil
}

func (s *Store) AllAssignments() ([]directory.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]directory.Assignment, len(s.assignments))
	copy(res, s.assignments)
	return res, nil
}

func (s *Store) ReplaceAssignments(assignments []directory.Assignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assignments = make([]directory.Assignment, len(assignments))
	copy(s.assignments, assignments)
	return nil
}

func (s *Store) AllSubmissions() ([]directory.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]directory.Submission, len(s.submissions))
	copy(res, s.submissions)
	return res, nil
}

func (s *Store) ReplaceSubmissions(submissions []directory.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submissions = make([]directory.Submission, len(submissions))
	copy(s.submissions, submissions)
	return nil
}

func (s *Store) AllGrades() ([]directory.Grade, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]directory.Grade, len(s.grades))
	copy(res, s.grades)
	return res, nil
}

func (s *Store) ReplaceGrades(grades []directory.Grade) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grades = make([]directory.Grade, len(grades))
	copy(s.grades, grades)
	return nil
}

func (s *Store) AllAnnouncements() ([]directory.Announcement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res := make([]directory.Announcement, len(s.announcements))
	copy(res, s.announcements)
	return res, nil
}

func (s *Store) ReplaceAnnouncements(announcements []directory.Announcement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.announcements = make([]directory.Announcement, len(announcements))
	copy(s.announcements, announcements)
	return nil
}
