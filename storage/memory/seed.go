package memorystore

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/chuo/core/directory"
)

// Seed loads the sample campus dataset into the store, replacing whatever
// it holds. The records mirror the demo fixtures the UI ships with.
func Seed(s *Store) error {
	if err := s.ReplaceUsers(sampleUsers()); err != nil {
		return err
	}
	if err := s.ReplaceCourses(sampleCourses()); err != nil {
		return err
	}
	if err := s.ReplaceEnrollments(sampleEnrollments()); err != nil {
		return err
	}
	if err := s.ReplaceMaterials(sampleMaterials()); err != nil {
		return err
	}
	if err := s.ReplaceAssignments(sampleAssignments()); err != nil {
		return err
	}
	if err := s.ReplaceSubmissions(sampleSubmissions()); err != nil {
		return err
	}
	if err := s.ReplaceGrades(sampleGrades()); err != nil {
		return err
	}
	return s.ReplaceAnnouncements(sampleAnnouncements())
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func sampleUsers() []directory.User {
	return []directory.User{
		{ID: 1, Name: "Nitish Chandra Singha", Email: "nitish@example.com", Role: directory.RoleStudent},
		{ID: 2, Name: "Priya Sharma", Email: "priya@example.com", Role: directory.RoleStudent},
		{ID: 3, Name: "Rahul Kumar", Email: "rahul@example.com", Role: directory.RoleStudent},
		{ID: 4, Name: "Mohit Singh", Email: "mohit@example.com", Role: directory.RoleInstructor},
		{ID: 5, Name: "Papai Mandal", Email: "papai@example.com", Role: directory.RoleInstructor},
		{ID: 6, Name: "Dr. Anita Roy", Email: "anita@example.com", Role: directory.RoleInstructor},
		{ID: 7, Name: "Admin User", Email: "admin@example.com", Role: directory.RoleAdmin},
	}
}

func sampleCourses() []directory.Course {
	return []directory.Course{
		{
			ID:               101,
			Title:            "Software Engineering",
			Code:             "CSE401",
			InstructorID:     4,
			Semester:         "4th",
			Description:      "Learn software development methodologies, SDLC, and project management.",
			EnrolledStudents: 45,
		},
		{
			ID:               102,
			Title:            "Database Management Systems",
			Code:             "CSE402",
			InstructorID:     5,
			Semester:         "4th",
			Description:      "Master SQL, database design, normalization, and transaction management.",
			EnrolledStudents: 52,
		},
		{
			ID:               103,
			Title:            "Data Structures & Algorithms",
			Code:             "CSE301",
			InstructorID:     6,
			Semester:         "3rd",
			Description:      "Deep dive into algorithms, complexity analysis, and data structures.",
			EnrolledStudents: 60,
		},
		{
			ID:               104,
			Title:            "Web Development",
			Code:             "CSE403",
			InstructorID:     4,
			Semester:         "4th",
			Description:      "Build modern web applications using React, Node.js, and databases.",
			EnrolledStudents: 38,
		},
		{
			ID:               105,
			Title:            "Machine Learning",
			Code:             "CSE501",
			InstructorID:     6,
			Semester:         "5th",
			Description:      "Introduction to ML algorithms, neural networks, and AI applications.",
			EnrolledStudents: 42,
		},
	}
}

func sampleEnrollments() []directory.Enrollment {
	return []directory.Enrollment{
		{StudentID: 1, CourseID: 101, EnrolledDate: date(2025, time.August, 1)},
		{StudentID: 1, CourseID: 102, EnrolledDate: date(2025, time.August, 1)},
		{StudentID: 1, CourseID: 103, EnrolledDate: date(2025, time.August, 1)},
		{StudentID: 2, CourseID: 102, EnrolledDate: date(2025, time.August, 2)},
		{StudentID: 2, CourseID: 104, EnrolledDate: date(2025, time.August, 2)},
		{StudentID: 3, CourseID: 101, EnrolledDate: date(2025, time.August, 1)},
		{StudentID: 3, CourseID: 103, EnrolledDate: date(2025, time.August, 1)},
	}
}

func sampleMaterials() []directory.Material {
	return []directory.Material{
		{ID: 1, CourseID: 101, Title: "Lecture Notes - Chapter 1", Type: "PDF", UploadDate: date(2025, time.November, 1), File: "se_lecture1.pdf"},
		{ID: 2, CourseID: 101, Title: "SDLC Models Presentation", Type: "PPT", UploadDate: date(2025, time.November, 3), File: "sdlc_models.pptx"},
		{ID: 3, CourseID: 102, Title: "SQL Basics Tutorial", Type: "PDF", UploadDate: date(2025, time.November, 2), File: "sql_basics.pdf"},
		{ID: 4, CourseID: 102, Title: "Normalization Examples", Type: "PDF", UploadDate: date(2025, time.November, 5), File: "normalization.pdf"},
		{ID: 5, CourseID: 103, Title: "Sorting Algorithms Video", Type: "Video", UploadDate: date(2025, time.October, 28), File: "sorting_algos.mp4"},
		{ID: 6, CourseID: 104, Title: "React Components Guide", Type: "PDF", UploadDate: date(2025, time.November, 4), File: "react_guide.pdf"},
		{ID: 7, CourseID: 105, Title: "ML Introduction Slides", Type: "PPT", UploadDate: date(2025, time.November, 6), File: "ml_intro.pptx"},
	}
}

func sampleAssignments() []directory.Assignment {
	return []directory.Assignment{
		{
			ID:          1,
			CourseID:    101,
			Title:       "SRS Document Preparation",
			Description: "Create a Software Requirements Specification document for a given project.",
			DueDate:     date(2025, time.November, 30),
			MaxMarks:    20,
		},
		{
			ID:          2,
			CourseID:    102,
			Title:       "Database Schema Design",
			Description: "Design a normalized database schema for an e-commerce system.",
			DueDate:     date(2025, time.November, 25),
			MaxMarks:    25,
		},
		{
			ID:          3,
			CourseID:    103,
			Title:       "Algorithm Implementation",
			Description: "Implement and analyze various sorting algorithms.",
			DueDate:     date(2025, time.November, 20),
			MaxMarks:    30,
		},
		{
			ID:          4,
			CourseID:    104,
			Title:       "Full Stack Web Application",
			Description: "Build a complete web application with frontend and backend.",
			DueDate:     date(2025, time.December, 5),
			MaxMarks:    40,
		},
		{
			ID:          5,
			CourseID:    105,
			Title:       "ML Model Training",
			Description: "Train and evaluate a machine learning model on a given dataset.",
			DueDate:     date(2025, time.December, 10),
			MaxMarks:    35,
		},
	}
}

func sampleSubmissions() []directory.Submission {
	return []directory.Submission{
		{
			ID:            1,
			AssignmentID:  2,
			StudentID:     1,
			SubmittedDate: date(2025, time.November, 24),
			File:          "db_schema_nitish.pdf",
			Grade:         null.IntFrom(22),
			Feedback:      null.StringFrom("Excellent work! Well-normalized schema."),
		},
		{
			ID:            2,
			AssignmentID:  2,
			StudentID:     2,
			SubmittedDate: date(2025, time.November, 25),
			File:          "db_schema_priya.pdf",
			Grade:         null.IntFrom(20),
			Feedback:      null.StringFrom("Good effort. Minor improvements needed in normalization."),
		},
		{
			ID:            3,
			AssignmentID:  3,
			StudentID:     1,
			SubmittedDate: date(2025, time.November, 19),
			File:          "algo_impl_nitish.zip",
			Grade:         null.IntFrom(28),
			Feedback:      null.StringFrom("Great implementation and analysis!"),
		},
		{
			ID:            4,
			AssignmentID:  3,
			StudentID:     3,
			SubmittedDate: date(2025, time.November, 20),
			File:          "algo_impl_rahul.zip",
		},
	}
}

func sampleGrades() []directory.Grade {
	return []directory.Grade{
		{StudentID: 1, CourseID: 102, Marks: 22, MaxMarks: 25, Feedback: "Excellent work! Well-normalized schema."},
		{StudentID: 1, CourseID: 103, Marks: 28, MaxMarks: 30, Feedback: "Great implementation and analysis!"},
		{StudentID: 2, CourseID: 102, Marks: 20, MaxMarks: 25, Feedback: "Good effort. Minor improvements needed."},
		{StudentID: 3, CourseID: 101, Marks: 18, MaxMarks: 20, Feedback: "Well structured SRS document."},
	}
}

func sampleAnnouncements() []directory.Announcement {
	return []directory.Announcement{
		{
			ID:           1,
			Title:        "Mid-Semester Exam Schedule Released",
			Content:      "The mid-semester examination schedule has been published. Please check your respective course pages for details.",
			AuthorID:     7,
			Date:         date(2025, time.November, 10),
			IsSystemWide: true,
		},
		{
			ID:       2,
			Title:    "Assignment Deadline Extension",
			Content:  "The Database Schema Design assignment deadline has been extended to Nov 25.",
			AuthorID: 5,
			Date:     date(2025, time.November, 8),
			CourseID: null.IntFrom(102),
		},
		{
			ID:       3,
			Title:    "Guest Lecture on Agile Methodology",
			Content:  "A guest lecture will be conducted on Nov 18 at 2 PM. Attendance is mandatory.",
			AuthorID: 4,
			Date:     date(2025, time.November, 7),
			CourseID: null.IntFrom(101),
		},
		{
			ID:           4,
			Title:        "Library Hours Extended",
			Content:      "The library will remain open until 10 PM during exam season.",
			AuthorID:     7,
			Date:         date(2025, time.November, 9),
			IsSystemWide: true,
		},
	}
}
