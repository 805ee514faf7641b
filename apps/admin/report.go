package main

import (
	"fmt"

	"github.com/trezcool/chuo/core/directory"
)

func (cli *commandLine) printSeedSummary() error {
	repo := cli.dirSvc.Repo()

	users, err := repo.AllUsers()
	if err != nil {
		return err
	}
	courses, err := repo.AllCourses()
	if err != nil {
		return err
	}
	enrollments, err := repo.AllEnrollments()
	if err != nil {
		return err
	}
	assignments, err := repo.AllAssignments()
	if err != nil {
		return err
	}
	submissions, err := repo.AllSubmissions()
	if err != nil {
		return err
	}
	announcements, err := repo.AllAnnouncements()
	if err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "users: %d\n", len(users))
	fmt.Fprintf(cli.out, "courses: %d\n", len(courses))
	fmt.Fprintf(cli.out, "enrollments: %d\n", len(enrollments))
	fmt.Fprintf(cli.out, "assignments: %d\n", len(assignments))
	fmt.Fprintf(cli.out, "submissions: %d\n", len(submissions))
	fmt.Fprintf(cli.out, "announcements: %d\n", len(announcements))
	return nil
}

func (cli *commandLine) printReport() error {
	repo := cli.dirSvc.Repo()

	users, err := repo.AllUsers()
	if err != nil {
		return err
	}
	courses, err := repo.AllCourses()
	if err != nil {
		return err
	}
	enrollments, err := repo.AllEnrollments()
	if err != nil {
		return err
	}
	grades, err := repo.AllGrades()
	if err != nil {
		return err
	}

	fmt.Fprintln(cli.out, "Top students:")
	for i, rank := range directory.TopStudents(5, users, grades) {
		fmt.Fprintf(cli.out, "  %d. %s - %s (%s)\n",
			i+1, rank.Student.Name, directory.FormatPercent(rank.Average), directory.GradeLetter(rank.Average))
	}

	fmt.Fprintln(cli.out, "Instructor load:")
	for _, u := range users {
		if u.Role != directory.RoleInstructor {
			continue
		}
		load := directory.InstructorLoad(u.ID, courses, enrollments, directory.SeededCourseSize)
		fmt.Fprintf(cli.out, "  %s - %d courses, %d students\n", u.Name, load.Courses, load.Students)
	}
	return nil
}
