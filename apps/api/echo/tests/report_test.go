package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	. "github.com/trezcool/chuo/apps/api/echo"
)

func Test_reportApi_report(t *testing.T) {
	resetStore(t)

	t.Run("admin only", func(t *testing.T) {
		for _, claim := range []int{1, 4} {
			req, rec := newClaimRequest(http.MethodGet, "/v1/reports", claim)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, httpTest{wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)}, rec)
		}
	})

	req, rec := newClaimRequest(http.MethodGet, "/v1/reports", 7)
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, want %d", rec.Code, http.StatusOK)
	}

	var got ReportResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("json.Unmarshal() failed: %v", err)
	}

	if got.TotalStudents != 3 || got.TotalInstructors != 3 || got.TotalCourses != 5 || got.TotalEnrollments != 7 {
		t.Errorf("totals = %d students, %d instructors, %d courses, %d enrollments; want 3, 3, 5, 7",
			got.TotalStudents, got.TotalInstructors, got.TotalCourses, got.TotalEnrollments)
	}

	// ranking: Nitish (88% + 93.3%)/2, Rahul 90%, Priya 80%
	wantRank := []string{"Nitish Chandra Singha", "Rahul Kumar", "Priya Sharma"}
	if len(got.TopStudents) != len(wantRank) {
		t.Fatalf("top students = %d, want %d", len(got.TopStudents), len(wantRank))
	}
	for i, name := range wantRank {
		if got.TopStudents[i].Student.Name != name {
			t.Errorf("rank %d = %q, want %q", i+1, got.TopStudents[i].Student.Name, name)
		}
	}

	// instructor load sums the seeded headcount, not live enrollments
	wantLoad := map[string][2]int{
		"Mohit Singh":   {2, 83},  // courses 101 + 104
		"Papai Mandal":  {1, 52},  // course 102
		"Dr. Anita Roy": {2, 102}, // courses 103 + 105
	}
	if len(got.InstructorStats) != len(wantLoad) {
		t.Fatalf("instructor stats = %d, want %d", len(got.InstructorStats), len(wantLoad))
	}
	for _, stats := range got.InstructorStats {
		want, ok := wantLoad[stats.Instructor]
		if !ok {
			t.Errorf("unexpected instructor %q", stats.Instructor)
			continue
		}
		if stats.Courses != want[0] || stats.Students != want[1] {
			t.Errorf("%s = %d courses, %d students; want %d, %d",
				stats.Instructor, stats.Courses, stats.Students, want[0], want[1])
		}
	}

	// per-course averages only count published grades
	for _, perf := range got.CoursePerformance {
		switch perf.Code {
		case "CSE402": // two grades: 88% and 80%
			if perf.Entries != 2 || perf.AvgGrade != 84 {
				t.Errorf("%s = %d entries, %v avg; want 2, 84", perf.Code, perf.Entries, perf.AvgGrade)
			}
		case "CSE403", "CSE501": // nothing published
			if perf.Entries != 0 || perf.AvgGrade != 0 {
				t.Errorf("%s = %d entries, %v avg; want 0, 0", perf.Code, perf.Entries, perf.AvgGrade)
			}
		}
	}
}
