package tests

import (
	"net/http"
	"testing"

	. "github.com/trezcool/chuo/apps/api/echo"
	"github.com/trezcool/chuo/core/directory"
)

func courseResponse(t *testing.T, id int) CourseResponse {
	t.Helper()
	courses, err := dirSvc.Repo().AllCourses()
	if err != nil {
		t.Fatalf("AllCourses(): %v", err)
	}
	crs, ok := directory.FindCourse(courses, id)
	if !ok {
		t.Fatalf("course %d not in store", id)
	}
	enrollments, err := dirSvc.Repo().AllEnrollments()
	if err != nil {
		t.Fatalf("AllEnrollments(): %v", err)
	}
	res := CourseResponse{Course: crs, Enrolled: directory.LiveCourseSize(crs, enrollments)}
	if instr, err := dirSvc.GetUser(crs.InstructorID); err == nil {
		res.Instructor = instr.Name
	}
	return res
}

func Test_courseApi_query(t *testing.T) {
	resetStore(t)

	crs := func(ids ...int) []interface{} {
		res := make([]interface{}, 0, len(ids))
		for _, id := range ids {
			res = append(res, courseResponse(t, id))
		}
		return res
	}

	tests := []httpTest{
		{name: "Auth required", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errNoAuth)},
		{name: "student sees enrolled courses", claim: 1, wantData: marchallList(t, crs(101, 102, 103)...)},
		{name: "second student", claim: 2, wantData: marchallList(t, crs(102, 104)...)},
		{name: "instructor sees own courses", claim: 4, wantData: marchallList(t, crs(101, 104)...)},
		{name: "admin sees all", claim: 7, wantData: marchallList(t, crs(101, 102, 103, 104, 105)...)},
	}
	for _, tt := range tests {
		tt.method = http.MethodGet
		tt.path = "/v1/courses"
		if tt.wantCode == 0 {
			tt.wantCode = http.StatusOK
		}

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newClaimRequest(tt.method, tt.path, tt.claim)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_courseApi_queryMaterials(t *testing.T) {
	resetStore(t)

	materials, err := dirSvc.Repo().AllMaterials()
	if err != nil {
		t.Fatalf("AllMaterials(): %v", err)
	}
	forCourse := func(id int) []interface{} {
		res := make([]interface{}, 0, len(materials))
		for _, m := range materials {
			if m.CourseID == id {
				res = append(res, m)
			}
		}
		return res
	}

	tests := []httpTest{
		{name: "Auth required", path: "/v1/courses/101/materials", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errNoAuth)},
		{name: "course materials", path: "/v1/courses/101/materials", claim: 1, wantData: marchallList(t, forCourse(101)...)},
		{name: "single material", path: "/v1/courses/104/materials", claim: 7, wantData: marchallList(t, forCourse(104)...)},
		{name: "unknown course is empty", path: "/v1/courses/999/materials", claim: 7, wantData: marchallList(t)},
		{name: "junk id", path: "/v1/courses/lol/materials", claim: 7, wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "not found"})},
	}
	for _, tt := range tests {
		tt.method = http.MethodGet
		if tt.wantCode == 0 {
			tt.wantCode = http.StatusOK
		}

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newClaimRequest(tt.method, tt.path, tt.claim)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_courseApi_toggleEnrollment(t *testing.T) {
	resetStore(t)

	tests := []httpTest{
		{name: "Auth required", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errNoAuth)},
		{name: "instructors cannot enroll", claim: 4, wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)},
		{name: "admins cannot enroll", claim: 7, wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)},
		{name: "toggle on", claim: 2, wantCode: http.StatusOK, wantData: marchallObj(t, EnrollmentResponse{Enrolled: true})},
		{name: "toggle off", claim: 2, wantCode: http.StatusOK, wantData: marchallObj(t, EnrollmentResponse{Enrolled: false})},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/v1/courses/101/enrollment"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newClaimRequest(tt.method, tt.path, tt.claim)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}

	// back where we started
	enrollments, err := dirSvc.Repo().AllEnrollments()
	if err != nil {
		t.Fatalf("AllEnrollments(): %v", err)
	}
	if directory.IsEnrolled(2, 101, enrollments) {
		t.Error("enrollment left behind after toggling twice")
	}
}

func Test_courseApi_manage(t *testing.T) {
	resetStore(t)

	newCourse := []byte(`{"title": "Compilers", "code": "CSE502", "instructor_id": 6, "semester": "5th"}`)

	t.Run("students cannot create", func(t *testing.T) {
		req, rec := newClaimRequest(http.MethodPost, "/v1/courses", 1, newCourse)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)}, rec)
	})

	t.Run("instructors cannot create", func(t *testing.T) {
		req, rec := newClaimRequest(http.MethodPost, "/v1/courses", 4, newCourse)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)}, rec)
	})

	t.Run("blank title rejected", func(t *testing.T) {
		req, rec := newClaimRequest(http.MethodPost, "/v1/courses", 7, []byte(`{"title": "  ", "code": "CSE502", "instructor_id": 6}`))
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"title": "this field is required"}),
		}, rec)
	})

	t.Run("admin creates", func(t *testing.T) {
		req, rec := newClaimRequest(http.MethodPost, "/v1/courses", 7, newCourse)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusCreated,
			wantData: marchallObj(t, directory.Course{ID: 106, Title: "Compilers", Code: "CSE502", InstructorID: 6, Semester: "5th"}),
		}, rec)
	})

	t.Run("admin updates", func(t *testing.T) {
		req, rec := newClaimRequest(http.MethodPut, "/v1/courses/106", 7, []byte(`{"title": "Compiler Construction"}`))
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusOK,
			wantData: marchallObj(t, directory.Course{ID: 106, Title: "Compiler Construction", Code: "CSE502", InstructorID: 6, Semester: "5th"}),
		}, rec)
	})

	t.Run("update unknown course", func(t *testing.T) {
		req, rec := newClaimRequest(http.MethodPut, "/v1/courses/999", 7, []byte(`{"title": "Ghost"}`))
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "course not found"}),
		}, rec)
	})

	t.Run("admin deletes", func(t *testing.T) {
		req, rec := newClaimRequest(http.MethodDelete, "/v1/courses/106", 7)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Errorf("code = %d, want %d", rec.Code, http.StatusNoContent)
		}
		courses, _ := dirSvc.Repo().AllCourses()
		if _, ok := directory.FindCourse(courses, 106); ok {
			t.Error("course still in store after delete")
		}
	})
}
