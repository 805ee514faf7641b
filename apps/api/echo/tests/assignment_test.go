package tests

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	. "github.com/trezcool/chuo/apps/api/echo"
	"github.com/trezcool/chuo/core/directory"
)

func Test_assignmentApi_query(t *testing.T) {
	resetStore(t)

	type view struct {
		id          int
		courseTitle string
		submitted   bool
	}
	tests := []struct {
		name  string
		claim int
		want  []view
	}{
		{
			name: "student sees own courses' assignments with submission state", claim: 1,
			want: []view{
				{id: 1, courseTitle: "Software Engineering", submitted: false},
				{id: 2, courseTitle: "Database Management Systems", submitted: true},
				{id: 3, courseTitle: "Data Structures & Algorithms", submitted: true},
			},
		},
		{
			name: "submission state is per student", claim: 3,
			want: []view{
				{id: 1, courseTitle: "Software Engineering", submitted: false},
				{id: 3, courseTitle: "Data Structures & Algorithms", submitted: true},
			},
		},
		{
			name: "instructor sees own courses", claim: 4,
			want: []view{
				{id: 1, courseTitle: "Software Engineering"},
				{id: 4, courseTitle: "Web Development"},
			},
		},
		{
			name: "admin sees all", claim: 7,
			want: []view{
				{id: 1, courseTitle: "Software Engineering"},
				{id: 2, courseTitle: "Database Management Systems"},
				{id: 3, courseTitle: "Data Structures & Algorithms"},
				{id: 4, courseTitle: "Web Development"},
				{id: 5, courseTitle: "Machine Learning"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newClaimRequest(http.MethodGet, "/v1/assignments", tt.claim)
			app.ServeHTTP(rec, req)
			if rec.Code != http.StatusOK {
				t.Fatalf("code = %d, want %d", rec.Code, http.StatusOK)
			}

			var got []AssignmentResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("json.Unmarshal() failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			now := time.Now().UTC()
			for i, w := range tt.want {
				ar := got[i]
				if ar.ID != w.id {
					t.Errorf("row %d = assignment %d, want %d", i, ar.ID, w.id)
				}
				if ar.CourseTitle != w.courseTitle {
					t.Errorf("course_title = %q, want %q", ar.CourseTitle, w.courseTitle)
				}
				if ar.Submitted != w.submitted {
					t.Errorf("submitted = %v, want %v (assignment %d)", ar.Submitted, w.submitted, w.id)
				}
				days := directory.DaysRemaining(ar.DueDate, now)
				if ar.DaysRemaining != days {
					t.Errorf("days_remaining = %d, want %d", ar.DaysRemaining, days)
				}
				if want := directory.DueStatusFor(days); ar.Status != want {
					t.Errorf("status = %q, want %q", ar.Status, want)
				}
			}
		})
	}
}

func Test_assignmentApi_submit(t *testing.T) {
	resetStore(t)

	body := []byte(`{"file": "srs_nitish.pdf"}`)

	tests := []httpTest{
		{name: "Auth required", path: "/v1/assignments/1/submissions", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errNoAuth)},
		{name: "instructors cannot submit", path: "/v1/assignments/1/submissions", claim: 4, wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)},
		{
			name: "missing file", path: "/v1/assignments/1/submissions", body: []byte(`{}`), claim: 1,
			wantCode: http.StatusBadRequest, wantData: marchallObj(t, map[string]string{"file": "this field is required"}),
		},
		{
			name: "unknown assignment", path: "/v1/assignments/999/submissions", body: body, claim: 1,
			wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "assignment not found"}),
		},
		{name: "student submits", path: "/v1/assignments/1/submissions", body: body, claim: 1, wantCode: http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newClaimRequest(http.MethodPost, tt.path, tt.claim, tt.body)
			app.ServeHTTP(rec, req)

			if tt.wantCode == http.StatusCreated {
				if rec.Code != tt.wantCode {
					t.Fatalf("code = %d, want %d", rec.Code, tt.wantCode)
				}
				var sub directory.Submission
				if err := json.Unmarshal(rec.Body.Bytes(), &sub); err != nil {
					t.Fatalf("json.Unmarshal() failed: %v", err)
				}
				if sub.AssignmentID != 1 || sub.StudentID != 1 || sub.File != "srs_nitish.pdf" {
					t.Errorf("submission = %+v", sub)
				}
				if sub.Graded() {
					t.Error("fresh submission already graded")
				}
				return
			}
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_assignmentApi_querySubmissions(t *testing.T) {
	resetStore(t)

	submissions, err := dirSvc.Repo().AllSubmissions()
	if err != nil {
		t.Fatalf("AllSubmissions(): %v", err)
	}
	withName := func(id int, name string) SubmissionResponse {
		sub, ok := directory.FindSubmission(submissions, id)
		if !ok {
			t.Fatalf("submission %d not in store", id)
		}
		return SubmissionResponse{Submission: sub, StudentName: name}
	}

	tests := []httpTest{
		{name: "Auth required", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errNoAuth)},
		{name: "students cannot review submissions", claim: 3, wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)},
		{
			name: "pending vs graded split", claim: 6, wantCode: http.StatusOK,
			wantData: marchallObj(t, SubmissionsResponse{
				Pending: []SubmissionResponse{withName(4, "Rahul Kumar")},
				Graded:  []SubmissionResponse{withName(3, "Nitish Chandra Singha")},
			}),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodGet
		tt.path = "/v1/assignments/3/submissions"

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newClaimRequest(tt.method, tt.path, tt.claim)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_assignmentApi_manage(t *testing.T) {
	resetStore(t)

	newAsg := []byte(`{"course_id": 101, "title": "Design Review", "due_date": "2026-09-15T00:00:00Z", "max_marks": 10}`)

	t.Run("students cannot create", func(t *testing.T) {
		req, rec := newClaimRequest(http.MethodPost, "/v1/assignments", 1, newAsg)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)}, rec)
	})

	t.Run("zero max marks rejected", func(t *testing.T) {
		req, rec := newClaimRequest(http.MethodPost, "/v1/assignments", 4, []byte(`{"course_id": 101, "title": "Design Review", "due_date": "2026-09-15T00:00:00Z"}`))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("code = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("instructor creates", func(t *testing.T) {
		req, rec := newClaimRequest(http.MethodPost, "/v1/assignments", 4, newAsg)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusCreated,
			wantData: marchallObj(t, directory.Assignment{
				ID:       6,
				CourseID: 101,
				Title:    "Design Review",
				DueDate:  time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC),
				MaxMarks: 10,
			}),
		}, rec)
	})

	t.Run("instructor deletes", func(t *testing.T) {
		req, rec := newClaimRequest(http.MethodDelete, "/v1/assignments/6", 4)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Errorf("code = %d, want %d", rec.Code, http.StatusNoContent)
		}
	})
}
