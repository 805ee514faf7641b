package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	. "github.com/trezcool/chuo/apps/api/echo"
	"github.com/trezcool/chuo/core/directory"
	"github.com/trezcool/chuo/services/email"
)

func announcementResponse(t *testing.T, id int) AnnouncementResponse {
	t.Helper()
	announcements, err := dirSvc.Repo().AllAnnouncements()
	if err != nil {
		t.Fatalf("AllAnnouncements(): %v", err)
	}
	for _, a := range announcements {
		if a.ID == id {
			res := AnnouncementResponse{Announcement: a}
			if author, err := dirSvc.GetUser(a.AuthorID); err == nil {
				res.Author = author.Name
			}
			return res
		}
	}
	t.Fatalf("announcement %d not in store", id)
	return AnnouncementResponse{}
}

func Test_announcementApi_query(t *testing.T) {
	resetStore(t)

	anns := func(ids ...int) []interface{} {
		res := make([]interface{}, 0, len(ids))
		for _, id := range ids {
			res = append(res, announcementResponse(t, id))
		}
		return res
	}

	tests := []httpTest{
		{name: "Auth required", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errNoAuth)},
		// seed: 1 & 4 system-wide, 2 scoped to course 102, 3 scoped to course 101
		{name: "student sees system-wide plus own courses", claim: 1, wantData: marchallList(t, anns(1, 2, 3, 4)...)},
		{name: "student misses other courses' posts", claim: 2, wantData: marchallList(t, anns(1, 2, 4)...)},
		{name: "instructor sees all", claim: 5, wantData: marchallList(t, anns(1, 2, 3, 4)...)},
		{name: "admin sees all", claim: 7, wantData: marchallList(t, anns(1, 2, 3, 4)...)},
	}
	for _, tt := range tests {
		if tt.wantCode == 0 {
			tt.wantCode = http.StatusOK
		}

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newClaimRequest(http.MethodGet, "/v1/announcements", tt.claim)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_announcementApi_orphanedStaysStaffOnly(t *testing.T) {
	resetStore(t)

	// an instructor flagging system-wide gets the flag dropped, leaving an
	// orphaned note (no course, not system-wide)
	req, rec := newClaimRequest(http.MethodPost, "/v1/announcements", 4,
		[]byte(`{"title": "Office move", "content": "Staff room changes.", "is_system_wide": true}`))
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %d, want %d", rec.Code, http.StatusCreated)
	}
	var ann directory.Announcement
	if err := json.Unmarshal(rec.Body.Bytes(), &ann); err != nil {
		t.Fatalf("json.Unmarshal() failed: %v", err)
	}
	if ann.IsSystemWide {
		t.Error("is_system_wide = true, want the flag dropped for instructors")
	}

	// no student ever sees it
	for _, claim := range []int{1, 2, 3} {
		req, rec := newClaimRequest(http.MethodGet, "/v1/announcements", claim)
		app.ServeHTTP(rec, req)

		var got []AnnouncementResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("json.Unmarshal() failed: %v", err)
		}
		for _, a := range got {
			if a.ID == ann.ID {
				t.Errorf("student %d sees the staff-only note", claim)
			}
		}
	}

	// staff do
	req, rec = newClaimRequest(http.MethodGet, "/v1/announcements", 5)
	app.ServeHTTP(rec, req)
	var got []AnnouncementResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("json.Unmarshal() failed: %v", err)
	}
	var found bool
	for _, a := range got {
		found = found || a.ID == ann.ID
	}
	if !found {
		t.Error("staff cannot see the staff-only note")
	}
}

func Test_announcementApi_create(t *testing.T) {
	resetStore(t)

	t.Run("students cannot post", func(t *testing.T) {
		req, rec := newClaimRequest(http.MethodPost, "/v1/announcements", 1,
			[]byte(`{"title": "Party", "content": "My place."}`))
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)}, rec)
	})

	t.Run("admin posts system-wide and everyone is notified", func(t *testing.T) {
		emailsvc.ClearSentMessages()
		req, rec := newClaimRequest(http.MethodPost, "/v1/announcements", 7,
			[]byte(`{"title": "Holiday", "content": "Campus closed Monday.", "is_system_wide": true}`))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %d, want %d", rec.Code, http.StatusCreated)
		}

		var ann directory.Announcement
		if err := json.Unmarshal(rec.Body.Bytes(), &ann); err != nil {
			t.Fatalf("json.Unmarshal() failed: %v", err)
		}
		if !ann.IsSystemWide {
			t.Error("is_system_wide = false, want true for admins")
		}
		if ann.AuthorID != 7 {
			t.Errorf("author_id = %d, want 7", ann.AuthorID)
		}

		if len(emailsvc.SentMessages) != 1 {
			t.Fatalf("sent = %d messages, want 1", len(emailsvc.SentMessages))
		}
		if n := len(emailsvc.SentMessages[0].Bcc); n != 6 { // everyone but the author
			t.Errorf("bcc = %d recipients, want 6", n)
		}
	})

	t.Run("instructor posts to a course", func(t *testing.T) {
		emailsvc.ClearSentMessages()
		req, rec := newClaimRequest(http.MethodPost, "/v1/announcements", 5,
			[]byte(`{"title": "Lab moved", "content": "Use room B12.", "course_id": 102}`))
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %d, want %d", rec.Code, http.StatusCreated)
		}
		// course 102 has students 1 and 2 enrolled
		if len(emailsvc.SentMessages) != 1 {
			t.Fatalf("sent = %d messages, want 1", len(emailsvc.SentMessages))
		}
		if n := len(emailsvc.SentMessages[0].Bcc); n != 2 {
			t.Errorf("bcc = %d recipients, want 2", n)
		}
	})
}

func Test_announcementApi_destroy(t *testing.T) {
	resetStore(t)

	t.Run("students cannot delete", func(t *testing.T) {
		req, rec := newClaimRequest(http.MethodDelete, "/v1/announcements/1", 1)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)}, rec)
	})

	t.Run("staff delete", func(t *testing.T) {
		req, rec := newClaimRequest(http.MethodDelete, "/v1/announcements/1", 7)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Errorf("code = %d, want %d", rec.Code, http.StatusNoContent)
		}
		announcements, _ := dirSvc.Repo().AllAnnouncements()
		for _, a := range announcements {
			if a.ID == 1 {
				t.Error("announcement still in store after delete")
			}
		}
	})
}
