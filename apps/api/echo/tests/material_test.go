package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/trezcool/chuo/core/directory"
)

func Test_materialApi_manage(t *testing.T) {
	resetStore(t)

	newMat := []byte(`{"course_id": 103, "title": "Graph Theory Notes", "type": "PDF", "file": "graphs.pdf"}`)

	t.Run("students cannot upload", func(t *testing.T) {
		req, rec := newClaimRequest(http.MethodPost, "/v1/materials", 1, newMat)
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)}, rec)
	})

	t.Run("missing file rejected", func(t *testing.T) {
		req, rec := newClaimRequest(http.MethodPost, "/v1/materials", 6, []byte(`{"course_id": 103, "title": "Notes", "type": "PDF"}`))
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, httpTest{
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"file": "this field is required"}),
		}, rec)
	})

	t.Run("instructor uploads", func(t *testing.T) {
		req, rec := newClaimRequest(http.MethodPost, "/v1/materials", 6, newMat)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("code = %d, want %d", rec.Code, http.StatusCreated)
		}

		var mat directory.Material
		if err := json.Unmarshal(rec.Body.Bytes(), &mat); err != nil {
			t.Fatalf("json.Unmarshal() failed: %v", err)
		}
		if mat.ID != 8 || mat.CourseID != 103 || mat.File != "graphs.pdf" {
			t.Errorf("material = %+v", mat)
		}
		if mat.UploadDate.IsZero() {
			t.Error("upload_date not stamped")
		}
	})

	t.Run("instructor deletes", func(t *testing.T) {
		req, rec := newClaimRequest(http.MethodDelete, "/v1/materials/8", 6)
		app.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Errorf("code = %d, want %d", rec.Code, http.StatusNoContent)
		}
		materials, _ := dirSvc.Repo().AllMaterials()
		for _, m := range materials {
			if m.ID == 8 {
				t.Error("material still in store after delete")
			}
		}
	})
}
