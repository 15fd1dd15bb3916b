package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diwanalardiya/ardiya/internal/repo"
)

func TestHandleRepoError(t *testing.T) {
	logger := slog.Default()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   ErrorCode
	}{
		{"not found", repo.ErrNotFound, http.StatusNotFound, ErrCodeNotFound},
		{"conflict", repo.ErrAlreadyExists, http.StatusConflict, ErrCodeConflict},
		{"invalid state", repo.ErrInvalidState, http.StatusUnprocessableEntity, ErrCodeInvalidState},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		handled := HandleRepoError(rec, logger, tt.err, "missing")
		if !handled {
			t.Errorf("%s: expected handled=true", tt.name)
			continue
		}
		if rec.Code != tt.wantStatus {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.wantStatus, rec.Code)
		}

		var resp ErrorResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("%s: decode: %v", tt.name, err)
		}
		if resp.Error.Code != tt.wantCode {
			t.Errorf("%s: expected code %s, got %s", tt.name, tt.wantCode, resp.Error.Code)
		}
	}
}

func TestHandleRepoError_Nil(t *testing.T) {
	rec := httptest.NewRecorder()
	if HandleRepoError(rec, slog.Default(), nil, "") {
		t.Error("nil error should not be handled")
	}
}

func TestList_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	List(rec, []string{"a", "b"}, 2)

	var resp struct {
		Data  []string `json:"data"`
		Total int      `json:"total"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 2 || len(resp.Data) != 2 {
		t.Errorf("unexpected envelope: %+v", resp)
	}
}

func TestMustParseInt(t *testing.T) {
	tests := []struct {
		in   string
		def  int64
		want int64
	}{
		{"", 100, 100},
		{"50", 100, 50},
		{"0", 100, 0},
		{"abc", 100, 100},
		{"12.5", 100, 100},
	}

	for _, tt := range tests {
		if got := mustParseInt(tt.in, tt.def); got != tt.want {
			t.Errorf("mustParseInt(%q, %d) = %d, want %d", tt.in, tt.def, got, tt.want)
		}
	}
}
