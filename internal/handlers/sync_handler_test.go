package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"biasharaBack/utils"
)

func newSyncRequest(t *testing.T, token, uid string) *http.Request {
	t.Helper()
	body := strings.NewReader(`{"uid":"` + uid + `","email":"a@b.c"}`)
	r := httptest.NewRequest(http.MethodPost, "/internal/sync_user", body)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

func TestSyncUserAcknowledges(t *testing.T) {
	tokens, err := utils.NewManager("test-key")
	if err != nil {
		t.Fatal(err)
	}
	h := &SyncHandler{Tokens: tokens}

	token, err := tokens.NewServiceToken("u1", time.Minute)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	h.SyncUser(w, newSyncRequest(t, token, "u1"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Success   bool   `json:"success"`
		IsNewUser bool   `json:"isNewUser"`
		Message   string `json:"message"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.IsNewUser {
		t.Errorf("unexpected ack %+v", resp)
	}
}

func TestSyncUserRejectsMissingToken(t *testing.T) {
	tokens, _ := utils.NewManager("test-key")
	h := &SyncHandler{Tokens: tokens}

	w := httptest.NewRecorder()
	h.SyncUser(w, newSyncRequest(t, "", "u1"))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestSyncUserRejectsSubjectMismatch(t *testing.T) {
	tokens, _ := utils.NewManager("test-key")
	h := &SyncHandler{Tokens: tokens}

	token, _ := tokens.NewServiceToken("someone-else", time.Minute)
	w := httptest.NewRecorder()
	h.SyncUser(w, newSyncRequest(t, token, "u1"))
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", w.Code)
	}
}
