package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lentora/internal/models"
	"lentora/internal/service"
	"lentora/internal/timer"
)

func TestHealth(t *testing.T) {
	r := newTestRouter(&service.Service{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}
	var m map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["status"] != "ok" {
		t.Fatalf("unexpected body %v", m)
	}
}

func TestTimerHandlers_RequireAuth(t *testing.T) {
	r := newTestRouter(&service.Service{Authorization: &mockAuth{}, Timer: &mockTimer{}})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/timer/start", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}

func TestTimerHandlers_Controls(t *testing.T) {
	mt := &mockTimer{state: models.TimerState{Phase: models.PhaseFocus, RemainingSeconds: 1500, IsRunning: true}}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 1}, Timer: mt})

	cases := []struct {
		path, status, call string
	}{
		{"/api/v1/timer/start", "started", "start"},
		{"/api/v1/timer/pause", "paused", "pause"},
		{"/api/v1/timer/toggle", "toggled", "toggle"},
		{"/api/v1/timer/reset", "reset", "reset"},
		{"/api/v1/timer/skip", "skipped", "skip"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, withAuth(httptest.NewRequest(http.MethodPost, tc.path, nil), "t"))
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status=%d body=%s", tc.path, w.Code, w.Body.String())
		}
		var out struct {
			Status string            `json:"status"`
			State  models.TimerState `json:"state"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &out)
		if out.Status != tc.status || out.State.RemainingSeconds != 1500 {
			t.Fatalf("%s: unexpected body %+v", tc.path, out)
		}
	}

	calls := mt.called()
	if len(calls) != len(cases) {
		t.Fatalf("expected %d calls, got %v", len(cases), calls)
	}
	for i, tc := range cases {
		if calls[i] != tc.call {
			t.Fatalf("call %d = %q, want %q", i, calls[i], tc.call)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, withAuth(httptest.NewRequest(http.MethodGet, "/api/v1/timer", nil), "t"))
	if w.Code != http.StatusOK {
		t.Fatalf("get timer status=%d", w.Code)
	}
	var st models.TimerState
	_ = json.Unmarshal(w.Body.Bytes(), &st)
	if st.Phase != models.PhaseFocus || !st.IsRunning {
		t.Fatalf("unexpected state %+v", st)
	}
}

func TestTimerHandlers_ChangePhase(t *testing.T) {
	mt := &mockTimer{}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{}, Timer: mt})

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := withAuth(httptest.NewRequest(http.MethodPost, "/api/v1/timer/phase", bytes.NewBufferString(body)), "t")
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	if w := post(`{"phase":"long_break","confirm":true}`); w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if mt.lastPhase != "long_break" || !mt.lastConfirm {
		t.Fatalf("unexpected args %q %v", mt.lastPhase, mt.lastConfirm)
	}

	if w := post(`{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("missing phase: expected 400, got %d", w.Code)
	}

	mt.changeErr = timer.ErrConfirmationRequired
	w := post(`{"phase":"short_break"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out["confirmation_required"] != true {
		t.Fatalf("expected confirmation_required flag, got %v", out)
	}

	mt.changeErr = timer.ErrInvalidPhase
	if w := post(`{"phase":"nap"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("invalid phase: expected 400, got %d", w.Code)
	}
}
