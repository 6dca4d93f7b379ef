package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"lentora/internal/models"
	"lentora/internal/service"
	"lentora/internal/timer"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	guestToken    string
	guestErr      error
	parseID       int
	parseErr      error

	lastSignUpName     string
	lastSignUpEmail    string
	lastSignUpPassword string
	lastGenEmail       string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(name, email, password string) (int, error) {
	m.lastSignUpName = name
	m.lastSignUpEmail = email
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(email, password string) (string, error) {
	m.lastGenEmail = email
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) GuestToken() (string, error) {
	return m.guestToken, m.guestErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockTimer struct {
	mu sync.Mutex

	state     models.TimerState
	changeErr error
	events    chan timer.Event

	calls           []string
	lastPhase       string
	lastConfirm     bool
	unsubscribed    bool
	subscribeBuffer int
}

func (m *mockTimer) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *mockTimer) called() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *mockTimer) State() models.TimerState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}
func (m *mockTimer) Start()  { m.record("start") }
func (m *mockTimer) Pause()  { m.record("pause") }
func (m *mockTimer) Toggle() { m.record("toggle") }
func (m *mockTimer) Reset()  { m.record("reset") }
func (m *mockTimer) Skip()   { m.record("skip") }
func (m *mockTimer) ChangePhase(phase string, confirm bool) error {
	m.record("phase")
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastPhase = phase
	m.lastConfirm = confirm
	return m.changeErr
}
func (m *mockTimer) Subscribe(buffer int) (<-chan timer.Event, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribeBuffer = buffer
	if m.events == nil {
		m.events = make(chan timer.Event, buffer)
	}
	return m.events, func() {
		m.mu.Lock()
		m.unsubscribed = true
		m.mu.Unlock()
	}
}

func (m *mockTimer) isUnsubscribed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.unsubscribed
}

type mockSettings struct {
	settings  models.Settings
	err       error
	export    []byte
	lastPatch models.SettingsPatch
	lastYAML  []byte
}

func (m *mockSettings) Get(ctx context.Context) (models.Settings, error) {
	return m.settings, m.err
}
func (m *mockSettings) Update(ctx context.Context, patch models.SettingsPatch) (models.Settings, error) {
	m.lastPatch = patch
	return m.settings, m.err
}
func (m *mockSettings) ExportYAML(ctx context.Context) ([]byte, error) {
	return m.export, m.err
}
func (m *mockSettings) ImportYAML(ctx context.Context, data []byte) (models.Settings, error) {
	m.lastYAML = data
	return m.settings, m.err
}

type mockStats struct {
	today    models.DailyStats
	days     []models.DailyStats
	err      error
	lastFrom string
	lastTo   string
}

func (m *mockStats) Today(ctx context.Context) (models.DailyStats, error) {
	return m.today, m.err
}
func (m *mockStats) Range(ctx context.Context, from, to string) ([]models.DailyStats, error) {
	m.lastFrom = from
	m.lastTo = to
	return m.days, m.err
}

type mockTasks struct {
	tasks         []models.Task
	task          models.Task
	err           error
	lastFilter    string
	lastID        string
	lastInput     service.TaskInput
	lastCompleted bool
	deleted       []string
}

func (m *mockTasks) List(ctx context.Context, filter string) ([]models.Task, error) {
	m.lastFilter = filter
	return m.tasks, m.err
}
func (m *mockTasks) Create(ctx context.Context, in service.TaskInput) (models.Task, error) {
	m.lastInput = in
	return m.task, m.err
}
func (m *mockTasks) Update(ctx context.Context, id string, in service.TaskInput) (models.Task, error) {
	m.lastID = id
	m.lastInput = in
	return m.task, m.err
}
func (m *mockTasks) SetCompleted(ctx context.Context, id string, completed bool) (models.Task, error) {
	m.lastID = id
	m.lastCompleted = completed
	return m.task, m.err
}
func (m *mockTasks) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return m.err
}

type mockEventLog struct {
	resp     []models.TimerEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.TimerEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

type mockInvites struct {
	invite      models.Invite
	invites     []models.Invite
	err         error
	lastEmail   string
	lastMessage string
}

func (m *mockInvites) Send(ctx context.Context, email, message string) (models.Invite, error) {
	m.lastEmail = email
	m.lastMessage = message
	return m.invite, m.err
}
func (m *mockInvites) List(ctx context.Context) ([]models.Invite, error) {
	return m.invites, m.err
}

type mockQuotes struct{ quote string }

func (m *mockQuotes) Quote() string   { return m.quote }
func (m *mockQuotes) Message() string { return m.quote }

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

func withAuth(req *http.Request, token string) *http.Request {
	for k, vv := range authHeader(token) {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	return req
}
