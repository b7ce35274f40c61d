package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campusai-api/internal/middleware"
	"github.com/noah-isme/campusai-api/internal/models"
	"github.com/noah-isme/campusai-api/internal/service"
	"github.com/noah-isme/campusai-api/internal/session"
	"github.com/noah-isme/campusai-api/pkg/config"
)

type userRepoStub struct {
	users  map[int]*models.User
	nextID int
}

func (s *userRepoStub) FindByID(_ context.Context, id int) (*models.User, error) {
	return s.users[id], nil
}

func (s *userRepoStub) FindByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (s *userRepoStub) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *userRepoStub) Create(_ context.Context, user *models.User) error {
	if s.users == nil {
		s.users = make(map[int]*models.User)
	}
	s.nextID++
	user.ID = s.nextID
	s.users[user.ID] = user
	return nil
}

type attendanceRepoStub struct {
	marks []models.Attendance
}

func (s *attendanceRepoStub) Upsert(_ context.Context, record *models.Attendance) (*models.Attendance, error) {
	for i, existing := range s.marks {
		if existing.UserID == record.UserID && existing.ClassID == record.ClassID &&
			existing.ScheduleID == record.ScheduleID && existing.Date.String() == record.Date.String() {
			s.marks[i].Status = record.Status
			return &s.marks[i], nil
		}
	}
	stored := *record
	stored.ID = len(s.marks) + 1
	s.marks = append(s.marks, stored)
	return &stored, nil
}

func (s *attendanceRepoStub) SummaryCounts(_ context.Context, userID int) (*models.AttendanceCounts, error) {
	var counts models.AttendanceCounts
	for _, m := range s.marks {
		if m.UserID != userID {
			continue
		}
		counts.Total++
		switch m.Status {
		case models.AttendancePresent:
			counts.Present++
		case models.AttendanceAbsent:
			counts.Absent++
		}
	}
	return &counts, nil
}

func (s *attendanceRepoStub) ListByUser(_ context.Context, userID int) ([]models.Attendance, error) {
	var out []models.Attendance
	for _, m := range s.marks {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

type classRepoStub struct {
	classes []models.Class
	byDay   map[int][]models.ClassWithSchedule
}

func (s *classRepoStub) List(_ context.Context) ([]models.Class, error) {
	return s.classes, nil
}

func (s *classRepoStub) ListByDay(_ context.Context, dayOfWeek int) ([]models.ClassWithSchedule, error) {
	return s.byDay[dayOfWeek], nil
}

type scheduleRepoStub struct {
	schedules []models.Schedule
}

func (s *scheduleRepoStub) List(_ context.Context) ([]models.Schedule, error) {
	return s.schedules, nil
}

type resourceRepoStub struct {
	resources []models.Resource
}

func (s *resourceRepoStub) List(_ context.Context, filter models.ResourceFilter) ([]models.Resource, error) {
	return s.resources, nil
}

func (s *resourceRepoStub) Categories(_ context.Context) ([]string, error) {
	out := make([]string, 0, len(s.resources))
	for _, r := range s.resources {
		out = append(out, r.Category)
	}
	return out, nil
}

type eventRepoStub struct {
	events   []models.EventWithTags
	featured *models.EventWithTags
	regs     []models.EventRegistration
}

func (s *eventRepoStub) List(_ context.Context) ([]models.EventWithTags, error) {
	return s.events, nil
}

func (s *eventRepoStub) FindFeatured(_ context.Context) (*models.EventWithTags, error) {
	return s.featured, nil
}

func (s *eventRepoStub) Register(_ context.Context, eventID, userID int) (*models.EventRegistration, error) {
	for _, reg := range s.regs {
		if reg.EventID == eventID && reg.UserID == userID {
			return &reg, nil
		}
	}
	reg := models.EventRegistration{ID: len(s.regs) + 1, EventID: eventID, UserID: userID, RegisteredAt: time.Now()}
	s.regs = append(s.regs, reg)
	return &reg, nil
}

type counselingRepoStub struct {
	counselors []models.Counselor
	appts      []models.CounselingAppointment
}

func (s *counselingRepoStub) Counselors(_ context.Context) ([]models.Counselor, error) {
	return s.counselors, nil
}

func (s *counselingRepoStub) CreateAppointment(_ context.Context, appt *models.CounselingAppointment) (*models.CounselingAppointment, error) {
	stored := *appt
	stored.ID = len(s.appts) + 1
	s.appts = append(s.appts, stored)
	return &stored, nil
}

func (s *counselingRepoStub) AppointmentsByUser(_ context.Context, userID int) ([]models.CounselingAppointment, error) {
	var out []models.CounselingAppointment
	for _, a := range s.appts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

type chatRepoStub struct {
	messages []models.ChatMessage
}

func (s *chatRepoStub) ListByUser(_ context.Context, userID int) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	for _, m := range s.messages {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *chatRepoStub) Create(_ context.Context, msg *models.ChatMessage) (*models.ChatMessage, error) {
	stored := *msg
	stored.ID = len(s.messages) + 1
	stored.CreatedAt = time.Now()
	s.messages = append(s.messages, stored)
	return &stored, nil
}

type responderStub struct {
	reply string
	err   error
}

func (s *responderStub) Reply(_ context.Context, _, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

type testEnv struct {
	router     *gin.Engine
	users      *userRepoStub
	attendance *attendanceRepoStub
	classes    *classRepoStub
	events     *eventRepoStub
	chat       *chatRepoStub
	responder  *responderStub
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := session.NewMemoryStore(time.Hour)
	t.Cleanup(store.Close)
	sessions := session.NewManager(config.SessionConfig{
		CookieName: "campusai_session",
		HashKey:    "0123456789abcdef0123456789abcdef",
		TTL:        time.Hour,
	}, store)

	env := &testEnv{
		users:      &userRepoStub{},
		attendance: &attendanceRepoStub{},
		classes:    &classRepoStub{},
		events:     &eventRepoStub{},
		chat:       &chatRepoStub{},
		responder:  &responderStub{reply: "Happy to help!"},
	}

	authSvc := service.NewAuthService(env.users, nil, nil)
	classSvc := service.NewClassService(env.classes, &scheduleRepoStub{}, nil)
	attendanceSvc := service.NewAttendanceService(env.attendance, nil, nil)
	resourceSvc := service.NewResourceService(&resourceRepoStub{})
	eventSvc := service.NewEventService(env.events, nil)
	counselingSvc := service.NewCounselingService(&counselingRepoStub{}, nil)
	chatSvc := service.NewChatService(env.chat, env.users, env.responder, nil, nil, nil)

	router := gin.New()
	Routes{
		Auth:       NewAuthHandler(authSvc, sessions),
		Classes:    NewClassHandler(classSvc),
		Attendance: NewAttendanceHandler(attendanceSvc),
		Resources:  NewResourceHandler(resourceSvc),
		Events:     NewEventHandler(eventSvc),
		Counseling: NewCounselingHandler(counselingSvc),
		Chat:       NewChatHandler(chatSvc),
	}.Register(router, "/api", middleware.RequireSession(sessions))

	env.router = router
	return env
}

func jsonBody(payload string) *strings.Reader {
	return strings.NewReader(payload)
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// registerUser signs up an account over HTTP and returns its session
// cookie.
func (e *testEnv) registerUser(t *testing.T) *http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/register",
		jsonBody(`{"username":"pulkit","password":"password123","fullName":"Pulkit","email":"pulkit@campus.edu"}`))
	w := e.do(req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	res := w.Result()
	defer res.Body.Close()
	require.NotEmpty(t, res.Cookies())
	return res.Cookies()[0]
}
