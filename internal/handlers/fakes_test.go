package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Harshadsshinde/hospital-management-system/internal/config"
	"github.com/Harshadsshinde/hospital-management-system/internal/models"
	"github.com/Harshadsshinde/hospital-management-system/internal/storage"
	"github.com/Harshadsshinde/hospital-management-system/internal/store"
	"github.com/Harshadsshinde/hospital-management-system/internal/token"
	"github.com/Harshadsshinde/hospital-management-system/internal/utils"
)

// --- in-memory stores ---

type fakeUserStore struct {
	users []*models.User
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return store.ErrDuplicateEmail
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			copied := *u
			copied.Password = ""
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) Doctors(_ context.Context) ([]models.User, error) {
	doctors := make([]models.User, 0)
	for _, u := range f.users {
		if u.Role == models.RoleDoctor {
			copied := *u
			copied.Password = ""
			doctors = append(doctors, copied)
		}
	}
	return doctors, nil
}

func (f *fakeUserStore) MatchDoctors(_ context.Context, firstName, lastName, department string) ([]models.User, error) {
	var doctors []models.User
	for _, u := range f.users {
		if u.Role == models.RoleDoctor &&
			u.FirstName == firstName &&
			u.LastName == lastName &&
			u.DoctorDepartment == department {
			doctors = append(doctors, *u)
		}
	}
	return doctors, nil
}

type fakeAppointmentStore struct {
	apts       []*models.Appointment
	lastUpdate map[string]any
}

func (f *fakeAppointmentStore) Create(_ context.Context, apt *models.Appointment) error {
	if apt.ID.IsZero() {
		apt.ID = primitive.NewObjectID()
	}
	copied := *apt
	f.apts = append(f.apts, &copied)
	return nil
}

func (f *fakeAppointmentStore) Get(_ context.Context, id primitive.ObjectID) (*models.Appointment, error) {
	for _, apt := range f.apts {
		if apt.ID == id {
			copied := *apt
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeAppointmentStore) All(_ context.Context) ([]models.Appointment, error) {
	all := make([]models.Appointment, 0, len(f.apts))
	for _, apt := range f.apts {
		all = append(all, *apt)
	}
	return all, nil
}

func (f *fakeAppointmentStore) Update(_ context.Context, id primitive.ObjectID, fields map[string]any) error {
	for _, apt := range f.apts {
		if apt.ID == id {
			f.lastUpdate = fields
			if status, ok := fields["status"].(string); ok {
				apt.Status = models.AppointmentStatus(status)
			}
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeAppointmentStore) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, apt := range f.apts {
		if apt.ID == id {
			f.apts = append(f.apts[:i], f.apts[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeMessageStore struct {
	msgs []*models.Message
}

func (f *fakeMessageStore) Create(_ context.Context, msg *models.Message) error {
	if msg.ID.IsZero() {
		msg.ID = primitive.NewObjectID()
	}
	copied := *msg
	f.msgs = append(f.msgs, &copied)
	return nil
}

func (f *fakeMessageStore) All(_ context.Context) ([]models.Message, error) {
	all := make([]models.Message, 0, len(f.msgs))
	for _, msg := range f.msgs {
		all = append(all, *msg)
	}
	return all, nil
}

type fakeUploader struct {
	err error
}

func (f *fakeUploader) Upload(_ context.Context, _, _ string) (*storage.UploadResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &storage.UploadResult{
		PublicID: "avatar-test-id",
		URL:      "https://images.test/avatar-test-id.png",
	}, nil
}

// --- harness ---

type testEnv struct {
	router   *gin.Engine
	users    *fakeUserStore
	apts     *fakeAppointmentStore
	msgs     *fakeMessageStore
	tokens   *token.Service
	uploader *fakeUploader
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		users:    &fakeUserStore{},
		apts:     &fakeAppointmentStore{},
		msgs:     &fakeMessageStore{},
		tokens:   token.NewService(&config.Token{Secret: "handler-test-secret", TTL: time.Hour}),
		uploader: &fakeUploader{},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(env.users, env.apts, env.msgs, env.tokens, env.uploader, log)
	cfg := &config.HTTP{AllowedOrigins: []string{"http://localhost:5173"}}
	env.router = NewRouter(cfg, h, nil)
	return env
}

func (e *testEnv) seedUser(t *testing.T, role models.Role, firstName, lastName, email, password string) *models.User {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     "0123456789",
		NIC:       "1234567890123",
		DOB:       time.Date(1985, 4, 12, 0, 0, 0, 0, time.UTC),
		Gender:    "Female",
		Password:  hashed,
		Role:      role,
	}
	if err := e.users.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func (e *testEnv) seedDoctor(t *testing.T, firstName, lastName, department string) *models.User {
	t.Helper()
	doctor := e.seedUser(t, models.RoleDoctor, firstName, lastName, firstName+"."+lastName+"@hospital.test", "doctorpass1")
	doctor.DoctorDepartment = department
	return doctor
}

func (e *testEnv) cookieFor(t *testing.T, user *models.User, cookieName string) *http.Cookie {
	t.Helper()
	signed, _, err := e.tokens.Issue(user.ID.Hex())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return &http.Cookie{Name: cookieName, Value: signed}
}

func (e *testEnv) doJSON(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func messageOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	message, _ := decodeBody(t, w)["message"].(string)
	return message
}

var errUploadDown = errors.New("image host unreachable")
