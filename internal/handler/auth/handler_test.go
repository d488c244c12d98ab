package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aayaanhealth/hospital-api/internal/model"
	"github.com/aayaanhealth/hospital-api/internal/repository"
	authservice "github.com/aayaanhealth/hospital-api/internal/service/auth"
	pkgauth "github.com/aayaanhealth/hospital-api/pkg/auth"
	"github.com/aayaanhealth/hospital-api/pkg/security"
)

type fakeUserRepo struct {
	byEmail map[string]*model.User
	byID    map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*model.User{}, byID: map[string]*model.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.byEmail[user.Email] = user
	r.byID[user.ID.String()] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

type fakePatientRepo struct {
	created []*model.Patient
}

func (r *fakePatientRepo) Create(_ context.Context, p *model.Patient) error {
	r.created = append(r.created, p)
	return nil
}

func (r *fakePatientRepo) List(_ context.Context, _ int) ([]*model.Patient, error) {
	return r.created, nil
}

func (r *fakePatientRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.created)), nil
}

type fakeDoctorRepo struct {
	created []*model.Doctor
}

func (r *fakeDoctorRepo) Create(_ context.Context, d *model.Doctor) error {
	r.created = append(r.created, d)
	return nil
}

func (r *fakeDoctorRepo) List(_ context.Context) ([]*model.Doctor, error) {
	return r.created, nil
}

func newTestRouter() (*gin.Engine, *fakeUserRepo) {
	gin.SetMode(gin.TestMode)
	users := newFakeUserRepo()
	svc := authservice.NewService(
		users,
		&fakePatientRepo{},
		&fakeDoctorRepo{},
		security.NewBcryptHasher(4),
		pkgauth.NewJWTService("test-secret", time.Hour),
		zerolog.Nop(),
	)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group(""))
	return r, users
}

func signup(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

const signupBody = `{"role":"patient","full_name":"Asha Rao","email":"asha@example.com","password":"supersecret"}`

func TestSignupEndpoint(t *testing.T) {
	r, users := newTestRouter()

	w := signup(t, r, signupBody)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID      string `json:"id"`
			Message string `json:"message"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Signup successful", resp.Data.Message)
	assert.NotEmpty(t, resp.Data.ID)
	assert.Contains(t, users.byEmail, "asha@example.com")
}

func TestSignupDuplicateEmail(t *testing.T) {
	r, _ := newTestRouter()

	require.Equal(t, http.StatusCreated, signup(t, r, signupBody).Code)
	assert.Equal(t, http.StatusBadRequest, signup(t, r, signupBody).Code)
}

func TestSignupInvalidRole(t *testing.T) {
	r, _ := newTestRouter()

	body := `{"role":"janitor","full_name":"Bo","email":"bo@example.com","password":"supersecret"}`
	assert.Equal(t, http.StatusUnprocessableEntity, signup(t, r, body).Code)
}

func TestSignupShortPassword(t *testing.T) {
	r, _ := newTestRouter()

	body := `{"role":"patient","full_name":"Bo","email":"bo@example.com","password":"short"}`
	assert.Equal(t, http.StatusUnprocessableEntity, signup(t, r, body).Code)
}

func TestLoginEndpoint(t *testing.T) {
	r, _ := newTestRouter()
	require.Equal(t, http.StatusCreated, signup(t, r, signupBody).Code)

	w := login(t, r, "asha@example.com", "supersecret")
	require.Equal(t, http.StatusOK, w.Code)

	// The token body is returned unwrapped.
	var tokens model.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tokens))
	assert.Equal(t, "bearer", tokens.TokenType)
	assert.NotEmpty(t, tokens.AccessToken)
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := newTestRouter()
	require.Equal(t, http.StatusCreated, signup(t, r, signupBody).Code)

	assert.Equal(t, http.StatusBadRequest, login(t, r, "asha@example.com", "wrong-password").Code)
}

func TestLoginUnknownUser(t *testing.T) {
	r, _ := newTestRouter()

	assert.Equal(t, http.StatusBadRequest, login(t, r, "nobody@example.com", "whatever").Code)
}

func TestLoginMissingFields(t *testing.T) {
	r, _ := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("username=a@b.c"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
