package identity

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/vinom-treasure/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	registerErr error
	explorer    *dmn.Explorer
	signInErr   error
	profileErr  error
}

func (f fakeAuth) Register(string, string) error {
	return f.registerErr
}

func (f fakeAuth) SignIn(string, string) (*dmn.Explorer, string, error) {
	return f.explorer, "signed", f.signInErr
}

func (f fakeAuth) Profile(uuid.UUID) (*dmn.Explorer, error) {
	return f.explorer, f.profileErr
}

type staticTokenizer map[string]interface{}

func (s staticTokenizer) Generate(map[string]interface{}, time.Duration) (string, error) {
	return "", nil
}

func (s staticTokenizer) Decode(token string) (map[string]interface{}, error) {
	if token != "valid" {
		return nil, errors.New("invalid token")
	}
	return s, nil
}

func newEngine(auth fakeAuth) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewIdentityServer(auth).RegisterPublic(engine.Group("/v1"))
	return engine
}

func post(engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	body := `{"username":"indiana","password":"secret"}`

	assert.Equal(t, http.StatusCreated, post(newEngine(fakeAuth{}), "/v1/auth/register", body).Code)
	assert.Equal(t, http.StatusConflict, post(newEngine(fakeAuth{registerErr: dmn.ErrUsernameConflict}), "/v1/auth/register", body).Code)
	assert.Equal(t, http.StatusBadRequest, post(newEngine(fakeAuth{registerErr: dmn.ErrWeakPassword}), "/v1/auth/register", body).Code)
	assert.Equal(t, http.StatusBadRequest, post(newEngine(fakeAuth{}), "/v1/auth/register", `{"username":"x"}`).Code)
}

func TestLogin(t *testing.T) {
	best := 7
	explorer := &dmn.Explorer{ID: uuid.New(), Username: "indiana", BestReward: &best}
	body := `{"username":"indiana","password":"secret"}`

	w := post(newEngine(fakeAuth{explorer: explorer}), "/v1/auth/login", body)
	require.Equal(t, http.StatusOK, w.Code)
	var got AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, AuthResponse{
		Profile: Profile{ID: explorer.ID.String(), Username: "indiana", BestReward: &best},
		Token:   "signed",
	}, got)

	w = post(newEngine(fakeAuth{signInErr: dmn.ErrInvalidCredential}), "/v1/auth/login", body)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthorize(t *testing.T) {
	gin.SetMode(gin.TestMode)
	explorerID := uuid.New()

	for _, tc := range []struct {
		name   string
		header string
		claims staticTokenizer
		status int
	}{
		{"no header", "", staticTokenizer{"explorerID": explorerID.String()}, http.StatusUnauthorized},
		{"not bearer", "Basic valid", staticTokenizer{"explorerID": explorerID.String()}, http.StatusUnauthorized},
		{"bad token", "Bearer nope", staticTokenizer{"explorerID": explorerID.String()}, http.StatusUnauthorized},
		{"no explorer claim", "Bearer valid", staticTokenizer{"username": "x"}, http.StatusUnauthorized},
		{"ok", "Bearer valid", staticTokenizer{"explorerID": explorerID.String()}, http.StatusOK},
	} {
		t.Run(tc.name, func(t *testing.T) {
			engine := gin.New()
			engine.GET("/me", Authorize(tc.claims), func(c *gin.Context) {
				id, ok := ExplorerID(c)
				require.True(t, ok)
				c.String(http.StatusOK, id.String())
			})

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				assert.Equal(t, explorerID.String(), w.Body.String())
			}
		})
	}
}

func TestProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	explorer := &dmn.Explorer{ID: uuid.New(), Username: "marion"}
	claims := staticTokenizer{"explorerID": explorer.ID.String()}

	get := func(auth fakeAuth) *httptest.ResponseRecorder {
		engine := gin.New()
		protected := engine.Group("/v1", Authorize(claims))
		NewIdentityServer(auth).RegisterProtected(protected)

		req := httptest.NewRequest(http.MethodGet, "/v1/explorers/me", nil)
		req.Header.Set("Authorization", "Bearer valid")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		return w
	}

	w := get(fakeAuth{explorer: explorer})
	require.Equal(t, http.StatusOK, w.Code)
	var got Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, Profile{ID: explorer.ID.String(), Username: "marion"}, got)

	assert.Equal(t, http.StatusNotFound, get(fakeAuth{profileErr: dmn.ErrExplorerNotFound}).Code)
	assert.Equal(t, http.StatusInternalServerError, get(fakeAuth{profileErr: errors.New("down")}).Code)
}
