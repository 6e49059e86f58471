package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/and161185/wishlink/internal/errs"
	"github.com/and161185/wishlink/internal/limiter"
	"github.com/and161185/wishlink/internal/model"
	"github.com/and161185/wishlink/internal/service"
	"github.com/and161185/wishlink/internal/token"
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// In-memory repositories backing full-stack handler tests.

type memUsers struct {
	mu     sync.Mutex
	byName map[string]model.User
}

func (m *memUsers) Create(_ context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byName[u.Username]; ok {
		return errs.ErrAlreadyExists
	}
	m.byName[u.Username] = *u
	return nil
}

func (m *memUsers) GetByUsername(_ context.Context, username string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byName[username]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &u, nil
}

type memSessions struct {
	mu   sync.Mutex
	rows map[string]string
}

func (m *memSessions) Insert(_ context.Context, s *model.RefreshSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[s.Token]; ok {
		return errs.ErrAlreadyExists
	}
	m.rows[s.Token] = s.Username
	return nil
}

func (m *memSessions) Find(_ context.Context, token string) (*model.RefreshSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.rows[token]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &model.RefreshSession{Token: token, Username: u}, nil
}

func (m *memSessions) Delete(_ context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.rows[token]
	delete(m.rows, token)
	return ok, nil
}

type memWishlists struct {
	mu   sync.Mutex
	byID map[uuid.UUID]model.Wishlist
}

func (m *memWishlists) Create(_ context.Context, w *model.Wishlist) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[w.ID] = *w
	return nil
}

func (m *memWishlists) Get(_ context.Context, id uuid.UUID) (*model.Wishlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &w, nil
}

func (m *memWishlists) ListByOwner(_ context.Context, owner string) ([]model.Wishlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Wishlist
	for _, w := range m.byID {
		if w.Owner == owner {
			out = append(out, w)
		}
	}
	return out, nil
}

type memItems struct {
	mu   sync.Mutex
	byID map[uuid.UUID]model.Item
}

func (m *memItems) Insert(_ context.Context, it *model.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, have := range m.byID {
		if have.WishlistID == it.WishlistID && have.URL == it.URL {
			return errs.ErrAlreadyExists
		}
	}
	m.byID[it.ID] = *it
	return nil
}

func (m *memItems) Get(_ context.Context, id uuid.UUID) (*model.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.byID[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &it, nil
}

func (m *memItems) ListByWishlist(_ context.Context, wishlistID uuid.UUID) ([]model.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Item
	for _, it := range m.byID {
		if it.WishlistID == wishlistID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memItems) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.byID[id]
	delete(m.byID, id)
	return ok, nil
}

type allowAllLimiter struct{}

func (allowAllLimiter) Allow(context.Context, string, []byte) (bool, time.Duration, error) {
	return true, 0, nil
}
func (allowAllLimiter) Success(context.Context, string, []byte) error { return nil }
func (allowAllLimiter) Failure(context.Context, string, []byte) (bool, time.Duration, error) {
	return false, 0, nil
}

var _ limiter.Limiter = allowAllLimiter{}

const testSignKey = "http-test-key"

// tickingClock advances one second per reading so consecutively issued tokens
// never collide on iat/exp.
func tickingClock() func() time.Time {
	var mu sync.Mutex
	t := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

// newTestRouter builds the full stack over in-memory repositories.
func newTestRouter(t *testing.T) (*gin.Engine, *token.Codec) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	codec := token.NewWithClock([]byte(testSignKey), tickingClock())
	auth := service.NewAuthService(
		&memUsers{byName: map[string]model.User{}},
		&memSessions{rows: map[string]string{}},
		codec,
		15*time.Minute, 180*24*time.Hour,
		allowAllLimiter{},
	)
	wishlists := service.NewWishlistService(
		&memWishlists{byID: map[uuid.UUID]model.Wishlist{}},
		&memItems{byID: map[uuid.UUID]model.Item{}},
	)
	srv := New(auth, wishlists, codec, zap.NewNop())
	return srv.Router(), codec
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "192.0.2.10:4242"
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func registerAndLogin(t *testing.T, r *gin.Engine, username, password string) (access, refresh string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/register", gin.H{"username": username, "password": password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/authenticate", gin.H{"username": username, "password": password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	return body["access_token"].(string), body["refresh_token"].(string)
}
