package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basketeer/basketeer/internal/api"
	"github.com/basketeer/basketeer/internal/errors"
)

// fakeBackend is a minimal marketplace backend: one valid token, one
// valid phone/OTP pair, and a profile behind bearer auth.
type fakeBackend struct {
	mux        *http.ServeMux
	validToken string
	user       api.User
	perms      []api.Permission
}

func newFakeBackend() *fakeBackend {
	b := &fakeBackend{
		validToken: "tok-valid",
		user: api.User{
			ID:    "u1",
			Phone: "09120000001",
			Roles: []string{"customer"},
		},
		perms: []api.Permission{{Codename: "product.view"}},
	}

	b.mux = http.NewServeMux()
	b.mux.HandleFunc("/api/v1/auth/send-otp", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, map[string]string{"status": "sent"})
	})
	b.mux.HandleFunc("/api/v1/auth/verify-otp", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Phone string `json:"phone"`
			OTP   string `json:"otp"`
		}
		json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
		if req.Phone != b.user.Phone || req.OTP != "1234" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid code"}) //nolint:errcheck
			return
		}
		writeData(w, api.TokenResponse{Token: b.validToken, User: b.user})
	})
	b.mux.HandleFunc("/api/v1/users/profile", func(w http.ResponseWriter, r *http.Request) {
		if !b.authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeData(w, b.user)
	})
	b.mux.HandleFunc("/api/v1/users/permissions", func(w http.ResponseWriter, r *http.Request) {
		if !b.authorized(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeData(w, b.perms)
	})
	return b
}

func (b *fakeBackend) authorized(r *http.Request) bool {
	return r.Header.Get("Authorization") == "Bearer "+b.validToken
}

func writeData(w http.ResponseWriter, data any) {
	json.NewEncoder(w).Encode(map[string]any{"data": data}) //nolint:errcheck
}

func newTestStore(t *testing.T, backend http.Handler) (*Store, *api.Client, *TokenFile) {
	t.Helper()
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	client := api.NewClient(server.URL)
	tokens := tempTokenFile(t)
	return NewStore(client, tokens, nil), client, tokens
}

func TestInitializeWithoutToken(t *testing.T) {
	store, _, _ := newTestStore(t, newFakeBackend().mux)

	store.Initialize(context.Background())

	assert.Equal(t, StateAnonymous, store.State())
	assert.Nil(t, store.User())
}

func TestInitializeWithValidToken(t *testing.T) {
	backend := newFakeBackend()
	store, _, tokens := newTestStore(t, backend.mux)
	require.NoError(t, tokens.Save(backend.validToken, backend.user.Phone))

	store.Initialize(context.Background())

	require.Equal(t, StateAuthenticated, store.State())
	user := store.User()
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)
	assert.True(t, store.HasPermission("product.view"))
}

func TestInitializeDiscardsRejectedToken(t *testing.T) {
	store, _, tokens := newTestStore(t, newFakeBackend().mux)
	require.NoError(t, tokens.Save("tok-stale", ""))

	store.Initialize(context.Background())

	assert.Equal(t, StateAnonymous, store.State())
	assert.Empty(t, tokens.Load(), "rejected token must be discarded")
}

func TestInitializeRunsOnce(t *testing.T) {
	backend := newFakeBackend()
	store, _, tokens := newTestStore(t, backend.mux)

	store.Initialize(context.Background())
	require.Equal(t, StateAnonymous, store.State())

	// A token appearing later must not be picked up by a second call.
	require.NoError(t, tokens.Save(backend.validToken, ""))
	store.Initialize(context.Background())
	assert.Equal(t, StateAnonymous, store.State())
}

func TestLoginSuccess(t *testing.T) {
	backend := newFakeBackend()
	store, _, tokens := newTestStore(t, backend.mux)
	store.Initialize(context.Background())

	var transitions []State
	store.Subscribe(func(s State) { transitions = append(transitions, s) })

	err := store.Login(context.Background(), "09120000001", "1234")
	require.NoError(t, err)

	assert.Equal(t, StateAuthenticated, store.State())
	assert.Equal(t, backend.validToken, tokens.Load(), "token must be persisted")
	assert.Equal(t, []State{StateAuthenticated}, transitions)
}

func TestLoginRoundTripThroughStorage(t *testing.T) {
	backend := newFakeBackend()
	server := httptest.NewServer(backend.mux)
	defer server.Close()
	tokens := tempTokenFile(t)

	// First process: login.
	first := NewStore(api.NewClient(server.URL), tokens, nil)
	first.Initialize(context.Background())
	require.NoError(t, first.Login(context.Background(), "09120000001", "1234"))
	firstUser := first.User()

	// Fresh process: initialize from the persisted token alone.
	second := NewStore(api.NewClient(server.URL), tokens, nil)
	second.Initialize(context.Background())

	require.Equal(t, StateAuthenticated, second.State())
	secondUser := second.User()
	require.NotNil(t, secondUser)
	assert.Equal(t, firstUser.ID, secondUser.ID)
}

func TestLoginFailureReturnsTypedError(t *testing.T) {
	store, _, tokens := newTestStore(t, newFakeBackend().mux)
	store.Initialize(context.Background())

	err := store.Login(context.Background(), "09120000001", "9999")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeAPIValidation))
	assert.Equal(t, "invalid code", errors.UserMessage(err))
	assert.Equal(t, StateAnonymous, store.State())
	assert.Empty(t, tokens.Load())
}

func TestLoginWhileAuthenticatedRejected(t *testing.T) {
	backend := newFakeBackend()
	store, _, _ := newTestStore(t, backend.mux)
	store.Initialize(context.Background())
	require.NoError(t, store.Login(context.Background(), "09120000001", "1234"))

	err := store.Login(context.Background(), "09120000001", "1234")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSessionAuthenticated))
}

func TestLoginValidatesInputLocally(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer server.Close()

	store := NewStore(api.NewClient(server.URL), tempTokenFile(t), nil)
	err := store.Login(context.Background(), "", "")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInputRequired))
	assert.Zero(t, atomic.LoadInt32(&hits), "no network call for missing input")
}

func TestLogout(t *testing.T) {
	backend := newFakeBackend()
	store, client, tokens := newTestStore(t, backend.mux)
	store.Initialize(context.Background())
	require.NoError(t, store.Login(context.Background(), "09120000001", "1234"))

	var transitions []State
	store.Subscribe(func(s State) { transitions = append(transitions, s) })

	store.Logout(context.Background())

	assert.Equal(t, StateAnonymous, store.State())
	assert.Nil(t, store.User())
	assert.Empty(t, store.Permissions())
	assert.Empty(t, tokens.Load())
	assert.Empty(t, client.Token())
	assert.Equal(t, []State{StateAnonymous}, transitions)
}

func TestLogoutWhileAnonymousIsQuiet(t *testing.T) {
	store, _, _ := newTestStore(t, newFakeBackend().mux)
	store.Initialize(context.Background())

	var notified int32
	store.Subscribe(func(State) { atomic.AddInt32(&notified, 1) })

	store.Logout(context.Background())
	assert.Zero(t, atomic.LoadInt32(&notified))
}

func TestUnauthorizedCollapsesSessionExactlyOnce(t *testing.T) {
	backend := newFakeBackend()
	// Profile succeeds during login, then the token is revoked server-side.
	var revoked atomic.Bool
	wrapped := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if revoked.Load() {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		backend.mux.ServeHTTP(w, r)
	})

	store, client, tokens := newTestStore(t, wrapped)
	store.Initialize(context.Background())
	require.NoError(t, store.Login(context.Background(), "09120000001", "1234"))

	var anonymousEvents int32
	store.Subscribe(func(s State) {
		if s == StateAnonymous {
			atomic.AddInt32(&anonymousEvents, 1)
		}
	})

	revoked.Store(true)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			client.Profile(context.Background()) //nolint:errcheck
		}()
	}
	wg.Wait()

	assert.Equal(t, StateAnonymous, store.State())
	assert.Equal(t, int32(1), atomic.LoadInt32(&anonymousEvents),
		"concurrent 401s must collapse the session exactly once")
	assert.Empty(t, tokens.Load())
}

func TestUpdateUserReplacesWholesale(t *testing.T) {
	backend := newFakeBackend()
	backend.mux.HandleFunc("PUT /api/v1/users/profile", func(w http.ResponseWriter, r *http.Request) {
		updated := backend.user
		updated.FirstName = "Sara"
		updated.Email = ""
		writeData(w, updated)
	})

	store, _, _ := newTestStore(t, backend.mux)
	store.Initialize(context.Background())
	require.NoError(t, store.Login(context.Background(), "09120000001", "1234"))

	name := "Sara"
	require.NoError(t, store.UpdateUser(context.Background(), api.ProfilePatch{FirstName: &name}))

	user := store.User()
	require.NotNil(t, user)
	assert.Equal(t, "Sara", user.FirstName)
	assert.Empty(t, user.Email, "server-confirmed document replaces stale fields")
}

func TestUpdateUserWhileAnonymous(t *testing.T) {
	store, _, _ := newTestStore(t, newFakeBackend().mux)
	store.Initialize(context.Background())

	err := store.UpdateUser(context.Background(), api.ProfilePatch{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSessionAnonymous))
}

func TestUserReturnsCopy(t *testing.T) {
	backend := newFakeBackend()
	store, _, _ := newTestStore(t, backend.mux)
	store.Initialize(context.Background())
	require.NoError(t, store.Login(context.Background(), "09120000001", "1234"))

	user := store.User()
	user.FirstName = "mutated"
	user.Roles[0] = "hacker"

	fresh := store.User()
	assert.NotEqual(t, "mutated", fresh.FirstName)
	assert.Equal(t, "customer", fresh.Roles[0])
}
