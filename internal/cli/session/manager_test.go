package session

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	loginToken string
	loginErr   error
	meUser     *User
	meErr      error

	loginCalls int
	meCalls    int
	lastToken  string
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (string, error) {
	f.loginCalls++
	return f.loginToken, f.loginErr
}

func (f *fakeAPI) Me(ctx context.Context, token string) (*User, error) {
	f.meCalls++
	f.lastToken = token
	if f.meErr != nil {
		return nil, f.meErr
	}
	return f.meUser, nil
}

type memTokenStore struct {
	token   string
	saveErr error
	deletes int
}

func (s *memTokenStore) Save(token string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.token = token
	return nil
}

func (s *memTokenStore) Load() (string, error) { return s.token, nil }

func (s *memTokenStore) Delete() error {
	s.deletes++
	s.token = ""
	return nil
}

type memUserStore struct {
	user    *User
	deletes int
}

func (s *memUserStore) Save(u *User) error { s.user = u; return nil }

func (s *memUserStore) Load() (*User, error) { return s.user, nil }

func (s *memUserStore) Delete() error {
	s.deletes++
	s.user = nil
	return nil
}

func newTestManager(api *fakeAPI, tokens *memTokenStore, users *memUserStore) *Manager {
	return NewManager(api, tokens, users, zerolog.Nop())
}

func TestManagerStartsLoading(t *testing.T) {
	m := newTestManager(&fakeAPI{}, &memTokenStore{}, &memUserStore{})

	sess := m.Session()
	require.True(t, sess.Loading)
	require.False(t, sess.Authed())
}

func TestRestoreWithoutToken(t *testing.T) {
	api := &fakeAPI{}
	m := newTestManager(api, &memTokenStore{}, &memUserStore{})

	m.Restore(context.Background())

	sess := m.Session()
	require.False(t, sess.Loading)
	require.False(t, sess.Authed())
	require.Zero(t, api.meCalls, "no token means no network call")
}

func TestRestoreWithValidToken(t *testing.T) {
	user := &User{ID: 7, Name: "Ana", Email: "ana@example.com", Role: "RH"}
	api := &fakeAPI{meUser: user}
	tokens := &memTokenStore{token: "tok-123"}
	users := &memUserStore{}
	m := newTestManager(api, tokens, users)

	m.Restore(context.Background())

	sess := m.Session()
	require.True(t, sess.Authed())
	require.Equal(t, "tok-123", sess.Token)
	require.Equal(t, "Ana", sess.User.Name)
	require.Equal(t, "tok-123", api.lastToken)

	// the persisted snapshot is refreshed from the server
	require.NotNil(t, users.user)
	require.Equal(t, 7, users.user.ID)
}

func TestRestoreWithRejectedTokenClearsStorage(t *testing.T) {
	api := &fakeAPI{meErr: errors.New("invalid token")}
	tokens := &memTokenStore{token: "stale"}
	users := &memUserStore{user: &User{ID: 7}}
	m := newTestManager(api, tokens, users)

	m.Restore(context.Background())

	sess := m.Session()
	require.False(t, sess.Loading)
	require.False(t, sess.Authed())
	require.Equal(t, 1, tokens.deletes)
	require.Equal(t, 1, users.deletes)
	require.Empty(t, tokens.token)
}

func TestSignInPersistsBeforeUpdatingState(t *testing.T) {
	user := &User{ID: 3, Name: "Bruno", Role: "ADMIN"}
	api := &fakeAPI{loginToken: "fresh", meUser: user}
	tokens := &memTokenStore{}
	users := &memUserStore{}
	m := newTestManager(api, tokens, users)
	m.Restore(context.Background())

	err := m.SignIn(context.Background(), "bruno@example.com", "secret")
	require.NoError(t, err)

	require.Equal(t, "fresh", tokens.token)
	require.NotNil(t, users.user)

	sess := m.Session()
	require.True(t, sess.Authed())
	require.Equal(t, "Bruno", sess.User.Name)
}

func TestSignInFailureLeavesSessionUntouched(t *testing.T) {
	user := &User{ID: 7, Name: "Ana"}
	api := &fakeAPI{meUser: user}
	tokens := &memTokenStore{token: "tok-123"}
	m := newTestManager(api, tokens, &memUserStore{})
	m.Restore(context.Background())

	api.loginErr = errors.New("wrong password")
	err := m.SignIn(context.Background(), "ana@example.com", "nope")
	require.Error(t, err)

	sess := m.Session()
	require.True(t, sess.Authed(), "existing session survives a failed sign-in")
	require.Equal(t, "tok-123", sess.Token)
}

func TestSignInTokenSaveFailure(t *testing.T) {
	api := &fakeAPI{loginToken: "fresh", meUser: &User{ID: 1}}
	tokens := &memTokenStore{saveErr: errors.New("keyring locked")}
	m := newTestManager(api, tokens, &memUserStore{})
	m.Restore(context.Background())

	err := m.SignIn(context.Background(), "a@b.c", "pw")
	require.Error(t, err)
	require.False(t, m.Session().Authed())
}

func TestSignOut(t *testing.T) {
	api := &fakeAPI{meUser: &User{ID: 7}}
	tokens := &memTokenStore{token: "tok"}
	users := &memUserStore{}
	m := newTestManager(api, tokens, users)
	m.Restore(context.Background())
	require.True(t, m.Session().Authed())

	m.SignOut()

	require.False(t, m.Session().Authed())
	require.Empty(t, tokens.token)
	require.Equal(t, 1, users.deletes)
}

func TestUpdateUserMergesAndPersists(t *testing.T) {
	api := &fakeAPI{meUser: &User{ID: 7, Name: "Ana", Role: "RH"}}
	tokens := &memTokenStore{token: "tok"}
	users := &memUserStore{}
	m := newTestManager(api, tokens, users)
	m.Restore(context.Background())

	photo := "uploads/ana.jpg"
	m.UpdateUser(UserPatch{ProfilePhotoURL: &photo})

	sess := m.Session()
	require.Equal(t, "uploads/ana.jpg", sess.User.ProfilePhotoURL)
	require.Equal(t, "Ana", sess.User.Name, "unset fields are preserved")
	require.Equal(t, "uploads/ana.jpg", users.user.ProfilePhotoURL)
}

func TestUpdateUserWithoutSessionIsNoop(t *testing.T) {
	users := &memUserStore{}
	m := newTestManager(&fakeAPI{}, &memTokenStore{}, users)
	m.Restore(context.Background())

	name := "ghost"
	m.UpdateUser(UserPatch{Name: &name})

	require.False(t, m.Session().Authed())
	require.Nil(t, users.user)
}

func TestSubscribeNotifiesOnChange(t *testing.T) {
	api := &fakeAPI{meUser: &User{ID: 7, Name: "Ana"}}
	m := newTestManager(api, &memTokenStore{token: "tok"}, &memUserStore{})

	var got []Session
	unsubscribe := m.Subscribe(func(s Session) { got = append(got, s) })

	m.Restore(context.Background())
	require.Len(t, got, 1)
	require.True(t, got[0].Authed())

	unsubscribe()
	m.SignOut()
	require.Len(t, got, 1, "unsubscribed callbacks stop firing")
}

func TestSessionSnapshotIsACopy(t *testing.T) {
	api := &fakeAPI{meUser: &User{ID: 7, Name: "Ana"}}
	m := newTestManager(api, &memTokenStore{token: "tok"}, &memUserStore{})
	m.Restore(context.Background())

	snap := m.Session()
	snap.User.Name = "mutated"

	require.Equal(t, "Ana", m.Session().User.Name)
}
