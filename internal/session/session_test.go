package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tahancr42/parastore-frontend/internal/domain"
	"github.com/Tahancr42/parastore-frontend/internal/session"
)

func signedToken(t *testing.T, subject string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func authWith(creds *domain.Credentials, err error) session.Authenticator {
	return session.AuthenticatorFunc(func(context.Context, string, string) (*domain.Credentials, error) {
		if err != nil {
			return nil, err
		}
		return creds, nil
	})
}

func TestLoginInstallsIdentity(t *testing.T) {
	token := signedToken(t, "u-client-1", time.Now().Add(time.Hour))
	m := session.NewManager(authWith(&domain.Credentials{Token: token, Role: domain.RoleClient, UserID: "u-client-1"}, nil))

	identity, err := m.Login(context.Background(), "client@parapharma.ma", "pw")

	require.NoError(t, err)
	assert.Equal(t, "u-client-1", identity.UserID)
	assert.Equal(t, domain.RoleClient, identity.Role)
	assert.Equal(t, "client@parapharma.ma", identity.Email)
	require.NotNil(t, m.Current())
	assert.Equal(t, token, m.Token())
	assert.False(t, m.Expired())
}

func TestLoginFailureLeavesSessionAnonymous(t *testing.T) {
	m := session.NewManager(authWith(nil, errors.New("401")))

	_, err := m.Login(context.Background(), "client@parapharma.ma", "bad")

	require.Error(t, err)
	assert.Nil(t, m.Current())
	assert.Empty(t, m.Token())
}

func TestLogoutClearsEverything(t *testing.T) {
	token := signedToken(t, "u1", time.Now().Add(time.Hour))
	m := session.NewManager(authWith(&domain.Credentials{Token: token, UserID: "u1", Role: domain.RoleClient}, nil))
	_, err := m.Login(context.Background(), "a@b.ma", "pw")
	require.NoError(t, err)

	m.Logout()

	assert.Nil(t, m.Current())
	assert.Empty(t, m.Token())
	assert.False(t, m.Expired())
}

func TestExpiredToken(t *testing.T) {
	token := signedToken(t, "u1", time.Now().Add(-time.Minute))
	m := session.NewManager(nil)

	m.Set(&domain.Identity{UserID: "u1"}, token)

	assert.True(t, m.Expired())
}

func TestOpaqueTokenNeverExpires(t *testing.T) {
	m := session.NewManager(nil)
	m.Set(&domain.Identity{UserID: "u1"}, "not-a-jwt")
	assert.False(t, m.Expired())
}

func TestOnChangeFiresOnEveryTransition(t *testing.T) {
	token := signedToken(t, "u1", time.Now().Add(time.Hour))
	m := session.NewManager(authWith(&domain.Credentials{Token: token, UserID: "u1", Role: domain.RoleClient}, nil))

	var transitions []*domain.Identity
	m.OnChange(func(identity *domain.Identity) {
		transitions = append(transitions, identity)
	})

	_, err := m.Login(context.Background(), "a@b.ma", "pw") // none → some
	require.NoError(t, err)
	m.Set(&domain.Identity{UserID: "u2"}, "") // some → different
	m.Logout()                                // some → none

	require.Len(t, transitions, 3)
	assert.Equal(t, "u1", transitions[0].UserID)
	assert.Equal(t, "u2", transitions[1].UserID)
	assert.Nil(t, transitions[2])
}

func TestCurrentReturnsACopy(t *testing.T) {
	m := session.NewManager(nil)
	m.Set(&domain.Identity{UserID: "u1", Role: domain.RoleClient}, "")

	first := m.Current()
	first.UserID = "tampered"

	assert.Equal(t, "u1", m.Current().UserID)
}
