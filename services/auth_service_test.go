package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/camden-git/hrmbackend/models"
	"github.com/camden-git/hrmbackend/repository"
	"github.com/camden-git/hrmbackend/resources"
)

const testSecret = "test-secret-key"

func newAuthFixture(t *testing.T) (*AuthService, *MockAccountRepository, *models.Account) {
	t.Helper()
	accounts := new(MockAccountRepository)
	s := NewAuthService(accounts, &fakeUnitOfWork{}, testSecret, time.Hour, zap.NewNop())
	s.now = func() time.Time { return fixedNow }

	account := &models.Account{ID: 7, UserName: "mai", Role: "editor", Status: true, LastActivity: fixedNow}
	require.NoError(t, account.SetPassword("s3cret-pass"))
	return s, accounts, account
}

func TestAuthService_Login(t *testing.T) {
	s, accounts, account := newAuthFixture(t)
	accounts.On("FindByUserName", mock.Anything, "mai").Return(account, nil)

	res := s.Login(context.Background(), resources.LoginResource{UserName: "mai", Password: "s3cret-pass"})

	require.True(t, res.Success, res.Message)
	assert.Equal(t, fixedNow.Add(time.Hour), res.Resource.ExpiresAt)
	assert.Equal(t, uint(7), res.Resource.Account.ID)

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(res.Resource.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}, jwt.WithTimeFunc(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, "editor", claims.Role)
}

func TestAuthService_Login_Rejections(t *testing.T) {
	t.Run("wrong password", func(t *testing.T) {
		s, accounts, account := newAuthFixture(t)
		accounts.On("FindByUserName", mock.Anything, "mai").Return(account, nil)

		res := s.Login(context.Background(), resources.LoginResource{UserName: "mai", Password: "nope"})
		assert.False(t, res.Success)
		assert.Equal(t, FailureInvalid, res.Kind)
		assert.Equal(t, "Invalid username or password.", res.Message)
	})

	t.Run("unknown user", func(t *testing.T) {
		s, accounts, _ := newAuthFixture(t)
		accounts.On("FindByUserName", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

		res := s.Login(context.Background(), resources.LoginResource{UserName: "ghost", Password: "whatever"})
		assert.False(t, res.Success)
		assert.Equal(t, "Invalid username or password.", res.Message)
	})

	t.Run("inactive account", func(t *testing.T) {
		s, accounts, account := newAuthFixture(t)
		account.Status = false
		accounts.On("FindByUserName", mock.Anything, "mai").Return(account, nil)

		res := s.Login(context.Background(), resources.LoginResource{UserName: "mai", Password: "s3cret-pass"})
		assert.False(t, res.Success)
	})
}

func TestAuthService_Login_RecordsActivity(t *testing.T) {
	s, accounts, account := newAuthFixture(t)
	account.LastActivity = fixedNow.Add(-2 * time.Hour)
	accounts.On("FindByUserName", mock.Anything, "mai").Return(account, nil)
	accounts.On("TouchActivity", mock.Anything, uint(7), fixedNow).Return(nil)

	res := s.Login(context.Background(), resources.LoginResource{UserName: "mai", Password: "s3cret-pass"})

	require.True(t, res.Success)
	assert.Equal(t, fixedNow, account.LastActivity)
	accounts.AssertCalled(t, "TouchActivity", mock.Anything, uint(7), fixedNow)
	accounts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAuthService_Authenticate_RecordsActivityWithoutRewritingAccount(t *testing.T) {
	s, accounts, account := newAuthFixture(t)
	accounts.On("FindByUserName", mock.Anything, "mai").Return(account, nil)
	login := s.Login(context.Background(), resources.LoginResource{UserName: "mai", Password: "s3cret-pass"})
	require.True(t, login.Success)

	stale := *account
	stale.LastActivity = fixedNow.Add(-5 * time.Minute)
	accounts.On("FindByID", mock.Anything, uint(7)).Return(&stale, nil)
	accounts.On("TouchActivity", mock.Anything, uint(7), fixedNow).Return(nil)

	got, err := s.Authenticate(context.Background(), login.Resource.Token)

	require.NoError(t, err)
	assert.Equal(t, fixedNow, got.LastActivity)
	accounts.AssertNumberOfCalls(t, "TouchActivity", 1)
	accounts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAuthService_Authenticate_ActivityFailureIsIgnored(t *testing.T) {
	s, accounts, account := newAuthFixture(t)
	accounts.On("FindByUserName", mock.Anything, "mai").Return(account, nil)
	login := s.Login(context.Background(), resources.LoginResource{UserName: "mai", Password: "s3cret-pass"})
	require.True(t, login.Success)

	stale := *account
	stale.LastActivity = fixedNow.Add(-time.Hour)
	accounts.On("FindByID", mock.Anything, uint(7)).Return(&stale, nil)
	accounts.On("TouchActivity", mock.Anything, uint(7), fixedNow).Return(repository.ErrNotFound)

	got, err := s.Authenticate(context.Background(), login.Resource.Token)

	require.NoError(t, err)
	assert.Equal(t, fixedNow.Add(-time.Hour), got.LastActivity)
}

func TestAuthService_Authenticate(t *testing.T) {
	s, accounts, account := newAuthFixture(t)
	accounts.On("FindByUserName", mock.Anything, "mai").Return(account, nil)
	accounts.On("FindByID", mock.Anything, uint(7)).Return(account, nil)

	login := s.Login(context.Background(), resources.LoginResource{UserName: "mai", Password: "s3cret-pass"})
	require.True(t, login.Success)

	got, err := s.Authenticate(context.Background(), login.Resource.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), got.ID)
}

func TestAuthService_Authenticate_Rejections(t *testing.T) {
	s, accounts, account := newAuthFixture(t)
	accounts.On("FindByUserName", mock.Anything, "mai").Return(account, nil)
	login := s.Login(context.Background(), resources.LoginResource{UserName: "mai", Password: "s3cret-pass"})
	require.True(t, login.Success)

	t.Run("expired", func(t *testing.T) {
		later := NewAuthService(accounts, &fakeUnitOfWork{}, testSecret, time.Hour, zap.NewNop())
		later.now = func() time.Time { return fixedNow.Add(2 * time.Hour) }

		_, err := later.Authenticate(context.Background(), login.Resource.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewAuthService(accounts, &fakeUnitOfWork{}, "another-secret", time.Hour, zap.NewNop())
		other.now = s.now

		_, err := other.Authenticate(context.Background(), login.Resource.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := s.Authenticate(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("account removed", func(t *testing.T) {
		removed := new(MockAccountRepository)
		svc := NewAuthService(removed, &fakeUnitOfWork{}, testSecret, time.Hour, zap.NewNop())
		svc.now = s.now
		removed.On("FindByID", mock.Anything, uint(7)).Return(nil, repository.ErrNotFound)

		_, err := svc.Authenticate(context.Background(), login.Resource.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
