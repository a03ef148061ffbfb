package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/camden-git/hrmbackend/models"
	"github.com/camden-git/hrmbackend/repository"
	"github.com/camden-git/hrmbackend/resources"
)

const (
	tokenIssuer             = "hrmbackend"
	msgInvalidCredentials   = "Invalid username or password."
	lastActivityGranularity = time.Minute
)

var ErrInvalidToken = errors.New("invalid token")

// Claims are the JWT claims issued at login. Subject holds the account ID.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService issues and verifies login tokens
type AuthService struct {
	accounts   repository.AccountRepositoryInterface
	uow        repository.UnitOfWorkInterface
	secret     []byte
	expiration time.Duration
	logger     *zap.Logger
	now        func() time.Time
}

func NewAuthService(
	accounts repository.AccountRepositoryInterface,
	uow repository.UnitOfWorkInterface,
	secret string,
	expiration time.Duration,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		accounts:   accounts,
		uow:        uow,
		secret:     []byte(secret),
		expiration: expiration,
		logger:     logger,
		now:        time.Now,
	}
}

// Login checks the credentials of an active account and returns a signed token
func (s *AuthService) Login(ctx context.Context, req resources.LoginResource) Result[resources.TokenResource] {
	account, err := s.accounts.FindByUserName(ctx, req.UserName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Fail[resources.TokenResource](FailureInvalid, msgInvalidCredentials)
		}
		return Fail[resources.TokenResource](FailureStore, fmt.Sprintf("An error occurred when signing in: %v", err))
	}
	if !account.Status || !account.CheckPassword(req.Password) {
		return Fail[resources.TokenResource](FailureInvalid, msgInvalidCredentials)
	}

	now := s.now()
	expiresAt := now.Add(s.expiration)
	token, err := s.sign(account, now, expiresAt)
	if err != nil {
		return Fail[resources.TokenResource](FailureStore, fmt.Sprintf("An error occurred when signing in: %v", err))
	}

	s.touch(ctx, account, now)

	return Ok(resources.TokenResource{
		Token:     token,
		ExpiresAt: expiresAt,
		Account:   resources.FromAccount(account),
	})
}

// Authenticate verifies a token and loads the active account it was issued to
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*models.Account, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	accountID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed subject %q", ErrInvalidToken, claims.Subject)
	}

	account, err := s.accounts.FindByID(ctx, uint(accountID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %d no longer exists", ErrInvalidToken, accountID)
		}
		return nil, err
	}
	if !account.Status {
		return nil, fmt.Errorf("%w: account %d is inactive", ErrInvalidToken, accountID)
	}

	s.touch(ctx, account, s.now())
	return account, nil
}

func (s *AuthService) sign(account *models.Account, issuedAt, expiresAt time.Time) (string, error) {
	claims := &Claims{
		Role: account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(account.ID), 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			Issuer:    tokenIssuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// touch records account activity at most once per minute. Failures are only logged.
func (s *AuthService) touch(ctx context.Context, account *models.Account, now time.Time) {
	if now.Sub(account.LastActivity) < lastActivityGranularity {
		return
	}
	ctx = s.uow.Begin(ctx)
	if err := s.accounts.TouchActivity(ctx, account.ID, now); err != nil {
		s.logger.Warn("failed to record account activity", zap.Uint("account_id", account.ID), zap.Error(err))
		return
	}
	if err := s.uow.Complete(ctx); err != nil {
		s.logger.Warn("failed to record account activity", zap.Uint("account_id", account.ID), zap.Error(err))
		return
	}
	account.LastActivity = now
}
