package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/camden-git/hrmbackend/events"
	"github.com/camden-git/hrmbackend/models"
	"github.com/camden-git/hrmbackend/permissions"
	"github.com/camden-git/hrmbackend/repository"
	"github.com/camden-git/hrmbackend/resources"
)

const msgAccountNotExistent = "Account is not existent."

// AccountService manages the accounts allowed to sign in
type AccountService struct {
	accounts  repository.AccountRepositoryInterface
	uow       repository.UnitOfWorkInterface
	publisher events.Publisher
	limits    PageLimits
	logger    *zap.Logger
	now       func() time.Time
}

func NewAccountService(
	accounts repository.AccountRepositoryInterface,
	uow repository.UnitOfWorkInterface,
	publisher events.Publisher,
	limits PageLimits,
	logger *zap.Logger,
) *AccountService {
	return &AccountService{
		accounts:  accounts,
		uow:       uow,
		publisher: publisher,
		limits:    limits,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *AccountService) List(ctx context.Context, q Query) Result[PageResult[resources.AccountResource]] {
	p := s.limits.normalize(q)
	accounts, err := s.accounts.ListPaginated(ctx, p)
	if err != nil {
		return Fail[PageResult[resources.AccountResource]](FailureStore, fmt.Sprintf("An error occurred when listing Accounts: %v", err))
	}
	total, err := s.accounts.TotalRecords(ctx)
	if err != nil {
		return Fail[PageResult[resources.AccountResource]](FailureStore, fmt.Sprintf("An error occurred when listing Accounts: %v", err))
	}

	items := make([]resources.AccountResource, 0, len(accounts))
	for i := range accounts {
		items = append(items, resources.FromAccount(&accounts[i]))
	}
	return Ok(newPageResult(items, p, total))
}

func (s *AccountService) FindByID(ctx context.Context, id uint) Result[resources.AccountResource] {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Fail[resources.AccountResource](FailureNotFound, fmt.Sprintf("Id '%d' is not existent.", id))
		}
		return Fail[resources.AccountResource](FailureStore, fmt.Sprintf("An error occurred when finding the Account: %v", err))
	}
	return Ok(resources.FromAccount(account))
}

// Create registers an account. User names are unique across active and inactive accounts.
func (s *AccountService) Create(ctx context.Context, req resources.CreateAccountResource) Result[resources.AccountResource] {
	if !permissions.IsValidRole(req.Role) {
		return Fail[resources.AccountResource](FailureInvalid, fmt.Sprintf("Role '%s' is not valid.", req.Role))
	}

	exists, err := s.accounts.UserNameExists(ctx, req.UserName)
	if err != nil {
		return Fail[resources.AccountResource](FailureStore, fmt.Sprintf("An error occurred when saving the Account: %v", err))
	}
	if exists {
		return Fail[resources.AccountResource](FailureInvalid, fmt.Sprintf("UserName '%s' already exists.", req.UserName))
	}

	now := s.now()
	account := models.Account{
		UserName:     req.UserName,
		Name:         req.Name,
		Email:        req.Email,
		Role:         req.Role,
		CreatedAt:    now,
		LastActivity: now,
		Status:       true,
	}
	if err := account.SetPassword(req.Password); err != nil {
		return Fail[resources.AccountResource](FailureStore, fmt.Sprintf("An error occurred when saving the Account: %v", err))
	}

	ctx = s.uow.Begin(ctx)
	if err := s.accounts.Add(ctx, &account); err != nil {
		return Fail[resources.AccountResource](FailureStore, fmt.Sprintf("An error occurred when saving the Account: %v", err))
	}
	if err := s.uow.Complete(ctx); err != nil {
		s.logger.Error("failed to save account", zap.String("user_name", account.UserName), zap.Error(err))
		return Fail[resources.AccountResource](FailureStore, fmt.Sprintf("An error occurred when saving the Account: %v", err))
	}

	res := resources.FromAccount(&account)
	s.publisher.Publish(events.New("account", events.ActionCreated, account.ID, res))
	return Ok(res)
}

// Update replaces the profile fields. The password changes only when a new one is given.
func (s *AccountService) Update(ctx context.Context, id uint, req resources.UpdateAccountResource) Result[resources.AccountResource] {
	if !permissions.IsValidRole(req.Role) {
		return Fail[resources.AccountResource](FailureInvalid, fmt.Sprintf("Role '%s' is not valid.", req.Role))
	}
	account, res, ok := s.findForMutation(ctx, id, "updating")
	if !ok {
		return res
	}

	account.Name = req.Name
	account.Email = req.Email
	account.Role = req.Role
	if req.Password != "" {
		if err := account.SetPassword(req.Password); err != nil {
			return Fail[resources.AccountResource](FailureStore, fmt.Sprintf("An error occurred when updating the Account: %v", err))
		}
	}

	ctx = s.uow.Begin(ctx)
	if err := s.accounts.Update(ctx, account); err != nil {
		return Fail[resources.AccountResource](FailureStore, fmt.Sprintf("An error occurred when updating the Account: %v", err))
	}
	if err := s.uow.Complete(ctx); err != nil {
		s.logger.Error("failed to update account", zap.Uint("account_id", account.ID), zap.Error(err))
		return Fail[resources.AccountResource](FailureStore, fmt.Sprintf("An error occurred when updating the Account: %v", err))
	}

	out := resources.FromAccount(account)
	s.publisher.Publish(events.New("account", events.ActionUpdated, account.ID, out))
	return Ok(out)
}

// Delete removes an account row permanently
func (s *AccountService) Delete(ctx context.Context, id uint) Result[resources.AccountResource] {
	account, res, ok := s.findForMutation(ctx, id, "deleting")
	if !ok {
		return res
	}

	ctx = s.uow.Begin(ctx)
	if err := s.accounts.Remove(ctx, account); err != nil {
		return Fail[resources.AccountResource](FailureStore, fmt.Sprintf("An error occurred when deleting the Account: %v", err))
	}
	if err := s.uow.Complete(ctx); err != nil {
		s.logger.Error("failed to delete account", zap.Uint("account_id", account.ID), zap.Error(err))
		return Fail[resources.AccountResource](FailureStore, fmt.Sprintf("An error occurred when deleting the Account: %v", err))
	}

	out := resources.FromAccount(account)
	s.publisher.Publish(events.New("account", events.ActionDeleted, account.ID, out))
	return Ok(out)
}

// EnsureAdmin creates an admin account with the given credentials when no account uses userName
func (s *AccountService) EnsureAdmin(ctx context.Context, userName, password string) error {
	exists, err := s.accounts.UserNameExists(ctx, userName)
	if err != nil {
		return fmt.Errorf("failed to check bootstrap admin: %w", err)
	}
	if exists {
		return nil
	}

	res := s.Create(ctx, resources.CreateAccountResource{
		UserName: userName,
		Name:     "Administrator",
		Password: password,
		Role:     permissions.RoleAdmin,
	})
	if !res.Success {
		return fmt.Errorf("failed to create bootstrap admin: %s", res.Message)
	}
	s.logger.Info("created bootstrap admin account", zap.String("user_name", userName))
	return nil
}

func (s *AccountService) findForMutation(ctx context.Context, id uint, verb string) (*models.Account, Result[resources.AccountResource], bool) {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, Fail[resources.AccountResource](FailureNotFound, msgAccountNotExistent), false
		}
		return nil, Fail[resources.AccountResource](FailureStore, fmt.Sprintf("An error occurred when %s the Account: %v", verb, err)), false
	}
	return account, Result[resources.AccountResource]{}, true
}
