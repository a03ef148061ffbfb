package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/camden-git/hrmbackend/models"
	"gorm.io/gorm"
)

// AccountRepository handles database operations for Account
type AccountRepository struct {
	DB *gorm.DB
}

// NewAccountRepository creates a new instance of AccountRepository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

func (r *AccountRepository) FindByID(ctx context.Context, id uint) (*models.Account, error) {
	var account models.Account
	if err := r.DB.WithContext(ctx).First(&account, id).Error; err != nil {
		return nil, translateFindError(err, "account", id)
	}
	return &account, nil
}

// FindByUserName retrieves an account by its unique user name
func (r *AccountRepository) FindByUserName(ctx context.Context, userName string) (*models.Account, error) {
	var account models.Account
	if err := r.DB.WithContext(ctx).Where("user_name = ?", userName).First(&account).Error; err != nil {
		return nil, translateFindError(err, "account", userName)
	}
	return &account, nil
}

// ListPaginated retrieves one page of active accounts ordered by ID
func (r *AccountRepository) ListPaginated(ctx context.Context, p Pagination) ([]models.Account, error) {
	var accounts []models.Account
	err := r.DB.WithContext(ctx).
		Where("status = ?", true).
		Order("id ASC").
		Offset(p.Offset()).
		Limit(p.PageSize).
		Find(&accounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts page %d: %w", p.Page, err)
	}
	return accounts, nil
}

// TotalRecords counts the active accounts
func (r *AccountRepository) TotalRecords(ctx context.Context) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Account{}).Where("status = ?", true).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return total, nil
}

// UserNameExists reports whether any account, active or not, uses userName
func (r *AccountRepository) UserNameExists(ctx context.Context, userName string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Account{}).Where("user_name = ?", userName).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check user name %s: %w", userName, err)
	}
	return count > 0, nil
}

func (r *AccountRepository) Add(ctx context.Context, account *models.Account) error {
	return stage(ctx, r.DB, func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return fmt.Errorf("failed to create account %s: %w", account.UserName, err)
		}
		return nil
	})
}

func (r *AccountRepository) Update(ctx context.Context, account *models.Account) error {
	return stage(ctx, r.DB, func(tx *gorm.DB) error {
		if err := tx.Save(account).Error; err != nil {
			return fmt.Errorf("failed to update account ID %d: %w", account.ID, err)
		}
		return nil
	})
}

// TouchActivity stages a write of last_activity alone, leaving every other column as stored.
// A missing account is not recreated.
func (r *AccountRepository) TouchActivity(ctx context.Context, id uint, at time.Time) error {
	return stage(ctx, r.DB, func(tx *gorm.DB) error {
		result := tx.Model(&models.Account{}).Where("id = ?", id).UpdateColumn("last_activity", at)
		if result.Error != nil {
			return fmt.Errorf("failed to record activity for account ID %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Remove stages a hard delete of an account
func (r *AccountRepository) Remove(ctx context.Context, account *models.Account) error {
	return stage(ctx, r.DB, func(tx *gorm.DB) error {
		result := tx.Delete(&models.Account{}, account.ID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete account ID %d: %w", account.ID, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
