package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/paisatrack/backend/internal/application/adapter"
	"github.com/paisatrack/backend/internal/domain/entity"
	domainerror "github.com/paisatrack/backend/internal/domain/error"
	"github.com/paisatrack/backend/internal/integration/persistence/model"
)

// accountRepository implements the adapter.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository instance.
func NewAccountRepository(db *gorm.DB) adapter.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account in the database.
func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountFromEntity(account)
	result := r.db.WithContext(ctx).Create(accountModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a non-deleted account by its ID for the given owner.
func (r *accountRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Account, error) {
	var accountModel model.AccountModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAccountNotFound
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// FindByFilter retrieves accounts matching the filter, newest first.
func (r *accountRepository) FindByFilter(ctx context.Context, filter adapter.AccountFilter) ([]*entity.Account, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", filter.UserID)

	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.SubType != "" {
		query = query.Where("sub_type = ?", filter.SubType)
	}

	var accountModels []model.AccountModel
	result := query.Order("created_at DESC").Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}

	accounts := make([]*entity.Account, len(accountModels))
	for i, am := range accountModels {
		accounts[i] = am.ToEntity()
	}
	return accounts, nil
}

// FindActiveByTypes retrieves the owner's active accounts of the given types.
func (r *accountRepository) FindActiveByTypes(ctx context.Context, userID uuid.UUID, types []entity.AccountType) ([]*entity.Account, error) {
	typeValues := make([]string, len(types))
	for i, t := range types {
		typeValues[i] = string(t)
	}

	var accountModels []model.AccountModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ? AND type IN ?", userID, true, typeValues).
		Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}

	accounts := make([]*entity.Account, len(accountModels))
	for i, am := range accountModels {
		accounts[i] = am.ToEntity()
	}
	return accounts, nil
}

// Update updates an existing account in the database.
func (r *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountFromEntity(account)
	result := r.db.WithContext(ctx).Save(accountModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// UpdateBalances writes the reconciled balance pair for an account.
func (r *accountRepository) UpdateBalances(ctx context.Context, id, userID uuid.UUID, balance, initialBalance decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"balance":         balance,
			"initial_balance": initialBalance,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrAccountNotFound
	}
	return nil
}

// SoftDelete marks an account as deleted and inactive without removing its
// transactions.
func (r *accountRepository) SoftDelete(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		deactivate := tx.Model(&model.AccountModel{}).
			Where("id = ? AND user_id = ?", id, userID).
			Update("is_active", false)
		if deactivate.Error != nil {
			return deactivate.Error
		}
		if deactivate.RowsAffected == 0 {
			return domainerror.ErrAccountNotFound
		}
		return tx.Where("id = ? AND user_id = ?", id, userID).
			Delete(&model.AccountModel{}).Error
	})
}
