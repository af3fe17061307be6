package accountrepo

import (
	"context"
	"errors"
	"fmt"

	"brokerage/internal/core/domain/model/account"
	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/errs"

	"gorm.io/gorm"
)

const maxClientCodeAttempts = 3

// GormAccountRepository implements ports.AccountRepository using GORM.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker registers aggregates modified within the unit of work.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new account. A duplicate email or username is reported to the
// caller; a client code collision regenerates the code and retries.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	for attempt := 1; ; attempt++ {
		dto := fromDomain(aggregate)
		err := r.db.WithContext(ctx).Create(&dto).Error
		if err == nil {
			break
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) || attempt == maxClientCodeAttempts {
			return err
		}
		if takenErr := r.checkTaken(ctx, aggregate); takenErr != nil {
			return takenErr
		}
		if err := aggregate.RegenerateClientCode(); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// checkTaken distinguishes an email or username collision from a client code
// collision after a duplicate key error.
func (r *GormAccountRepository) checkTaken(ctx context.Context, aggregate *account.Account) error {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&AccountDTO{}).
		Where("email = ?", aggregate.Email()).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"email", fmt.Errorf("%q is already registered", aggregate.Email()))
	}

	err = r.db.WithContext(ctx).
		Model(&AccountDTO{}).
		Where("username = ?", aggregate.Username()).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"username", fmt.Errorf("%q is already taken", aggregate.Username()))
	}

	return nil
}

// Update saves an existing account.
func (r *GormAccountRepository) Update(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AccountDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an account by ID.
func (r *GormAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves an account by its unique email.
func (r *GormAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", email)
		}
		return nil, err
	}

	return toDomain(dto)
}
