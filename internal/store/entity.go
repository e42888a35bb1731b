package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/GregMSThompson/gatabank/internal/errs"
	"github.com/GregMSThompson/gatabank/internal/models"
	"github.com/GregMSThompson/gatabank/pkg/logger"
)

// listOrder is the default ordering for every listing.
const listOrder = "updated_at DESC"

// touchable is satisfied by pointers to any model embedding models.Entity.
type touchable[T any] interface {
	*T
	Touch(now time.Time)
}

// FetchByID loads a row of T by primary key regardless of its status.
func FetchByID[T any](ctx context.Context, db *gorm.DB, id string) (*T, error) {
	var out T
	if err := db.WithContext(ctx).Where("id = ?", id).Take(&out).Error; err != nil {
		return nil, translate(ctx, err, "read", entityName[T]())
	}
	return &out, nil
}

// FetchActiveByID is FetchByID restricted to ACTIVE rows.
func FetchActiveByID[T any](ctx context.Context, db *gorm.DB, id string) (*T, error) {
	var out T
	err := db.WithContext(ctx).
		Where("id = ? AND status = ?", id, models.StatusActive).
		Take(&out).Error
	if err != nil {
		return nil, translate(ctx, err, "read", entityName[T]())
	}
	return &out, nil
}

// insert stamps and creates a single row without touching associations.
func insert[T any, PT touchable[T]](ctx context.Context, db *gorm.DB, now time.Time, row PT) error {
	row.Touch(now)
	if err := db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		return translate(ctx, err, "create", entityName[T]())
	}
	return nil
}

// save rewrites every column of an existing row and refreshes updated_at.
func save[T any, PT touchable[T]](ctx context.Context, db *gorm.DB, now time.Time, row PT) error {
	row.Touch(now)
	if err := db.WithContext(ctx).Omit(clause.Associations).Save(row).Error; err != nil {
		return translate(ctx, err, "update", entityName[T]())
	}
	return nil
}

// retire flips matching ACTIVE rows of T to INACTIVE. No match is a not-found.
func retire[T any](ctx context.Context, db *gorm.DB, now time.Time, query string, args ...any) error {
	res := db.WithContext(ctx).
		Model(new(T)).
		Where(query, args...).
		Where("status = ?", models.StatusActive).
		Updates(map[string]any{
			"status":     models.StatusInactive,
			"updated_at": now,
		})
	if res.Error != nil {
		return translate(ctx, res.Error, "delete", entityName[T]())
	}
	if res.RowsAffected == 0 {
		return errs.NewNotFoundError(entityName[T]() + " not found")
	}
	return nil
}

// addChild inserts a detail row under an ACTIVE parent of type P.
func addChild[P any, T any, PT touchable[T]](ctx context.Context, db *gorm.DB, now time.Time, parentID string, row PT) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := FetchActiveByID[P](ctx, tx, parentID); err != nil {
			return err
		}
		return insert[T](ctx, tx, now, row)
	})
}

// retireChild soft-deletes one detail row, provided its parent is still ACTIVE.
func retireChild[P any, T any](ctx context.Context, db *gorm.DB, now time.Time, parentCol, parentID, childID string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := FetchActiveByID[P](ctx, tx, parentID); err != nil {
			return err
		}
		return retire[T](ctx, tx, now, "id = ? AND "+parentCol+" = ?", childID, parentID)
	})
}

// activeDetails is the preload scope for detail collections.
func activeDetails(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", models.StatusActive).Order("created_at")
}

// translate maps gorm errors onto the errs taxonomy. Anything that is not a
// missing row or a duplicate key is logged and surfaced as a DatabaseError.
func translate(ctx context.Context, err error, op, what string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.NewNotFoundError(what + " not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewAlreadyExistsError(what + " already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.NewValidationError(what + " references a missing record")
	}
	logger.FromContext(ctx).Error("storage operation failed", "operation", op, "entity", what, "error", err)
	return errs.NewDatabaseError(op, "failed to "+op+" "+what, err)
}

func entityName[T any]() string {
	var zero T
	switch any(zero).(type) {
	case models.City:
		return "city"
	case models.District:
		return "district"
	case models.Village:
		return "village"
	case models.Bank:
		return "bank"
	case models.BankFee:
		return "bank fee"
	case models.BankRequirement:
		return "bank requirement"
	case models.BankDiscount:
		return "bank discount"
	case models.Card:
		return "card"
	case models.CardBasic:
		return "card basic"
	case models.CardBenefit:
		return "card benefit"
	case models.CardDiscount:
		return "card discount"
	case models.CardFee:
		return "card fee"
	case models.CardRequirement:
		return "card requirement"
	case models.User:
		return "user"
	default:
		return "record"
	}
}
