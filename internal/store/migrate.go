package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/GregMSThompson/gatabank/internal/models"
)

// Migrate creates or updates every table. Parents come before children so
// the foreign keys resolve.
func Migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&models.City{},
		&models.District{},
		&models.Village{},
		&models.Bank{},
		&models.BankFee{},
		&models.BankRequirement{},
		&models.BankDiscount{},
		&models.Card{},
		&models.CardBasic{},
		&models.CardBenefit{},
		&models.CardDiscount{},
		&models.CardFee{},
		&models.CardRequirement{},
		&models.User{},
	)
	if err != nil {
		return translate(ctx, err, "migrate", "schema")
	}

	// older schemas made phone numbers unique across every status
	m := db.WithContext(ctx).Migrator()
	if m.HasIndex(&models.User{}, legacyPhoneIndex) {
		if err := m.DropIndex(&models.User{}, legacyPhoneIndex); err != nil {
			return translate(ctx, err, "migrate", "schema")
		}
	}
	return nil
}

const legacyPhoneIndex = "idx_users_phone_number"

// Ping checks that the database answers.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return translate(ctx, err, "ping", "database")
	}
	return nil
}
