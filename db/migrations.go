package db

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"ispbilling-backend/models"
)

// Migration is one reversible schema step. Up and Down both run inside a
// transaction; Down must restore the shape Up produced from.
type Migration struct {
	ID   string
	Up   func(tx *gorm.DB) error
	Down func(tx *gorm.DB) error
}

type schemaMigration struct {
	ID        string    `gorm:"primaryKey;size:64"`
	AppliedAt time.Time `gorm:"autoCreateTime"`
}

func (schemaMigration) TableName() string {
	return "schema_migrations"
}

// Migrations returns the ordered schema history. Later steps guard on column
// presence so a fresh database built by the initial step passes through them
// untouched, while databases created before a step still get altered.
func Migrations() []Migration {
	return []Migration{
		{
			ID: "202401150001_create_core_tables",
			Up: func(tx *gorm.DB) error {
				return tx.AutoMigrate(
					&models.User{},
					&models.Customer{},
					&models.PppProfile{},
					&models.PppSecret{},
					&models.Invoice{},
					&models.Payment{},
					&models.MikrotikSetting{},
					&models.UsageLog{},
					&models.Notification{},
				)
			},
			Down: func(tx *gorm.DB) error {
				// children first, the FK constraints hold otherwise
				return tx.Migrator().DropTable(
					&models.Notification{},
					&models.UsageLog{},
					&models.Payment{},
					&models.Invoice{},
					&models.PppSecret{},
					&models.Customer{},
					&models.PppProfile{},
					&models.MikrotikSetting{},
					&models.User{},
				)
			},
		},
		{
			ID: "202402030001_add_auto_sync_columns",
			Up: func(tx *gorm.DB) error {
				if !tx.Migrator().HasColumn(&models.PppProfile{}, "auto_sync") {
					if err := tx.Migrator().AddColumn(&models.PppProfile{}, "auto_sync"); err != nil {
						return err
					}
				}
				if !tx.Migrator().HasColumn(&models.PppSecret{}, "auto_sync") {
					if err := tx.Migrator().AddColumn(&models.PppSecret{}, "auto_sync"); err != nil {
						return err
					}
				}
				return nil
			},
			Down: func(tx *gorm.DB) error {
				if err := tx.Migrator().DropColumn(&models.PppSecret{}, "auto_sync"); err != nil {
					return err
				}
				return tx.Migrator().DropColumn(&models.PppProfile{}, "auto_sync")
			},
		},
		{
			ID: "202402180001_add_billing_cycle_columns",
			Up: func(tx *gorm.DB) error {
				if !tx.Migrator().HasColumn(&models.PppProfile{}, "billing_cycle_day") {
					if err := tx.Migrator().AddColumn(&models.PppProfile{}, "billing_cycle_day"); err != nil {
						return err
					}
				}
				if !tx.Migrator().HasColumn(&models.PppProfile{}, "billing_period") {
					if err := tx.Migrator().AddColumn(&models.PppProfile{}, "billing_period"); err != nil {
						return err
					}
				}
				return nil
			},
			Down: func(tx *gorm.DB) error {
				if err := tx.Migrator().DropColumn(&models.PppProfile{}, "billing_period"); err != nil {
					return err
				}
				return tx.Migrator().DropColumn(&models.PppProfile{}, "billing_cycle_day")
			},
		},
		{
			ID: "202403100001_add_last_disconnected_at",
			Up: func(tx *gorm.DB) error {
				if tx.Migrator().HasColumn(&models.MikrotikSetting{}, "last_disconnected_at") {
					return nil
				}
				return tx.Migrator().AddColumn(&models.MikrotikSetting{}, "last_disconnected_at")
			},
			Down: func(tx *gorm.DB) error {
				return tx.Migrator().DropColumn(&models.MikrotikSetting{}, "last_disconnected_at")
			},
		},
		{
			// Secrets used to require a customer and were cascade-deleted
			// with it. They now survive customer deletion detached.
			ID: "202404220001_relax_secret_customer_fk",
			Up: func(tx *gorm.DB) error {
				nullable, err := columnNullable(tx, &models.PppSecret{}, "customer_id")
				if err != nil {
					return err
				}
				if nullable {
					return nil
				}
				if tx.Migrator().HasConstraint(&models.PppSecret{}, "Customer") {
					if err := tx.Migrator().DropConstraint(&models.PppSecret{}, "Customer"); err != nil {
						return err
					}
				}
				if err := tx.Migrator().AlterColumn(&models.PppSecret{}, "customer_id"); err != nil {
					return err
				}
				return tx.Migrator().CreateConstraint(&models.PppSecret{}, "Customer")
			},
			Down: func(tx *gorm.DB) error {
				if err := RequireNoNulls(tx, "ppp_secrets", "customer_id"); err != nil {
					return err
				}
				return tx.Exec("ALTER TABLE ppp_secrets ALTER COLUMN customer_id SET NOT NULL").Error
			},
		},
	}
}

// RunMigrations applies all pending migrations in order.
func RunMigrations(database *gorm.DB) error {
	return ApplyMigrations(database, Migrations())
}

// ApplyMigrations applies the given steps, skipping ones already recorded in
// schema_migrations. Each step runs in its own transaction together with its
// bookkeeping row.
func ApplyMigrations(database *gorm.DB, migrations []Migration) error {
	if err := database.AutoMigrate(&schemaMigration{}); err != nil {
		return err
	}
	for _, m := range migrations {
		var count int64
		if err := database.Model(&schemaMigration{}).Where("id = ?", m.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		migration := m
		err := database.Transaction(func(tx *gorm.DB) error {
			if err := migration.Up(tx); err != nil {
				return err
			}
			return tx.Create(&schemaMigration{ID: migration.ID}).Error
		})
		if err != nil {
			return fmt.Errorf("migration %s: %w", m.ID, err)
		}
	}
	return nil
}

// RollbackLast reverses the most recently applied migration.
func RollbackLast(database *gorm.DB) error {
	var applied schemaMigration
	if err := database.Order("id DESC").First(&applied).Error; err != nil {
		return err
	}
	var target *Migration
	for _, m := range Migrations() {
		if m.ID == applied.ID {
			m := m
			target = &m
			break
		}
	}
	if target == nil {
		return fmt.Errorf("migration %s is applied but unknown", applied.ID)
	}
	return database.Transaction(func(tx *gorm.DB) error {
		if err := target.Down(tx); err != nil {
			return err
		}
		return tx.Delete(&schemaMigration{}, "id = ?", applied.ID).Error
	})
}

// RequireNoNulls guards constraint tightening: re-adding NOT NULL to a column
// must fail loudly while rows still hold null, instead of letting the ALTER
// abort halfway through a deployment.
func RequireNoNulls(tx *gorm.DB, table, column string) error {
	var count int64
	if err := tx.Table(table).Where(column + " IS NULL").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%s.%s holds %d NULL rows, cannot tighten to NOT NULL", table, column, count)
	}
	return nil
}

func columnNullable(tx *gorm.DB, model interface{}, column string) (bool, error) {
	columns, err := tx.Migrator().ColumnTypes(model)
	if err != nil {
		return false, err
	}
	for _, col := range columns {
		if col.Name() == column {
			nullable, ok := col.Nullable()
			return nullable && ok, nil
		}
	}
	return false, fmt.Errorf("column %s not found", column)
}
