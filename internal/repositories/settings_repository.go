package repositories

import (
	"context"
	"database/sql"
	"errors"

	intconfig "frontdesk/internal/config"
	intdb "frontdesk/internal/db"
	"frontdesk/internal/domain/models"
)

const billingSettingsTable = "billing_settings"

// ErrNoDatabase is returned by writes when no MySQL connection is configured.
var ErrNoDatabase = errors.New("database not configured")

// SettingsRepository persists the property-wide billing defaults (single row, id=1).
type SettingsRepository struct {
	DB *sql.DB
}

func (r SettingsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Get loads stored settings. found is false when there is no database, no table or no row.
func (r SettingsRepository) Get(ctx context.Context) (models.BillingSettings, bool, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(db, billingSettingsTable) {
		return models.BillingSettings{}, false, nil
	}

	var (
		s         models.BillingSettings
		updatedBy sql.NullString
		updatedAt sql.NullTime
	)
	err := db.QueryRowContext(ctx, `
		SELECT cgst_percent, sgst_percent, extra_bed_daily_charge, updated_by, updated_at
		FROM `+billingSettingsTable+`
		ORDER BY id DESC
		LIMIT 1
	`).Scan(&s.CGSTPercent, &s.SGSTPercent, &s.ExtraBedDailyCharge, &updatedBy, &updatedAt)
	if intdb.IsNoRows(err) {
		return models.BillingSettings{}, false, nil
	}
	if err != nil {
		return models.BillingSettings{}, false, err
	}
	if updatedBy.Valid {
		s.UpdatedBy = updatedBy.String
	}
	if updatedAt.Valid {
		s.UpdatedAt = updatedAt.Time.UTC()
	}
	return s, true, nil
}

// EnsureTable creates billing_settings when missing.
func (r SettingsRepository) EnsureTable(ctx context.Context) error {
	db := r.db()
	if db == nil {
		return ErrNoDatabase
	}
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS `+billingSettingsTable+` (
			id INT NOT NULL PRIMARY KEY,
			cgst_percent DECIMAL(5,2) NOT NULL DEFAULT 0,
			sgst_percent DECIMAL(5,2) NOT NULL DEFAULT 0,
			extra_bed_daily_charge DECIMAL(12,2) NOT NULL DEFAULT 0,
			updated_by VARCHAR(100) NULL,
			updated_at DATETIME NOT NULL
		)
	`)
	return err
}

// Save upserts the single settings row.
func (r SettingsRepository) Save(ctx context.Context, s models.BillingSettings) error {
	db := r.db()
	if db == nil {
		return ErrNoDatabase
	}
	if err := r.EnsureTable(ctx); err != nil {
		return err
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO `+billingSettingsTable+`
			(id, cgst_percent, sgst_percent, extra_bed_daily_charge, updated_by, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			cgst_percent = VALUES(cgst_percent),
			sgst_percent = VALUES(sgst_percent),
			extra_bed_daily_charge = VALUES(extra_bed_daily_charge),
			updated_by = VALUES(updated_by),
			updated_at = VALUES(updated_at)
	`, s.CGSTPercent, s.SGSTPercent, s.ExtraBedDailyCharge, intdb.NullIfEmpty(s.UpdatedBy), s.UpdatedAt)
	return err
}
