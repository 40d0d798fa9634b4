package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/BennersTaga/shift-management-app/internal/domain"
)

// system_settings は id = 1 の 1 行だけを持つ

// EnsureSystemSettings は設定行が存在することを保証する
// 既に存在する場合は何もしない（管理者パスワードは上書きしない）
func (r *Repository) EnsureSystemSettings(adminPasswordHash string) error {
	query := `
		INSERT INTO system_settings (id, admin_password_hash)
		VALUES (1, $1)
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, adminPasswordHash)
	return err
}

func (r *Repository) GetSystemSettings() (*domain.SystemSettings, error) {
	query := `
		SELECT input_start_day, input_end_day, version
		FROM system_settings WHERE id = 1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	settings := &domain.SystemSettings{}
	startDay := sql.NullInt32{}
	endDay := sql.NullInt32{}

	if err := r.dbpool.QueryRowContext(ctx, query).Scan(&startDay, &endDay, &settings.Version); err != nil {
		return nil, err
	}

	if startDay.Valid {
		day := int(startDay.Int32)
		settings.InputStartDay = &day
	}
	if endDay.Valid {
		day := int(endDay.Int32)
		settings.InputEndDay = &day
	}

	return settings, nil
}

func (r *Repository) UpdateSystemSettings(settings *domain.SystemSettings) error {
	query := `
		UPDATE system_settings
		SET
			input_start_day = $1,
			input_end_day = $2,
			version = version + 1
		WHERE id = 1 AND version = $3
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	startDay := sql.NullInt32{}
	if settings.InputStartDay != nil {
		startDay = sql.NullInt32{Int32: int32(*settings.InputStartDay), Valid: true}
	}
	endDay := sql.NullInt32{}
	if settings.InputEndDay != nil {
		endDay = sql.NullInt32{Int32: int32(*settings.InputEndDay), Valid: true}
	}

	if err := r.dbpool.QueryRowContext(ctx, query, startDay, endDay, settings.Version).Scan(&settings.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAdminPasswordHash() (string, error) {
	query := `
		SELECT admin_password_hash FROM system_settings WHERE id = 1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	hash := ""
	if err := r.dbpool.QueryRowContext(ctx, query).Scan(&hash); err != nil {
		return "", err
	}

	return hash, nil
}
