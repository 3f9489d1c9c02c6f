package postgres

import (
	"context"
	"database/sql"

	"tool-rental-backend/internal/domain"
	"tool-rental-backend/internal/logger"
	"tool-rental-backend/internal/repository"
)

type toolRepository struct {
	db *sql.DB
}

func NewToolRepository(db *sql.DB) repository.ToolRepository {
	return &toolRepository{db: db}
}

func (r *toolRepository) ListTools(ctx context.Context) ([]domain.Tool, error) {
	query := `SELECT code, type, brand, daily_charge, weekday_charge, weekend_charge, holiday_charge FROM tools ORDER BY code`
	logger.DatabaseCall("ListTools", query)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("ListTools", 0, err)
		return nil, err
	}
	defer rows.Close()

	var tools []domain.Tool
	for rows.Next() {
		var t domain.Tool
		if err := rows.Scan(&t.Code, &t.Type, &t.Brand, &t.DailyCharge, &t.WeekdayCharge, &t.WeekendCharge, &t.HolidayCharge); err != nil {
			logger.DatabaseResult("ListTools", int64(len(tools)), err)
			return nil, err
		}
		tools = append(tools, t)
	}
	if err := rows.Err(); err != nil {
		logger.DatabaseResult("ListTools", int64(len(tools)), err)
		return nil, err
	}

	logger.DatabaseResult("ListTools", int64(len(tools)), nil)
	return tools, nil
}

func (r *toolRepository) UpsertTool(ctx context.Context, t *domain.Tool) error {
	query := `INSERT INTO tools (code, type, brand, daily_charge, weekday_charge, weekend_charge, holiday_charge)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT (code) DO UPDATE SET type = EXCLUDED.type, brand = EXCLUDED.brand, daily_charge = EXCLUDED.daily_charge,
	          weekday_charge = EXCLUDED.weekday_charge, weekend_charge = EXCLUDED.weekend_charge, holiday_charge = EXCLUDED.holiday_charge`
	logger.DatabaseCall("UpsertTool", query, "code", t.Code)

	res, err := r.db.ExecContext(ctx, query, t.Code, t.Type, t.Brand, t.DailyCharge, t.WeekdayCharge, t.WeekendCharge, t.HolidayCharge)
	if err != nil {
		logger.DatabaseResult("UpsertTool", 0, err, "code", t.Code)
		return err
	}
	n, _ := res.RowsAffected()
	logger.DatabaseResult("UpsertTool", n, nil, "code", t.Code)
	return nil
}
