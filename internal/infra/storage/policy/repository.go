package policy

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/psqlbuilder"
)

const tablePolicy = "venue_booking_policy"

// NULL в колонке означает наследование глобального значения
var overrideColumns = []string{
	"min_lead_hours",
	"max_lead_days",
	"min_duration_minutes",
	"max_duration_minutes",
	"slot_duration_minutes",
	"commission_rate",
	"full_refund_hours",
	"partial_refund_hours",
	"partial_refund_rate",
}

// Repository репозиторий переопределений политики бронирования площадок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория политик
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByVenue получает переопределения политики площадки
// Если переопределений нет, возвращает ErrPolicyNotFound
func (r *Repository) GetByVenue(ctx context.Context, venueID int64) (*domain.PolicyOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(append([]string{"venue_id"}, overrideColumns...)...).
		From(tablePolicy).
		Where(squirrel.Eq{"venue_id": venueID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenue - build select query: %v", ErrBuildQuery, err)
	}

	var o domain.PolicyOverride
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&o.VenueID,
		&o.MinLeadHours,
		&o.MaxLeadDays,
		&o.MinDurationMinutes,
		&o.MaxDurationMinutes,
		&o.SlotDurationMinutes,
		&o.CommissionRate,
		&o.FullRefundHours,
		&o.PartialRefundHours,
		&o.PartialRefundRate,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenue - scan policy: %v", ErrScanRow, err)
	}

	return &o, nil
}

// Upsert создает или полностью заменяет переопределения политики площадки
func (r *Repository) Upsert(ctx context.Context, override *domain.PolicyOverride) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildUpsertQuery(override)
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func buildUpsertQuery(o *domain.PolicyOverride) (string, []interface{}, error) {
	return psqlbuilder.Insert(tablePolicy).
		Columns(append([]string{"venue_id"}, overrideColumns...)...).
		Values(
			o.VenueID,
			o.MinLeadHours,
			o.MaxLeadDays,
			o.MinDurationMinutes,
			o.MaxDurationMinutes,
			o.SlotDurationMinutes,
			o.CommissionRate,
			o.FullRefundHours,
			o.PartialRefundHours,
			o.PartialRefundRate,
		).
		Suffix(upsertSuffix()).
		ToSql()
}

func upsertSuffix() string {
	suffix := "ON CONFLICT (venue_id) DO UPDATE SET "
	for _, col := range overrideColumns {
		suffix += fmt.Sprintf("%s = EXCLUDED.%s, ", col, col)
	}
	return suffix + "updated_at = NOW()"
}

// DeleteByVenue удаляет переопределения, площадка возвращается к глобальной политике
func (r *Repository) DeleteByVenue(ctx context.Context, venueID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tablePolicy).
		Where(squirrel.Eq{"venue_id": venueID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByVenue - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByVenue - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByVenue - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPolicyNotFound
	}

	return nil
}
