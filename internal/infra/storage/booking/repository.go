package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/psqlbuilder"
)

const (
	tableBookings = "bookings"

	// pqUniqueViolation код ошибки Postgres при нарушении уникального индекса
	pqUniqueViolation = "23505"

	// timestampLayout формат "наивного" времени площадки для сравнения с booking_date + end_time
	timestampLayout = "2006-01-02 15:04:05"
)

var bookingColumns = []string{
	"id",
	"user_id",
	"venue_id",
	"court_id",
	"booking_date",
	"start_time",
	"end_time",
	"duration_minutes",
	"status",
	"subtotal",
	"commission",
	"total_amount",
	"venue_payout",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"refund_amount",
	"refund_percentage",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями кортов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// Уникальный индекс по активным бронированиям (court_id, booking_date, start_time)
// защищает от двойного бронирования даже вне транзакции: нарушение возвращается как ErrSlotNotAvailable
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableBookings).
		Columns(
			"user_id",
			"venue_id",
			"court_id",
			"booking_date",
			"start_time",
			"end_time",
			"duration_minutes",
			"status",
			"subtotal",
			"commission",
			"total_amount",
			"venue_payout",
			"notes",
		).
		Values(
			booking.UserID,
			booking.VenueID,
			booking.CourtID,
			booking.BookingDate.Format(domain.DateFormat),
			booking.StartTime,
			booking.EndTime,
			booking.DurationMinutes,
			booking.Status,
			booking.Subtotal,
			booking.Commission,
			booking.TotalAmount,
			booking.VenuePayout,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if isUniqueViolation(err) {
		return nil, fmt.Errorf("%w: court_id=%d date=%s start=%s",
			ErrSlotNotAvailable, booking.CourtID, booking.BookingDate.Format(domain.DateFormat), booking.StartTime)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
// В транзакции строка блокируется (FOR UPDATE), чтобы отмена не гонялась с планировщиком
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByFilter получает бронирования с гибкой фильтрацией
// Поддерживает фильтрацию по корту, площадке, пользователю, периоду и статусу.
//
// Примеры использования:
//
// Активные бронирования корта на дату (проверка доступности):
//
//	filter := domain.BookingsFilter{CourtID: &courtID, StartDate: &date, EndDate: &date}
//
// История пользователя, включая отменённые:
//
//	filter := domain.BookingsFilter{UserID: &userID, IncludeInactive: true}
func (r *Repository) GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildFilterQuery(filter, dbmetrics.IsInTransaction(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func buildFilterQuery(filter domain.BookingsFilter, inTx bool) (string, []interface{}, error) {
	selectBuilder := psqlbuilder.Select(bookingColumns...).From(tableBookings)

	if filter.CourtID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"court_id": *filter.CourtID})
	}
	if filter.VenueID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"venue_id": *filter.VenueID})
	}
	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": filter.StartDate.Format(domain.DateFormat)})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": filter.EndDate.Format(domain.DateFormat)})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(*filter.Status)})
	} else if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": statusStrings(domain.InactiveStatuses)})
	}

	if filter.IsSingleDay() {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC", "start_time DESC")
	}

	// Блокируем бронирования корта на дату на время транзакции создания
	if inTx && filter.IsSingleDay() && filter.CourtID != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	return selectBuilder.ToSql()
}

// Cancel отменяет бронирование и сохраняет рассчитанный возврат
// Отмена возможна только из статусов pending и confirmed
func (r *Repository) Cancel(ctx context.Context, id int64, params CancelParams) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableBookings).
		Set("status", string(params.Status)).
		Set("cancellation_reason", params.Reason).
		Set("cancelled_at", params.CancelledAt).
		Set("refund_amount", params.RefundAmount).
		Set("refund_percentage", params.RefundPercentage).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": []string{string(domain.StatusPending), string(domain.StatusConfirmed)}}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCannotCancel
	}

	return nil
}

// MarkNoShow переводит подтверждённое бронирование в no_show
// Возвращает ErrBookingNotFound, если подтверждённого бронирования с таким ID нет
func (r *Repository) MarkNoShow(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableBookings).
		Set("status", string(domain.StatusNoShow)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": string(domain.StatusConfirmed)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkNoShow - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkNoShow - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkNoShow - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CompleteFinished переводит подтверждённые бронирования, время окончания которых прошло, в completed
// now передаётся в часовом поясе площадок: booking_date и end_time хранятся без пояса
func (r *Repository) CompleteFinished(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildCompleteQuery(now)
	if err != nil {
		return 0, fmt.Errorf("%w: CompleteFinished - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CompleteFinished - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CompleteFinished - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

func buildCompleteQuery(now time.Time) (string, []interface{}, error) {
	return psqlbuilder.Update(tableBookings).
		Set("status", string(domain.StatusCompleted)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": string(domain.StatusConfirmed)}).
		Where("(booking_date + end_time) <= ?::timestamp", now.Format(timestampLayout)).
		ToSql()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.VenueID,
		&booking.CourtID,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.EndTime,
		&booking.DurationMinutes,
		&booking.Status,
		&booking.Subtotal,
		&booking.Commission,
		&booking.TotalAmount,
		&booking.VenuePayout,
		&booking.Notes,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&booking.RefundAmount,
		&booking.RefundPercentage,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func statusStrings(statuses []domain.BookingStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = string(s)
	}
	return result
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}
