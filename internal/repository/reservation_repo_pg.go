package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	reservationColumns = `id::text, room_id, guest_name, guest_email, check_in_date, check_out_date, (total_price * 100)::bigint, created_at`

	pgExclusionViolation  = "23P01"
	pgForeignKeyViolation = "23503"
)

type PGReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) ReservationRepository {
	return &PGReservationRepository{db: db}
}

func (r *PGReservationRepository) FindOverlapping(ctx context.Context, roomID int64, checkIn, checkOut domain.Date) ([]domain.Reservation, error) {
	return r.query(ctx, `SELECT `+reservationColumns+` FROM reservations
		WHERE room_id=$1 AND check_in_date < $3 AND $2 < check_out_date
		ORDER BY check_in_date`, roomID, checkIn.Time(), checkOut.Time())
}

func (r *PGReservationRepository) FindByRoom(ctx context.Context, roomID int64, from domain.Date) ([]domain.Reservation, error) {
	return r.query(ctx, `SELECT `+reservationColumns+` FROM reservations
		WHERE room_id=$1 AND check_out_date >= $2
		ORDER BY check_in_date`, roomID, from.Time())
}

func (r *PGReservationRepository) FindCheckingInBetween(ctx context.Context, start, end domain.Date) ([]domain.Reservation, error) {
	return r.query(ctx, `SELECT `+reservationColumns+` FROM reservations
		WHERE check_in_date >= $1 AND check_in_date < $2
		ORDER BY check_in_date, created_at`, start.Time(), end.Time())
}

func (r *PGReservationRepository) FindByGuestEmail(ctx context.Context, email string) ([]domain.GuestReservation, error) {
	rows, err := r.db.Query(ctx, `SELECT r.id::text, r.check_in_date, r.check_out_date, (r.total_price * 100)::bigint,
			COALESCE(m.room_number, ''), COALESCE(m.type, '')
		FROM reservations r
		LEFT JOIN rooms m ON m.id = r.room_id
		WHERE r.guest_email=$1
		ORDER BY r.check_in_date DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.GuestReservation, 0)
	for rows.Next() {
		var (
			g       domain.GuestReservation
			id      string
			in, out time.Time
			cents   int64
		)
		if err := rows.Scan(&id, &in, &out, &cents, &g.RoomNumber, &g.RoomType); err != nil {
			return nil, err
		}
		if g.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse reservation id %q: %w", id, err)
		}
		g.CheckInDate = domain.NewDate(in)
		g.CheckOutDate = domain.NewDate(out)
		g.TotalPrice = domain.Money(cents)
		result = append(result, g)
	}
	return result, rows.Err()
}

// Insert re-checks availability while holding the room row lock, so concurrent
// writers from other processes serialize per room. The exclusion constraint on
// the table backs this up.
func (r *PGReservationRepository) Insert(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var roomID int64
	if err := tx.QueryRow(ctx, `SELECT id FROM rooms WHERE id=$1 FOR UPDATE`, res.RoomID).Scan(&roomID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrRoomMissing
		}
		return err
	}

	var taken bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM reservations
		WHERE room_id=$1 AND check_in_date < $3 AND $2 < check_out_date)`,
		res.RoomID, res.CheckInDate.Time(), res.CheckOutDate.Time()).Scan(&taken); err != nil {
		return err
	}
	if taken {
		return ErrOverlap
	}

	if _, err := tx.Exec(ctx, `INSERT INTO reservations
		(id, room_id, guest_name, guest_email, check_in_date, check_out_date, total_price, created_at)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7::bigint / 100.0, $8)`,
		res.ID.String(), res.RoomID, res.GuestName, res.GuestEmail,
		res.CheckInDate.Time(), res.CheckOutDate.Time(), int64(res.TotalPrice), res.CreatedAt); err != nil {
		return mapInsertError(err)
	}

	return mapInsertError(tx.Commit(ctx))
}

func (r *PGReservationRepository) query(ctx context.Context, sql string, args ...any) ([]domain.Reservation, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.Reservation, 0)
	for rows.Next() {
		var (
			res     domain.Reservation
			id      string
			in, out time.Time
			cents   int64
		)
		if err := rows.Scan(&id, &res.RoomID, &res.GuestName, &res.GuestEmail, &in, &out, &cents, &res.CreatedAt); err != nil {
			return nil, err
		}
		if res.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse reservation id %q: %w", id, err)
		}
		res.CheckInDate = domain.NewDate(in)
		res.CheckOutDate = domain.NewDate(out)
		res.TotalPrice = domain.Money(cents)
		result = append(result, res)
	}
	return result, rows.Err()
}

func mapInsertError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgExclusionViolation:
			return ErrOverlap
		case pgForeignKeyViolation:
			return ErrRoomMissing
		}
	}
	return err
}

var _ ReservationRepository = (*PGReservationRepository)(nil)
