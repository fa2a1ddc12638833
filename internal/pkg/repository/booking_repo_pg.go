// Package repository persists bookings in Postgres via pgx.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ijalalfrz/flight-booking-service/internal/pkg/booking"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound signals a missing or soft-deleted booking.
	ErrNotFound = errors.New("booking not found")

	// ErrDuplicateBookingID signals that the unique constraint on the
	// booking reference fired on insert. The caller regenerates the id
	// and retries.
	ErrDuplicateBookingID = errors.New("booking id already exists")
)

const uniqueViolationCode = "23505"

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *PGBookingRepository {
	return &PGBookingRepository{db: db}
}

// Create inserts the booking with its contact and passengers in one
// transaction, stamping audit columns from the request actor.
func (r *PGBookingRepository) Create(ctx context.Context, bkg *booking.Booking) error {
	actor := booking.ActorFromContext(ctx)
	now := time.Now().UTC()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	bkg.Contact.ID = uuid.New()
	bkg.Contact.CreatedOn = now
	bkg.Contact.CreatedBy = actor

	if _, err := tx.Exec(ctx, `INSERT INTO contacts (id, first_name, last_name, email, created_on, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		bkg.Contact.ID, bkg.Contact.FirstName, bkg.Contact.LastName, bkg.Contact.Email,
		bkg.Contact.CreatedOn, bkg.Contact.CreatedBy); err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}

	bkg.ID = uuid.New()
	bkg.CreatedOn = now
	bkg.CreatedBy = actor

	if _, err := tx.Exec(ctx, `INSERT INTO bookings
		(id, booking_id, flight_number, flight_date, origin, destination, booking_date, total_price, contact_id, created_on, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		bkg.ID, bkg.BookingID, bkg.FlightNumber, bkg.FlightDate, bkg.Origin, bkg.Destination,
		bkg.BookingDate, bkg.TotalPrice, bkg.Contact.ID, bkg.CreatedOn, bkg.CreatedBy); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: %s", ErrDuplicateBookingID, bkg.BookingID)
		}

		return fmt.Errorf("insert booking: %w", err)
	}

	for i := range bkg.Passengers {
		pax := &bkg.Passengers[i]
		pax.ID = uuid.New()
		pax.CreatedOn = now
		pax.CreatedBy = actor

		if _, err := tx.Exec(ctx, `INSERT INTO passengers
			(id, booking_id, type, first_name, last_name, birth_date, created_on, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			pax.ID, bkg.ID, pax.Type.Code(), pax.FirstName, pax.LastName, pax.BirthDate,
			pax.CreatedOn, pax.CreatedBy); err != nil {
			return fmt.Errorf("insert passenger: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// GetByBookingID loads a booking with its passengers and contact by the
// customer-facing reference. Soft-deleted bookings are invisible.
func (r *PGBookingRepository) GetByBookingID(ctx context.Context, bookingID string) (*booking.Booking, error) {
	var (
		bkg       booking.Booking
		contactID uuid.UUID
	)

	row := r.db.QueryRow(ctx, `SELECT id, booking_id, flight_number, flight_date, origin, destination,
		booking_date, total_price, contact_id, created_on, created_by
		FROM bookings WHERE booking_id = $1 AND NOT is_deleted`, bookingID)

	if err := row.Scan(&bkg.ID, &bkg.BookingID, &bkg.FlightNumber, &bkg.FlightDate, &bkg.Origin,
		&bkg.Destination, &bkg.BookingDate, &bkg.TotalPrice, &contactID,
		&bkg.CreatedOn, &bkg.CreatedBy); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("select booking: %w", err)
	}

	row = r.db.QueryRow(ctx, `SELECT id, first_name, last_name, email FROM contacts WHERE id = $1`, contactID)
	if err := row.Scan(&bkg.Contact.ID, &bkg.Contact.FirstName, &bkg.Contact.LastName,
		&bkg.Contact.Email); err != nil {
		return nil, fmt.Errorf("select contact: %w", err)
	}

	rows, err := r.db.Query(ctx, `SELECT id, type, first_name, last_name, birth_date
		FROM passengers WHERE booking_id = $1 ORDER BY created_on, id`, bkg.ID)
	if err != nil {
		return nil, fmt.Errorf("select passengers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			pax  booking.Passenger
			code string
		)

		if err := rows.Scan(&pax.ID, &code, &pax.FirstName, &pax.LastName, &pax.BirthDate); err != nil {
			return nil, fmt.Errorf("scan passenger: %w", err)
		}

		paxType, ok := booking.PaxTypeFromCode(code)
		if !ok {
			return nil, fmt.Errorf("unknown pax type %q on booking %s", code, bookingID)
		}

		pax.Type = paxType
		bkg.Passengers = append(bkg.Passengers, pax)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate passengers: %w", err)
	}

	return &bkg, nil
}

// BookingIDExists reports whether any non-deleted booking uses the
// reference.
func (r *PGBookingRepository) BookingIDExists(ctx context.Context, bookingID string) (bool, error) {
	var exists bool

	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM bookings WHERE booking_id = $1 AND NOT is_deleted)`,
		bookingID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check booking id: %w", err)
	}

	return exists, nil
}
