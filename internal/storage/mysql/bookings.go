package mysql

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"fewo_booking/internal/domain"
)

// CreateBooking performs the availability check and the insert inside one
// serializable transaction; FOR UPDATE on the window keeps a concurrent
// request from observing "available" until this one commits. A booking
// arriving already confirmed (instant booking) occupies its stay dates in
// the same transaction, so two overlapping instant requests cannot both
// land.
func (r *Repo) CreateBooking(ctx context.Context, b domain.Booking) (int64, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var occupied int
	if err := tx.QueryRowContext(ctx, countOccupiedForUpdateSQL,
		b.AccommodationID, b.CheckIn, b.CheckOut).Scan(&occupied); err != nil {
		return 0, err
	}
	if occupied > 0 {
		return 0, domain.ErrConflict
	}

	res, err := tx.ExecContext(ctx, insertBookingSQL,
		b.AccommodationID, b.HostID,
		b.GuestName, b.GuestEmail, valStr(b.GuestPhone), valStr(b.GuestMessage),
		b.CheckIn, b.CheckOut, b.NumberOfGuests,
		b.PricePerNight, b.NumberOfNights, b.CleaningFee, b.TotalPrice, b.Currency,
		string(b.Status),
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if b.Status == domain.BookingConfirmed {
		b.ID = id
		if err := upsertAvailability(ctx, tx, domain.OccupyRecords(b)); err != nil {
			return 0, err
		}
	}
	return id, tx.Commit()
}

// SetBookingStatus writes the status (and host notes when given); when occupy
// is non-empty the availability rows are upserted in the same transaction so
// a confirmation either fully lands or not at all.
func (r *Repo) SetBookingStatus(ctx context.Context, id int64, status domain.BookingStatus, hostNotes *string, occupy []domain.AvailabilityRecord) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, setBookingStatusSQL, string(status), valStr(hostNotes), id); err != nil {
		return err
	}
	if len(occupy) > 0 {
		if err := upsertAvailability(ctx, tx, occupy); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *Repo) GetBookingByID(ctx context.Context, id int64) (domain.Booking, error) {
	row := r.db.QueryRowContext(ctx, "SELECT"+bookingColumns+" FROM bookings WHERE id = ?", id)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return domain.Booking{}, domain.ErrNotFound
	}
	return b, err
}

func scanBooking(row interface{ Scan(...any) error }) (domain.Booking, error) {
	var b domain.Booking
	var phone, message, notes sql.NullString
	var status string
	if err := row.Scan(
		&b.ID, &b.AccommodationID, &b.HostID,
		&b.GuestName, &b.GuestEmail, &phone, &message,
		&b.CheckIn, &b.CheckOut, &b.NumberOfGuests,
		&b.PricePerNight, &b.NumberOfNights, &b.CleaningFee, &b.TotalPrice, &b.Currency,
		&status, &notes, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return domain.Booking{}, err
	}
	b.GuestPhone = nullStr(phone)
	b.GuestMessage = nullStr(message)
	b.HostNotes = nullStr(notes)
	b.Status = domain.BookingStatus(status)
	return b, nil
}

func (r *Repo) listBookingViews(ctx context.Context, q string, args ...any) ([]domain.BookingView, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.BookingView
	for rows.Next() {
		var v domain.BookingView
		var phone, message, notes sql.NullString
		var status string
		if err := rows.Scan(
			&v.ID, &v.AccommodationID, &v.HostID,
			&v.GuestName, &v.GuestEmail, &phone, &message,
			&v.CheckIn, &v.CheckOut, &v.NumberOfGuests,
			&v.PricePerNight, &v.NumberOfNights, &v.CleaningFee, &v.TotalPrice, &v.Currency,
			&status, &notes, &v.CreatedAt, &v.UpdatedAt,
			&v.AccommodationTitle, &v.AccommodationSlug,
		); err != nil {
			return nil, err
		}
		v.GuestPhone = nullStr(phone)
		v.GuestMessage = nullStr(message)
		v.HostNotes = nullStr(notes)
		v.Status = domain.BookingStatus(status)
		out = append(out, v)
	}
	return out, rows.Err()
}

const bookingViewSelect = `
SELECT
  b.id, b.accommodation_id, b.host_id,
  b.guest_name, b.guest_email, b.guest_phone, b.guest_message,
  b.check_in, b.check_out, b.number_of_guests,
  b.price_per_night, b.number_of_nights, b.cleaning_fee, b.total_price, b.currency,
  b.status, b.host_notes, b.created_at, b.updated_at,
  a.title, a.slug
FROM bookings b
INNER JOIN accommodations a ON a.id = b.accommodation_id
`

func (r *Repo) ListBookingsByHost(ctx context.Context, hostID int64, status *domain.BookingStatus) ([]domain.BookingView, error) {
	conds := []string{"b.host_id = ?"}
	args := []any{hostID}
	if status != nil {
		conds = append(conds, "b.status = ?")
		args = append(args, string(*status))
	}
	q := bookingViewSelect + "WHERE " + strings.Join(conds, " AND ") + " ORDER BY b.created_at DESC"
	return r.listBookingViews(ctx, q, args...)
}

func (r *Repo) UpcomingCheckIns(ctx context.Context, hostID int64, from, to time.Time) ([]domain.BookingView, error) {
	q := bookingViewSelect + "WHERE b.host_id = ? AND b.status = 'confirmed' AND b.check_in >= ? AND b.check_in <= ? ORDER BY b.check_in ASC"
	return r.listBookingViews(ctx, q, hostID, from, to)
}

func (r *Repo) ListExpiredConfirmed(ctx context.Context, asOf time.Time) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, expiredConfirmedSQL, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *Repo) HostStats(ctx context.Context, hostID int64) (domain.HostStats, error) {
	var st domain.HostStats
	if err := r.db.QueryRowContext(ctx, hostStatsSQL, hostID).
		Scan(&st.TotalRevenue, &st.PendingRequests, &st.ConfirmedBookings); err != nil {
		return domain.HostStats{}, err
	}
	return st, nil
}
