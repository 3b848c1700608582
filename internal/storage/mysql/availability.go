package mysql

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"fewo_booking/internal/domain"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// upsertAvailability writes all records in one multi-row statement so a batch
// is all-or-nothing. Existing rows for the same dates are overwritten,
// whatever their prior status.
func upsertAvailability(ctx context.Context, ex execer, recs []domain.AvailabilityRecord) error {
	if len(recs) == 0 {
		return nil
	}
	values := make([]string, 0, len(recs))
	args := make([]any, 0, len(recs)*5)
	for _, rec := range recs {
		values = append(values, "(?,?,?,?,?)")
		args = append(args,
			rec.AccommodationID,
			rec.Date,
			string(rec.Status),
			valInt64(rec.BookingID),
			valStr(rec.Note),
		)
	}
	_, err := ex.ExecContext(ctx, upsertAvailabilityPrefix+strings.Join(values, ",")+upsertAvailabilityOnDup, args...)
	return err
}

func (r *Repo) IsRangeAvailable(ctx context.Context, accommodationID int64, checkIn, checkOut time.Time) (bool, error) {
	var occupied int
	if err := r.db.QueryRowContext(ctx, countOccupiedSQL,
		accommodationID, domain.Date(checkIn), domain.Date(checkOut)).Scan(&occupied); err != nil {
		return false, err
	}
	return occupied == 0, nil
}

func (r *Repo) BlockDates(ctx context.Context, accommodationID int64, dates []time.Time, note *string) error {
	recs := make([]domain.AvailabilityRecord, 0, len(dates))
	for _, d := range dates {
		recs = append(recs, domain.AvailabilityRecord{
			AccommodationID: accommodationID,
			Date:            domain.Date(d),
			Status:          domain.Blocked,
			Note:            note,
		})
	}
	return upsertAvailability(ctx, r.db, recs)
}

// UnblockDates removes rows for the given dates only when their status is
// exactly 'blocked'; a booked row is never removed here.
func (r *Repo) UnblockDates(ctx context.Context, accommodationID int64, dates []time.Time) error {
	if len(dates) == 0 {
		return nil
	}
	ph := strings.TrimSuffix(strings.Repeat("?,", len(dates)), ",")
	args := make([]any, 0, len(dates)+1)
	args = append(args, accommodationID)
	for _, d := range dates {
		args = append(args, domain.Date(d))
	}
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM availability WHERE accommodation_id = ? AND status = 'blocked' AND date IN ("+ph+")", args...)
	return err
}

func (r *Repo) GetAvailability(ctx context.Context, accommodationID int64, start, end time.Time) ([]domain.AvailabilityRecord, error) {
	rows, err := r.db.QueryContext(ctx, getAvailabilitySQL,
		accommodationID, domain.Date(start), domain.Date(end))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AvailabilityRecord
	for rows.Next() {
		var rec domain.AvailabilityRecord
		var bookingID sql.NullInt64
		var note sql.NullString
		var status string
		if err := rows.Scan(&rec.ID, &rec.AccommodationID, &rec.Date, &status, &bookingID, &note, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Status = domain.AvailabilityStatus(status)
		rec.BookingID = nullInt64(bookingID)
		rec.Note = nullStr(note)
		out = append(out, rec)
	}
	return out, rows.Err()
}
