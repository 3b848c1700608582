package mysql

// -----------------------------------------------------------------------------
// ACCOMMODATIONS
// -----------------------------------------------------------------------------

const accommodationColumns = `
  id, host_id, title, slug, description, short_description, type,
  street, house_number, city, postal_code, country, region, latitude, longitude,
  max_guests, bedrooms, beds, bathrooms,
  price_per_night, weekend_price, cleaning_fee,
  min_nights, max_nights, check_in_time, check_out_time, house_rules,
  instant_booking, is_active, is_published,
  view_count, booking_count, average_rating,
  created_at, updated_at`

const insertAccommodationSQL = `
INSERT INTO accommodations
  (host_id, title, slug, description, short_description, type,
   street, house_number, city, postal_code, country, region, latitude, longitude,
   max_guests, bedrooms, beds, bathrooms,
   price_per_night, weekend_price, cleaning_fee,
   min_nights, max_nights, check_in_time, check_out_time, house_rules,
   instant_booking, is_active, is_published)
VALUES
  (?, ?, ?, ?, ?, ?,
   ?, ?, ?, ?, ?, ?, ?, ?,
   ?, ?, ?, ?,
   ?, ?, ?,
   ?, ?, ?, ?, ?,
   ?, ?, ?)
`

const incrementViewsSQL = `
UPDATE accommodations SET view_count = view_count + 1 WHERE id = ?
`

// -----------------------------------------------------------------------------
// BOOKINGS
// -----------------------------------------------------------------------------

const bookingColumns = `
  id, accommodation_id, host_id,
  guest_name, guest_email, guest_phone, guest_message,
  check_in, check_out, number_of_guests,
  price_per_night, number_of_nights, cleaning_fee, total_price, currency,
  status, host_notes, created_at, updated_at`

const insertBookingSQL = `
INSERT INTO bookings
  (accommodation_id, host_id, guest_name, guest_email, guest_phone, guest_message,
   check_in, check_out, number_of_guests,
   price_per_night, number_of_nights, cleaning_fee, total_price, currency, status)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// Counts occupied dates inside [check_in, check_out). FOR UPDATE keeps the
// window locked while the booking insert runs in the same transaction.
const countOccupiedForUpdateSQL = `
SELECT COUNT(*) FROM availability
WHERE accommodation_id = ? AND date >= ? AND date < ?
  AND status IN ('booked','blocked')
FOR UPDATE
`

const countOccupiedSQL = `
SELECT COUNT(*) FROM availability
WHERE accommodation_id = ? AND date >= ? AND date < ?
  AND status IN ('booked','blocked')
`

const setBookingStatusSQL = `
UPDATE bookings
SET status = ?, host_notes = COALESCE(?, host_notes), updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`

const hostStatsSQL = `
SELECT
  COALESCE(SUM(CASE WHEN status = 'completed' THEN total_price END), 0),
  COALESCE(SUM(status = 'pending'), 0),
  COALESCE(SUM(status = 'confirmed'), 0)
FROM bookings
WHERE host_id = ?
`

const expiredConfirmedSQL = `
SELECT id FROM bookings WHERE status = 'confirmed' AND check_out <= ?
`

// -----------------------------------------------------------------------------
// AVAILABILITY
// -----------------------------------------------------------------------------

// Multi-row upsert prefix; one value tuple per date. An existing row for the
// same (accommodation_id, date) is overwritten whatever its prior status.
const upsertAvailabilityPrefix = `
INSERT INTO availability (accommodation_id, date, status, booking_id, note)
VALUES `

const upsertAvailabilityOnDup = ` ON DUPLICATE KEY UPDATE
  status     = VALUES(status),
  booking_id = VALUES(booking_id),
  note       = VALUES(note)
`

const getAvailabilitySQL = `
SELECT id, accommodation_id, date, status, booking_id, note, created_at
FROM availability
WHERE accommodation_id = ? AND date >= ? AND date <= ?
ORDER BY date ASC
`

// -----------------------------------------------------------------------------
// PLATFORM
// -----------------------------------------------------------------------------

const setConfigSQL = `
INSERT INTO platform_config (` + "`key`" + `, value, description)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE
  value       = VALUES(value),
  description = COALESCE(VALUES(description), platform_config.description)
`

const insertReviewSQL = `
INSERT INTO reviews (booking_id, accommodation_id, guest_name, rating, comment, is_published)
VALUES (?, ?, ?, ?, ?, ?)
`
