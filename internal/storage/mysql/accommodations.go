package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"fewo_booking/internal/domain"
)

func (r *Repo) CreateAccommodation(ctx context.Context, a domain.Accommodation) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertAccommodationSQL,
		a.HostID, a.Title, a.Slug,
		valStr(a.Description), valStr(a.ShortDescription), a.Type,
		valStr(a.Street), valStr(a.HouseNumber), valStr(a.City), valStr(a.PostalCode),
		valStr(a.Country), valStr(a.Region), valStr(a.Latitude), valStr(a.Longitude),
		a.MaxGuests, a.Bedrooms, a.Beds, a.Bathrooms,
		a.PricePerNight, valStr(a.WeekendPrice), a.CleaningFee,
		a.MinNights, a.MaxNights, a.CheckInTime, a.CheckOutTime, valStr(a.HouseRules),
		a.InstantBooking, a.IsActive, a.IsPublished,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// patchColumns pairs each patch field with its column; nil fields are skipped
// so the UPDATE only touches what the caller sent.
func patchColumns(p domain.AccommodationPatch) ([]string, []any) {
	var cols []string
	var args []any
	set := func(col string, v any) {
		cols = append(cols, col+" = ?")
		args = append(args, v)
	}
	if p.Title != nil {
		set("title", *p.Title)
	}
	if p.Description != nil {
		set("description", *p.Description)
	}
	if p.ShortDescription != nil {
		set("short_description", *p.ShortDescription)
	}
	if p.Type != nil {
		set("type", *p.Type)
	}
	if p.Street != nil {
		set("street", *p.Street)
	}
	if p.HouseNumber != nil {
		set("house_number", *p.HouseNumber)
	}
	if p.City != nil {
		set("city", *p.City)
	}
	if p.PostalCode != nil {
		set("postal_code", *p.PostalCode)
	}
	if p.Country != nil {
		set("country", *p.Country)
	}
	if p.Region != nil {
		set("region", *p.Region)
	}
	if p.Latitude != nil {
		set("latitude", *p.Latitude)
	}
	if p.Longitude != nil {
		set("longitude", *p.Longitude)
	}
	if p.MaxGuests != nil {
		set("max_guests", *p.MaxGuests)
	}
	if p.Bedrooms != nil {
		set("bedrooms", *p.Bedrooms)
	}
	if p.Beds != nil {
		set("beds", *p.Beds)
	}
	if p.Bathrooms != nil {
		set("bathrooms", *p.Bathrooms)
	}
	if p.PricePerNight != nil {
		set("price_per_night", *p.PricePerNight)
	}
	if p.WeekendPrice != nil {
		set("weekend_price", *p.WeekendPrice)
	}
	if p.CleaningFee != nil {
		set("cleaning_fee", *p.CleaningFee)
	}
	if p.MinNights != nil {
		set("min_nights", *p.MinNights)
	}
	if p.MaxNights != nil {
		set("max_nights", *p.MaxNights)
	}
	if p.CheckInTime != nil {
		set("check_in_time", *p.CheckInTime)
	}
	if p.CheckOutTime != nil {
		set("check_out_time", *p.CheckOutTime)
	}
	if p.HouseRules != nil {
		set("house_rules", *p.HouseRules)
	}
	if p.InstantBooking != nil {
		set("instant_booking", *p.InstantBooking)
	}
	if p.IsPublished != nil {
		set("is_published", *p.IsPublished)
	}
	if p.IsActive != nil {
		set("is_active", *p.IsActive)
	}
	return cols, args
}

func (r *Repo) UpdateAccommodation(ctx context.Context, id int64, p domain.AccommodationPatch) error {
	cols, args := patchColumns(p)
	if len(cols) == 0 {
		return nil
	}
	args = append(args, id)
	q := "UPDATE accommodations SET " + strings.Join(cols, ", ") + ", updated_at = CURRENT_TIMESTAMP WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// row may exist with identical values; verify before reporting missing
		var one int
		if err := r.db.QueryRowContext(ctx, "SELECT 1 FROM accommodations WHERE id = ?", id).Scan(&one); err == sql.ErrNoRows {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (r *Repo) IncrementViews(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, incrementViewsSQL, id)
	return err
}

func scanAccommodation(row interface{ Scan(...any) error }) (domain.Accommodation, error) {
	var a domain.Accommodation
	var desc, short, street, houseNo, city, postal, country, region, lat, lon sql.NullString
	var weekend, rules, avgRating sql.NullString
	if err := row.Scan(
		&a.ID, &a.HostID, &a.Title, &a.Slug, &desc, &short, &a.Type,
		&street, &houseNo, &city, &postal, &country, &region, &lat, &lon,
		&a.MaxGuests, &a.Bedrooms, &a.Beds, &a.Bathrooms,
		&a.PricePerNight, &weekend, &a.CleaningFee,
		&a.MinNights, &a.MaxNights, &a.CheckInTime, &a.CheckOutTime, &rules,
		&a.InstantBooking, &a.IsActive, &a.IsPublished,
		&a.ViewCount, &a.BookingCount, &avgRating,
		&a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return domain.Accommodation{}, err
	}
	a.Description = nullStr(desc)
	a.ShortDescription = nullStr(short)
	a.Street = nullStr(street)
	a.HouseNumber = nullStr(houseNo)
	a.City = nullStr(city)
	a.PostalCode = nullStr(postal)
	a.Country = nullStr(country)
	a.Region = nullStr(region)
	a.Latitude = nullStr(lat)
	a.Longitude = nullStr(lon)
	a.WeekendPrice = nullStr(weekend)
	a.HouseRules = nullStr(rules)
	a.AverageRating = nullStr(avgRating)
	return a, nil
}

func (r *Repo) getAccommodation(ctx context.Context, where string, arg any) (domain.Accommodation, error) {
	row := r.db.QueryRowContext(ctx, "SELECT"+accommodationColumns+" FROM accommodations WHERE "+where, arg)
	a, err := scanAccommodation(row)
	if err == sql.ErrNoRows {
		return domain.Accommodation{}, domain.ErrNotFound
	}
	return a, err
}

func (r *Repo) GetAccommodationByID(ctx context.Context, id int64) (domain.Accommodation, error) {
	return r.getAccommodation(ctx, "id = ?", id)
}

func (r *Repo) GetAccommodationBySlug(ctx context.Context, slug string) (domain.Accommodation, error) {
	return r.getAccommodation(ctx, "slug = ?", slug)
}

func (r *Repo) listAccommodations(ctx context.Context, q string, args ...any) ([]domain.Accommodation, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Accommodation
	for rows.Next() {
		a, err := scanAccommodation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *Repo) ListByHost(ctx context.Context, hostID int64) ([]domain.Accommodation, error) {
	return r.listAccommodations(ctx,
		"SELECT"+accommodationColumns+" FROM accommodations WHERE host_id = ? ORDER BY created_at DESC", hostID)
}

func (r *Repo) SearchPublished(ctx context.Context, q domain.SearchQuery) ([]domain.Accommodation, error) {
	conds := []string{"is_published = TRUE", "is_active = TRUE"}
	var args []any

	if q.City != nil {
		conds = append(conds, "city LIKE ?")
		args = append(args, "%"+*q.City+"%")
	}
	if q.Region != nil {
		conds = append(conds, "region = ?")
		args = append(args, *q.Region)
	}
	if q.MinPrice != nil {
		conds = append(conds, "price_per_night >= ?")
		args = append(args, *q.MinPrice)
	}
	if q.MaxPrice != nil {
		conds = append(conds, "price_per_night <= ?")
		args = append(args, *q.MaxPrice)
	}
	if q.MinGuests != nil {
		conds = append(conds, "max_guests >= ?")
		args = append(args, *q.MinGuests)
	}
	if len(q.AmenityIDs) > 0 {
		// listings carrying every requested amenity
		ph := strings.TrimSuffix(strings.Repeat("?,", len(q.AmenityIDs)), ",")
		conds = append(conds, fmt.Sprintf(
			"id IN (SELECT accommodation_id FROM accommodation_amenities WHERE amenity_id IN (%s) GROUP BY accommodation_id HAVING COUNT(DISTINCT amenity_id) = ?)", ph))
		for _, aid := range q.AmenityIDs {
			args = append(args, aid)
		}
		args = append(args, len(q.AmenityIDs))
	}

	var order string
	switch q.SortBy {
	case domain.SortPriceAsc:
		order = "price_per_night ASC"
	case domain.SortPriceDesc:
		order = "price_per_night DESC"
	case domain.SortRating:
		order = "average_rating DESC"
	default:
		order = "created_at DESC"
	}

	args = append(args, q.Limit, q.Offset)
	sqlStr := "SELECT" + accommodationColumns + " FROM accommodations WHERE " +
		strings.Join(conds, " AND ") + " ORDER BY " + order + " LIMIT ? OFFSET ?"
	return r.listAccommodations(ctx, sqlStr, args...)
}

func (r *Repo) ListFeatured(ctx context.Context, limit int) ([]domain.Accommodation, error) {
	return r.listAccommodations(ctx,
		"SELECT"+accommodationColumns+" FROM accommodations WHERE is_published = TRUE AND is_active = TRUE ORDER BY booking_count DESC LIMIT ?", limit)
}

// ---- images ----

func scanImage(rows interface{ Scan(...any) error }) (domain.Image, error) {
	var img domain.Image
	var fileKey, caption sql.NullString
	if err := rows.Scan(&img.ID, &img.AccommodationID, &img.URL, &fileKey, &caption,
		&img.SortOrder, &img.IsMain, &img.CreatedAt); err != nil {
		return domain.Image{}, err
	}
	img.FileKey = nullStr(fileKey)
	img.Caption = nullStr(caption)
	return img, nil
}

const imageColumns = " id, accommodation_id, url, file_key, caption, sort_order, is_main, created_at "

func (r *Repo) ListImages(ctx context.Context, accommodationID int64) ([]domain.Image, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT"+imageColumns+"FROM accommodation_images WHERE accommodation_id = ? ORDER BY sort_order ASC, id ASC", accommodationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Image
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

func (r *Repo) ListImagesFor(ctx context.Context, accommodationIDs []int64) (map[int64][]domain.Image, error) {
	out := make(map[int64][]domain.Image, len(accommodationIDs))
	if len(accommodationIDs) == 0 {
		return out, nil
	}
	ph := strings.TrimSuffix(strings.Repeat("?,", len(accommodationIDs)), ",")
	args := make([]any, 0, len(accommodationIDs))
	for _, id := range accommodationIDs {
		args = append(args, id)
	}
	rows, err := r.db.QueryContext(ctx,
		"SELECT"+imageColumns+"FROM accommodation_images WHERE accommodation_id IN ("+ph+") ORDER BY sort_order ASC, id ASC", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		out[img.AccommodationID] = append(out[img.AccommodationID], img)
	}
	return out, rows.Err()
}

func (r *Repo) GetImage(ctx context.Context, id int64) (domain.Image, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT"+imageColumns+"FROM accommodation_images WHERE id = ?", id)
	img, err := scanImage(row)
	if err == sql.ErrNoRows {
		return domain.Image{}, domain.ErrNotFound
	}
	return img, err
}

func (r *Repo) AddImage(ctx context.Context, img domain.Image) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO accommodation_images (accommodation_id, url, file_key, caption, sort_order, is_main) VALUES (?, ?, ?, ?, ?, ?)",
		img.AccommodationID, img.URL, valStr(img.FileKey), valStr(img.Caption), img.SortOrder, img.IsMain)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repo) DeleteImage(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM accommodation_images WHERE id = ?", id)
	return err
}

func (r *Repo) SetMainImage(ctx context.Context, accommodationID, imageID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"UPDATE accommodation_images SET is_main = FALSE WHERE accommodation_id = ?", accommodationID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"UPDATE accommodation_images SET is_main = TRUE WHERE id = ? AND accommodation_id = ?", imageID, accommodationID); err != nil {
		return err
	}
	return tx.Commit()
}

// ---- amenity assignment (replace-all) ----

func (r *Repo) SetAmenities(ctx context.Context, accommodationID int64, amenityIDs []int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM accommodation_amenities WHERE accommodation_id = ?", accommodationID); err != nil {
		return err
	}
	if len(amenityIDs) > 0 {
		values := make([]string, 0, len(amenityIDs))
		args := make([]any, 0, len(amenityIDs)*2)
		for _, aid := range amenityIDs {
			values = append(values, "(?,?)")
			args = append(args, accommodationID, aid)
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO accommodation_amenities (accommodation_id, amenity_id) VALUES "+strings.Join(values, ","),
			args...); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *Repo) ListAccommodationAmenities(ctx context.Context, accommodationID int64) ([]domain.Amenity, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT a.id, a.name, a.icon, a.category
FROM accommodation_amenities aa
INNER JOIN amenities a ON a.id = aa.amenity_id
WHERE aa.accommodation_id = ?
ORDER BY a.category ASC, a.name ASC`, accommodationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Amenity
	for rows.Next() {
		var am domain.Amenity
		var icon sql.NullString
		if err := rows.Scan(&am.ID, &am.Name, &icon, &am.Category); err != nil {
			return nil, err
		}
		am.Icon = nullStr(icon)
		out = append(out, am)
	}
	return out, rows.Err()
}
