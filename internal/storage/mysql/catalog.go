package mysql

import (
	"context"
	"database/sql"
	"strings"

	"fewo_booking/internal/domain"
)

func (r *Repo) ListAmenities(ctx context.Context) ([]domain.Amenity, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, icon, category FROM amenities ORDER BY category ASC, name ASC")
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

// SeedAmenities inserts the catalog only when the table is still empty.
func (r *Repo) SeedAmenities(ctx context.Context, items []domain.Amenity) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM amenities").Scan(&n); err != nil {
		return 0, err
	}
	if n > 0 || len(items) == 0 {
		return 0, nil
	}
	values := make([]string, 0, len(items))
	args := make([]any, 0, len(items)*3)
	for _, am := range items {
		values = append(values, "(?,?,?)")
		args = append(args, am.Name, valStr(am.Icon), am.Category)
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO amenities (name, icon, category) VALUES "+strings.Join(values, ","), args...)
	if err != nil {
		return 0, err
	}
	inserted, _ := res.RowsAffected()
	return int(inserted), nil
}

// ---- reviews ----

func (r *Repo) ListReviews(ctx context.Context, accommodationID int64) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, booking_id, accommodation_id, guest_name, rating, comment, host_response, is_published, created_at
FROM reviews
WHERE accommodation_id = ? AND is_published = TRUE
ORDER BY created_at DESC, id DESC`, accommodationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		var rv domain.Review
		var comment, response sql.NullString
		if err := rows.Scan(&rv.ID, &rv.BookingID, &rv.AccommodationID, &rv.GuestName,
			&rv.Rating, &comment, &response, &rv.IsPublished, &rv.CreatedAt); err != nil {
			return nil, err
		}
		rv.Comment = nullStr(comment)
		rv.HostResponse = nullStr(response)
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *Repo) CreateReview(ctx context.Context, rv domain.Review) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertReviewSQL,
		rv.BookingID, rv.AccommodationID, rv.GuestName, rv.Rating, valStr(rv.Comment), rv.IsPublished)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ---- users ----

func (r *Repo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, name, email, role, phone, bio, avatar_url FROM users WHERE id = ?", id)

	var u domain.User
	var name, email, phone, bio, avatar sql.NullString
	var role string
	if err := row.Scan(&u.ID, &name, &email, &role, &phone, &bio, &avatar); err != nil {
		if err == sql.ErrNoRows {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}
	u.Name = nullStr(name)
	u.Email = nullStr(email)
	u.Role = domain.Role(role)
	u.Phone = nullStr(phone)
	u.Bio = nullStr(bio)
	u.AvatarURL = nullStr(avatar)
	return u, nil
}

// ---- regions ----

func (r *Repo) ListRegions(ctx context.Context) ([]domain.Region, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, slug, description, image_url, accommodation_count, is_active
FROM regions WHERE is_active = TRUE ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Region
	for rows.Next() {
		var rg domain.Region
		var desc, img sql.NullString
		if err := rows.Scan(&rg.ID, &rg.Name, &rg.Slug, &desc, &img, &rg.AccommodationCount, &rg.IsActive); err != nil {
			return nil, err
		}
		rg.Description = nullStr(desc)
		rg.ImageURL = nullStr(img)
		out = append(out, rg)
	}
	return out, rows.Err()
}

func (r *Repo) CreateRegion(ctx context.Context, rg domain.Region) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO regions (name, slug, description, image_url) VALUES (?, ?, ?, ?)",
		rg.Name, rg.Slug, valStr(rg.Description), valStr(rg.ImageURL))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ---- platform config ----

func (r *Repo) GetConfig(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT `key`, value FROM platform_config")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]string{}
	for rows.Next() {
		var k string
		var v sql.NullString
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		out[k] = v.String
	}
	return out, rows.Err()
}

func (r *Repo) SetConfig(ctx context.Context, e domain.ConfigEntry) error {
	_, err := r.db.ExecContext(ctx, setConfigSQL, e.Key, e.Value, valStr(e.Description))
	return err
}

// EnsureConfigDefaults inserts missing keys without touching existing values.
func (r *Repo) EnsureConfigDefaults(ctx context.Context, defaults []domain.ConfigEntry) error {
	for _, e := range defaults {
		if _, err := r.db.ExecContext(ctx,
			"INSERT IGNORE INTO platform_config (`key`, value, description) VALUES (?, ?, ?)",
			e.Key, e.Value, valStr(e.Description)); err != nil {
			return err
		}
	}
	return nil
}
