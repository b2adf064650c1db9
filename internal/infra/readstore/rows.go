package readstore

import (
	"github.com/whiteedeesign/khansart1-sub000/internal/domain/booking"
	"github.com/whiteedeesign/khansart1-sub000/internal/usecase/queries"
)

const (
	serviceColumns = `s.id, s.name, COALESCE(s.description, ''), s.price, s.duration_min,
		s.category_id, COALESCE(c.name, ''), s.is_active, s.sort_order`
	serviceFrom = `FROM services s LEFT JOIN categories c ON c.id = s.category_id`

	masterColumns = `m.id, m.name, COALESCE(m.specialization, ''), COALESCE(m.bio, ''),
		COALESCE(m.photo_url, ''), COALESCE(m.phone, ''), COALESCE(m.email, ''), m.is_active, m.sort_order`
	masterFrom = `FROM masters m`

	publicMasterColumns = `m.id, m.name, COALESCE(m.specialization, ''), COALESCE(m.bio, ''),
		COALESCE(m.photo_url, ''), m.is_active, m.sort_order`

	categoryColumns = `c.id, c.name, c.sort_order`
	categoryFrom    = `FROM categories c`

	reviewColumns = `r.id, r.booking_id, r.master_id, COALESCE(m.name, ''), r.service_id, COALESCE(s.name, ''),
		r.client_name, r.rating, r.comment, r.is_published, r.created_at`
	reviewFrom = `FROM reviews r
		LEFT JOIN masters m ON m.id = r.master_id
		LEFT JOIN services s ON s.id = r.service_id`

	promotionColumns = `p.id, p.name, COALESCE(p.description, ''), p.code, p.discount_percent, p.discount_amount,
		p.start_date, p.end_date, p.is_active, p.created_at`
	promotionFrom = `FROM promotions p`

	galleryColumns = `g.id, g.image_url, COALESCE(g.description, ''), g.is_visible, g.sort_order`
	galleryFrom    = `FROM gallery g`

	bookingColumns = `b.id, b.user_id, b.service_id, s.name, b.master_id, COALESCE(m.name, ''),
		b.client_name, b.client_phone, COALESCE(b.client_email, ''), COALESCE(b.comment, ''),
		b.starts_at, b.duration_min, b.price, b.total_price, b.status, COALESCE(b.promo_code, ''),
		b.reviewed, b.created_at`
	bookingFrom = `FROM bookings b
		JOIN services s ON s.id = b.service_id
		LEFT JOIN masters m ON m.id = b.master_id`

	clientColumns = `cl.id, cl.name, cl.phone, COALESCE(cl.email, ''),
		(SELECT count(*) FROM bookings b WHERE b.client_phone = cl.phone AND b.status = 'completed'),
		cl.created_at`
	clientFrom = `FROM clients cl`

	blacklistColumns = `bl.id, bl.phone, COALESCE(bl.reason, ''), bl.created_at`
	blacklistFrom    = `FROM blacklist bl`
)

func scanService(row rowScanner) (queries.ServiceView, error) {
	var v queries.ServiceView
	err := row.Scan(&v.ID, &v.Name, &v.Description, &v.Price, &v.DurationMin,
		&v.CategoryID, &v.CategoryName, &v.Active, &v.SortOrder)
	return v, err
}

func scanMaster(row rowScanner) (queries.MasterView, error) {
	var v queries.MasterView
	err := row.Scan(&v.ID, &v.Name, &v.Specialization, &v.Bio,
		&v.PhotoURL, &v.Phone, &v.Email, &v.Active, &v.SortOrder)
	return v, err
}

func scanPublicMaster(row rowScanner) (queries.PublicMasterView, error) {
	var v queries.PublicMasterView
	err := row.Scan(&v.ID, &v.Name, &v.Specialization, &v.Bio, &v.PhotoURL, &v.Active, &v.SortOrder)
	return v, err
}

func scanCategory(row rowScanner) (queries.CategoryView, error) {
	var v queries.CategoryView
	err := row.Scan(&v.ID, &v.Name, &v.SortOrder)
	return v, err
}

func scanReview(row rowScanner) (queries.ReviewView, error) {
	var v queries.ReviewView
	err := row.Scan(&v.ID, &v.BookingID, &v.MasterID, &v.MasterName, &v.ServiceID, &v.ServiceName,
		&v.ClientName, &v.Rating, &v.Comment, &v.Published, &v.CreatedAt)
	return v, err
}

func scanPromotion(row rowScanner) (queries.PromotionView, error) {
	var v queries.PromotionView
	err := row.Scan(&v.ID, &v.Name, &v.Description, &v.Code, &v.DiscountPercent, &v.DiscountAmount,
		&v.StartDate, &v.EndDate, &v.Active, &v.CreatedAt)
	return v, err
}

func scanGallery(row rowScanner) (queries.GalleryView, error) {
	var v queries.GalleryView
	err := row.Scan(&v.ID, &v.ImageURL, &v.Description, &v.Visible, &v.SortOrder)
	return v, err
}

func scanBooking(row rowScanner) (queries.BookingView, error) {
	var (
		v      queries.BookingView
		status string
	)
	err := row.Scan(&v.ID, &v.UserID, &v.ServiceID, &v.ServiceName, &v.MasterID, &v.MasterName,
		&v.ClientName, &v.ClientPhone, &v.ClientEmail, &v.Comment,
		&v.StartsAt, &v.DurationMin, &v.Price, &v.TotalPrice, &status, &v.PromoCode,
		&v.Reviewed, &v.CreatedAt)
	v.Status = booking.Status(status)
	return v, err
}

func scanClient(row rowScanner) (queries.ClientView, error) {
	var v queries.ClientView
	err := row.Scan(&v.ID, &v.Name, &v.Phone, &v.Email, &v.VisitCount, &v.CreatedAt)
	return v, err
}

func scanBlacklist(row rowScanner) (queries.BlacklistView, error) {
	var v queries.BlacklistView
	err := row.Scan(&v.ID, &v.Phone, &v.Reason, &v.CreatedAt)
	return v, err
}
