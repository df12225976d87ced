package export

import (
	"time"

	"staygen/internal/generator"
)

// table is one flat tabular view of a dataset entity, shared by the CSV and
// Excel writers. Cells are string, int or float64; dates are pre-formatted
// YYYY-MM-DD strings and monetary floats are already rounded to 2 decimals.
type table struct {
	Name   string
	Header []string
	Rows   [][]interface{}
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// tables flattens the dataset into its seven output tables, in dependency
// order.
func tables(ds *generator.Dataset) []table {
	dates := table{
		Name:   "dim_date",
		Header: []string{"date_id", "date", "year", "quarter", "month", "day", "weekday"},
	}
	for _, d := range ds.Dates {
		dates.Rows = append(dates.Rows, []interface{}{
			d.DateID, formatDate(d.Date), d.Year, d.Quarter, d.Month, d.Day, d.Weekday,
		})
	}

	owners := table{
		Name:   "dim_owner",
		Header: []string{"owner_id", "owner_name", "owner_email", "owner_phone", "owner_category"},
	}
	for _, o := range ds.Owners {
		owners.Rows = append(owners.Rows, []interface{}{
			o.OwnerID, o.Name, o.Email, o.Phone, o.Category,
		})
	}

	platforms := table{
		Name:   "dim_platform",
		Header: []string{"platform_id", "platform_name", "booking_bias"},
	}
	for _, p := range ds.Platforms {
		platforms.Rows = append(platforms.Rows, []interface{}{
			p.PlatformID, p.Name, p.Bias,
		})
	}

	properties := table{
		Name: "dim_property",
		Header: []string{"property_id", "owner_id", "property_type", "country", "city",
			"distance_to_city_center", "amenities", "base_price"},
	}
	for _, p := range ds.Properties {
		properties.Rows = append(properties.Rows, []interface{}{
			p.PropertyID, p.OwnerID, p.Type, p.Country, p.City,
			p.DistanceToCenter, p.Amenities, p.BasePrice,
		})
	}

	tenants := table{
		Name:   "dim_tenant",
		Header: []string{"tenant_id", "tenant_name", "tenant_email", "tenant_phone"},
	}
	for _, t := range ds.Tenants {
		tenants.Rows = append(tenants.Rows, []interface{}{
			t.TenantID, t.Name, t.Email, t.Phone,
		})
	}

	bookings := table{
		Name: "fact_bookings",
		Header: []string{"booking_id", "property_id", "platform_id", "tenant_id",
			"check_in_date_id", "check_out_date_id", "check_in", "check_out",
			"nights", "revenue", "purpose_of_stay", "damage_flag", "damage_cost", "turnover_flag"},
	}
	for _, b := range ds.Bookings {
		bookings.Rows = append(bookings.Rows, []interface{}{
			b.BookingID, b.PropertyID, b.PlatformID, b.TenantID,
			b.CheckInDateID, b.CheckOutDateID, formatDate(b.CheckIn), formatDate(b.CheckOut),
			b.Nights, b.Revenue, b.Purpose, b.DamageFlag, b.DamageCost, b.TurnoverFlag,
		})
	}

	reviews := table{
		Name: "fact_reviews",
		Header: []string{"review_id", "booking_id", "tenant_id", "property_id",
			"review_date_id", "rating", "review_text", "review_date"},
	}
	for _, r := range ds.Reviews {
		reviews.Rows = append(reviews.Rows, []interface{}{
			r.ReviewID, r.BookingID, r.TenantID, r.PropertyID,
			r.ReviewDateID, r.Rating, r.Text, formatDate(r.ReviewDate),
		})
	}

	return []table{dates, owners, platforms, properties, tenants, bookings, reviews}
}
