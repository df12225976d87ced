package model

import "time"

// Dimension and fact rows for the rental marketplace star schema. All keys
// are dense integer surrogates assigned in generation order; struct tags
// carry the database column names used by the GORM export.

// DateRecord is one calendar day of the date dimension. Weekday follows the
// analytics convention Monday=0..Sunday=6.
type DateRecord struct {
	DateID  int       `gorm:"column:date_id;primaryKey"`
	Date    time.Time `gorm:"column:date"`
	Year    int       `gorm:"column:year"`
	Quarter int       `gorm:"column:quarter"`
	Month   int       `gorm:"column:month"`
	Day     int       `gorm:"column:day"`
	Weekday int       `gorm:"column:weekday"`
}

func (DateRecord) TableName() string { return "dim_date" }

type Owner struct {
	OwnerID  int    `gorm:"column:owner_id;primaryKey"`
	Name     string `gorm:"column:owner_name"`
	Email    string `gorm:"column:owner_email"`
	Phone    string `gorm:"column:owner_phone"`
	Category string `gorm:"column:owner_category"`
}

func (Owner) TableName() string { return "dim_owner" }

type Platform struct {
	PlatformID int     `gorm:"column:platform_id;primaryKey"`
	Name       string  `gorm:"column:platform_name"`
	Bias       float64 `gorm:"column:booking_bias"`
}

func (Platform) TableName() string { return "dim_platform" }

type Property struct {
	PropertyID       int     `gorm:"column:property_id;primaryKey"`
	OwnerID          int     `gorm:"column:owner_id"`
	Type             string  `gorm:"column:property_type"`
	Country          string  `gorm:"column:country"`
	City             string  `gorm:"column:city"`
	DistanceToCenter float64 `gorm:"column:distance_to_city_center"`
	// Amenities is a comma-joined, deduplicated, lexicographically sorted
	// list.
	Amenities string  `gorm:"column:amenities"`
	BasePrice float64 `gorm:"column:base_price"`
}

func (Property) TableName() string { return "dim_property" }

type Tenant struct {
	TenantID int    `gorm:"column:tenant_id;primaryKey"`
	Name     string `gorm:"column:tenant_name"`
	Email    string `gorm:"column:tenant_email"`
	Phone    string `gorm:"column:tenant_phone"`
}

func (Tenant) TableName() string { return "dim_tenant" }

type Booking struct {
	BookingID      int       `gorm:"column:booking_id;primaryKey"`
	PropertyID     int       `gorm:"column:property_id"`
	PlatformID     int       `gorm:"column:platform_id"`
	TenantID       int       `gorm:"column:tenant_id"`
	CheckInDateID  int       `gorm:"column:check_in_date_id"`
	CheckOutDateID int       `gorm:"column:check_out_date_id"`
	CheckIn        time.Time `gorm:"column:check_in"`
	CheckOut       time.Time `gorm:"column:check_out"`
	Nights         int       `gorm:"column:nights"`
	Revenue        float64   `gorm:"column:revenue"`
	Purpose        string    `gorm:"column:purpose_of_stay"`
	DamageFlag     int       `gorm:"column:damage_flag"`
	DamageCost     float64   `gorm:"column:damage_cost"`
	TurnoverFlag   int       `gorm:"column:turnover_flag"`
}

func (Booking) TableName() string { return "fact_bookings" }

type Review struct {
	ReviewID     int       `gorm:"column:review_id;primaryKey"`
	BookingID    int       `gorm:"column:booking_id"`
	TenantID     int       `gorm:"column:tenant_id"`
	PropertyID   int       `gorm:"column:property_id"`
	ReviewDateID int       `gorm:"column:review_date_id"`
	Rating       int       `gorm:"column:rating"`
	Text         string    `gorm:"column:review_text"`
	ReviewDate   time.Time `gorm:"column:review_date"`
}

func (Review) TableName() string { return "fact_reviews" }
