package models

import "time"

const (
	BookingStatusConfirmed = "confirmed"
)

// Booking represents a confirmed reservation of one slot.
type Booking struct {
	ID                  string    `bson:"id" json:"id" gorm:"primaryKey;column:id"`
	BusinessID          string    `bson:"businessId" json:"business_id" gorm:"column:business_id;uniqueIndex:idx_business_slot;index"`
	Date                string    `bson:"date" json:"date" gorm:"column:date;uniqueIndex:idx_business_slot"`                 // "YYYY-MM-DD"
	StartTime           string    `bson:"startTime" json:"start_time" gorm:"column:start_time;uniqueIndex:idx_business_slot"` // "HH:MM"
	CustomerName        string    `bson:"customerName,omitempty" json:"customer_name,omitempty" gorm:"column:customer_name"`
	CustomerEmail       string    `bson:"customerEmail,omitempty" json:"customer_email,omitempty" gorm:"column:customer_email"`
	CustomerPhone       string    `bson:"customerPhone,omitempty" json:"customer_phone,omitempty" gorm:"column:customer_phone"`
	EventDate           string    `bson:"eventDate,omitempty" json:"event_date,omitempty" gorm:"column:event_date"`
	EventDetails        string    `bson:"eventDetails,omitempty" json:"event_details,omitempty" gorm:"column:event_details"`
	Status              string    `bson:"status" json:"status" gorm:"column:status;default:confirmed"`
	ExternalCalendarRef string    `bson:"externalCalendarRef,omitempty" json:"external_calendar_ref,omitempty" gorm:"column:external_calendar_ref"`
	CreatedAt           time.Time `bson:"createdAt" json:"created_at" gorm:"column:created_at"`
}

func (Booking) TableName() string { return "bookings" }
