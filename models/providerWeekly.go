package models

// WeeklySchedule is the opening window of one business on one weekday.
// A missing row for a weekday means the business is closed that day.
type WeeklySchedule struct {
	BusinessID string `bson:"businessId" json:"business_id" gorm:"primaryKey;column:business_id"`
	Weekday    int    `bson:"weekday" json:"weekday" gorm:"primaryKey;column:weekday"` // 0=Monday .. 6=Sunday
	OpenTime   string `bson:"openTime" json:"open_time" gorm:"column:open_time"`       // "HH:MM"
	CloseTime  string `bson:"closeTime" json:"close_time" gorm:"column:close_time"`    // "HH:MM"
}

func (WeeklySchedule) TableName() string { return "weekly_schedule" }

// Window returns the parsed open and close times.
func (w WeeklySchedule) Window() (ClockTime, ClockTime, error) {
	open, err := ParseClockTime(w.OpenTime)
	if err != nil {
		return 0, 0, err
	}
	closeAt, err := ParseClockTime(w.CloseTime)
	if err != nil {
		return 0, 0, err
	}
	return open, closeAt, nil
}

// ScheduleUpsertRequest is the admin payload for setting one weekday window.
type ScheduleUpsertRequest struct {
	BusinessID string `json:"business_id" binding:"required"`
	Weekday    *int   `json:"weekday" binding:"required,min=0,max=6"`
	OpenTime   string `json:"open_time" binding:"required"`
	CloseTime  string `json:"close_time" binding:"required"`
}
