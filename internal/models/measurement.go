package models

import "time"

const (
	MeasurementWeight = "weight"
	MeasurementWaist  = "waist"
)

type Measurement struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UID       string    `gorm:"uniqueIndex;not null" json:"id"`
	Date      string    `gorm:"index;not null" json:"date"`
	Type      string    `gorm:"not null;default:weight" json:"type"`
	Value     float64   `json:"value"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
