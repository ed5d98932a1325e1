package models

import "time"

// Record is one persisted key/value entry of the local record store.
type Record struct {
	Key       string    `gorm:"primaryKey;size:191" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName returns the database table name for Record.
func (Record) TableName() string {
	return "records"
}
