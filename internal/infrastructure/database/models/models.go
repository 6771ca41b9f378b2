package models

import "time"

// Row is one collection record. The domain record is stored as a JSON
// payload so all five collections share a single table; (collection, id)
// is the primary key and id order matches insertion order because ids are
// assigned monotonically.
type Row struct {
	Collection string    `json:"collection" gorm:"primaryKey;type:varchar(32)"`
	ID         int       `json:"id" gorm:"primaryKey"`
	Value      string    `json:"value" gorm:"type:json"`
	CDate      time.Time `json:"cdate" gorm:"autoCreateTime"`
	MDate      time.Time `json:"mdate" gorm:"autoUpdateTime"`
}
