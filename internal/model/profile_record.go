package model

// ProfileRecord stores one user's gamified profile as a serialized blob.
// The blob layout is owned by the progression engine; the database only
// sees opaque JSON.
type ProfileRecord struct {
	BaseModel
	UserID uint   `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"userId"`
	Data   []byte `gorm:"type:json" json:"-"`
}

func (ProfileRecord) TableName() string {
	return "profile_records"
}
