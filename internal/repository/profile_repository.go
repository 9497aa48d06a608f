package repository

import (
	"errors"

	"github.com/infektyd/FoundationWriting/internal/model"

	"gorm.io/gorm"
)

// ErrProfileNotFound reports that no blob exists yet for the user.
var ErrProfileNotFound = errors.New("profile record not found")

// ProfileRepository stores the serialized gamified profile blob, one row
// per user. The repository treats the blob as opaque bytes.
type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) LoadBlob(userID uint) ([]byte, error) {
	var record model.ProfileRecord
	err := r.DB.Where("user_id = ?", userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return record.Data, nil
}

func (r *ProfileRepository) SaveBlob(userID uint, data []byte) error {
	var record model.ProfileRecord
	err := r.DB.Where("user_id = ?", userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = model.ProfileRecord{UserID: userID, Data: data}
		return r.DB.Create(&record).Error
	}
	if err != nil {
		return err
	}
	record.Data = data
	return r.DB.Save(&record).Error
}
