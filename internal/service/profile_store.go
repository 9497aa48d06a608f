package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/infektyd/FoundationWriting/internal/config"
	"github.com/infektyd/FoundationWriting/internal/model"
	"github.com/infektyd/FoundationWriting/internal/repository"
	"github.com/infektyd/FoundationWriting/internal/util"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ErrProfileNotFound reports that no persisted profile exists for the user.
var ErrProfileNotFound = errors.New("no persisted profile")

// ProfileStore persists the gamified profile as a single serialized blob
// per user. A missing or unreadable blob is reported, not repaired; the
// progression engine degrades to a fresh default profile.
type ProfileStore interface {
	Load(ctx context.Context, userID uint) (*model.GamifiedUserProfile, error)
	Save(ctx context.Context, userID uint, profile *model.GamifiedUserProfile) error
}

// DatabaseProfileStore keeps the blob in the relational database.
type DatabaseProfileStore struct {
	Repo *repository.ProfileRepository
}

func NewDatabaseProfileStore(repo *repository.ProfileRepository) *DatabaseProfileStore {
	return &DatabaseProfileStore{Repo: repo}
}

func (s *DatabaseProfileStore) Load(ctx context.Context, userID uint) (*model.GamifiedUserProfile, error) {
	data, err := s.Repo.LoadBlob(userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodeProfile(data)
}

func (s *DatabaseProfileStore) Save(ctx context.Context, userID uint, profile *model.GamifiedUserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return s.Repo.SaveBlob(userID, data)
}

// MinioProfileStore keeps the blob in an object store, one object per
// user key. Selected by storage.type = "minio".
type MinioProfileStore struct {
	Config *config.StorageConfig
	Client *minio.Client
}

func NewMinioProfileStore(cfg *config.StorageConfig) (*MinioProfileStore, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: false,
	})
	if err != nil {
		return nil, err
	}
	return &MinioProfileStore{Config: cfg, Client: client}, nil
}

func (s *MinioProfileStore) objectName(userID uint) string {
	return fmt.Sprintf("profiles/%d.json", userID)
}

func (s *MinioProfileStore) Load(ctx context.Context, userID uint) (*model.GamifiedUserProfile, error) {
	obj, err := s.Client.GetObject(ctx, s.Config.MinioBucket, s.objectName(userID), minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		var respErr minio.ErrorResponse
		if errors.As(err, &respErr) && respErr.Code == "NoSuchKey" {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrProfileNotFound
	}
	return decodeProfile(data)
}

func (s *MinioProfileStore) Save(ctx context.Context, userID uint, profile *model.GamifiedUserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	_, err = s.Client.PutObject(ctx, s.Config.MinioBucket, s.objectName(userID),
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: "application/json",
		})
	return err
}

func decodeProfile(data []byte) (*model.GamifiedUserProfile, error) {
	var profile model.GamifiedUserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, util.ErrProfileCorrupt
	}
	if profile.Skills == nil {
		profile.Skills = make(map[model.SkillArea]*model.GamifiedSkillData)
	}
	if profile.SkillProgress == nil {
		profile.SkillProgress = make(map[model.SkillArea]*model.SkillProgress)
	}
	if profile.Badges == nil {
		profile.Badges = make(map[model.Badge]bool)
	}
	if profile.UnlockedFeatures == nil {
		profile.UnlockedFeatures = make(map[string]bool)
	}
	return &profile, nil
}

// NewProfileStore selects the blob backend from configuration.
func NewProfileStore(cfg *config.Config, repo *repository.ProfileRepository) (ProfileStore, error) {
	switch cfg.Storage.Type {
	case "minio":
		return NewMinioProfileStore(&cfg.Storage)
	default:
		return NewDatabaseProfileStore(repo), nil
	}
}
