package store

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Xwdgood/Virtual-GP/model"
)

// UserRecord is the persisted shape: one row per email holding the whole
// UserData as a JSON blob. Dates inside the blob round-trip through RFC 3339
// strings. Reports are embedded in the blob, not rows of their own.
type UserRecord struct {
	Email     string `gorm:"primaryKey;size:191"`
	Data      string `gorm:"type:mediumtext"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GormStore is the MySQL-backed UserStore. Reads go through an LRU cache of
// parsed blobs; saves replace the whole keyed record and drop the cache entry.
type GormStore struct {
	db    *gorm.DB
	cache *userCache
}

// NewGormStore migrates the user table and installs the two well-known seed
// accounts when the table is empty.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&UserRecord{}); err != nil {
		return nil, fmt.Errorf("migrate user records: %w", err)
	}

	s := &GormStore{db: db, cache: newUserCache(256)}

	var count int64
	if err := db.Model(&UserRecord{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("count user records: %w", err)
	}
	if count == 0 {
		for _, u := range seedUsers(time.Now()) {
			if err := s.SaveUser(u); err != nil {
				return nil, fmt.Errorf("seed user %s: %w", u.Email, err)
			}
		}
	}

	return s, nil
}

func (s *GormStore) GetUser(email string) (*model.UserData, error) {
	if cached, ok := s.cache.get(email); ok {
		user := cloneUser(cached)
		return &user, nil
	}

	var rec UserRecord
	if err := s.db.First(&rec, "email = ?", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var user model.UserData
	if err := json.Unmarshal([]byte(rec.Data), &user); err != nil {
		// An unreadable blob counts as a missing user rather than an error.
		return nil, ErrUserNotFound
	}

	s.cache.set(email, cloneUser(user))
	return &user, nil
}

func (s *GormStore) SaveUser(user model.UserData) error {
	blob, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user %s: %w", user.Email, err)
	}

	rec := UserRecord{Email: user.Email, Data: string(blob)}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error; err != nil {
		return fmt.Errorf("save user %s: %w", user.Email, err)
	}

	s.cache.invalidate(user.Email)
	return nil
}

func (s *GormStore) AllUsers() ([]model.UserData, error) {
	var records []UserRecord
	if err := s.db.Order("email ASC").Find(&records).Error; err != nil {
		return nil, err
	}

	users := make([]model.UserData, 0, len(records))
	for _, rec := range records {
		var user model.UserData
		if err := json.Unmarshal([]byte(rec.Data), &user); err != nil {
			// Skip unreadable rows, same degradation as GetUser.
			continue
		}
		users = append(users, user)
	}
	return users, nil
}
