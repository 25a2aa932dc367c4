package storage

import (
	"errors"

	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/game"
	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) GetSessionByKey(key string) (*game.Session, error) {
	var s game.Session
	err := r.db.Where("session_key = ?", key).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sqliteRepository) CreateSession(s *game.Session) error {
	return r.db.Create(s).Error
}

func (r *sqliteRepository) SaveSession(s *game.Session) error {
	return r.db.Save(s).Error
}
