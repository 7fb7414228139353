package service

import (
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"berg-stat-api/internal/core/auth"
	"berg-stat-api/internal/domain"
	"berg-stat-api/internal/repo"
	"berg-stat-api/pkg/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&domain.User{},
		&domain.Place{},
		&domain.Tag{},
		&domain.Opinion{},
		&domain.Report{},
		&domain.Like{},
	)
	if err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func newTestJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "berg-stat-test", TTL: time.Hour}
}

func seedUser(t *testing.T, db *gorm.DB, username string, isAdmin, isBanned bool) *domain.User {
	t.Helper()
	u := &domain.User{
		ID:           utils.NewID(),
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: utils.HashPassword("secret"),
		IsAdmin:      isAdmin,
		IsBanned:     isBanned,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedPlace(t *testing.T, db *gorm.DB, name string) *domain.Place {
	t.Helper()
	p := &domain.Place{
		ID:   utils.NewID(),
		Name: name,
		Coordinates: domain.Coordinates{
			Latitude:  49.18,
			Longitude: 20.09,
			Elevation: 2499,
		},
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed place: %v", err)
	}
	return p
}

func newOpinionService(db *gorm.DB) *OpinionService {
	return NewOpinionService(
		repo.NewOpinionRepo(db),
		repo.NewPlaceRepo(db),
		repo.NewUserRepo(db),
		repo.NewTagRepo(db),
	)
}
