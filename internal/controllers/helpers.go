package controllers

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"lge_services/internal/config"
	"lge_services/internal/models"
)

// isUniqueViolation reports whether err is a uniqueness-constraint failure.
// Registration handlers pre-check for duplicates; this catches the race
// where two requests pass the pre-check concurrently.
func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// resolveService fetches a catalog entry by exact name.
func resolveService(name string) (models.Service, error) {
	var service models.Service
	err := config.DB.Where("service_name = ?", name).First(&service).Error
	return service, err
}
