package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/justsurfingit/job-portal/internal/dtos"
	"github.com/justsurfingit/job-portal/internal/models"
	"gorm.io/gorm"
)

var (
	ErrSavedSearchNotFound = errors.New("saved search not found")
	ErrInvalidFilters      = errors.New("filters must be a JSON object")
)

type SavedSearchService struct {
	DB *gorm.DB
}

func NewSavedSearchService(db *gorm.DB) *SavedSearchService {
	return &SavedSearchService{DB: db}
}

// ensureTable runs on every call. AutoMigrate is a no-op once the table
// matches the model.
func (s *SavedSearchService) ensureTable(ctx context.Context) error {
	if err := s.DB.WithContext(ctx).AutoMigrate(&models.SavedSearch{}); err != nil {
		return fmt.Errorf("ensure saved_searches table: %w", err)
	}
	return nil
}

func (s *SavedSearchService) Create(ctx context.Context, req *dtos.SavedSearchCreationRequest) (*dtos.SavedSearch, error) {
	filters, err := compactFilters(req.Filters)
	if err != nil {
		return nil, err
	}
	if err := s.ensureTable(ctx); err != nil {
		return nil, err
	}

	row := &models.SavedSearch{
		ID:      uuid.NewString(),
		UserID:  strings.TrimSpace(req.UserID),
		Name:    strings.TrimSpace(req.Name),
		Filters: filters,
	}
	if err := s.DB.WithContext(ctx).Create(row).Error; err != nil {
		return nil, fmt.Errorf("create saved search: %w", err)
	}
	return toSavedSearch(row), nil
}

// List returns the user's saved searches, most recent first.
func (s *SavedSearchService) List(ctx context.Context, userID string) ([]dtos.SavedSearch, error) {
	userID = strings.TrimSpace(userID)
	if err := s.ensureTable(ctx); err != nil {
		return nil, err
	}

	var rows []models.SavedSearch
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list saved searches for %s: %w", userID, err)
	}

	out := make([]dtos.SavedSearch, 0, len(rows))
	for i := range rows {
		out = append(out, *toSavedSearch(&rows[i]))
	}
	return out, nil
}

// Delete removes a saved search only if it belongs to userID.
func (s *SavedSearchService) Delete(ctx context.Context, id, userID string) error {
	id, userID = strings.TrimSpace(id), strings.TrimSpace(userID)
	if err := s.ensureTable(ctx); err != nil {
		return err
	}

	res := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.SavedSearch{})
	if res.Error != nil {
		return fmt.Errorf("delete saved search %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrSavedSearchNotFound
	}
	return nil
}

func compactFilters(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return "", ErrInvalidFilters
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return "", ErrInvalidFilters
	}
	return buf.String(), nil
}

func toSavedSearch(row *models.SavedSearch) *dtos.SavedSearch {
	return &dtos.SavedSearch{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Filters:   json.RawMessage(row.Filters),
		CreatedAt: row.CreatedAt,
	}
}
