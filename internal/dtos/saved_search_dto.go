package dtos

import (
	"encoding/json"
	"time"
)

type SavedSearchCreationRequest struct {
	UserID  string          `json:"userId" binding:"required"`
	Name    string          `json:"name" binding:"required"`
	Filters json.RawMessage `json:"filters" binding:"required"`
}

type SavedSearch struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Name      string          `json:"name"`
	Filters   json.RawMessage `json:"filters"`
	CreatedAt time.Time       `json:"createdAt"`
}
