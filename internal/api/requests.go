package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/tragkas/portfolio/internal/domain"
)

// Request bodies are decoded into typed structs and validated before any
// store call. Validation failures surface as 400 with a field-level message.

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r loginRequest) validate() error {
	if r.Username == "" || r.Password == "" {
		return errors.New("username and password are required")
	}
	return nil
}

type credentialsRequest struct {
	OldPassword string `json:"oldPassword"`
	NewUsername string `json:"newUsername"`
	NewPassword string `json:"newPassword"`
}

func (r credentialsRequest) validate() error {
	if r.OldPassword == "" {
		return errors.New("oldPassword is required")
	}
	if r.NewUsername == "" || r.NewPassword == "" {
		return errors.New("newUsername and newPassword are required")
	}
	return nil
}

type categoryRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Emoji    string `json:"emoji"`
}

func (r categoryRequest) validate() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

type createItemRequest struct {
	CategoryID  string `json:"categoryId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Tag         string `json:"tag"`
	IsPopular   bool   `json:"isPopular"`
}

func (r createItemRequest) validate() error {
	if r.CategoryID == "" {
		return errors.New("categoryId is required")
	}
	if r.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

func (r createItemRequest) fields() domain.ItemFields {
	return domain.ItemFields{
		Title:       r.Title,
		Description: r.Description,
		URL:         r.URL,
		Tag:         r.Tag,
		IsPopular:   r.IsPopular,
	}
}

type updateItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Tag         string `json:"tag"`
	IsPopular   bool   `json:"isPopular"`
}

func (r updateItemRequest) validate() error {
	if r.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

func (r updateItemRequest) fields() domain.ItemFields {
	return domain.ItemFields{
		Title:       r.Title,
		Description: r.Description,
		URL:         r.URL,
		Tag:         r.Tag,
		IsPopular:   r.IsPopular,
	}
}

type reorderRequest struct {
	CategoryID string                `json:"categoryId"`
	Items      []domain.ItemPosition `json:"items"`
}

// validate checks the payload shape: the category must be named, ids must be
// unique and positions must form exactly 0..n-1. Ownership of the ids is
// checked transactionally by the store.
func (r reorderRequest) validate() error {
	if r.CategoryID == "" {
		return errors.New("categoryId is required")
	}
	if r.Items == nil {
		return errors.New("items array is required")
	}

	ids := make(map[string]bool, len(r.Items))
	positions := make([]bool, len(r.Items))
	for _, p := range r.Items {
		if p.ID == "" {
			return errors.New("item id is required")
		}
		if ids[p.ID] {
			return fmt.Errorf("duplicate item id %q", p.ID)
		}
		ids[p.ID] = true
		if p.Position < 0 || p.Position >= len(r.Items) {
			return fmt.Errorf("position %d out of range", p.Position)
		}
		if positions[p.Position] {
			return fmt.Errorf("duplicate position %d", p.Position)
		}
		positions[p.Position] = true
	}
	return nil
}

type validator interface {
	validate() error
}

// decode parses a JSON request body into req and runs its validation
func decode(r *http.Request, req validator) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return errors.New("invalid JSON body")
	}
	return req.validate()
}
