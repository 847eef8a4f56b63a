package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/moviedb/tmdbx/utils"
)

// Lists exposes the list endpoints: the one surface of the API that needs
// all three verbs.
type Lists struct {
	client *Client
}

func NewLists(c *Client) *Lists {
	return &Lists{client: c}
}

// statusEnvelope is the API's generic mutation acknowledgement.
type statusEnvelope struct {
	Success       bool   `json:"success"`
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	ListID        int    `json:"list_id"`
}

type ListDetails struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	CreatedBy     string         `json:"created_by"`
	ItemCount     int            `json:"item_count"`
	FavoriteCount int            `json:"favorite_count"`
	Items         []MovieSummary `json:"items"`
}

// Create makes a new list and returns its id.
func (l *Lists) Create(ctx context.Context, name, description, language string) (int, error) {
	if strings.TrimSpace(name) == "" {
		return 0, fmt.Errorf("create list: name is required")
	}

	jsonBody, err := utils.EncodeJSONBody(map[string]any{
		"name":        name,
		"description": description,
		"language":    language,
	})
	if err != nil {
		return 0, fmt.Errorf("create list: %w", err)
	}

	body, err := l.client.Post(ctx, l.client.endpoint("list"), jsonBody)
	if err != nil {
		return 0, fmt.Errorf("create list: %w", err)
	}

	var env statusEnvelope
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		return 0, fmt.Errorf("create list: decode response: %w", err)
	}
	if env.ListID == 0 {
		return 0, fmt.Errorf("create list: empty list id in response (%s)", env.StatusMessage)
	}
	return env.ListID, nil
}

// Get fetches a list with its items.
func (l *Lists) Get(ctx context.Context, listID int) (*ListDetails, error) {
	body, err := l.client.Get(ctx, l.client.endpoint(fmt.Sprintf("list/%d", listID)))
	if err != nil {
		return nil, fmt.Errorf("get list: %w", err)
	}

	var details ListDetails
	if err := json.Unmarshal([]byte(body), &details); err != nil {
		return nil, fmt.Errorf("get list: decode response: %w", err)
	}
	return &details, nil
}

// Delete removes a list.
func (l *Lists) Delete(ctx context.Context, listID int) error {
	if _, err := l.client.Delete(ctx, l.client.endpoint(fmt.Sprintf("list/%d", listID))); err != nil {
		return fmt.Errorf("delete list: %w", err)
	}
	return nil
}
