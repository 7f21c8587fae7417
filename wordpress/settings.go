package wordpress

import (
	"context"
	"fmt"
	"net/http"
)

// SettingsInput holds writable site settings. Only set fields are sent.
type SettingsInput struct {
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	Timezone     string `json:"timezone_string,omitempty"`
	DateFormat   string `json:"date_format,omitempty"`
	TimeFormat   string `json:"time_format,omitempty"`
	Language     string `json:"language,omitempty"`
	PostsPerPage *int   `json:"posts_per_page,omitempty"`
	ShowOnFront  string `json:"show_on_front,omitempty"`
	PageOnFront  *int   `json:"page_on_front,omitempty"`
}

// GetSettings retrieves the site settings. Requires authenticated credentials.
func (c *Client) GetSettings(ctx context.Context) (*Settings, error) {
	var settings Settings
	if _, err := c.get(ctx, "/settings", nil, &settings); err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return &settings, nil
}

// UpdateSettings applies the set fields of input to the site settings.
func (c *Client) UpdateSettings(ctx context.Context, input SettingsInput) (*Settings, error) {
	var settings Settings
	if err := c.send(ctx, http.MethodPost, "/settings", nil, input, &settings); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	c.logger.Info().Msg("Updated site settings")
	return &settings, nil
}
