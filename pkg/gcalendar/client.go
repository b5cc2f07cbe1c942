package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service for read-only access to
// public holiday calendars.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	// Try service account first
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarReadonlyScope)
	if err == nil {
		tokenSource := config.TokenSource(ctx)
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	// Fallback: try OAuth2 installed app credentials
	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarReadonlyScope},
		Endpoint:     google.Endpoint,
	}

	// For OAuth2 Desktop app: use a static token if token.json exists
	tokenData, tokenErr := os.ReadFile("token.json")
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token.json found: use Service Account instead")
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", jsonErr)
	}

	tokenSource := oauthConfig.TokenSource(ctx, &tok)
	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}

	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListHolidays lists the all-day holiday events of a public holiday calendar
// in [req.From, req.To].
func (c *Client) ListHolidays(ctx context.Context, req ListHolidaysRequest) ([]Holiday, error) {
	if req.CalendarID == "" {
		return nil, fmt.Errorf("calendar id is required")
	}

	maxResults := req.MaxResults
	if maxResults == 0 {
		maxResults = 250
	}

	call := c.service.Events.List(req.CalendarID).
		TimeMin(req.From.Format(time.RFC3339)).
		TimeMax(req.To.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		MaxResults(maxResults).
		Context(ctx)

	events, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list holiday events: %w", err)
	}

	holidays := make([]Holiday, 0, len(events.Items))
	for _, item := range events.Items {
		if item.Start == nil || item.Start.Date == "" {
			// Holiday calendars publish all-day events; skip anything else.
			continue
		}
		date, parseErr := time.Parse("2006-01-02", item.Start.Date)
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse holiday date %q: %w", item.Start.Date, parseErr)
		}
		holidays = append(holidays, Holiday{Date: date, Name: item.Summary})
	}

	return holidays, nil
}
