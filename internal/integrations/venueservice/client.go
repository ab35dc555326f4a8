package venueservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// Client клиент для работы с VenueService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента VenueService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetVenue получает площадку с часами работы и списком менеджеров
func (c *Client) GetVenue(ctx context.Context, venueID int64) (*domain.Venue, error) {
	url := fmt.Sprintf("%s/internal/venues/%d", c.baseURL, venueID)

	var venue Venue
	if err := c.get(ctx, url, ErrVenueNotFound, &venue); err != nil {
		if !errors.Is(err, ErrVenueNotFound) {
			c.log.Error("VenueService request failed for venue_id=%d: %v", venueID, err)
		}
		return nil, err
	}

	return venue.ToDomain(), nil
}

// GetCourt получает корт с тарифами
func (c *Client) GetCourt(ctx context.Context, courtID int64) (*domain.Court, error) {
	url := fmt.Sprintf("%s/internal/courts/%d", c.baseURL, courtID)

	var court Court
	if err := c.get(ctx, url, ErrCourtNotFound, &court); err != nil {
		if !errors.Is(err, ErrCourtNotFound) {
			c.log.Error("VenueService request failed for court_id=%d: %v", courtID, err)
		}
		return nil, err
	}

	return court.ToDomain(), nil
}

func (c *Client) get(ctx context.Context, url string, notFound error, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
