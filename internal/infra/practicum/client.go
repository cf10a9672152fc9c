// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Errors returned by Fetch. The polling loop renders these into the
// user-visible diagnostic, so the API status code is wrapped into the text.
var (
	ErrConnection  = errors.New("practicum API connection failed")
	ErrAPIResponse = errors.New("practicum API returned unexpected status")
	ErrDecode      = errors.New("practicum API body is not valid JSON")
)

// Client issues requests against the Practicum homework-statuses endpoint.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
	logger     *logrus.Entry
}

func NewClient(endpoint, token string, timeout time.Duration, logger *logrus.Entry) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		token:      token,
		logger:     logger,
	}
}

// Fetch performs a single GET with the from_date cursor and returns the raw
// JSON body. No retries here; the caller's interval is the retry policy.
func (c *Client) Fetch(ctx context.Context, fromDate int64) (json.RawMessage, error) {
	c.logger.WithField("from_date", fromDate).Debug("Requesting homework statuses")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	query := url.Values{}
	query.Set("from_date", strconv.FormatInt(fromDate, 10))
	req.URL.RawQuery = query.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrAPIResponse, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w", ErrDecode)
	}

	c.logger.WithField("bytes", len(body)).Debug("Homework statuses received")
	return json.RawMessage(body), nil
}
