package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/salmatarekx/EventPlanner/internal/logger"
)

// APIError carries the HTTP status and the server's human-readable detail
// string for a failed call.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned status %d: %s", e.Status, e.Detail)
}

// Detail returns the server's detail string for an API failure, or the
// given fallback for transport errors and detail-less responses.
func Detail(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}

// StatusCode returns the HTTP status of an API failure, or 0 when the
// request never produced a response.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// errorBody is the wire shape of every failure response.
type errorBody struct {
	Detail string `json:"detail"`
}

// doJSON issues one request and decodes the response into out (ignored when
// out is nil). No retries: every call is single-shot.
func doJSON(ctx context.Context, client *http.Client, log *logger.Logger, method, url, token string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.New().String())

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		log.Error("API", fmt.Sprintf("%s %s failed: %v", method, url, err))
		return fmt.Errorf("request failed: %w", err)
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			log.Error("API", fmt.Sprintf("Failed to close response body: %v", cerr))
		}
	}(resp.Body)

	log.LogAPI(method, url, resp.Status, time.Since(start).Round(time.Millisecond).String())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var detail errorBody
		if decodeErr := json.NewDecoder(resp.Body).Decode(&detail); decodeErr != nil {
			detail.Detail = ""
		}
		return &APIError{Status: resp.StatusCode, Detail: detail.Detail}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func trimBase(baseURL string) string {
	return strings.TrimRight(baseURL, "/")
}
