package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// FunctionNotifier invokes a server-side function over HTTP with the
// {"record": {...}} payload the send-booking-email function expects.
type FunctionNotifier struct {
	url    string
	apiKey string
	client *http.Client
}

func NewFunctionNotifier(url, apiKey string, timeout time.Duration) *FunctionNotifier {
	return &FunctionNotifier{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}
}

type functionRecord struct {
	FullName    string `json:"full_name"`
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	Message     string `json:"message"`
}

type functionPayload struct {
	Record functionRecord `json:"record"`
}

func (f *FunctionNotifier) NotifyBookingCreated(ctx context.Context, n BookingCreated) error {
	payload := functionPayload{Record: functionRecord{
		FullName:    n.FullName,
		CompanyName: n.CompanyName,
		Email:       n.Email,
		Message:     n.Message,
	}}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if f.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.apiKey)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("error invoking notification function: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("notification function returned %d: %s", resp.StatusCode, string(respBody))
	}

	log.Printf("booking_notification provider=function booking_id=%d status=%d", n.BookingID, resp.StatusCode)
	return nil
}
