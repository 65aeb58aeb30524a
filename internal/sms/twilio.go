// Package sms holds the outbound message transport and phone-number lookup.
package sms

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"volly/internal/observability/metrics"
)

const (
	defaultAPIBaseURL    = "https://api.twilio.com"
	defaultLookupBaseURL = "https://lookups.twilio.com"

	messagesPath = "%s/2010-04-01/Accounts/%s/Messages.json"
	lookupPath   = "%s/v1/PhoneNumbers/%s"
)

type Config struct {
	AccountSID string
	AuthToken  string
	FromNumber string
	Timeout    time.Duration

	// Endpoint overrides, used by tests. Empty means the real Twilio API.
	APIBaseURL    string
	LookupBaseURL string
}

// TwilioClient sends SMS and validates numbers through the Twilio REST API.
type TwilioClient struct {
	cfg    Config
	client *resty.Client
}

func NewTwilioClient(cfg Config) *TwilioClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultAPIBaseURL
	}
	if cfg.LookupBaseURL == "" {
		cfg.LookupBaseURL = defaultLookupBaseURL
	}
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetBasicAuth(cfg.AccountSID, cfg.AuthToken)
	return &TwilioClient{cfg: cfg, client: client}
}

func (t *TwilioClient) Send(ctx context.Context, toPhoneNumber, body string) error {
	resp, err := t.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"To":   toPhoneNumber,
			"From": t.cfg.FromNumber,
			"Body": body,
		}).
		Post(fmt.Sprintf(messagesPath, t.cfg.APIBaseURL, t.cfg.AccountSID))
	if err != nil {
		metrics.SMSMessagesTotal.WithLabelValues("outbound", "error").Inc()
		return fmt.Errorf("twilio send: %w", err)
	}
	if resp.IsError() {
		metrics.SMSMessagesTotal.WithLabelValues("outbound", "error").Inc()
		return fmt.Errorf("twilio send: status %d", resp.StatusCode())
	}
	metrics.SMSMessagesTotal.WithLabelValues("outbound", "success").Inc()
	return nil
}

// Lookup asks Twilio whether the number is real. A 404 is a definitive "no";
// anything else unexpected is an error the caller may log and ignore.
func (t *TwilioClient) Lookup(ctx context.Context, phoneNumber string) (bool, error) {
	resp, err := t.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf(lookupPath, t.cfg.LookupBaseURL, phoneNumber))
	if err != nil {
		return false, fmt.Errorf("twilio lookup: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return false, nil
	}
	if resp.IsError() {
		return false, fmt.Errorf("twilio lookup: status %d", resp.StatusCode())
	}
	return true, nil
}
