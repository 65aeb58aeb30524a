package impl

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"volly/internal/observability/metrics"
	"volly/internal/store"
)

// subscribeConfirmation is sent exactly once, on the first-time opt-in.
// Subsequent START/STOP commands are acknowledged silently.
const subscribeConfirmation = "Volly: Thank you for subscribing. Reply STOP to unsubscribe."

var startKeywords = map[string]bool{
	"start":  true,
	"yes":    true,
	"unstop": true,
}

var stopKeywords = map[string]bool{
	"stop":        true,
	"stopall":     true,
	"unsubscribe": true,
	"cancel":      true,
	"end":         true,
	"quit":        true,
}

type SubscriptionServiceImpl struct {
	Store dataStore
}

func NewSubscriptionServiceImpl(st *store.Store) *SubscriptionServiceImpl {
	return &SubscriptionServiceImpl{Store: gormStoreAdapter{store: st}}
}

// HandleInbound processes one webhook message. Unknown numbers and unknown
// keywords are acknowledged with an empty reply and no state change.
func (s *SubscriptionServiceImpl) HandleInbound(ctx context.Context, fromPhoneNumber, body string) (string, error) {
	// Form transport turns the leading '+' into a space.
	fromPhoneNumber = strings.Replace(fromPhoneNumber, " ", "+", 1)

	volunteer, err := s.Store.Volunteers().GetByPhoneNumber(ctx, fromPhoneNumber)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			metrics.SMSMessagesTotal.WithLabelValues("inbound", "unknown_number").Inc()
			return "", nil
		}
		return "", err
	}

	keyword := normalizeKeyword(body)

	if keyword == "text" && volunteer.FirstSubscribe {
		volunteer.Textable = true
		volunteer.FirstSubscribe = false
		volunteer.UpdatedAt = time.Now().UTC()
		if err := s.Store.Volunteers().Save(ctx, volunteer); err != nil {
			return "", err
		}
		metrics.SMSMessagesTotal.WithLabelValues("inbound", "first_subscribe").Inc()
		return subscribeConfirmation, nil
	}

	if startKeywords[keyword] || stopKeywords[keyword] {
		volunteer.Textable = startKeywords[keyword]
		volunteer.FirstSubscribe = false
		volunteer.UpdatedAt = time.Now().UTC()
		if err := s.Store.Volunteers().Save(ctx, volunteer); err != nil {
			return "", err
		}
		metrics.SMSMessagesTotal.WithLabelValues("inbound", keyword).Inc()
		return "", nil
	}

	metrics.SMSMessagesTotal.WithLabelValues("inbound", "ignored").Inc()
	return "", nil
}

// normalizeKeyword lowercases the body and strips digits and every non-letter
// character, leaving the bare command word.
func normalizeKeyword(body string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(body) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
