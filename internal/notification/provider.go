package notification

import (
	"context"
	"fmt"
	"time"

	"quwastudio/internal/config"
)

// FromConfig builds the notifier selected by NOTIFY_PROVIDER. Every
// notifier is bounded by NOTIFY_TIMEOUT.
func FromConfig(cfg *config.Config) (Notifier, error) {
	var n Notifier
	switch cfg.NotifyProvider {
	case config.ProviderLog, "":
		n = NewLogNotifier()
	case config.ProviderResend:
		n = NewResendNotifier(cfg.ResendAPIKey, cfg.NotifyFrom, cfg.NotifyTo)
	case config.ProviderFunction:
		n = NewFunctionNotifier(cfg.NotifyFunctionURL, cfg.NotifyFunctionKey, cfg.NotifyTimeout)
	default:
		return nil, fmt.Errorf("unknown notify provider %q", cfg.NotifyProvider)
	}
	return WithTimeout(n, cfg.NotifyTimeout), nil
}

type timeoutNotifier struct {
	next    Notifier
	timeout time.Duration
}

// WithTimeout bounds each notification call. A zero timeout disables it.
func WithTimeout(n Notifier, timeout time.Duration) Notifier {
	if timeout <= 0 {
		return n
	}
	return &timeoutNotifier{next: n, timeout: timeout}
}

func (t *timeoutNotifier) NotifyBookingCreated(ctx context.Context, n BookingCreated) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.NotifyBookingCreated(ctx, n)
}
