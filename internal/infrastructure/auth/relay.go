package auth

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Relay owns the bearer credential the hosting context pushes into this
// process and the outbound signal asking the host for a fresh one. The
// host delivers credentials and revocations asynchronously; outgoing
// requests read the current credential, and an authorization failure asks
// the host for a replacement instead of failing silently.
type Relay struct {
	mu        sync.RWMutex
	token     string
	expiresAt time.Time     // zero when the credential carries no expiry
	arrived   chan struct{} // closed on every push to wake waiters

	refreshCh chan struct{}
	logger    *zap.Logger
}

// RelayOption is a functional option for configuring the relay
type RelayOption func(*Relay)

// WithRelayLogger sets the logger for the relay
func WithRelayLogger(logger *zap.Logger) RelayOption {
	return func(r *Relay) {
		r.logger = logger
	}
}

// NewRelay creates a relay with no credential. Requests issued before the
// first push block in AwaitFresh or fail with a missing-credential error,
// depending on the caller.
func NewRelay(opts ...RelayOption) *Relay {
	r := &Relay{
		arrived:   make(chan struct{}),
		refreshCh: make(chan struct{}, 1),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Push installs a credential delivered by the host and wakes every waiter.
// The expiry is read from the token's exp claim without verifying the
// signature: the backend verifies tokens, this layer only needs the expiry
// to stop using a credential that would bounce anyway. Opaque non-JWT
// credentials are accepted without an expiry.
func (r *Relay) Push(token string) {
	expiresAt, err := tokenExpiry(token)
	if err != nil {
		r.logger.Debug("credential has no readable expiry, keeping it until revoked", zap.Error(err))
	}

	r.mu.Lock()
	r.token = token
	r.expiresAt = expiresAt
	close(r.arrived)
	r.arrived = make(chan struct{})
	r.mu.Unlock()

	r.logger.Debug("credential installed", zap.Time("expires_at", expiresAt))
}

// Revoke drops the current credential. Reads fall back to the
// missing-credential path until the host pushes again.
func (r *Relay) Revoke() {
	r.mu.Lock()
	r.token = ""
	r.expiresAt = time.Time{}
	r.mu.Unlock()

	r.logger.Debug("credential revoked")
}

// Token returns the current credential. ok is false when none was pushed,
// the host revoked it, or it expired.
func (r *Relay) Token() (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.token == "" || r.expiredLocked() {
		return "", false
	}
	return r.token, true
}

// AwaitFresh blocks until a usable credential other than rejected is
// available, or ctx is done. Pass the credential an upstream 401 bounced
// so a retry cannot reuse it.
func (r *Relay) AwaitFresh(ctx context.Context, rejected string) (string, error) {
	for {
		r.mu.RLock()
		token := r.token
		usable := token != "" && token != rejected && !r.expiredLocked()
		arrived := r.arrived
		r.mu.RUnlock()

		if usable {
			return token, nil
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-arrived:
		}
	}
}

// RequestRefresh emits the outbound credential-request signal. The signal
// is level-triggered: while one request is pending, further calls are
// no-ops.
func (r *Relay) RequestRefresh() {
	select {
	case r.refreshCh <- struct{}{}:
		r.logger.Debug("credential refresh requested from host")
	default:
	}
}

// RefreshRequests is the host-facing side of the refresh signal. The host
// integration drains it and obtains a fresh credential out of band.
func (r *Relay) RefreshRequests() <-chan struct{} {
	return r.refreshCh
}

func (r *Relay) expiredLocked() bool {
	return !r.expiresAt.IsZero() && !time.Now().Before(r.expiresAt)
}

// tokenExpiry extracts the exp claim without signature verification.
func tokenExpiry(token string) (time.Time, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, err
	}
	return exp.Time, nil
}
