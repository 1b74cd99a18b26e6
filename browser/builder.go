package browser

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/lbarnkow/no-browser/config"
	"github.com/lbarnkow/no-browser/internal/logging"
)

// Builder configures and constructs a Browser. Defaults come from
// config.LoadOrDefault, so every knob can be driven by environment
// variables and still overridden here.
type Builder struct {
	cookieStore   bool
	skipTLSVerify bool
	rootCerts     []string
	userAgent     string
	timeout       time.Duration
	maxRedirects  int
	rps           float64
	log           *zap.Logger
}

// NewBuilder returns a Builder seeded with the library defaults.
func NewBuilder() *Builder {
	cfg := config.LoadOrDefault()

	b := &Builder{
		cookieStore:   cfg.Client.CookieStore,
		skipTLSVerify: cfg.Client.SkipTLSVerify,
		userAgent:     cfg.Client.UserAgent,
		timeout:       time.Duration(cfg.Client.TimeoutSeconds) * time.Second,
		maxRedirects:  cfg.Client.MaxRedirects,
		rps:           cfg.Client.RequestsPerSecond,
	}

	if cfg.Logging.Enabled {
		b.log = logging.NewOrNop(logging.Config{
			Level:       cfg.Logging.Level,
			Development: cfg.Logging.Development,
		})
	}

	return b
}

// CookieStore toggles the session-scoped cookie jar. Defaults to true.
func (b *Builder) CookieStore(enabled bool) *Builder {
	b.cookieStore = enabled
	return b
}

// SkipTLSVerify disables server certificate verification. Defaults to
// false; disabling severely weakens security. Consider AddRootCertificate
// first — this toggle mainly helps while prototyping behind intercepting
// proxies that re-encrypt traffic with a self-signed certificate.
func (b *Builder) SkipTLSVerify(skip bool) *Builder {
	b.skipTLSVerify = skip
	return b
}

// AddRootCertificate adds a pem-encoded CA certificate to the trust store
// used for verifying server certificates.
func (b *Builder) AddRootCertificate(pem string) *Builder {
	b.rootCerts = append(b.rootCerts, pem)
	return b
}

// UserAgent sets the User-Agent header sent with every request.
func (b *Builder) UserAgent(ua string) *Builder {
	b.userAgent = ua
	return b
}

// Timeout sets the per-request timeout.
func (b *Builder) Timeout(d time.Duration) *Builder {
	b.timeout = d
	return b
}

// MaxRedirects caps automatic redirect following.
func (b *Builder) MaxRedirects(max int) *Builder {
	b.maxRedirects = max
	return b
}

// RequestsPerSecond paces outgoing requests. Zero or negative disables
// pacing.
func (b *Builder) RequestsPerSecond(rps float64) *Builder {
	b.rps = rps
	return b
}

// Logger sets the logger used by the session. Defaults to a no-op logger.
func (b *Builder) Logger(log *zap.Logger) *Builder {
	b.log = log
	return b
}

// Finish constructs the Browser.
func (b *Builder) Finish() (*Browser, error) {
	tlsCfg := &tls.Config{InsecureSkipVerify: b.skipTLSVerify}

	if len(b.rootCerts) > 0 {
		pool := x509.NewCertPool()
		for _, pem := range b.rootCerts {
			if !pool.AppendCertsFromPEM([]byte(pem)) {
				return nil, &ConstructClientError{Err: fmt.Errorf("invalid pem root certificate")}
			}
		}
		tlsCfg.RootCAs = pool
	}

	client := resty.New().
		SetTimeout(b.timeout).
		SetHeader("User-Agent", b.userAgent).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(b.maxRedirects)).
		SetTLSClientConfig(tlsCfg).
		SetDoNotParseResponse(true)

	if !b.cookieStore {
		client.SetCookieJar(nil)
	}

	var limiter *rate.Limiter
	if b.rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(b.rps), 1)
	}

	log := b.log
	if log == nil {
		log = zap.NewNop()
	}

	return &Browser{
		client:  client,
		limiter: limiter,
		log:     log,
	}, nil
}
