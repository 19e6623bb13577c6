package service

import (
	"bytes"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// DefaultRedirectLimit is the number of hops followed when RedirectConfig
// does not set a limit of its own.
const DefaultRedirectLimit = 3

const redirectsMetric = "app_http_service_redirects"

// redirectStatuses are the response codes the follower acts on. 308 is
// deliberately absent, matching common client library behavior.
var redirectStatuses = map[int]struct{}{
	http.StatusMovedPermanently:  {},
	http.StatusFound:             {},
	http.StatusSeeOther:          {},
	http.StatusTemporaryRedirect: {},
}

// followableMethods are the request methods whose redirects get re-issued.
// HEAD and OPTIONS chains terminate immediately: their redirect responses
// are handed back to the caller untouched.
var followableMethods = map[string]struct{}{
	http.MethodGet:    {},
	http.MethodPost:   {},
	http.MethodPut:    {},
	http.MethodPatch:  {},
	http.MethodDelete: {},
}

// RedirectConfig makes the HTTP service follow redirect responses (301, 302,
// 303 and 307) itself, instead of leaving them to net/http.
type RedirectConfig struct {
	// Limit is the maximum number of hops followed before the chain fails
	// with *RedirectLimitError. Zero means DefaultRedirectLimit.
	Limit int

	// StandardsCompliant preserves the method and body on 301 and 302
	// responses, as HTTP/1.1 specifies. When false (the default) those
	// statuses convert the request to a bodiless GET, which is what
	// browsers do. 303 always converts, 307 never does.
	StandardsCompliant bool

	// ForwardAllCookies re-attaches every cookie accumulated over the chain
	// on each hop. ForwardCookies restricts that to the named cookies.
	// When neither is set, cookies are not touched at all.
	ForwardAllCookies bool
	ForwardCookies    []string

	// KeepAuthorization retains the Authorization header when a hop crosses
	// to a different host. By default it is dropped on cross-host hops.
	KeepAuthorization bool

	// OnRedirect, when set, is invoked before every hop with the request
	// being abandoned and the request about to be sent.
	OnRedirect func(from, to *http.Request)
}

// AddOption installs the follower as the transport of the underlying client
// and stops net/http from chasing redirects on its own. It must be applied
// directly to the base service, so list it before other options.
func (r *RedirectConfig) AddOption(h HTTP) HTTP {
	hs, ok := h.(*httpService)
	if !ok {
		return h
	}

	hs.Client.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	hs.Client.Transport = NewRedirectFollower(hs.Client.Transport, *r, hs.Logger, hs.Metrics)

	return h
}

type redirectFollower struct {
	next    http.RoundTripper
	config  RedirectConfig
	logger  Logger
	metrics Metrics
}

// NewRedirectFollower wraps next with transparent redirect following. It can
// be used as the transport of any http.Client; such a client should set
// CheckRedirect to return http.ErrUseLastResponse so the two mechanisms do
// not chase the same chain twice. A nil next means http.DefaultTransport.
// Logger and metrics may be nil.
func NewRedirectFollower(next http.RoundTripper, config RedirectConfig, logger Logger, metrics Metrics) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	if config.Limit == 0 {
		config.Limit = DefaultRedirectLimit
	}

	if metrics != nil {
		registerCounter(metrics, redirectsMetric, "number of redirect hops followed by the HTTP service")
	}

	return &redirectFollower{
		next:    next,
		config:  config,
		logger:  logger,
		metrics: metrics,
	}
}

// RoundTrip sends the request and chases any followable redirects until a
// terminal response arrives or the hop budget runs out. The caller's request
// is never modified. The jar and the budget live on the stack of this call,
// so concurrent calls through one follower cannot contaminate each other.
func (rf *redirectFollower) RoundTrip(req *http.Request) (*http.Response, error) {
	body, err := bufferBody(req)
	if err != nil {
		return nil, err
	}

	cur := req.Clone(req.Context())
	if body != nil {
		cur.Body = io.NopCloser(bytes.NewReader(body))
		cur.ContentLength = int64(len(body))
	}

	jar := cookieJar{}
	remaining := rf.config.Limit

	for {
		resp, err := rf.next.RoundTrip(cur)
		if err != nil {
			return nil, err
		}

		if !shouldFollow(cur, resp) {
			return resp, nil
		}

		if remaining == 0 {
			if rf.logger != nil {
				rf.logger.Warnf("not following %d from %s: redirect limit %d exhausted",
					resp.StatusCode, cur.URL, rf.config.Limit)
			}

			// the terminal response is carried on the error with its body
			// left open for the caller
			return nil, &RedirectLimitError{Limit: rf.config.Limit, Response: resp}
		}

		next, err := rf.nextRequest(cur, resp, jar, body)
		if err != nil {
			drainBody(resp)

			return nil, err
		}

		if rf.config.OnRedirect != nil {
			rf.config.OnRedirect(cur, next)
		}

		if rf.logger != nil {
			rf.logger.Debugf("following %d redirect: %s %s -> %s %s",
				resp.StatusCode, cur.Method, cur.URL, next.Method, next.URL)
		}

		if rf.metrics != nil {
			rf.metrics.IncrementCounter(cur.Context(), redirectsMetric, "status", resp.Status)
		}

		drainBody(resp)

		cur = next
		remaining--
	}
}

func shouldFollow(req *http.Request, resp *http.Response) bool {
	if _, ok := followableMethods[req.Method]; !ok {
		return false
	}

	_, ok := redirectStatuses[resp.StatusCode]

	return ok
}

// nextRequest derives the request for the upcoming hop from the current
// request and the redirect response just received.
func (rf *redirectFollower) nextRequest(cur *http.Request, resp *http.Response,
	jar cookieJar, body []byte) (*http.Request, error) {
	location := resp.Header.Get("Location")
	if location == "" {
		return nil, errors.Wrapf(ErrMissingLocation, "status %d from %s", resp.StatusCode, cur.URL)
	}

	ref, err := url.Parse(location)
	if err != nil {
		return nil, errors.Wrapf(err, "unresolvable Location %q in %d from %s", location, resp.StatusCode, cur.URL)
	}

	target := cur.URL.ResolveReference(ref)

	method := cur.Method

	var reader io.Reader

	if rf.transformIntoGet(cur.Method, resp.StatusCode) {
		method = http.MethodGet
	} else if len(body) > 0 {
		// the body preserved at chain start, not whatever an earlier hop sent
		reader = bytes.NewReader(body)
	}

	next, err := http.NewRequestWithContext(cur.Context(), method, target.String(), reader)
	if err != nil {
		return nil, err
	}

	next.Header = cur.Header.Clone()

	if method != cur.Method {
		next.Header.Del("Content-Type")
		next.Header.Del("Content-Length")
	}

	if !rf.config.KeepAuthorization && target.Host != cur.URL.Host {
		next.Header.Del("Authorization")
	}

	if rf.config.ForwardAllCookies || len(rf.config.ForwardCookies) > 0 {
		jar.absorb(cur, resp)

		if cookie := jar.header(rf.config.ForwardAllCookies, rf.config.ForwardCookies); cookie != "" {
			next.Header.Set("Cookie", cookie)
		}
	}

	return next, nil
}

// transformIntoGet reports whether the next hop downgrades to a bodiless GET.
// 303 always does; 301 and 302 do so only outside standards-compliant mode.
// HEAD and OPTIONS requests keep their method regardless of status.
func (rf *redirectFollower) transformIntoGet(method string, status int) bool {
	if method == http.MethodHead || method == http.MethodOptions {
		return false
	}

	if status == http.StatusSeeOther {
		return true
	}

	return (status == http.StatusMovedPermanently || status == http.StatusFound) && !rf.config.StandardsCompliant
}

// bufferBody reads the whole request body up front so hops that keep the
// method can replay it.
func bufferBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}

	defer req.Body.Close()

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, errors.Wrap(err, "buffering request body")
	}

	return body, nil
}

const drainLimit = 4 << 10

// drainBody discards an intermediate response body so the transport can
// reuse the connection for the next hop.
func drainBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, drainLimit))
	resp.Body.Close()
}
