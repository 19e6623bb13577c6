package service

import (
	"strconv"
	"strings"

	"hopper.dev/pkg/config"
)

// Configuration keys read by NewHTTPServiceFromConfig.
const (
	configServiceURL        = "HTTP_SERVICE_URL"
	configRedirectLimit     = "HTTP_REDIRECT_LIMIT"
	configRedirectCompliant = "HTTP_REDIRECT_STANDARDS_COMPLIANT"
	configRedirectCookies   = "HTTP_REDIRECT_COOKIES"
	configRedirectKeepAuth  = "HTTP_REDIRECT_KEEP_AUTHORIZATION"
)

// NewHTTPServiceFromConfig builds a redirect-following HTTP service from
// configuration. HTTP_REDIRECT_COOKIES is either "all", a comma separated
// list of cookie names, or empty for no cookie forwarding.
func NewHTTPServiceFromConfig(cfg config.Config, logger Logger, metrics Metrics, options ...Options) HTTP {
	opts := make([]Options, 0, len(options)+1)
	opts = append(opts, redirectConfigFrom(cfg, logger))
	opts = append(opts, options...)

	return NewHTTPService(cfg.Get(configServiceURL), logger, metrics, opts...)
}

func redirectConfigFrom(cfg config.Config, logger Logger) *RedirectConfig {
	rc := &RedirectConfig{}

	limit := cfg.GetOrDefault(configRedirectLimit, strconv.Itoa(DefaultRedirectLimit))

	n, err := strconv.Atoi(limit)
	if err != nil || n < 0 {
		if logger != nil {
			logger.Warnf("invalid %s %q, using default %d", configRedirectLimit, limit, DefaultRedirectLimit)
		}

		n = DefaultRedirectLimit
	}

	rc.Limit = n
	rc.StandardsCompliant, _ = strconv.ParseBool(cfg.GetOrDefault(configRedirectCompliant, "false"))
	rc.KeepAuthorization, _ = strconv.ParseBool(cfg.GetOrDefault(configRedirectKeepAuth, "false"))

	switch cookies := cfg.Get(configRedirectCookies); {
	case strings.EqualFold(cookies, "all"):
		rc.ForwardAllCookies = true
	case cookies != "":
		for _, name := range strings.Split(cookies, ",") {
			if name = strings.TrimSpace(name); name != "" {
				rc.ForwardCookies = append(rc.ForwardCookies, name)
			}
		}
	}

	return rc
}
