package service

import (
	"context"
	"net/http"
)

// DefaultHeaders attaches a fixed set of headers to every outgoing request.
// Headers given per call win over the defaults.
type DefaultHeaders struct {
	Headers map[string]string
}

func (d *DefaultHeaders) AddOption(h HTTP) HTTP {
	return &customHeader{
		headers: d.Headers,
		HTTP:    h,
	}
}

type customHeader struct {
	headers map[string]string

	HTTP
}

func (c *customHeader) Get(ctx context.Context, path string, queryParams map[string]interface{}) (*http.Response, error) {
	return c.GetWithHeaders(ctx, path, queryParams, nil)
}

func (c *customHeader) GetWithHeaders(ctx context.Context, path string, queryParams map[string]interface{},
	headers map[string]string) (*http.Response, error) {
	return c.HTTP.GetWithHeaders(ctx, path, queryParams, c.merge(headers))
}

func (c *customHeader) Head(ctx context.Context, path string, queryParams map[string]interface{}) (*http.Response, error) {
	return c.HeadWithHeaders(ctx, path, queryParams, nil)
}

func (c *customHeader) HeadWithHeaders(ctx context.Context, path string, queryParams map[string]interface{},
	headers map[string]string) (*http.Response, error) {
	return c.HTTP.HeadWithHeaders(ctx, path, queryParams, c.merge(headers))
}

func (c *customHeader) Post(ctx context.Context, path string, queryParams map[string]interface{},
	body []byte) (*http.Response, error) {
	return c.PostWithHeaders(ctx, path, queryParams, body, nil)
}

func (c *customHeader) PostWithHeaders(ctx context.Context, path string, queryParams map[string]interface{},
	body []byte, headers map[string]string) (*http.Response, error) {
	return c.HTTP.PostWithHeaders(ctx, path, queryParams, body, c.merge(headers))
}

func (c *customHeader) Put(ctx context.Context, path string, queryParams map[string]interface{},
	body []byte) (*http.Response, error) {
	return c.PutWithHeaders(ctx, path, queryParams, body, nil)
}

func (c *customHeader) PutWithHeaders(ctx context.Context, path string, queryParams map[string]interface{},
	body []byte, headers map[string]string) (*http.Response, error) {
	return c.HTTP.PutWithHeaders(ctx, path, queryParams, body, c.merge(headers))
}

func (c *customHeader) Patch(ctx context.Context, path string, queryParams map[string]interface{},
	body []byte) (*http.Response, error) {
	return c.PatchWithHeaders(ctx, path, queryParams, body, nil)
}

func (c *customHeader) PatchWithHeaders(ctx context.Context, path string, queryParams map[string]interface{},
	body []byte, headers map[string]string) (*http.Response, error) {
	return c.HTTP.PatchWithHeaders(ctx, path, queryParams, body, c.merge(headers))
}

func (c *customHeader) Delete(ctx context.Context, path string, body []byte) (*http.Response, error) {
	return c.DeleteWithHeaders(ctx, path, body, nil)
}

func (c *customHeader) DeleteWithHeaders(ctx context.Context, path string, body []byte,
	headers map[string]string) (*http.Response, error) {
	return c.HTTP.DeleteWithHeaders(ctx, path, body, c.merge(headers))
}

func (c *customHeader) merge(headers map[string]string) map[string]string {
	merged := make(map[string]string, len(c.headers)+len(headers))

	for key, value := range c.headers {
		merged[key] = value
	}

	for key, value := range headers {
		merged[key] = value
	}

	return merged
}
