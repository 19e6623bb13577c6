package service

import (
	"context"
	"net/http"
)

// APIKeyConfig sends the key as an X-API-KEY header on every request.
type APIKeyConfig struct {
	APIKey string
}

func (a *APIKeyConfig) AddOption(h HTTP) HTTP {
	return &apiKeyAuthProvider{
		apiKey: a.APIKey,
		HTTP:   h,
	}
}

type apiKeyAuthProvider struct {
	apiKey string

	HTTP
}

func (a *apiKeyAuthProvider) Get(ctx context.Context, path string, queryParams map[string]interface{}) (*http.Response, error) {
	return a.GetWithHeaders(ctx, path, queryParams, nil)
}

func (a *apiKeyAuthProvider) GetWithHeaders(ctx context.Context, path string, queryParams map[string]interface{},
	headers map[string]string) (*http.Response, error) {
	return a.HTTP.GetWithHeaders(ctx, path, queryParams, a.withKey(headers))
}

func (a *apiKeyAuthProvider) Head(ctx context.Context, path string, queryParams map[string]interface{}) (*http.Response, error) {
	return a.HeadWithHeaders(ctx, path, queryParams, nil)
}

func (a *apiKeyAuthProvider) HeadWithHeaders(ctx context.Context, path string, queryParams map[string]interface{},
	headers map[string]string) (*http.Response, error) {
	return a.HTTP.HeadWithHeaders(ctx, path, queryParams, a.withKey(headers))
}

func (a *apiKeyAuthProvider) Post(ctx context.Context, path string, queryParams map[string]interface{},
	body []byte) (*http.Response, error) {
	return a.PostWithHeaders(ctx, path, queryParams, body, nil)
}

func (a *apiKeyAuthProvider) PostWithHeaders(ctx context.Context, path string, queryParams map[string]interface{},
	body []byte, headers map[string]string) (*http.Response, error) {
	return a.HTTP.PostWithHeaders(ctx, path, queryParams, body, a.withKey(headers))
}

func (a *apiKeyAuthProvider) Put(ctx context.Context, path string, queryParams map[string]interface{},
	body []byte) (*http.Response, error) {
	return a.PutWithHeaders(ctx, path, queryParams, body, nil)
}

func (a *apiKeyAuthProvider) PutWithHeaders(ctx context.Context, path string, queryParams map[string]interface{},
	body []byte, headers map[string]string) (*http.Response, error) {
	return a.HTTP.PutWithHeaders(ctx, path, queryParams, body, a.withKey(headers))
}

func (a *apiKeyAuthProvider) Patch(ctx context.Context, path string, queryParams map[string]interface{},
	body []byte) (*http.Response, error) {
	return a.PatchWithHeaders(ctx, path, queryParams, body, nil)
}

func (a *apiKeyAuthProvider) PatchWithHeaders(ctx context.Context, path string, queryParams map[string]interface{},
	body []byte, headers map[string]string) (*http.Response, error) {
	return a.HTTP.PatchWithHeaders(ctx, path, queryParams, body, a.withKey(headers))
}

func (a *apiKeyAuthProvider) Delete(ctx context.Context, path string, body []byte) (*http.Response, error) {
	return a.DeleteWithHeaders(ctx, path, body, nil)
}

func (a *apiKeyAuthProvider) DeleteWithHeaders(ctx context.Context, path string, body []byte,
	headers map[string]string) (*http.Response, error) {
	return a.HTTP.DeleteWithHeaders(ctx, path, body, a.withKey(headers))
}

func (a *apiKeyAuthProvider) withKey(headers map[string]string) map[string]string {
	if headers == nil {
		headers = make(map[string]string)
	}

	headers["X-API-KEY"] = a.apiKey

	return headers
}
