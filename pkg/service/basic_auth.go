package service

import (
	"context"
	"encoding/base64"
	"net/http"
)

// BasicAuthConfig sends an Authorization header with the given credentials
// on every request. Combined with RedirectConfig, that header survives only
// same-host hops unless KeepAuthorization is set.
type BasicAuthConfig struct {
	UserName string
	Password string
}

func (b *BasicAuthConfig) AddOption(h HTTP) HTTP {
	return &basicAuthProvider{
		userName: b.UserName,
		password: b.Password,
		HTTP:     h,
	}
}

type basicAuthProvider struct {
	userName string
	password string

	HTTP
}

func (b *basicAuthProvider) Get(ctx context.Context, path string, queryParams map[string]interface{}) (*http.Response, error) {
	return b.GetWithHeaders(ctx, path, queryParams, nil)
}

func (b *basicAuthProvider) GetWithHeaders(ctx context.Context, path string, queryParams map[string]interface{},
	headers map[string]string) (*http.Response, error) {
	return b.HTTP.GetWithHeaders(ctx, path, queryParams, b.withAuthorization(headers))
}

func (b *basicAuthProvider) Head(ctx context.Context, path string, queryParams map[string]interface{}) (*http.Response, error) {
	return b.HeadWithHeaders(ctx, path, queryParams, nil)
}

func (b *basicAuthProvider) HeadWithHeaders(ctx context.Context, path string, queryParams map[string]interface{},
	headers map[string]string) (*http.Response, error) {
	return b.HTTP.HeadWithHeaders(ctx, path, queryParams, b.withAuthorization(headers))
}

func (b *basicAuthProvider) Post(ctx context.Context, path string, queryParams map[string]interface{},
	body []byte) (*http.Response, error) {
	return b.PostWithHeaders(ctx, path, queryParams, body, nil)
}

func (b *basicAuthProvider) PostWithHeaders(ctx context.Context, path string, queryParams map[string]interface{},
	body []byte, headers map[string]string) (*http.Response, error) {
	return b.HTTP.PostWithHeaders(ctx, path, queryParams, body, b.withAuthorization(headers))
}

func (b *basicAuthProvider) Put(ctx context.Context, path string, queryParams map[string]interface{},
	body []byte) (*http.Response, error) {
	return b.PutWithHeaders(ctx, path, queryParams, body, nil)
}

func (b *basicAuthProvider) PutWithHeaders(ctx context.Context, path string, queryParams map[string]interface{},
	body []byte, headers map[string]string) (*http.Response, error) {
	return b.HTTP.PutWithHeaders(ctx, path, queryParams, body, b.withAuthorization(headers))
}

func (b *basicAuthProvider) Patch(ctx context.Context, path string, queryParams map[string]interface{},
	body []byte) (*http.Response, error) {
	return b.PatchWithHeaders(ctx, path, queryParams, body, nil)
}

func (b *basicAuthProvider) PatchWithHeaders(ctx context.Context, path string, queryParams map[string]interface{},
	body []byte, headers map[string]string) (*http.Response, error) {
	return b.HTTP.PatchWithHeaders(ctx, path, queryParams, body, b.withAuthorization(headers))
}

func (b *basicAuthProvider) Delete(ctx context.Context, path string, body []byte) (*http.Response, error) {
	return b.DeleteWithHeaders(ctx, path, body, nil)
}

func (b *basicAuthProvider) DeleteWithHeaders(ctx context.Context, path string, body []byte,
	headers map[string]string) (*http.Response, error) {
	return b.HTTP.DeleteWithHeaders(ctx, path, body, b.withAuthorization(headers))
}

func (b *basicAuthProvider) withAuthorization(headers map[string]string) map[string]string {
	if headers == nil {
		headers = make(map[string]string)
	}

	credentials := base64.StdEncoding.EncodeToString([]byte(b.userName + ":" + b.password))
	headers["Authorization"] = "Basic " + credentials

	return headers
}
