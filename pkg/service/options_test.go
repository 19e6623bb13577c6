package service

import (
	"context"
	"net/http"
)

type mockHTTP struct{}

func (*mockHTTP) HealthCheck(_ context.Context) *Health {
	return &Health{
		Status:  serviceUp,
		Details: map[string]interface{}{"host": "http://test.local"},
	}
}

func (*mockHTTP) Get(_ context.Context, _ string, _ map[string]interface{}) (*http.Response, error) {
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
}

func (*mockHTTP) GetWithHeaders(_ context.Context, _ string, _ map[string]interface{}, _ map[string]string) (*http.Response, error) {
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
}

func (*mockHTTP) Head(_ context.Context, _ string, _ map[string]interface{}) (*http.Response, error) {
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
}

func (*mockHTTP) HeadWithHeaders(_ context.Context, _ string, _ map[string]interface{}, _ map[string]string) (*http.Response, error) {
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
}

func (*mockHTTP) Post(_ context.Context, _ string, _ map[string]interface{}, _ []byte) (*http.Response, error) {
	return &http.Response{StatusCode: http.StatusCreated, Body: http.NoBody}, nil
}

func (*mockHTTP) PostWithHeaders(_ context.Context, _ string, _ map[string]interface{}, _ []byte,
	_ map[string]string) (*http.Response, error) {
	return &http.Response{StatusCode: http.StatusCreated, Body: http.NoBody}, nil
}

func (*mockHTTP) Put(_ context.Context, _ string, _ map[string]interface{}, _ []byte) (*http.Response, error) {
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
}

func (*mockHTTP) PutWithHeaders(_ context.Context, _ string, _ map[string]interface{}, _ []byte,
	_ map[string]string) (*http.Response, error) {
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
}

func (*mockHTTP) Patch(_ context.Context, _ string, _ map[string]interface{}, _ []byte) (*http.Response, error) {
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
}

func (*mockHTTP) PatchWithHeaders(_ context.Context, _ string, _ map[string]interface{}, _ []byte,
	_ map[string]string) (*http.Response, error) {
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
}

func (*mockHTTP) Delete(_ context.Context, _ string, _ []byte) (*http.Response, error) {
	return &http.Response{StatusCode: http.StatusNoContent, Body: http.NoBody}, nil
}

func (*mockHTTP) DeleteWithHeaders(_ context.Context, _ string, _ []byte, _ map[string]string) (*http.Response, error) {
	return &http.Response{StatusCode: http.StatusNoContent, Body: http.NoBody}, nil
}
