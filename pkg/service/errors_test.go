package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedirectLimitError_Error(t *testing.T) {
	resp := &http.Response{Header: http.Header{}}
	resp.Header.Set("Location", "http://example.com/next")

	err := &RedirectLimitError{Limit: 3, Response: resp}

	assert.Equal(t, `stopped after 3 redirects, last redirect to "http://example.com/next"`, err.Error())
}

func Test_TransformIntoGet(t *testing.T) {
	nonCompliant := &redirectFollower{config: RedirectConfig{}}
	compliant := &redirectFollower{config: RedirectConfig{StandardsCompliant: true}}

	tests := []struct {
		method        string
		status        int
		nonCompliant  bool
		wantCompliant bool
	}{
		{http.MethodPost, http.StatusSeeOther, true, true},
		{http.MethodPost, http.StatusMovedPermanently, true, false},
		{http.MethodPost, http.StatusFound, true, false},
		{http.MethodPost, http.StatusTemporaryRedirect, false, false},
		{http.MethodHead, http.StatusSeeOther, false, false},
		{http.MethodOptions, http.StatusMovedPermanently, false, false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.nonCompliant, nonCompliant.transformIntoGet(tc.method, tc.status),
			"%s %d default mode", tc.method, tc.status)
		assert.Equal(t, tc.wantCompliant, compliant.transformIntoGet(tc.method, tc.status),
			"%s %d compliant mode", tc.method, tc.status)
	}
}

func Test_ShouldFollow(t *testing.T) {
	redirect := &http.Response{StatusCode: http.StatusFound}
	ok := &http.Response{StatusCode: http.StatusOK}
	permanent := &http.Response{StatusCode: http.StatusPermanentRedirect}

	assert.True(t, shouldFollow(&http.Request{Method: http.MethodGet}, redirect))
	assert.True(t, shouldFollow(&http.Request{Method: http.MethodDelete}, redirect))
	assert.False(t, shouldFollow(&http.Request{Method: http.MethodGet}, ok))
	assert.False(t, shouldFollow(&http.Request{Method: http.MethodHead}, redirect))
	assert.False(t, shouldFollow(&http.Request{Method: http.MethodOptions}, redirect))
	assert.False(t, shouldFollow(&http.Request{Method: "TRACE"}, redirect))

	// 308 is outside the followed set
	assert.False(t, shouldFollow(&http.Request{Method: http.MethodGet}, permanent))
}
