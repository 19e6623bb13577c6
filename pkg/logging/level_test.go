package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{DEBUG, "DEBUG"},
		{INFO, "INFO"},
		{NOTICE, "NOTICE"},
		{WARN, "WARN"},
		{ERROR, "ERROR"},
		{FATAL, "FATAL"},
		{Level(99), ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.level.String())
	}
}

func TestGetLevelFromString(t *testing.T) {
	assert.Equal(t, DEBUG, GetLevelFromString("debug"))
	assert.Equal(t, WARN, GetLevelFromString("WARN"))
	assert.Equal(t, FATAL, GetLevelFromString("Fatal"))
	assert.Equal(t, INFO, GetLevelFromString(""))
	assert.Equal(t, INFO, GetLevelFromString("bogus"))
}

func TestLevel_MarshalJSON(t *testing.T) {
	b, err := ERROR.MarshalJSON()

	assert.NoError(t, err)
	assert.Equal(t, `"ERROR"`, string(b))
}
