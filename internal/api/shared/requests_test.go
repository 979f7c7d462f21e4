package shared

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Title     string `json:"title"     validate:"required"`
	Completed bool   `json:"completed"`
}

type selfValidating struct {
	err error
}

func (s selfValidating) Validate() error { return s.err }

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    testPayload
		wantErr bool
		isEOF   bool
	}{
		{name: "valid", body: `{"title":"a","completed":true}`, want: testPayload{Title: "a", Completed: true}},
		{name: "unknown fields ignored", body: `{"id":9,"title":"a"}`, want: testPayload{Title: "a"}},
		{name: "malformed", body: `{"title":`, wantErr: true},
		{name: "wrong type", body: `{"title":1}`, wantErr: true},
		{name: "empty body", body: ``, wantErr: true, isEOF: true},
		{name: "trailing whitespace", body: "{\"title\":\"a\"}\n  ", want: testPayload{Title: "a"}},
		{name: "trailing garbage", body: `{"title":"a"} garbage`, wantErr: true},
		{name: "trailing bracket", body: `{"title":"a"}]`, wantErr: true},
		{name: "second value", body: `{"title":"a"}{"title":""}`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tc.body))
			var got testPayload
			err := DecodeJSON(req, &got)
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, tc.isEOF, errors.Is(err, io.EOF))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeJSON_RejectsSecondValue(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"title":"a"} {"title":"b"}`))
	var got testPayload

	err := DecodeJSON(req, &got)
	assert.ErrorIs(t, err, ErrTrailingData)
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(&testPayload{Title: "a"}))
	assert.Error(t, ValidateRequest(&testPayload{}))

	custom := errors.New("custom")
	assert.ErrorIs(t, ValidateRequest(selfValidating{err: custom}), custom)
	assert.NoError(t, ValidateRequest(selfValidating{}))
}
