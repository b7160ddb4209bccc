package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type answerBody struct {
	Correct *bool `json:"correct" validate:"required"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		failed  bool
	}{
		{name: "valid", body: `{"correct": true}`},
		{name: "empty body", body: ``, wantErr: ErrEmptyBody, failed: true},
		{name: "malformed", body: `{"correct":`, failed: true},
		{name: "unknown field", body: `{"correct": true, "quality": 5}`, failed: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			var got answerBody

			err := DecodeJSON(r, &got)
			if !tc.failed {
				require.NoError(t, err)
				require.NotNil(t, got.Correct)
				assert.True(t, *got.Correct)
				return
			}
			require.Error(t, err)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

type selfValidating struct{ err error }

func (s selfValidating) Validate() error { return s.err }

func TestValidateRequest(t *testing.T) {
	yes := true

	assert.NoError(t, ValidateRequest(&answerBody{Correct: &yes}))
	assert.Error(t, ValidateRequest(&answerBody{}))
	assert.NoError(t, ValidateRequest(selfValidating{}))
	assert.ErrorIs(t, ValidateRequest(selfValidating{err: ErrEmptyBody}), ErrEmptyBody)
}
