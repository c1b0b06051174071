package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendEmailInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   SendEmailInput
		wantErr bool
	}{
		{
			name:  "valid",
			input: SendEmailInput{To: "alice@acme.com", Subject: "Hi", Body: "<p>hello</p>"},
		},
		{
			name:    "empty to",
			input:   SendEmailInput{Subject: "Hi", Body: "x"},
			wantErr: true,
		},
		{
			name:    "empty subject",
			input:   SendEmailInput{To: "alice@acme.com", Body: "x"},
			wantErr: true,
		},
		{
			name:    "empty body",
			input:   SendEmailInput{To: "alice@acme.com", Subject: "Hi"},
			wantErr: true,
		},
		{
			name:    "invalid to",
			input:   SendEmailInput{To: "not-an-email", Subject: "Hi", Body: "x"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestIsEmailValid(t *testing.T) {
	assert.True(t, IsEmailValid("alice@acme.com"))
	assert.True(t, IsEmailValid("a.b+tag@sub.acme.io"))

	assert.False(t, IsEmailValid(""))
	assert.False(t, IsEmailValid("a@"))
	assert.False(t, IsEmailValid("@acme.com"))
	assert.False(t, IsEmailValid("alice at acme.com"))
}
