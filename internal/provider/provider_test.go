package provider

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_DetailIsMessage(t *testing.T) {
	err := &Error{Kind: KindTransport, Detail: "upstream request timed out after 10s", Err: errors.New("deadline")}

	assert.Equal(t, "upstream request timed out after 10s", err.Error())
	assert.EqualError(t, errors.Unwrap(err), "deadline")
}

func TestErrNotConfigured(t *testing.T) {
	wrapped := fmt.Errorf("complete: %w", ErrNotConfigured)

	assert.ErrorIs(t, wrapped, ErrNotConfigured)
	assert.Equal(t, "Groq API key not configured", ErrNotConfigured.Error())
	assert.Equal(t, KindConfiguration, KindOf(wrapped))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, ""},
		{"plain error", errors.New("boom"), ""},
		{"upstream", &Error{Kind: KindUpstream, StatusCode: 401}, KindUpstream},
		{"shape wrapped", fmt.Errorf("x: %w", &Error{Kind: KindShape}), KindShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestError_IsDistinguishesKinds(t *testing.T) {
	other := &Error{Kind: KindUpstream, Detail: ErrNotConfigured.Detail}
	assert.False(t, errors.Is(other, ErrNotConfigured))
}
