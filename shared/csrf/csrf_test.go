package csrf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	token1, err := GenerateToken()
	require.NoError(t, err)
	token2, err := GenerateToken()
	require.NoError(t, err)

	assert.NotEqual(t, token1, token2)
	assert.GreaterOrEqual(t, len(token1), 32)
}

func TestValidateToken(t *testing.T) {
	token := "test-token-123"

	tests := []struct {
		name      string
		cookie    string
		submitted string
		want      bool
	}{
		{"matching", token, token, true},
		{"mismatch", token, "other", false},
		{"empty cookie", "", token, false},
		{"empty submitted", token, "", false},
		{"both empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateToken(tt.cookie, tt.submitted))
		})
	}
}
