package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyJSON(t *testing.T) {
	out, err := PrettyJSON(map[string]any{"i": "abc", "r": 5})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"i\": \"abc\",\n  \"r\": 5\n}", out)

	_, err = PrettyJSON(map[string]any{"bad": func() {}})
	assert.Error(t, err)
}

func TestSplitIDs(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"1,2,3", []string{"1", "2", "3"}},
		{" 1 , 2\t3 ", []string{"1", "2", "3"}},
		{",,", []string{}},
		{"", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := SplitIDs(tt.in)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
