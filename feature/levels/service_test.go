package levels

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func names(levels []Level) []string {
	out := make([]string, len(levels))
	for i, l := range levels {
		out[i] = l.Name
	}
	return out
}

func TestService_ListBuiltinKeepsFileOrder(t *testing.T) {
	svc := newTestService(t, nil, testLevels)

	levels, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Zombie Beach", "Ancient Egypt", "Frostbite Caves"}, names(levels))
	assert.Equal(t, "{\n  \"i\": \"beach\",\n  \"r\": 1\n}", levels[0].Code)
	assert.False(t, levels[0].Custom)
}

func TestService_SaveAndListCustomFirst(t *testing.T) {
	svc := newTestService(t, newTestDB(t), testLevels)
	ctx := context.Background()

	saved, err := svc.Save(ctx, "  My Level ", `{"i":"mine","r":9}`)
	require.NoError(t, err)
	assert.Equal(t, "My Level", saved.Name)
	assert.True(t, saved.Custom)

	_, err = svc.Save(ctx, "Another", `{"x":[1,2]}`)
	require.NoError(t, err)

	levels, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"My Level", "Another", "Zombie Beach", "Ancient Egypt", "Frostbite Caves"}, names(levels))
	assert.Equal(t, "{\n  \"i\": \"mine\",\n  \"r\": 9\n}", levels[0].Code)
}

func TestService_ListFilter(t *testing.T) {
	svc := newTestService(t, newTestDB(t), testLevels)
	ctx := context.Background()

	_, err := svc.Save(ctx, "Beach Party", `{}`)
	require.NoError(t, err)

	levels, err := svc.List(ctx, "BEACH")
	require.NoError(t, err)
	assert.Equal(t, []string{"Beach Party", "Zombie Beach"}, names(levels))
}

func TestService_SaveErrors(t *testing.T) {
	svc := newTestService(t, newTestDB(t), "")
	ctx := context.Background()

	_, err := svc.Save(ctx, "Taken", `{"a":1}`)
	require.NoError(t, err)

	tests := []struct {
		name    string
		level   string
		code    string
		wantErr error
	}{
		{"Duplicate", "Taken", `{"a":2}`, ErrLevelExists},
		{"EmptyName", "  ", `{"a":1}`, ErrInvalidLevel},
		{"NotJSON", "Bad", `{a:1}`, ErrInvalidLevel},
		{"NotObject", "Array", `[1,2,3]`, ErrInvalidLevel},
		{"Scalar", "Scalar", `42`, ErrInvalidLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Save(ctx, tt.level, tt.code)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_WithoutDatabase(t *testing.T) {
	svc := newTestService(t, nil, testLevels)

	_, err := svc.Save(context.Background(), "x", `{}`)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, svc.Migrate(), ErrStoreUnavailable)
}

func TestService_BuiltinUnavailable(t *testing.T) {
	tests := []struct {
		name   string
		levels string
	}{
		{"Missing", ""},
		{"Invalid", `{"a": `},
		{"NotObject", `[1, 2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.ErrorLevel)
			svc := newTestService(t, nil, tt.levels)
			svc.logger = zap.New(core)

			levels, err := svc.List(context.Background(), "")
			require.NoError(t, err)
			assert.Empty(t, levels)
			assert.Equal(t, 1, logs.FilterMessage("Built-in levels unavailable").Len())
		})
	}
}
