package service

import (
	"context"
	"testing"
	"time"

	"gamechanger/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_Submit(t *testing.T) {
	svc := NewPostService(0)

	tests := []struct {
		name     string
		draft    models.DraftPost
		accepted bool
	}{
		{"content", models.DraftPost{Content: "Match day!"}, true},
		{"media only", models.DraftPost{Media: []string{"clip.mp4"}}, true},
		{"blank", models.DraftPost{Content: "  \n "}, false},
		{"blank media names", models.DraftPost{Media: []string{"", " "}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accepted, err := svc.Submit(context.Background(), tt.draft)
			require.NoError(t, err)
			assert.Equal(t, tt.accepted, accepted)
		})
	}
}

func TestPostService_WaitsForDelay(t *testing.T) {
	svc := NewPostService(30 * time.Millisecond)

	start := time.Now()
	accepted, err := svc.Submit(context.Background(), models.DraftPost{Content: "hello"})
	require.NoError(t, err)
	assert.True(t, accepted)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestPostService_BlankDraftSkipsDelay(t *testing.T) {
	svc := NewPostService(time.Hour)

	accepted, err := svc.Submit(context.Background(), models.DraftPost{})
	require.NoError(t, err)
	assert.False(t, accepted)
}

func TestPostService_Cancelled(t *testing.T) {
	svc := NewPostService(time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	accepted, err := svc.Submit(ctx, models.DraftPost{Content: "hello"})
	assert.False(t, accepted)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
