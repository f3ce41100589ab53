package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRoundTrip(t *testing.T) {
	chunk := Chunk{
		ID:        "deadbeef0123_4",
		Source:    "/abs/path/source.txt",
		Content:   "some chunk content",
		StartChar: 1800,
		EndChar:   3800,
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	data, err := json.Marshal(NewRecord(chunk))
	require.NoError(t, err)

	got, err := ParseRecord(data)
	require.NoError(t, err)
	assert.Equal(t, chunk, got)
}

func TestNewRecord_TimestampSecondPrecision(t *testing.T) {
	chunk := Chunk{ID: "x_0", CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 987654321, time.UTC)}
	rec := NewRecord(chunk)
	assert.Equal(t, "2024-05-01T12:00:00Z", rec.Metadata.CreatedAt)
}

func TestParseRecord_MissingContent(t *testing.T) {
	_, err := ParseRecord([]byte(`{"metadata":{"chunk_id":"x_0"}}`))
	assert.ErrorIs(t, err, ErrMissingContent)
}

func TestParseRecord_EmptyContentIsValid(t *testing.T) {
	got, err := ParseRecord([]byte(`{"content":"","metadata":{"chunk_id":"x_0"}}`))
	require.NoError(t, err)
	assert.Empty(t, got.Content)
	assert.Equal(t, "x_0", got.ID)
}

func TestParseRecord_BadTimestampTolerated(t *testing.T) {
	got, err := ParseRecord([]byte(`{"content":"c","metadata":{"chunk_id":"x_0","created_at":"yesterday"}}`))
	require.NoError(t, err)
	assert.True(t, got.CreatedAt.IsZero())
}

func TestParseRecord_InvalidJSON(t *testing.T) {
	_, err := ParseRecord([]byte(`{`))
	assert.Error(t, err)
}
