package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatusProgression(t *testing.T) {
	next, err := NextStatus(Submitted)
	require.NoError(t, err)
	assert.Equal(t, InProgress, next)

	next, err = NextStatus(next)
	require.NoError(t, err)
	assert.Equal(t, Completed, next)
}

func TestNextStatusTwiceFromSubmittedIsCompleted(t *testing.T) {
	first, err := NextStatus(Submitted)
	require.NoError(t, err)
	second, err := NextStatus(first)
	require.NoError(t, err)
	assert.Equal(t, Completed, second)
}

func TestNextStatusCompletedIsTerminal(t *testing.T) {
	// completed maps to itself, idempotently, not to an error
	for i := 0; i < 3; i++ {
		next, err := NextStatus(Completed)
		require.NoError(t, err)
		assert.Equal(t, Completed, next)
	}
}

func TestNextStatusRejectsUnknownValue(t *testing.T) {
	_, err := NextStatus(IssueStatus("archived"))
	assert.Error(t, err)

	_, err = NextStatus(IssueStatus(""))
	assert.Error(t, err)
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to IssueStatus
		want     bool
	}{
		{Submitted, InProgress, true},
		{InProgress, Completed, true},
		{Submitted, Submitted, true},
		{InProgress, InProgress, true},
		{Completed, Completed, true},
		// no skip-ahead
		{Submitted, Completed, false},
		// no way back
		{InProgress, Submitted, false},
		{Completed, InProgress, false},
		{Completed, Submitted, false},
		// outside the enum
		{IssueStatus("archived"), Submitted, false},
		{Submitted, IssueStatus("archived"), false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to),
			"transition %s -> %s", tc.from, tc.to)
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus("submitted"))
	assert.True(t, ValidStatus("in_progress"))
	assert.True(t, ValidStatus("completed"))
	assert.False(t, ValidStatus("pending"))
	assert.False(t, ValidStatus(""))
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory("Roads & Potholes"))
	assert.True(t, ValidCategory("Other"))
	assert.False(t, ValidCategory("Aliens"))
	assert.False(t, ValidCategory(""))
}

func TestTouchKeepsDualEncodingConsistent(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	var issue Issue
	issue.Touch(now)

	assert.Equal(t, now, issue.CreatedAt)
	assert.Equal(t, now, issue.UpdatedAt)
	assert.Equal(t, now.UnixMilli(), issue.Timestamp)
}
