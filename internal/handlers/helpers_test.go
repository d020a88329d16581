package handlers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func fixedTestTime(t *testing.T) time.Time {
	t.Helper()
	now, err := time.Parse(time.RFC3339, "2026-08-30T12:00:00Z")
	require.NoError(t, err)
	return now
}
