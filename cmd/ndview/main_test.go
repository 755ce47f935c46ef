package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInts(t *testing.T) {
	got, err := parseInts("2, 3,4")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, got)

	got, err = parseInts("-1,4")
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 4}, got)

	got, err = parseInts("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = parseInts("2,x")
	require.Error(t, err)
}
