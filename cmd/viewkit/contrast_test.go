package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/viewkit/pkg/errors"
)

func TestContrastPrintsRGBAndTextColor(t *testing.T) {
	res := execute(t, "contrast", "#ffffff", "000", "#1e88e5")
	require.NoError(t, res.err)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "rgb(255, 255, 255)")
	assert.Contains(t, lines[0], "#000000")
	assert.Contains(t, lines[1], "rgb(0, 0, 0)")
	assert.Contains(t, lines[1], "#FFFFFF")
	assert.Contains(t, lines[2], "#FFFFFF")
}

func TestContrastRejectsInvalidColor(t *testing.T) {
	res := execute(t, "contrast", "#12345")
	var valErr *apperrors.ValidationError
	require.ErrorAs(t, res.err, &valErr)
	assert.Contains(t, res.err.Error(), "#12345")
}
