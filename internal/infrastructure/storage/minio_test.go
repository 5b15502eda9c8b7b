package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScreenshotKey(t *testing.T) {
	at := time.Date(2024, 3, 9, 23, 0, 0, 0, time.UTC)

	png := ScreenshotKey(7, at, "image/png")
	assert.True(t, strings.HasPrefix(png, "screenshots/7/2024-03-09/"))
	assert.True(t, strings.HasSuffix(png, ".png"))

	assert.True(t, strings.HasSuffix(ScreenshotKey(7, at, "image/jpeg"), ".jpg"))
	assert.True(t, strings.HasSuffix(ScreenshotKey(7, at, "application/octet-stream"), ".png"))
	assert.NotEqual(t, png, ScreenshotKey(7, at, "image/png"))
}
