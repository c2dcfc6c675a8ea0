package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"Televisores":        "televisores",
		"Línea Blanca":       "l-nea-blanca",
		"  Audio & Video  ":  "audio-video",
		"Refrigeradoras 2x1": "refrigeradoras-2x1",
		"!!!":                "",
	}
	for input, expected := range cases {
		assert.Equal(t, expected, GenerateSlug(input), "input %q", input)
	}
}

func TestHashPasswordAndCompare(t *testing.T) {
	hash := HashPassword("secreto123")
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secreto123", hash)

	assert.True(t, PasswordCompare(hash, []byte("secreto123")))
	assert.False(t, PasswordCompare(hash, []byte("otro")))
}
