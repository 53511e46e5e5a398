//go:build !ocr

package ocr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReturnsError(t *testing.T) {
	client, err := New("eng")
	assert.ErrorIs(t, err, ErrOCRNotEnabled)
	assert.Nil(t, client)
}

func TestStubClient(t *testing.T) {
	var client *Client
	assert.NoError(t, client.Close())
	assert.Equal(t, EngineName, client.Name())

	_, err := client.RecognizeFile(context.Background(), "card.png")
	assert.ErrorIs(t, err, ErrOCRNotEnabled)
	_, err = client.RecognizeImage(nil)
	assert.ErrorIs(t, err, ErrOCRNotEnabled)
	assert.ErrorIs(t, client.SetLanguage("eng"), ErrOCRNotEnabled)
}
