package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// MockMailer stands in for real SMTP delivery.
type MockMailer struct {
	WasCalled bool
	LastTo    string
	LastTitle string
}

func (m *MockMailer) SendArtworkCreatedEmail(toEmail, artworkTitle string) error {
	m.WasCalled = true
	m.LastTo = toEmail
	m.LastTitle = artworkTitle
	return nil
}

func TestSendArtworkCreatedEmail_Mock(t *testing.T) {
	mock := &MockMailer{}
	err := mock.SendArtworkCreatedEmail("artist@example.com", "Cathedral")

	assert.NoError(t, err)
	assert.True(t, mock.WasCalled)
	assert.Equal(t, "artist@example.com", mock.LastTo)
	assert.Equal(t, "Cathedral", mock.LastTitle)
}
