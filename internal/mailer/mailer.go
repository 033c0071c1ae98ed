package mailer

import (
	"github.com/rakib120822/artify-server/internal/config"
	"gopkg.in/gomail.v2"
)

// Mailer sends notification emails to artists. Sending is best-effort; the
// caller decides whether a failure matters.
type Mailer struct {
	cfg *config.SMTPConfig
}

func NewMailer(cfg *config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) SendArtworkCreatedEmail(toEmail, artworkTitle string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.Email)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "New Artwork Published")
	msg.SetBody("text/plain", "Your artwork '"+artworkTitle+"' has been published successfully.")

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Email, m.cfg.Password)
	return d.DialAndSend(msg)
}
