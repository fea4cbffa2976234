package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"stagelink_backend/internal/config"
)

type SMTPProvider struct {
	cfg config.EmailConfig
}

func NewSMTPProvider(cfg config.EmailConfig) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) SendWelcome(to, name string) error {
	if !p.cfg.Enabled {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", p.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Welcome to StageLink")
	m.SetBody("text/plain", fmt.Sprintf(
		"Hi %s,\n\nYour StageLink account is ready. Log in to publish offers or apply to gigs.\n",
		name,
	))

	d := gomail.NewDialer(p.cfg.SMTPHost, p.cfg.SMTPPort, p.cfg.SMTPUser, p.cfg.SMTPPassword)
	return d.DialAndSend(m)
}
