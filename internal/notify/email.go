package notify

import (
	"fmt"
	"log"
	"net/smtp"

	"DeviceDB/pkg/config"

	"github.com/jordan-wright/email"
)

// EmailNotifier sends operator notifications over SMTP. Notification is
// strictly auxiliary: Notify cannot fail from the caller's perspective,
// transport errors are logged and discarded.
type EmailNotifier struct {
	conf config.SMTPConfig
}

// NewEmailNotifier creates a notifier from the SMTP config section.
func NewEmailNotifier(conf config.SMTPConfig) *EmailNotifier {
	return &EmailNotifier{conf: conf}
}

// Notify sends one plain-text email, best effort.
func (n *EmailNotifier) Notify(subject, body string) {
	if n.conf.Server == "" || n.conf.From == "" || n.conf.To == "" {
		log.Printf("Notification transport not configured, skipping email %q", subject)
		return
	}

	mail := email.NewEmail()
	mail.From = fmt.Sprintf("DeviceDB Scraper <%s>", n.conf.From)
	mail.To = []string{n.conf.To}
	mail.Subject = subject
	mail.Text = []byte(body)

	addr := fmt.Sprintf("%s:%d", n.conf.Server, n.conf.Port)
	err := mail.Send(addr, smtp.PlainAuth("", n.conf.From, n.conf.Password, n.conf.Server))
	if err != nil {
		log.Printf("Failed to send email %q: %v", subject, err)
	}
}
