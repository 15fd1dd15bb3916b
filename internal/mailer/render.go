package mailer

import (
	"fmt"

	"github.com/diwanalardiya/ardiya/internal/domain"
)

// QuoteEmail собирает тему и тело уведомления о запросе предложения.
func QuoteEmail(q *domain.QuoteRequest) (subject, body string) {
	subject = "New Quote Request"
	body = fmt.Sprintf(
		"New Quote Request\n\n"+
			"Name: %s\nCompany: %s\n"+
			"Email: %s\nPhone: %s\n"+
			"Product: %s\n\nMessage:\n%s\n",
		q.Name,
		orDash(q.Company),
		q.Email,
		orDash(q.Phone),
		orDash(q.Product),
		orDash(q.Message),
	)
	return subject, body
}

// ContactEmail собирает тему и тело уведомления о сообщении обратной связи.
func ContactEmail(c *domain.ContactMessage) (subject, body string) {
	subject = "New Contact Message"
	body = fmt.Sprintf(
		"New Contact Message\n\n"+
			"Name: %s\nCompany: %s\n"+
			"Email: %s\nPhone: %s\n"+
			"Interest: %s\n\nMessage:\n%s\n",
		c.Name,
		orDash(c.Company),
		c.Email,
		orDash(c.Phone),
		orDash(c.Interest),
		c.Message,
	)
	return subject, body
}

// orDash подставляет "-" вместо незаполненного поля.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
