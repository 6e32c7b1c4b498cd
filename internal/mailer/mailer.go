package mailer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const resendAPI = "https://api.resend.com/emails"

type Attachment struct {
	Filename string `json:"filename"`
	// Content is base64-encoded, as the provider expects.
	Content string `json:"content"`
}

type email struct {
	From        string       `json:"from"`
	To          string       `json:"to"`
	Subject     string       `json:"subject"`
	HTML        string       `json:"html"`
	Text        string       `json:"text,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

type Mailer struct {
	apiKey string
	from   string
	client *http.Client
}

func New(apiKey, from string) *Mailer {
	return &Mailer{
		apiKey: apiKey,
		from:   from,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Send delivers one transactional email. Without an API key it logs the
// message instead, which keeps local development working end to end.
func (m *Mailer) Send(to, subject, htmlBody, textBody string, atts ...Attachment) error {
	if m.apiKey == "" {
		logrus.WithFields(logrus.Fields{
			"to":          to,
			"subject":     subject,
			"attachments": len(atts),
		}).Info("mail provider not configured, skipping send")
		return nil
	}

	payload := email{
		From:        m.from,
		To:          to,
		Subject:     subject,
		HTML:        htmlBody,
		Text:        textBody,
		Attachments: atts,
	}

	body, _ := json.Marshal(payload)
	req, err := http.NewRequest(http.MethodPost, resendAPI, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mail provider error: %s", resp.Status)
	}

	logrus.WithField("to", to).Info("email sent")
	return nil
}
