package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// BrevoService relays contact-form enquiries to the agency inbox through the
// Brevo transactional email API.
type BrevoService struct {
	APIKey      string
	SenderEmail string
	SenderName  string
	Recipient   string
}

type brevoPayload struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	ReplyTo     map[string]string   `json:"replyTo,omitempty"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent"`
}

// NewBrevoService returns nil when any setting is missing; a nil service
// skips dispatch instead of failing the request, since the contact form is
// not a critical path.
func NewBrevoService(apiKey, senderEmail, senderName, recipient string) *BrevoService {
	if apiKey == "" || senderEmail == "" || senderName == "" || recipient == "" {
		log.Println("⚠️ Email service not configured. Contact form submissions will not be relayed.")
		return nil
	}
	return &BrevoService{
		APIKey:      apiKey,
		SenderEmail: senderEmail,
		SenderName:  senderName,
		Recipient:   recipient,
	}
}

// ContactMessage is a website enquiry to relay.
type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// SendContactMessage relays the enquiry to the configured recipient, with the
// visitor's address as the reply-to. Safe to call on a nil service.
func (s *BrevoService) SendContactMessage(msg ContactMessage) {
	if s == nil {
		log.Println("Email client not initialized, skipping contact dispatch.")
		return
	}

	subject := fmt.Sprintf("New enquiry from %s", msg.Name)
	content := fmt.Sprintf(
		"<h2>Website enquiry</h2><p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p><strong>Phone:</strong> %s</p><p>%s</p>",
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(msg.Phone),
		html.EscapeString(msg.Message),
	)

	if err := s.send(subject, content, msg.Email, msg.Name); err != nil {
		log.Printf("🔥 Failed to relay contact message from %s: %v", msg.Email, err)
		return
	}
	log.Printf("✅ Contact message from %s relayed to %s", msg.Email, s.Recipient)
}

func (s *BrevoService) send(subject, htmlContent, replyToEmail, replyToName string) error {
	if !strings.Contains(replyToEmail, "@") {
		return fmt.Errorf("invalid reply-to email: %s", replyToEmail)
	}

	payload := brevoPayload{
		Sender:      map[string]string{"name": s.SenderName, "email": s.SenderEmail},
		To:          []map[string]string{{"email": s.Recipient, "name": s.SenderName}},
		ReplyTo:     map[string]string{"email": replyToEmail, "name": replyToName},
		Subject:     subject,
		HTMLContent: htmlContent,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %v", err)
	}

	req, err := http.NewRequest("POST", brevoEndpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", s.APIKey)
	req.Header.Set("content-type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("failed to send email via Brevo: %s", string(bodyBytes))
	}
	return nil
}
