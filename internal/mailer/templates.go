package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/snoutandabout-dev/mahoneymakes/internal/models"
)

// templateData is the view for both email bodies. Optional fields are
// pre-rendered so the templates stay free of conditionals.
type templateData struct {
	OrderID        string
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	CakeType       string
	EventType      string
	EventDate      string
	Servings       string
	Budget         string
	RequestDetails string
}

var bakerTemplate = template.Must(template.New("baker").Parse(`
<div style="font-family: Georgia, serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #8B4513; border-bottom: 2px solid #D4A574; padding-bottom: 10px;">
    New Order Request!
  </h1>

  <div style="background: #FFF8F0; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h2 style="color: #5D4037; margin-top: 0;">Customer Details</h2>
    <p><strong>Name:</strong> {{.CustomerName}}</p>
    <p><strong>Email:</strong> {{.CustomerEmail}}</p>
    <p><strong>Phone:</strong> {{.CustomerPhone}}</p>
  </div>

  <div style="background: #FFF8F0; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h2 style="color: #5D4037; margin-top: 0;">Order Details</h2>
    <p><strong>Cake Type:</strong> {{.CakeType}}</p>
    <p><strong>Event Type:</strong> {{.EventType}}</p>
    <p><strong>Event Date:</strong> {{.EventDate}}</p>
    <p><strong>Servings:</strong> {{.Servings}}</p>
    <p><strong>Budget:</strong> {{.Budget}}</p>
  </div>

  <div style="background: #FFF8F0; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h2 style="color: #5D4037; margin-top: 0;">Request Details</h2>
    <p style="white-space: pre-wrap;">{{.RequestDetails}}</p>
  </div>

  <p style="color: #888; font-size: 12px; margin-top: 30px;">
    Order ID: {{.OrderID}}
  </p>
</div>
`))

var customerTemplate = template.Must(template.New("customer").Parse(`
<div style="font-family: Georgia, serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #8B4513; border-bottom: 2px solid #D4A574; padding-bottom: 10px;">
    Thank You for Your Order Request!
  </h1>

  <p>Dear {{.CustomerName}},</p>

  <p>We've received your custom cake order request and we're so excited to help make your event special!</p>

  <div style="background: #FFF8F0; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h2 style="color: #5D4037; margin-top: 0;">Your Request Summary</h2>
    <p><strong>Cake Type:</strong> {{.CakeType}}</p>
    <p><strong>Event Type:</strong> {{.EventType}}</p>
    <p><strong>Event Date:</strong> {{.EventDate}}</p>
    <p><strong>Servings:</strong> {{.Servings}}</p>
    <p><strong>Budget:</strong> {{.Budget}}</p>
  </div>

  <p><strong>What happens next?</strong></p>
  <p>I'll review your request and get back to you within 24-48 hours with more details about pricing and availability.</p>

  <p>If you have any questions in the meantime, feel free to reach out!</p>

  <p style="margin-top: 30px;">
    With love and butter,<br>
    <strong>Mahoney Makes</strong>
  </p>

  <p style="color: #888; font-size: 12px; margin-top: 30px;">
    Reference: {{.OrderID}}
  </p>
</div>
`))

func newTemplateData(p models.NotificationPayload) templateData {
	return templateData{
		OrderID:        p.OrderID,
		CustomerName:   p.CustomerName,
		CustomerEmail:  orDefault(p.CustomerEmail, "Not provided"),
		CustomerPhone:  p.CustomerPhone,
		CakeType:       p.CakeType,
		EventType:      orDefault(p.EventType, "Not specified"),
		EventDate:      formatEventDate(p.EventDate),
		Servings:       formatServings(p.Servings),
		Budget:         orDefault(p.Budget, "Not specified"),
		RequestDetails: orDefault(p.RequestDetails, "No additional details"),
	}
}

// BakerNotification renders the operator-facing email body with every
// field from the request.
func BakerNotification(p models.NotificationPayload) (string, error) {
	return render(bakerTemplate, newTemplateData(p))
}

// CustomerConfirmation renders the customer-facing thank-you body.
func CustomerConfirmation(p models.NotificationPayload) (string, error) {
	return render(customerTemplate, newTemplateData(p))
}

// OrderSummaryText renders the plain-text summary used by the legacy SMTP
// notification endpoint.
func OrderSummaryText(p models.NotificationPayload) string {
	servings := ""
	if p.Servings != nil {
		servings = fmt.Sprintf("%d", *p.Servings)
	}
	lines := []string{
		"Order ID: " + p.OrderID,
		"Customer: " + p.CustomerName,
		"Email: " + orDefault(p.CustomerEmail, "N/A"),
		"Phone: " + orDefault(p.CustomerPhone, "N/A"),
		"Cake: " + p.CakeType,
		"Event: " + p.EventType,
		"Date: " + p.EventDate,
		"Servings: " + servings,
		"Budget: " + p.Budget,
		"Details: " + p.RequestDetails,
	}
	return strings.Join(lines, "\n")
}

func render(t *template.Template, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}
	return buf.String(), nil
}

func formatEventDate(value string) string {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return value
	}
	return t.Format("Monday, January 2, 2006")
}

func formatServings(servings *int) string {
	if servings == nil {
		return "Not specified"
	}
	return fmt.Sprintf("%d", *servings)
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
