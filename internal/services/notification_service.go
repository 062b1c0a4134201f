package services

import (
	"fmt"
	"log"

	"github.com/snoutandabout-dev/mahoneymakes/internal/mailer"
	"github.com/snoutandabout-dev/mahoneymakes/internal/models"
)

// fallbackNotificationEmail receives operator notifications when no
// notification_email setting has been configured.
const fallbackNotificationEmail = "jhnewsome@gmail.com"

const notificationEmailSettingKey = "notification_email"

type SettingsStore interface {
	GetSetting(key string) (string, error)
}

type EmailSender interface {
	Configured() bool
	Send(to, subject, html string) error
}

// NotificationResult reports each send independently; one failing never
// rolls back or suppresses the other.
type NotificationResult struct {
	BakerNotified    bool
	CustomerNotified bool
}

// NotificationService composes and sends the operator and customer emails
// for a submitted order request. Delivery is best-effort: the request is
// already durably persisted by the time this runs.
type NotificationService struct {
	settings SettingsStore
	sender   EmailSender
}

func NewNotificationService(settings SettingsStore, sender EmailSender) *NotificationService {
	return &NotificationService{
		settings: settings,
		sender:   sender,
	}
}

// Configured reports whether the email transport can send at all.
func (s *NotificationService) Configured() bool {
	return s.sender.Configured()
}

// Notify always attempts the operator email; the customer confirmation is
// attempted only when the submitter left an address.
func (s *NotificationService) Notify(p models.NotificationPayload) NotificationResult {
	result := NotificationResult{}

	to := s.bakerEmail()
	bakerHTML, err := mailer.BakerNotification(p)
	if err != nil {
		log.Printf("failed to render baker notification: %v", err)
	} else if err := s.sender.Send(to, fmt.Sprintf("New Order Request from %s", p.CustomerName), bakerHTML); err != nil {
		log.Printf("failed to send baker notification: %v", err)
	} else {
		result.BakerNotified = true
	}

	if p.CustomerEmail == "" {
		// Nothing to send; not a failure.
		result.CustomerNotified = true
		return result
	}

	customerHTML, err := mailer.CustomerConfirmation(p)
	if err != nil {
		log.Printf("failed to render customer confirmation: %v", err)
		return result
	}
	if err := s.sender.Send(p.CustomerEmail, "We Received Your Cake Order Request!", customerHTML); err != nil {
		log.Printf("failed to send customer confirmation: %v", err)
		return result
	}
	result.CustomerNotified = true
	return result
}

// bakerEmail resolves the operator recipient fresh on every attempt so
// settings changes take effect without a restart.
func (s *NotificationService) bakerEmail() string {
	value, err := s.settings.GetSetting(notificationEmailSettingKey)
	if err != nil {
		log.Printf("failed to read notification email setting: %v", err)
		return fallbackNotificationEmail
	}
	if value == "" {
		return fallbackNotificationEmail
	}
	return value
}
