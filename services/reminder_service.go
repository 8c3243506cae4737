// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"restobook-backend/models"
	"restobook-backend/utils"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendDailyReminders)

	c.Start()
	log.Println("Reservation reminder scheduler started")
}

// SendDailyReminders messages every guest with a confirmed reservation for
// tomorrow. Each attempt is recorded in the notification log.
func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reservation reminder processing...")

	tomorrow := utils.BeginningOfDayUTC(time.Now().AddDate(0, 0, 1))

	var reservations []models.Reservation
	if err := s.db.Where("date = ? AND status = ?", tomorrow, models.ReservationConfirmed).
		Find(&reservations).Error; err != nil {
		log.Printf("Failed to fetch tomorrow's reservations: %v", err)
		return
	}

	for _, r := range reservations {
		s.sendReminder(r)
	}

	log.Println("Daily reservation reminder processing completed")
}

func (s *ReminderService) sendReminder(r models.Reservation) {
	message := fmt.Sprintf(
		"Hi %s, a reminder of your reservation %s tomorrow at %s for %d guests. See you soon!",
		r.CustomerName, r.Code, r.Time, r.PartySize)

	// Determine channel (WhatsApp if available, else SMS)
	channel := "sms"
	var to string

	// Use WhatsApp if phone is in E.164 format and starts with '+'
	if strings.HasPrefix(r.CustomerPhone, "+") {
		to = "whatsapp:" + r.CustomerPhone
		channel = "whatsapp"
	} else {
		to = r.CustomerPhone
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", r.CustomerPhone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", r.CustomerPhone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", r.CustomerPhone)
	}

	entry := models.NotificationLog{
		ReservationID: r.ID,
		Type:          "reminder",
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		Channel:       channel,
		SentAt:        time.Now(),
	}

	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("Failed to log reminder for reservation %s: %v", r.Code, err)
	}
}
