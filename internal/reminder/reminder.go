package reminder

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/beautyparlour/parlour-api/internal/models"
)

// Scheduler creates reminder notifications for bookings happening within
// the next 24 hours.
type Scheduler struct {
	db   *gorm.DB
	cron *cron.Cron
}

func NewScheduler(db *gorm.DB) *Scheduler {
	return &Scheduler{db: db, cron: cron.New()}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("@hourly", s.Run); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// Run is idempotent: a booking that already has a reminder notification
// is skipped, so repeated sweeps never double-notify.
func (s *Scheduler) Run() {
	now := time.Now().UTC()
	horizon := now.Add(24 * time.Hour)

	var bookings []models.Booking
	err := s.db.Preload("Service").
		Where("appointment_time BETWEEN ? AND ?", now, horizon).
		Where("status IN ?", []string{"pending", "confirmed"}).
		Find(&bookings).Error
	if err != nil {
		log.Println("reminder sweep failed:", err)
		return
	}

	for i := range bookings {
		b := &bookings[i]

		var count int64
		s.db.Model(&models.Notification{}).
			Where("booking_id = ? AND type = ?", b.ID, models.NotificationTypeReminder).
			Count(&count)
		if count > 0 {
			continue
		}

		notification := models.Notification{
			Message: fmt.Sprintf(
				"Reminder: your %s appointment is at %s",
				b.Service.Title,
				b.AppointmentTime.Format("2006-01-02 15:04"),
			),
			Type:       models.NotificationTypeReminder,
			Status:     models.NotificationStatusUnread,
			CustomerID: b.CustomerID,
			BookingID:  &b.ID,
		}

		if err := s.db.Create(&notification).Error; err != nil {
			log.Println("reminder create failed:", err)
		}
	}
}
