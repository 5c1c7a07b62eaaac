package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/zakariamou/sahha/internal/models"
)

type ReminderPlanReader interface {
	FindByDate(date string) (models.PlanDay, bool, error)
}

type ReminderSettingsReader interface {
	Get() (models.Settings, bool, error)
}

// ReminderService pings a Telegram chat once a day with today's workout and
// calorie target. It is entirely optional: without the bot env vars it never
// starts.
type ReminderService struct {
	plan      ReminderPlanReader
	settings  ReminderSettingsReader
	botToken  string
	chatID    string
	enabled   bool
	location  *time.Location
	client    *http.Client
	mu        sync.Mutex
	sentDates map[string]bool
}

func NewReminderService(plan ReminderPlanReader, settings ReminderSettingsReader, location *time.Location) *ReminderService {
	botToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	chatID := os.Getenv("TELEGRAM_CHAT_ID")
	if location == nil {
		location = time.Local
	}
	return &ReminderService{
		plan:     plan,
		settings: settings,
		botToken: botToken,
		chatID:   chatID,
		enabled:  botToken != "" && chatID != "",
		location: location,
		client: &http.Client{
			Timeout: 8 * time.Second,
		},
		sentDates: make(map[string]bool),
	}
}

func (service *ReminderService) Start(ctx context.Context) {
	if !service.enabled {
		return
	}

	ticker := time.NewTicker(6 * time.Hour)
	go func() {
		defer ticker.Stop()

		service.run(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				service.run(ctx)
			}
		}
	}()
}

func (service *ReminderService) run(ctx context.Context) {
	today := FormatDay(time.Now().In(service.location))
	if !service.shouldSend(today) {
		return
	}

	day, found, err := service.plan.FindByDate(today)
	if err != nil {
		log.Printf("reminder: fetch plan day failed: %v", err)
		return
	}
	if !found {
		return
	}
	settings, found, err := service.settings.Get()
	if err != nil {
		log.Printf("reminder: fetch settings failed: %v", err)
		return
	}
	if !found {
		return
	}

	if err := service.sendTelegram(ctx, buildReminderMessage(day, settings)); err != nil {
		log.Printf("reminder: send failed: %v", err)
	}
}

func buildReminderMessage(day models.PlanDay, settings models.Settings) string {
	workout := "Rest day"
	if day.Workout != nil {
		workout = day.Workout.Title
	}
	calories := 0
	if settings.TargetsAuto != nil {
		calories = settings.TargetsAuto.Calories
	}
	if calories == 0 {
		calories = settings.Targets.Calories
	}
	return fmt.Sprintf("Sahha today (%s): %s. Calorie target: %d kcal.", day.Date, workout, calories)
}

// shouldSend dedups to one reminder per calendar day.
func (service *ReminderService) shouldSend(date string) bool {
	service.mu.Lock()
	defer service.mu.Unlock()

	if service.sentDates[date] {
		return false
	}
	service.sentDates[date] = true
	if len(service.sentDates) > 500 {
		service.sentDates = map[string]bool{date: true}
	}
	return true
}

func (service *ReminderService) sendTelegram(ctx context.Context, message string) error {
	values := url.Values{}
	values.Set("chat_id", service.chatID)
	values.Set("text", message)

	endpoint := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", service.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := service.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("telegram status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
