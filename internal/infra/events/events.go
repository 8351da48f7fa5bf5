package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// Каналы pub/sub для инвалидации кэшей представлений.
// Подписчики (веб-приложение, нотификации) сбрасывают свои кэши по этим событиям.
const (
	ChannelClientRecordChanged   = "scheduling.client_record_changed"
	ChannelWeeklyScheduleChanged = "scheduling.weekly_schedule_changed"
	ChannelCoachCalendarChanged  = "scheduling.coach_calendar_changed"
	ChannelLessonScheduled       = "scheduling.lesson_scheduled"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// InvalidationEvent событие инвалидации кэша представления
type InvalidationEvent struct {
	EntityID   int64     `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// LessonScheduledEvent уведомительное событие о созданных занятиях.
// Timezone используется подписчиками только для форматирования времени в
// уведомлениях, никогда для календарной арифметики.
type LessonScheduledEvent struct {
	CoachID      int64     `json:"coach_id"`
	ClientID     int64     `json:"client_id"`
	TotalLessons int       `json:"total_lessons"`
	SendEmail    bool      `json:"send_email"`
	Timezone     string    `json:"timezone,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// Publisher публикует события планировщика в Redis pub/sub
type Publisher struct {
	client *redis.Client
	log    Logger
}

// NewPublisher создает publisher поверх существующего Redis клиента
func NewPublisher(client *redis.Client, log Logger) *Publisher {
	return &Publisher{client: client, log: log}
}

// NewRedisClient создает и проверяет Redis клиент
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	return client, nil
}

// ClientRecordChanged публикует событие изменения карточки клиента
func (p *Publisher) ClientRecordChanged(ctx context.Context, clientID int64) {
	p.publish(ctx, ChannelClientRecordChanged, InvalidationEvent{
		EntityID:   clientID,
		OccurredAt: time.Now(),
	})
}

// WeeklyScheduleChanged публикует событие изменения недельного расписания клиента
func (p *Publisher) WeeklyScheduleChanged(ctx context.Context, clientID int64) {
	p.publish(ctx, ChannelWeeklyScheduleChanged, InvalidationEvent{
		EntityID:   clientID,
		OccurredAt: time.Now(),
	})
}

// CoachCalendarChanged публикует событие изменения месячного календаря тренера
func (p *Publisher) CoachCalendarChanged(ctx context.Context, coachID int64) {
	p.publish(ctx, ChannelCoachCalendarChanged, InvalidationEvent{
		EntityID:   coachID,
		OccurredAt: time.Now(),
	})
}

// LessonScheduled публикует уведомительное событие о созданных занятиях
func (p *Publisher) LessonScheduled(ctx context.Context, event LessonScheduledEvent) {
	event.OccurredAt = time.Now()
	p.publish(ctx, ChannelLessonScheduled, event)
}

// publish сериализует и отправляет событие. Ошибки публикации только
// логируются: запись уже зафиксирована, событие носит уведомительный характер.
func (p *Publisher) publish(ctx context.Context, channel string, event interface{}) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.log.Error("events: failed to marshal event for %s: %v", channel, err)
		return
	}

	if err := p.client.Publish(ctx, channel, payload).Err(); err != nil {
		p.log.Warn("events: failed to publish to %s: %v", channel, err)
	}
}
