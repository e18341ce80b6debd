package queue

import (
	"context"
	"fmt"

	"vehicle/finder/internal/config"
	"vehicle/finder/internal/domain/event"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const maxStreamLength = 10000

type Queue interface {
	AddEvent(ctx context.Context, e event.Event) (string, error) // Returns message ID
	Record(ctx context.Context, e *event.SubmissionSettled) error
	Close() error
}

type RedisQueue struct {
	redisClient *redis.Client
	stream      string
}

func NewRedisQueue(redisClient *redis.Client, cfg config.RedisConfig) Queue {
	return &RedisQueue{
		redisClient: redisClient,
		stream:      cfg.Stream,
	}
}

func (q *RedisQueue) AddEvent(ctx context.Context, e event.Event) (string, error) {
	eventType := e.EventType()

	eventValue, err := e.EventValue()
	if err != nil {
		return "", fmt.Errorf("failed to serialize event: %w", err)
	}

	// Fields: event_type, event_data
	messageID, err := q.redisClient.XAdd(ctx, &redis.XAddArgs{
		Stream: q.stream,
		MaxLen: maxStreamLength,
		Approx: true,
		Values: map[string]interface{}{
			"event_type": eventType,
			"event_data": string(eventValue),
		},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("failed to add event to Redis stream %s: %w", q.stream, err)
	}

	log.Debugf("Added event %s to stream %s with message ID: %s", eventType, q.stream, messageID)
	return messageID, nil
}

// Record publishes a settled submission.
func (q *RedisQueue) Record(ctx context.Context, e *event.SubmissionSettled) error {
	_, err := q.AddEvent(ctx, e)
	return err
}

func (q *RedisQueue) Close() error {
	if q.redisClient != nil {
		return q.redisClient.Close()
	}
	return nil
}
