package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/IBM/sarama"
	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
)

const EventGameOver = "GAME_OVER"

type GameOverEvent struct {
	Event    string  `json:"event"`
	GameID   string  `json:"gameId"`
	Result   string  `json:"result"`
	Winner   string  `json:"winner"`
	Moves    int     `json:"moves"`
	Duration float64 `json:"duration_seconds"`
}

// Producer publishes finished games to a Kafka topic.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	logger   *log.Logger
}

func NewProducer(brokers []string, topic string, logger *log.Logger) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	p, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return NewProducerFromSync(p, topic, logger), nil
}

// NewProducerFromSync wraps an existing sarama producer.
func NewProducerFromSync(p sarama.SyncProducer, topic string, logger *log.Logger) *Producer {
	if logger == nil {
		logger = log.Default()
	}
	return &Producer{producer: p, topic: topic, logger: logger}
}

func NewGameOverEvent(result game.Result) GameOverEvent {
	winner := "Draw"
	if result.Status == domain.StatusWon {
		winner = result.WinnerName
	}
	return GameOverEvent{
		Event:    EventGameOver,
		GameID:   result.GameID,
		Result:   string(result.Status),
		Winner:   winner,
		Moves:    result.Moves,
		Duration: result.Duration.Seconds(),
	}
}

func (p *Producer) PublishGameOver(ctx context.Context, result game.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	val, err := json.Marshal(NewGameOverEvent(result))
	if err != nil {
		return fmt.Errorf("failed to encode game over event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(result.GameID),
		Value: sarama.ByteEncoder(val),
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("failed to send game over event: %w", err)
	}
	p.logger.Printf("[KAFKA] Event sent for game %s (%.2fs)", result.GameID, result.Duration.Seconds())
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
