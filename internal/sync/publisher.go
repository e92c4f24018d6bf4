// Package sync pushes profile snapshots to the remote sync service over
// RabbitMQ. The local store stays the source of truth; a failed publish is
// logged and dropped, never surfaced to the user.
package sync

import (
	"encoding/json"
	"log"
	"time"

	"nutrialarm/internal/models"

	"github.com/streadway/amqp"
)

const exchangeName = "nutrialarm.sync"

type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchangeName, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	return &Publisher{conn: conn, channel: ch}, nil
}

// PublishUserSnapshot emits the profile document for the remote store.
// Best effort only.
func (p *Publisher) PublishUserSnapshot(user *models.User) {
	if p == nil {
		return
	}
	body, err := json.Marshal(map[string]any{
		"type":      "user.snapshot",
		"user":      user,
		"synced_at": time.Now().UnixMilli(),
	})
	if err != nil {
		return
	}
	err = p.channel.Publish(exchangeName, "user."+user.ID, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
		Timestamp:   time.Now(),
	})
	if err != nil {
		log.Printf("Sync publish failed for user %s: %v", user.ID, err)
	}
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
