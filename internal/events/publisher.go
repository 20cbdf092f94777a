package events

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"todo-service/internal/model"
)

const (
	SubjectUserCreated = "user.created"
	SubjectUserUpdated = "user.updated"
	SubjectUserDeleted = "user.deleted"
	SubjectTodoCreated = "todo.created"
	SubjectTodoUpdated = "todo.updated"
	SubjectTodoDeleted = "todo.deleted"
)

type EventPublisher interface {
	PublishUser(subject string, user *model.User) error
	PublishTodo(subject string, todo *model.Todo) error
	Close()
}

type UserEvent struct {
	EventID    uuid.UUID   `json:"event_id"`
	EventType  string      `json:"event_type"`
	User       *model.User `json:"user"`
	OccurredAt time.Time   `json:"occurred_at"`
}

type TodoEvent struct {
	EventID    uuid.UUID   `json:"event_id"`
	EventType  string      `json:"event_type"`
	Todo       *model.Todo `json:"todo"`
	OccurredAt time.Time   `json:"occurred_at"`
}

func NewUserEvent(subject string, user *model.User) UserEvent {
	return UserEvent{EventID: uuid.New(), EventType: subject, User: user, OccurredAt: time.Now().UTC()}
}

func NewTodoEvent(subject string, todo *model.Todo) TodoEvent {
	return TodoEvent{EventID: uuid.New(), EventType: subject, Todo: todo, OccurredAt: time.Now().UTC()}
}

type NatsPublisher struct {
	conn *nats.Conn
}

func NewNatsPublisher(natsURL string) (EventPublisher, error) {
	nc, err := nats.Connect(natsURL, nats.Name("todo-service"))

	if err != nil {
		return nil, err
	}

	return &NatsPublisher{conn: nc}, nil
}

func (p *NatsPublisher) PublishUser(subject string, user *model.User) error {
	return p.publish(subject, NewUserEvent(subject, user))
}

func (p *NatsPublisher) PublishTodo(subject string, todo *model.Todo) error {
	return p.publish(subject, NewTodoEvent(subject, todo))
}

func (p *NatsPublisher) publish(subject string, event any) error {
	eventJSON, err := json.Marshal(event)

	if err != nil {
		slog.Error("Error marshalling event JSON", slog.String("subject", subject), slog.String("error", err.Error()))
		return err
	}

	if err := p.conn.Publish(subject, eventJSON); err != nil {
		slog.Error("Error publishing to NATS", slog.String("subject", subject), slog.String("error", err.Error()))
		return err
	}

	slog.Debug("Published event to NATS", slog.String("subject", subject))

	return nil
}

func (p *NatsPublisher) Close() {
	p.conn.Close()
}

// NopPublisher is used when no NATS_URL is configured.
type NopPublisher struct{}

func (NopPublisher) PublishUser(string, *model.User) error { return nil }
func (NopPublisher) PublishTodo(string, *model.Todo) error { return nil }
func (NopPublisher) Close()                                {}
