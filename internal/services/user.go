package services

//go:generate mockgen -source=user.go -destination=user_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-users/internal/logger"
	"github.com/sbilibin2017/gw-users/internal/middlewares"
	"github.com/sbilibin2017/gw-users/internal/models"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var (
	// ErrUserNotFound is returned when no user has the requested id.
	ErrUserNotFound = errors.New("user not found")
)

// defaultPublishTimeout bounds how long a request waits on the Kafka writer.
const defaultPublishTimeout = 500 * time.Millisecond

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, firstName, lastName string) (int64, error)
	Update(ctx context.Context, id int64, firstName, lastName string) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// UserService implements the users resource on top of the repositories.
type UserService struct {
	reader         UserReader
	writer         UserWriter
	kafkaWriter    KafkaWriter
	publishTimeout time.Duration
}

// NewUserService creates a new UserService. kafkaWriter may be nil.
func NewUserService(reader UserReader, writer UserWriter, kafkaWriter KafkaWriter) *UserService {
	return &UserService{
		reader:         reader,
		writer:         writer,
		kafkaWriter:    kafkaWriter,
		publishTimeout: defaultPublishTimeout,
	}
}

// Create stores a new user and returns it with its assigned id.
func (s *UserService) Create(ctx context.Context, firstName, lastName string) (*models.User, error) {
	id, err := s.writer.Create(ctx, firstName, lastName)
	if err != nil {
		log(ctx).Errorw("failed to create user", "first_name", firstName, "last_name", lastName, "error", err)
		return nil, err
	}

	s.publish(ctx, models.UserCreated, id)

	return &models.User{ID: id, FirstName: firstName, LastName: lastName}, nil
}

// Get returns the user with the given id, or ErrUserNotFound if it does not exist.
func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.reader.GetByID(ctx, id)
	if err != nil {
		log(ctx).Errorw("failed to get user", "id", id, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.reader.List(ctx)
	if err != nil {
		log(ctx).Errorw("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

// Update changes the names of a user. Nil or blank names keep the stored value.
// Store failures are logged and reported as false.
func (s *UserService) Update(ctx context.Context, id int64, firstName, lastName *string) bool {
	first, last := deref(firstName), deref(lastName)
	if isBlank(first) && isBlank(last) {
		return false
	}

	if isBlank(first) || isBlank(last) {
		current, err := s.reader.GetByID(ctx, id)
		if err != nil {
			log(ctx).Errorw("failed to read user before update", "id", id, "error", err)
			return false
		}
		if current == nil {
			return false
		}
		if isBlank(first) {
			first = current.FirstName
		}
		if isBlank(last) {
			last = current.LastName
		}
	}

	ok, err := s.writer.Update(ctx, id, first, last)
	if err != nil {
		log(ctx).Errorw("failed to update user", "id", id, "error", err)
		return false
	}
	if ok {
		s.publish(ctx, models.UserUpdated, id)
	}
	return ok
}

// Delete removes a user. Store failures are logged and reported as false.
func (s *UserService) Delete(ctx context.Context, id int64) bool {
	ok, err := s.writer.Delete(ctx, id)
	if err != nil {
		log(ctx).Errorw("failed to delete user", "id", id, "error", err)
		return false
	}
	if ok {
		s.publish(ctx, models.UserDeleted, id)
	}
	return ok
}

// publish sends a user event to Kafka, waiting at most publishTimeout.
// Failures are logged only.
func (s *UserService) publish(ctx context.Context, eventType string, userID int64) {
	if s.kafkaWriter == nil {
		log(ctx).Debugw("Kafka writer not configured, skipping publishing", "type", eventType, "user_id", userID)
		return
	}

	event := models.UserEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log(ctx).Errorw("failed to marshal user event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(userID, 10)),
		Value: data,
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()

	if err := s.kafkaWriter.WriteMessages(pubCtx, msg); err != nil {
		log(ctx).Errorw("failed to publish user event", "event_id", event.EventID, "type", eventType, "error", err)
		return
	}
	log(ctx).Infow("user event published", "event_id", event.EventID, "type", eventType, "user_id", userID)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// log returns the global logger tagged with the request ID carried by ctx.
func log(ctx context.Context) *zap.SugaredLogger {
	if id := middlewares.RequestID(ctx); id != "" {
		return logger.Log.With("request_id", id)
	}
	return logger.Log
}
