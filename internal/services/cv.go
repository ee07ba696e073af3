package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/yetkinlik/internal/logger"
	"github.com/sbilibin2017/yetkinlik/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=cv.go -destination=cv_mock.go -package=services

// Error variables
var (
	ErrInvalidEmail   = errors.New("invalid email")
	ErrInvalidPayload = errors.New("payload is not valid JSON")
)

var emptyPayload = []byte(`{}`)

// CVReader defines read-only operations for CVs.
type CVReader interface {
	List(ctx context.Context, limit int) ([]models.CVDB, error)
}

// CVWriter defines write operations for CVs.
type CVWriter interface {
	Save(ctx context.Context, email string, data []byte) (*models.CVDB, error)
}

// Transactor runs fn inside a database transaction. A nil error means it committed.
type Transactor interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// CVCache caches CV lists.
type CVCache interface {
	GetList(ctx context.Context, limit int) ([]models.CVDB, error)
	SetList(ctx context.Context, limit int, cvs []models.CVDB) error
	Invalidate(ctx context.Context) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// CVService lists and stores CVs.
type CVService struct {
	reader      CVReader
	writer      CVWriter
	tx          Transactor
	cache       CVCache
	kafkaWriter KafkaWriter
	limit       int
	validate    *validator.Validate
}

// NewCVService creates a new CVService. tx, cache and kafkaWriter may be nil.
func NewCVService(
	reader CVReader,
	writer CVWriter,
	tx Transactor,
	cache CVCache,
	kafkaWriter KafkaWriter,
	limit int,
) *CVService {
	return &CVService{
		reader:      reader,
		writer:      writer,
		tx:          tx,
		cache:       cache,
		kafkaWriter: kafkaWriter,
		limit:       limit,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
}

// List returns stored CVs, newest first, serving from the cache when possible.
func (svc *CVService) List(ctx context.Context) ([]models.CVDB, error) {
	if svc.cache != nil {
		cvs, err := svc.cache.GetList(ctx, svc.limit)
		if err == nil {
			return cvs, nil
		}
		logger.Log.Debugw("cv list cache unavailable, reading database", "err", err)
	}

	cvs, err := svc.reader.List(ctx, svc.limit)
	if err != nil {
		logger.Log.Errorw("failed to list cvs", "err", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.SetList(ctx, svc.limit, cvs); err != nil {
			logger.Log.Warnw("failed to cache cv list", "err", err)
		}
	}

	return cvs, nil
}

// Create validates and stores a new CV. An empty payload is stored as an empty object.
func (svc *CVService) Create(ctx context.Context, email string, data []byte) (*models.CVDB, error) {
	email = strings.TrimSpace(email)

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		data = emptyPayload
	}

	if err := svc.validate.Struct(models.CreateCVRequest{Email: email, Data: data}); err != nil {
		logger.Log.Infow("rejected cv", "email", email, "err", err)
		return nil, ErrInvalidEmail
	}

	if !json.Valid(data) || !jsonbCompatible(data) {
		logger.Log.Infow("rejected cv", "email", email, "err", ErrInvalidPayload)
		return nil, ErrInvalidPayload
	}

	cv, err := svc.save(ctx, email, data)
	if err != nil {
		logger.Log.Errorw("failed to save cv", "email", email, "err", err)
		return nil, err
	}

	// The row is committed from here on
	if svc.cache != nil {
		if err := svc.cache.Invalidate(ctx); err != nil {
			logger.Log.Warnw("failed to invalidate cv list cache", "err", err)
		}
	}

	svc.publishCreated(ctx, cv)

	return cv, nil
}

func (svc *CVService) save(ctx context.Context, email string, data []byte) (*models.CVDB, error) {
	if svc.tx == nil {
		return svc.writer.Save(ctx, email, data)
	}

	var cv *models.CVDB
	err := svc.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error
		cv, err = svc.writer.Save(ctx, email, data)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cv, nil
}

// jsonbCompatible reports whether valid JSON can also be stored as jsonb,
// which refuses \u0000 and unpaired UTF-16 surrogates.
func jsonbCompatible(data []byte) bool {
	highPending := false
	for i := 0; i < len(data); i++ {
		// Backslashes only occur inside strings of valid JSON
		if data[i] != '\\' || data[i+1] != 'u' {
			if highPending {
				return false
			}
			if data[i] == '\\' {
				i++
			}
			continue
		}

		r, err := strconv.ParseUint(string(data[i+2:i+6]), 16, 32)
		if err != nil {
			return false
		}
		i += 5

		switch {
		case r == 0:
			return false
		case r >= 0xD800 && r <= 0xDBFF:
			if highPending {
				return false
			}
			highPending = true
		case r >= 0xDC00 && r <= 0xDFFF:
			if !highPending {
				return false
			}
			highPending = false
		default:
			if highPending {
				return false
			}
		}
	}
	return !highPending
}

// publishCreated publishes a cv.created event to Kafka.
func (svc *CVService) publishCreated(ctx context.Context, cv *models.CVDB) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "cv_id", cv.ID)
		return
	}

	payload := json.RawMessage(cv.Data)
	if len(payload) == 0 {
		payload = emptyPayload
	}

	event := models.CVCreatedEvent{
		CVID:      cv.ID.String(),
		Email:     cv.Email,
		Data:      payload,
		Timestamp: cv.CreatedAt.Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal cv event for Kafka", "cv_id", event.CVID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.CVID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish cv event to Kafka", "cv_id", event.CVID, "error", err)
	} else {
		logger.Log.Infow("CV event published to Kafka", "cv_id", event.CVID)
	}
}
