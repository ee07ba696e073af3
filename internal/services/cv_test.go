package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/yetkinlik/internal/models"
	"github.com/sbilibin2017/yetkinlik/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listLimit = 50

func TestCVService_List(t *testing.T) {
	stored := []models.CVDB{
		{ID: uuid.New(), Email: "a@example.com", Data: []byte(`{}`)},
		{ID: uuid.New(), Email: "b@example.com", Data: []byte(`{"x":1}`)},
	}

	tests := []struct {
		name      string
		withCache bool
		setup     func(reader *services.MockCVReader, cache *services.MockCVCache)
		want      []models.CVDB
		wantErr   bool
	}{
		{
			name: "no cache reads database",
			setup: func(reader *services.MockCVReader, cache *services.MockCVCache) {
				reader.EXPECT().List(gomock.Any(), listLimit).Return(stored, nil)
			},
			want: stored,
		},
		{
			name:      "cache hit",
			withCache: true,
			setup: func(reader *services.MockCVReader, cache *services.MockCVCache) {
				cache.EXPECT().GetList(gomock.Any(), listLimit).Return(stored, nil)
			},
			want: stored,
		},
		{
			name:      "cache miss fills cache",
			withCache: true,
			setup: func(reader *services.MockCVReader, cache *services.MockCVCache) {
				cache.EXPECT().GetList(gomock.Any(), listLimit).Return(nil, errors.New("miss"))
				reader.EXPECT().List(gomock.Any(), listLimit).Return(stored, nil)
				cache.EXPECT().SetList(gomock.Any(), listLimit, stored).Return(nil)
			},
			want: stored,
		},
		{
			name:      "cache set failure is not fatal",
			withCache: true,
			setup: func(reader *services.MockCVReader, cache *services.MockCVCache) {
				cache.EXPECT().GetList(gomock.Any(), listLimit).Return(nil, errors.New("redis down"))
				reader.EXPECT().List(gomock.Any(), listLimit).Return(stored, nil)
				cache.EXPECT().SetList(gomock.Any(), listLimit, stored).Return(errors.New("redis down"))
			},
			want: stored,
		},
		{
			name:      "database error",
			withCache: true,
			setup: func(reader *services.MockCVReader, cache *services.MockCVCache) {
				cache.EXPECT().GetList(gomock.Any(), listLimit).Return(nil, errors.New("miss"))
				reader.EXPECT().List(gomock.Any(), listLimit).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := services.NewMockCVReader(ctrl)
			writer := services.NewMockCVWriter(ctrl)
			cache := services.NewMockCVCache(ctrl)
			tt.setup(reader, cache)

			var svc *services.CVService
			if tt.withCache {
				svc = services.NewCVService(reader, writer, nil, cache, nil, listLimit)
			} else {
				svc = services.NewCVService(reader, writer, nil, nil, nil, listLimit)
			}

			cvs, err := svc.List(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, cvs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cvs)
		})
	}
}

func TestCVService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		data    string
		wantErr error
	}{
		{name: "empty email", email: "", data: `{}`, wantErr: services.ErrInvalidEmail},
		{name: "blank email", email: "   ", data: `{}`, wantErr: services.ErrInvalidEmail},
		{name: "not an email", email: "jane", data: `{}`, wantErr: services.ErrInvalidEmail},
		{name: "broken json", email: "jane@example.com", data: `{"skills":`, wantErr: services.ErrInvalidPayload},
		{name: "plain text payload", email: "jane@example.com", data: `hello`, wantErr: services.ErrInvalidPayload},
		{name: "null character", email: "jane@example.com", data: `{"x":"\u0000"}`, wantErr: services.ErrInvalidPayload},
		{name: "null character in key", email: "jane@example.com", data: `{"a\u0000b":1}`, wantErr: services.ErrInvalidPayload},
		{name: "lone high surrogate", email: "jane@example.com", data: `{"x":"\ud83d"}`, wantErr: services.ErrInvalidPayload},
		{name: "lone low surrogate", email: "jane@example.com", data: `["\ude00"]`, wantErr: services.ErrInvalidPayload},
		{name: "high surrogate then escape", email: "jane@example.com", data: `"\ud83d\n"`, wantErr: services.ErrInvalidPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No expectations: invalid input never reaches the repository
			reader := services.NewMockCVReader(ctrl)
			writer := services.NewMockCVWriter(ctrl)
			cache := services.NewMockCVCache(ctrl)
			kw := services.NewMockKafkaWriter(ctrl)

			svc := services.NewCVService(reader, writer, services.NewMockTransactor(ctrl), cache, kw, listLimit)

			cv, err := svc.Create(context.Background(), tt.email, []byte(tt.data))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, cv)
		})
	}
}

func TestCVService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockCVReader(ctrl)
	writer := services.NewMockCVWriter(ctrl)
	cache := services.NewMockCVCache(ctrl)
	kw := services.NewMockKafkaWriter(ctrl)
	tx := services.NewMockTransactor(ctrl)

	svc := services.NewCVService(reader, writer, tx, cache, kw, listLimit)

	stored := &models.CVDB{
		ID:        uuid.New(),
		Email:     "jane@example.com",
		Data:      []byte(`{"skills":["go"]}`),
		CreatedAt: time.Unix(1700000000, 0),
	}

	// Cache and event follow the commit
	gomock.InOrder(
		tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			}),
		writer.EXPECT().
			Save(gomock.Any(), "jane@example.com", []byte(`{"skills":["go"]}`)).
			Return(stored, nil),
		cache.EXPECT().Invalidate(gomock.Any()).Return(nil),
		kw.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, msgs ...kafka.Message) error {
				require.Len(t, msgs, 1)
				assert.Equal(t, stored.ID.String(), string(msgs[0].Key))

				var event models.CVCreatedEvent
				require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, stored.ID.String(), event.CVID)
				assert.Equal(t, "jane@example.com", event.Email)
				assert.JSONEq(t, `{"skills":["go"]}`, string(event.Data))
				assert.Equal(t, int64(1700000000), event.Timestamp)
				return nil
			}),
	)

	cv, err := svc.Create(context.Background(), "  jane@example.com ", []byte(" {\"skills\":[\"go\"]}\n"))
	require.NoError(t, err)
	assert.Equal(t, stored, cv)
}

func TestCVService_Create_EmptyPayloadStoredAsObject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockCVWriter(ctrl)
	svc := services.NewCVService(services.NewMockCVReader(ctrl), writer, nil, nil, nil, listLimit)

	writer.EXPECT().
		Save(gomock.Any(), "jane@example.com", []byte(`{}`)).
		Return(&models.CVDB{ID: uuid.New(), Email: "jane@example.com"}, nil)

	cv, err := svc.Create(context.Background(), "jane@example.com", nil)
	require.NoError(t, err)
	assert.NotNil(t, cv)
}

func TestCVService_Create_SideEffectFailuresAreNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockCVWriter(ctrl)
	cache := services.NewMockCVCache(ctrl)
	kw := services.NewMockKafkaWriter(ctrl)
	svc := services.NewCVService(services.NewMockCVReader(ctrl), writer, nil, cache, kw, listLimit)

	stored := &models.CVDB{ID: uuid.New(), Email: "jane@example.com", Data: []byte(`{}`)}

	writer.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(stored, nil)
	cache.EXPECT().Invalidate(gomock.Any()).Return(errors.New("redis down"))
	kw.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	cv, err := svc.Create(context.Background(), "jane@example.com", []byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, stored, cv)
}

func TestCVService_Create_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockCVWriter(ctrl)
	cache := services.NewMockCVCache(ctrl)
	kw := services.NewMockKafkaWriter(ctrl)
	svc := services.NewCVService(services.NewMockCVReader(ctrl), writer, nil, cache, kw, listLimit)

	writer.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))

	cv, err := svc.Create(context.Background(), "jane@example.com", []byte(`{}`))
	assert.EqualError(t, err, "db error")
	assert.Nil(t, cv)
}

func TestCVService_Create_CommitFailureSkipsSideEffects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := services.NewMockCVWriter(ctrl)
	tx := services.NewMockTransactor(ctrl)
	cache := services.NewMockCVCache(ctrl)
	kw := services.NewMockKafkaWriter(ctrl)
	svc := services.NewCVService(services.NewMockCVReader(ctrl), writer, tx, cache, kw, listLimit)

	commitErr := errors.New("commit transaction: connection reset")

	tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			require.NoError(t, fn(ctx))
			return commitErr
		})
	writer.EXPECT().Save(gomock.Any(), "jane@example.com", []byte(`{}`)).
		Return(&models.CVDB{ID: uuid.New(), Email: "jane@example.com"}, nil)

	// No Invalidate or WriteMessages expected
	cv, err := svc.Create(context.Background(), "jane@example.com", []byte(`{}`))
	assert.ErrorIs(t, err, commitErr)
	assert.Nil(t, cv)
}

func TestCVService_Create_BeginFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := services.NewMockTransactor(ctrl)
	svc := services.NewCVService(
		services.NewMockCVReader(ctrl), services.NewMockCVWriter(ctrl), tx,
		services.NewMockCVCache(ctrl), services.NewMockKafkaWriter(ctrl), listLimit,
	)

	beginErr := errors.New("begin transaction: dial tcp: connection refused")
	tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).Return(beginErr)

	cv, err := svc.Create(context.Background(), "jane@example.com", []byte(`{}`))
	assert.ErrorIs(t, err, beginErr)
	assert.Nil(t, cv)
}

func TestCVService_Create_AcceptsStorableEscapes(t *testing.T) {
	payloads := []string{
		`{"emoji":"\ud83d\ude00"}`,
		`{"path":"C:\\u0000"}`,
		`{"quote":"\"\u00e9\""}`,
		`[1, 2.5, true, null]`,
	}

	for _, payload := range payloads {
		t.Run(payload, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			writer := services.NewMockCVWriter(ctrl)
			svc := services.NewCVService(services.NewMockCVReader(ctrl), writer, nil, nil, nil, listLimit)

			writer.EXPECT().Save(gomock.Any(), "jane@example.com", []byte(payload)).
				Return(&models.CVDB{ID: uuid.New(), Email: "jane@example.com", Data: []byte(payload)}, nil)

			cv, err := svc.Create(context.Background(), "jane@example.com", []byte(payload))
			require.NoError(t, err)
			assert.NotNil(t, cv)
		})
	}
}
