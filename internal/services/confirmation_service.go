package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/salomao-adv/crm-backend/internal/config"
	"github.com/salomao-adv/crm-backend/internal/logging"
	"github.com/salomao-adv/crm-backend/internal/models"
	"github.com/salomao-adv/crm-backend/internal/observability"
	"github.com/salomao-adv/crm-backend/internal/redisclient"
)

const confirmationKeyPrefix = "confirm:"

// ConfirmationService stores pending two-phase mutations in Redis and
// executes them on confirmation. Destructive operations (waivers, deletes,
// history clears) never run on the first request: the caller receives a
// token, and only confirming the token within its TTL applies the change.
// An expired or aborted token is a silent no-op.
type ConfirmationService struct {
	redis  *redisclient.Client
	ttl    time.Duration
	logger *logging.SafeLogger
}

// NewConfirmationService creates a new confirmation service instance
func NewConfirmationService(redis *redisclient.Client, ttl time.Duration, logger *logging.SafeLogger) *ConfirmationService {
	return &ConfirmationService{
		redis:  redis,
		ttl:    ttl,
		logger: logger,
	}
}

// Global confirmation service instance
var ConfirmationServiceInstance *ConfirmationService

// InitConfirmationService initializes the global confirmation service instance
func InitConfirmationService() {
	ConfirmationServiceInstance = NewConfirmationService(
		config.Redis,
		config.AppConfig.ConfirmationTTL,
		logging.Logger,
	)
	logging.Logger.Info("confirmation service initialized",
		zap.Duration("ttl", config.AppConfig.ConfirmationTTL))
}

// Create stores a pending confirmation and returns it with token and expiry
// filled in
func (s *ConfirmationService) Create(ctx context.Context, pending models.PendingConfirmation) (*models.PendingConfirmation, error) {
	pending.Token = uuid.NewString()
	pending.ExpiresAt = time.Now().Add(s.ttl)

	payload, err := json.Marshal(pending)
	if err != nil {
		return nil, fmt.Errorf("failed to encode confirmation: %w", err)
	}

	if err := s.redis.Set(ctx, confirmationKeyPrefix+pending.Token, payload, s.ttl).Err(); err != nil {
		s.logger.Error("failed to store pending confirmation",
			zap.String("action", pending.Action),
			zap.Error(err))
		return nil, fmt.Errorf("failed to store confirmation: %w", err)
	}

	observability.Confirmations.WithLabelValues(pending.Action, "requested").Inc()
	s.logger.Info("confirmation requested",
		zap.String("action", pending.Action),
		zap.String("record_id", pending.RecordID),
		zap.String("field", pending.Field))
	return &pending, nil
}

// Consume atomically reads and invalidates a token. A token can be consumed
// exactly once; a second confirm with the same token sees
// ErrConfirmationNotFound.
func (s *ConfirmationService) Consume(ctx context.Context, token string) (*models.PendingConfirmation, error) {
	payload, err := s.redis.GetDel(ctx, confirmationKeyPrefix+token).Result()
	if err == redis.Nil {
		return nil, models.ErrConfirmationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read confirmation: %w", err)
	}

	var pending models.PendingConfirmation
	if err := json.Unmarshal([]byte(payload), &pending); err != nil {
		return nil, fmt.Errorf("failed to decode confirmation: %w", err)
	}
	return &pending, nil
}

// Abort cancels a pending confirmation. Aborting an unknown or expired token
// is not an error: the outcome the caller wants (nothing happens) already
// holds.
func (s *ConfirmationService) Abort(ctx context.Context, token string) error {
	deleted, err := s.redis.Del(ctx, confirmationKeyPrefix+token).Result()
	if err != nil {
		return fmt.Errorf("failed to abort confirmation: %w", err)
	}
	if deleted > 0 {
		observability.Confirmations.WithLabelValues("unknown", "aborted").Inc()
		s.logger.Info("confirmation aborted", zap.String("token", token))
	}
	return nil
}

// Execute dispatches a consumed confirmation to the service that owns its
// action
func (s *ConfirmationService) Execute(ctx context.Context, pending *models.PendingConfirmation) (*models.ConfirmationResult, error) {
	var result *models.ConfirmationResult
	var err error

	switch pending.Action {
	case models.ActionDismiss:
		result, err = pendencyServiceFor(pending.Collection).ConfirmDismiss(ctx, pending)
	case models.ActionDiscard:
		result, err = pendencyServiceFor(pending.Collection).ConfirmDiscard(ctx, pending)
	case models.ActionDeleteClient:
		result, err = clientServiceFor(pending.Collection).ConfirmDelete(ctx, pending)
	case models.ActionClearPresence:
		result, err = PresenceServiceInstance.ConfirmClear(ctx, pending)
	case models.ActionDeleteTask:
		result, err = TaskServiceInstance.ConfirmDelete(ctx, pending)
	default:
		return nil, models.ErrConfirmationMismatch
	}

	outcome := "executed"
	if err != nil {
		outcome = "failed"
	}
	observability.Confirmations.WithLabelValues(pending.Action, outcome).Inc()
	return result, err
}

// pendencyServiceFor routes an action to the instance bound to the
// collection the confirmation was created against
func pendencyServiceFor(collection string) *PendencyService {
	if MagistratePendencyServiceInstance != nil && collection == MagistratePendencyServiceInstance.collection {
		return MagistratePendencyServiceInstance
	}
	return PendencyServiceInstance
}

func clientServiceFor(collection string) *ClientService {
	if MagistrateRecordServiceInstance != nil && collection == MagistrateRecordServiceInstance.collection {
		return MagistrateRecordServiceInstance
	}
	return ClientServiceInstance
}
