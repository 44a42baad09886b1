package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/salomao-adv/crm-backend/internal/config"
	"github.com/salomao-adv/crm-backend/internal/logging"
	"github.com/salomao-adv/crm-backend/internal/models"
	"github.com/salomao-adv/crm-backend/internal/observability"
	"github.com/salomao-adv/crm-backend/internal/redisclient"
)

const secureAreaKeyPrefix = "secure_area:"

// MagistrateService gates the magistrate secure area: an email allowlist
// decides who may attempt entry, and a 4-digit PIN unlocks a short-lived
// session token. The PIN is a static shared secret held in the config
// document.
type MagistrateService struct {
	database *mongo.Database
	redis    *redisclient.Client
	ttl      time.Duration
	logger   *logging.SafeLogger
}

// NewMagistrateService creates a new magistrate service instance
func NewMagistrateService(database *mongo.Database, redis *redisclient.Client, ttl time.Duration, logger *logging.SafeLogger) *MagistrateService {
	return &MagistrateService{
		database: database,
		redis:    redis,
		ttl:      ttl,
		logger:   logger,
	}
}

// Global magistrate service instance
var MagistrateServiceInstance *MagistrateService

// InitMagistrateService initializes the global magistrate service instance
func InitMagistrateService() {
	MagistrateServiceInstance = NewMagistrateService(
		config.MongoDB,
		config.Redis,
		config.AppConfig.SecureAreaTTL,
		logging.Logger,
	)
	logging.Logger.Info("magistrate service initialized",
		zap.Duration("unlock_ttl", config.AppConfig.SecureAreaTTL))
}

// loadConfig reads the single access configuration document
func (s *MagistrateService) loadConfig(ctx context.Context) (*models.MagistrateConfig, error) {
	var cfg models.MagistrateConfig
	err := s.database.Collection(config.AppConfig.MagistrateConfigCollection).
		FindOne(ctx, bson.M{}).
		Decode(&cfg)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrMagistrateConfigAbsent
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load magistrate config: %w", err)
	}
	return &cfg, nil
}

// CheckAccess reports whether the email is on the allowlist
func (s *MagistrateService) CheckAccess(ctx context.Context, email string) (*models.AccessResponse, error) {
	cfg, err := s.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	return &models.AccessResponse{
		Email:     email,
		HasAccess: cfg.HasAccess(email),
	}, nil
}

// Unlock verifies the PIN for an allowlisted email and issues a secure-area
// token. Requires both the allowlist and the correct PIN.
func (s *MagistrateService) Unlock(ctx context.Context, email, pin string) (*models.UnlockResponse, error) {
	cfg, err := s.loadConfig(ctx)
	if err != nil {
		return nil, err
	}

	if !cfg.HasAccess(email) {
		s.logger.Warn("secure area unlock attempt by non-allowlisted email",
			zap.String("email", observability.MaskEmail(email)))
		return nil, models.ErrAccessListDenied
	}

	if subtle.ConstantTimeCompare([]byte(cfg.PinAcesso), []byte(pin)) != 1 {
		s.logger.Warn("secure area unlock attempt with wrong PIN",
			zap.String("email", observability.MaskEmail(email)))
		return nil, models.ErrInvalidPIN
	}

	token := uuid.NewString()
	if err := s.redis.Set(ctx, secureAreaKeyPrefix+token, email, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to store unlock token: %w", err)
	}

	s.logger.Info("secure area unlocked",
		zap.String("email", observability.MaskEmail(email)))
	return &models.UnlockResponse{
		Token:     token,
		ExpiresIn: int(s.ttl.Seconds()),
	}, nil
}

// ValidateToken checks a secure-area token and returns the email it was
// issued to
func (s *MagistrateService) ValidateToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", models.ErrSecureAreaLocked
	}

	email, err := s.redis.Get(ctx, secureAreaKeyPrefix+token).Result()
	if err == redis.Nil {
		return "", models.ErrSecureAreaLocked
	}
	if err != nil {
		return "", fmt.Errorf("failed to validate unlock token: %w", err)
	}
	return email, nil
}

// Lock revokes a secure-area token ahead of its TTL
func (s *MagistrateService) Lock(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.redis.Del(ctx, secureAreaKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to revoke unlock token: %w", err)
	}
	return nil
}
