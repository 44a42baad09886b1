package services

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/salomao-adv/crm-backend/internal/config"
	"github.com/salomao-adv/crm-backend/internal/logging"
	"github.com/salomao-adv/crm-backend/internal/models"
	"github.com/salomao-adv/crm-backend/internal/observability"
	"github.com/salomao-adv/crm-backend/internal/utils"
)

// ClientService handles CRUD over a client-shaped collection. Clientes and
// magistrados share the record shape, so the same service runs against
// either collection; the bound collection name tells the two instances
// apart.
type ClientService struct {
	database   *mongo.Database
	collection string
	logger     *logging.SafeLogger
}

// NewClientService creates a new client service instance bound to a
// collection
func NewClientService(database *mongo.Database, collection string, logger *logging.SafeLogger) *ClientService {
	return &ClientService{
		database:   database,
		collection: collection,
		logger:     logger,
	}
}

// Global client service instances, one per collection
var (
	ClientServiceInstance           *ClientService
	MagistrateRecordServiceInstance *ClientService
)

// InitClientServices initializes the global client service instances
func InitClientServices() {
	ClientServiceInstance = NewClientService(
		config.MongoDB, config.AppConfig.ClientCollection, logging.Logger)
	MagistrateRecordServiceInstance = NewClientService(
		config.MongoDB, config.AppConfig.MagistrateCollection, logging.Logger)

	logging.Logger.Info("client services initialized",
		zap.String("client_collection", config.AppConfig.ClientCollection),
		zap.String("magistrate_collection", config.AppConfig.MagistrateCollection))
}

// Collection returns the bound collection name
func (s *ClientService) Collection() string {
	return s.collection
}

// List retrieves all records matching the filter, newest first. Filters are
// exact matches; the q filter is a case-insensitive substring match on nome.
func (s *ClientService) List(ctx context.Context, filter models.ClientListFilter) (*models.ClientListResponse, error) {
	collection := s.database.Collection(s.collection)

	query := bson.M{}
	if filter.Socio != "" {
		query["socio"] = filter.Socio
	}
	if filter.TipoBrinde != "" {
		query["tipo_brinde"] = filter.TipoBrinde
	}
	if filter.Query != "" {
		query["nome"] = bson.M{"$regex": escapeRegex(filter.Query), "$options": "i"}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := collection.Find(ctx, query, opts)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("find", s.collection, "error").Inc()
		s.logger.Error("failed to list records",
			zap.String("collection", s.collection),
			zap.Error(err))
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer cursor.Close(ctx)

	records := []models.ClientRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("find", s.collection, "success").Inc()

	return &models.ClientListResponse{Clients: records, Total: len(records)}, nil
}

// Get retrieves a single record by ID
func (s *ClientService) Get(ctx context.Context, id string) (*models.ClientRecord, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrInvalidRecordID
	}

	var record models.ClientRecord
	err = s.database.Collection(s.collection).
		FindOne(ctx, bson.M{"_id": objectID}).
		Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, models.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return &record, nil
}

// Create inserts a new record. The waiver list starts empty; completeness is
// evaluated on read, never stored.
func (s *ClientService) Create(ctx context.Context, input models.ClientInput, createdBy string) (*models.ClientRecord, error) {
	record := models.ClientRecord{IgnoredFields: []string{}}
	applyInput(&record, input)
	record.CreatedBy = createdBy
	record.UpdatedBy = createdBy
	record.BeforeCreate()

	result, err := s.database.Collection(s.collection).InsertOne(ctx, &record)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("insert", s.collection, "error").Inc()
		s.logger.Error("failed to create record",
			zap.String("collection", s.collection),
			zap.Error(err))
		return nil, fmt.Errorf("failed to create record: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("insert", s.collection, "success").Inc()

	record.ID = result.InsertedID.(primitive.ObjectID)
	s.logger.Info("record created",
		zap.String("collection", s.collection),
		zap.String("record_id", record.ID.Hex()))
	return &record, nil
}

// Update applies a partial update and returns the updated record. Waivers
// are untouched: filling a waived field makes the waiver inert without
// removing it.
func (s *ClientService) Update(ctx context.Context, id string, input models.ClientInput, updatedBy string) (*models.ClientRecord, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	applyInput(record, input)
	record.UpdatedBy = updatedBy
	record.BeforeUpdate()

	_, err = s.database.Collection(s.collection).
		ReplaceOne(ctx, bson.M{"_id": record.ID}, record)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("update", s.collection, "error").Inc()
		s.logger.Error("failed to update record",
			zap.String("collection", s.collection),
			zap.String("record_id", id),
			zap.Error(err))
		return nil, fmt.Errorf("failed to update record: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("update", s.collection, "success").Inc()
	return record, nil
}

// RequestDelete creates a pending confirmation for removing a record
func (s *ClientService) RequestDelete(ctx context.Context, id, requestedBy string) (*models.PendingConfirmation, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return ConfirmationServiceInstance.Create(ctx, models.PendingConfirmation{
		Action:      models.ActionDeleteClient,
		Collection:  s.collection,
		RecordID:    id,
		Summary:     fmt.Sprintf("Excluir o registro de %s", record.Nome),
		RequestedBy: requestedBy,
	})
}

// ConfirmDelete executes a confirmed record removal
func (s *ClientService) ConfirmDelete(ctx context.Context, pending *models.PendingConfirmation) (*models.ConfirmationResult, error) {
	objectID, err := primitive.ObjectIDFromHex(pending.RecordID)
	if err != nil {
		return nil, models.ErrInvalidRecordID
	}

	result, err := s.database.Collection(s.collection).
		DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("delete", s.collection, "error").Inc()
		return nil, fmt.Errorf("failed to delete record: %w", err)
	}
	if result.DeletedCount == 0 {
		return nil, models.ErrRecordNotFound
	}
	observability.DatabaseOperations.WithLabelValues("delete", s.collection, "success").Inc()

	s.logger.Info("record deleted",
		zap.String("collection", s.collection),
		zap.String("record_id", pending.RecordID),
		zap.String("requested_by", pending.RequestedBy))
	return &models.ConfirmationResult{
		Action:   models.ActionDeleteClient,
		RecordID: pending.RecordID,
	}, nil
}

// applyInput copies the set fields of a partial input onto a record.
// Telefone is normalized to the national format when parseable and kept
// verbatim otherwise.
func applyInput(record *models.ClientRecord, input models.ClientInput) {
	if input.Nome != nil {
		record.Nome = strings.TrimSpace(*input.Nome)
	}
	if input.Empresa != nil {
		record.Empresa = strings.TrimSpace(*input.Empresa)
	}
	if input.Cargo != nil {
		record.Cargo = strings.TrimSpace(*input.Cargo)
	}
	if input.Telefone != nil {
		normalized, _ := utils.NormalizeTelefone(*input.Telefone)
		record.Telefone = normalized
	}
	if input.TipoBrinde != nil {
		record.TipoBrinde = strings.TrimSpace(*input.TipoBrinde)
	}
	if input.OutroBrinde != nil {
		record.OutroBrinde = strings.TrimSpace(*input.OutroBrinde)
	}
	if input.Quantidade != nil {
		record.Quantidade = input.Quantidade
	}
	if input.CEP != nil {
		record.CEP = strings.TrimSpace(*input.CEP)
	}
	if input.Endereco != nil {
		record.Endereco = strings.TrimSpace(*input.Endereco)
	}
	if input.Numero != nil {
		record.Numero = strings.TrimSpace(*input.Numero)
	}
	if input.Complemento != nil {
		record.Complemento = strings.TrimSpace(*input.Complemento)
	}
	if input.Bairro != nil {
		record.Bairro = strings.TrimSpace(*input.Bairro)
	}
	if input.Cidade != nil {
		record.Cidade = strings.TrimSpace(*input.Cidade)
	}
	if input.Estado != nil {
		record.Estado = strings.ToUpper(strings.TrimSpace(*input.Estado))
	}
	if input.Email != nil {
		record.Email = strings.TrimSpace(*input.Email)
	}
	if input.Socio != nil {
		record.Socio = strings.TrimSpace(*input.Socio)
	}
	if input.Observacoes != nil {
		record.Observacoes = *input.Observacoes
	}
	if input.HistoricoBrindes != nil {
		record.HistoricoBrindes = *input.HistoricoBrindes
	}
}

// escapeRegex neutralizes regex metacharacters in user-supplied substrings
func escapeRegex(s string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`, `.`, `\.`, `+`, `\+`, `*`, `\*`, `?`, `\?`,
		`(`, `\(`, `)`, `\)`, `[`, `\[`, `]`, `\]`, `{`, `\{`, `}`, `\}`,
		`^`, `\^`, `$`, `\$`, `|`, `\|`,
	)
	return replacer.Replace(s)
}
