package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/salomao-adv/crm-backend/internal/config"
	"github.com/salomao-adv/crm-backend/internal/logging"
	"github.com/salomao-adv/crm-backend/internal/models"
	"github.com/salomao-adv/crm-backend/internal/observability"
	"github.com/salomao-adv/crm-backend/internal/utils"
)

// Header synonyms accepted when locating the import columns. Matching is
// case-insensitive and trims whitespace.
var (
	presenceNameHeaders = []string{"nome", "colaborador", "funcionario", "funcionário", "nome_colaborador"}
	presenceDateHeaders = []string{"tempo", "data", "horario", "horário", "data_hora", "data/hora"}
)

// PresenceService imports and serves the gate presence log
type PresenceService struct {
	database *mongo.Database
	logger   *logging.SafeLogger
}

// NewPresenceService creates a new presence service instance
func NewPresenceService(database *mongo.Database, logger *logging.SafeLogger) *PresenceService {
	return &PresenceService{
		database: database,
		logger:   logger,
	}
}

// Global presence service instance
var PresenceServiceInstance *PresenceService

// InitPresenceService initializes the global presence service instance
func InitPresenceService() {
	PresenceServiceInstance = NewPresenceService(config.MongoDB, logging.Logger)
	logging.Logger.Info("presence service initialized")
}

// ImportSpreadsheet reads the first sheet of an XLSX upload and inserts one
// presence record per row. The import is partial-success: rows without a
// resolvable collaborator name are skipped and counted, and unparseable
// dates fall back to the import time. Only a sheet with no importable rows
// at all is an error.
func (s *PresenceService) ImportSpreadsheet(ctx context.Context, file io.Reader, fileName string) (*models.ImportResult, error) {
	workbook, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, models.ErrNoImportableRows
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet rows: %w", err)
	}

	parsed, skipped, err := parsePresenceRows(rows, fileName, time.Now())
	if err != nil {
		return nil, err
	}
	observability.ImportedRows.WithLabelValues("imported").Add(float64(len(parsed)))
	observability.ImportedRows.WithLabelValues("skipped").Add(float64(skipped))

	records := make([]interface{}, len(parsed))
	for i := range parsed {
		records[i] = parsed[i]
	}

	collection := s.database.Collection(config.AppConfig.PresenceCollection)
	if _, err := collection.InsertMany(ctx, records); err != nil {
		observability.DatabaseOperations.WithLabelValues("insert", config.AppConfig.PresenceCollection, "error").Inc()
		s.logger.Error("failed to insert presence records",
			zap.String("file", fileName),
			zap.Error(err))
		return nil, fmt.Errorf("failed to insert presence records: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("insert", config.AppConfig.PresenceCollection, "success").Inc()

	s.logger.Info("presence spreadsheet imported",
		zap.String("file", fileName),
		zap.Int("imported", len(records)),
		zap.Int("skipped", skipped))

	return &models.ImportResult{
		Imported: len(records),
		Skipped:  skipped,
		FileName: fileName,
	}, nil
}

// parsePresenceRows turns raw sheet rows into presence records. The first
// row must be a header naming at least the collaborator column; the date
// column is optional and unparseable dates fall back to now.
func parsePresenceRows(rows [][]string, fileName string, now time.Time) ([]models.PresenceRecord, int, error) {
	if len(rows) < 2 {
		return nil, 0, models.ErrNoImportableRows
	}

	header := rows[0]
	nameCol := utils.HeaderIndex(header, presenceNameHeaders...)
	dateCol := utils.HeaderIndex(header, presenceDateHeaders...)
	if nameCol < 0 {
		return nil, 0, models.ErrMissingSheetColumns
	}

	records := []models.PresenceRecord{}
	skipped := 0
	for _, row := range rows[1:] {
		name := strings.TrimSpace(utils.CellAt(row, nameCol))
		if name == "" {
			skipped++
			continue
		}

		dataHora := now
		if dateCol >= 0 {
			if parsed, err := utils.ParseSheetDate(utils.CellAt(row, dateCol)); err == nil {
				dataHora = parsed
			}
		}

		records = append(records, models.PresenceRecord{
			NomeColaborador: name,
			DataHora:        dataHora,
			ArquivoOrigem:   fileName,
			ImportedAt:      now,
		})
	}

	if len(records) == 0 {
		return nil, skipped, models.ErrNoImportableRows
	}
	return records, skipped, nil
}

// List returns the presence log, newest first
func (s *PresenceService) List(ctx context.Context) (*models.PresenceListResponse, error) {
	collection := s.database.Collection(config.AppConfig.PresenceCollection)

	opts := options.Find().SetSort(bson.D{{Key: "data_hora", Value: -1}})
	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list presence records: %w", err)
	}
	defer cursor.Close(ctx)

	records := []models.PresenceRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode presence records: %w", err)
	}

	return &models.PresenceListResponse{Records: records, Total: len(records)}, nil
}

// RequestClear creates a pending confirmation for wiping the presence log
func (s *PresenceService) RequestClear(ctx context.Context, requestedBy string) (*models.PendingConfirmation, error) {
	return ConfirmationServiceInstance.Create(ctx, models.PendingConfirmation{
		Action:      models.ActionClearPresence,
		Collection:  config.AppConfig.PresenceCollection,
		Summary:     "Limpar todo o histórico de presença",
		RequestedBy: requestedBy,
	})
}

// ConfirmClear executes a confirmed presence log wipe
func (s *PresenceService) ConfirmClear(ctx context.Context, pending *models.PendingConfirmation) (*models.ConfirmationResult, error) {
	collection := s.database.Collection(config.AppConfig.PresenceCollection)

	result, err := collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("delete", config.AppConfig.PresenceCollection, "error").Inc()
		return nil, fmt.Errorf("failed to clear presence history: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("delete", config.AppConfig.PresenceCollection, "success").Inc()

	s.logger.Info("presence history cleared",
		zap.Int64("deleted", result.DeletedCount),
		zap.String("requested_by", pending.RequestedBy))
	return &models.ConfirmationResult{Action: models.ActionClearPresence}, nil
}
