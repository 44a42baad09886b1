package services

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/salomao-adv/crm-backend/internal/config"
	"github.com/salomao-adv/crm-backend/internal/logging"
	"github.com/salomao-adv/crm-backend/internal/models"
	"github.com/salomao-adv/crm-backend/internal/observability"
)

// PendencyService builds the incomplete-record working set and runs the
// two-phase waiver mutations against a client-shaped collection.
type PendencyService struct {
	database   *mongo.Database
	collection string
	logger     *logging.SafeLogger

	// fetchSequence stamps working-set snapshots. A snapshot that loses the
	// race to a newer fetch is discarded rather than delivered out of order.
	fetchSequence uint64
	lastDelivered uint64
}

// NewPendencyService creates a new pendency service instance bound to a
// collection
func NewPendencyService(database *mongo.Database, collection string, logger *logging.SafeLogger) *PendencyService {
	return &PendencyService{
		database:   database,
		collection: collection,
		logger:     logger,
	}
}

// Global pendency service instances, one per collection
var (
	PendencyServiceInstance           *PendencyService
	MagistratePendencyServiceInstance *PendencyService
)

// InitPendencyServices initializes the global pendency service instances
func InitPendencyServices() {
	PendencyServiceInstance = NewPendencyService(
		config.MongoDB, config.AppConfig.ClientCollection, logging.Logger)
	MagistratePendencyServiceInstance = NewPendencyService(
		config.MongoDB, config.AppConfig.MagistrateCollection, logging.Logger)

	logging.Logger.Info("pendency services initialized")
}

// newPTBRCollator builds a collator ordering strings by Brazilian Portuguese
// collation rules, so accented names sort next to their unaccented
// neighbors. Collators keep internal buffers and are not safe for concurrent
// use, so each sort gets its own.
func newPTBRCollator() *collate.Collator {
	return collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
}

// ValidateQuery rejects unknown sort keys and directions before any fetch
func ValidateQuery(query models.WorkingSetQuery) error {
	switch query.SortKey {
	case "", models.SortByNome, models.SortBySocio:
	default:
		return models.ErrInvalidSortKey
	}
	switch query.SortOrder {
	case "", models.SortAscending, models.SortDescending:
	default:
		return models.ErrInvalidSortDirection
	}
	return nil
}

// BuildWorkingSet fetches all records, keeps the incomplete ones, applies
// the exact-match filters and sorts the result. The returned snapshot
// carries a monotonically increasing sequence; if a newer fetch completes
// while this one is in flight, the stale snapshot is dropped and the caller
// gets ErrStaleWorkingSet.
func (s *PendencyService) BuildWorkingSet(ctx context.Context, query models.WorkingSetQuery) (*models.WorkingSet, error) {
	if err := ValidateQuery(query); err != nil {
		return nil, err
	}

	sequence := atomic.AddUint64(&s.fetchSequence, 1)

	collection := s.database.Collection(s.collection)
	cursor, err := collection.Find(ctx, workingSetFilter(query))
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("find", s.collection, "error").Inc()
		s.logger.Error("failed to fetch records for working set",
			zap.String("collection", s.collection),
			zap.Error(err))
		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.ClientRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("find", s.collection, "success").Inc()

	pendencies := assemblePendencies(records)
	sortPendencies(pendencies, query.SortKey, query.SortOrder)

	if !s.deliver(sequence) {
		s.logger.Warn("discarding stale working-set fetch",
			zap.Uint64("sequence", sequence))
		return nil, models.ErrStaleWorkingSet
	}

	return &models.WorkingSet{
		Pendencies: pendencies,
		Total:      len(pendencies),
		Sequence:   sequence,
		FetchedAt:  time.Now(),
	}, nil
}

// workingSetFilter builds the fetch filter from the query. Each set filter
// adds an exact-match condition, so combined filters select the intersection.
func workingSetFilter(query models.WorkingSetQuery) bson.M {
	filter := bson.M{}
	if query.Socio != "" {
		filter["socio"] = query.Socio
	}
	if query.TipoBrinde != "" {
		filter["tipo_brinde"] = query.TipoBrinde
	}
	return filter
}

// deliver claims the delivery slot for a snapshot sequence. It returns false
// when a later fetch has already delivered.
func (s *PendencyService) deliver(sequence uint64) bool {
	for {
		last := atomic.LoadUint64(&s.lastDelivered)
		if sequence <= last {
			return false
		}
		if atomic.CompareAndSwapUint64(&s.lastDelivered, last, sequence) {
			return true
		}
	}
}

// assemblePendencies evaluates each record and keeps the incomplete ones in
// fetch order
func assemblePendencies(records []models.ClientRecord) []models.Pendency {
	pendencies := []models.Pendency{}
	for _, record := range records {
		missing := MissingFields(&record)
		if len(missing) == 0 {
			continue
		}
		pendencies = append(pendencies, models.Pendency{
			Client:        record,
			MissingFields: missing,
		})
	}
	return pendencies
}

// sortPendencies orders the working set in place. The sort is stable:
// records comparing equal keep their fetch order.
func sortPendencies(pendencies []models.Pendency, sortKey, sortOrder string) {
	if sortKey == "" {
		sortKey = models.SortByNome
	}
	descending := sortOrder == models.SortDescending
	collator := newPTBRCollator()

	keyOf := func(p models.Pendency) string {
		if sortKey == models.SortBySocio {
			return p.Client.Socio
		}
		return p.Client.Nome
	}

	sort.SliceStable(pendencies, func(i, j int) bool {
		cmp := collator.CompareString(keyOf(pendencies[i]), keyOf(pendencies[j]))
		if descending {
			return cmp > 0
		}
		return cmp < 0
	})
}

// RequestDismiss creates a pending confirmation waiving a single field.
// Preconditions: the field is part of the schema and currently missing on
// the record.
func (s *PendencyService) RequestDismiss(ctx context.Context, id, fieldKey, requestedBy string) (*models.PendingConfirmation, error) {
	if !models.IsSchemaKey(fieldKey) {
		return nil, models.ErrFieldNotInSchema
	}

	record, err := s.loadRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isMissing(record, fieldKey) {
		return nil, models.ErrFieldNotMissing
	}

	return ConfirmationServiceInstance.Create(ctx, models.PendingConfirmation{
		Action:      models.ActionDismiss,
		Collection:  s.collection,
		RecordID:    id,
		Field:       fieldKey,
		Summary:     fmt.Sprintf("Dispensar o campo %s de %s", models.LabelFor(fieldKey), record.Nome),
		RequestedBy: requestedBy,
	})
}

// RequestDiscard creates a pending confirmation waiving every field
// currently missing on the record. The missing set is resolved again at
// execution time, so fields filled in between request and confirm are not
// waived.
func (s *PendencyService) RequestDiscard(ctx context.Context, id, requestedBy string) (*models.PendingConfirmation, error) {
	record, err := s.loadRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	missing := MissingFields(record)
	if len(missing) == 0 {
		return nil, models.ErrFieldNotMissing
	}

	return ConfirmationServiceInstance.Create(ctx, models.PendingConfirmation{
		Action:      models.ActionDiscard,
		Collection:  s.collection,
		RecordID:    id,
		Summary:     fmt.Sprintf("Descartar as %d pendências de %s", len(missing), record.Nome),
		RequestedBy: requestedBy,
	})
}

// ConfirmDismiss executes a confirmed single-field waiver. The update is a
// set union, so confirming twice leaves the record unchanged.
func (s *PendencyService) ConfirmDismiss(ctx context.Context, pending *models.PendingConfirmation) (*models.ConfirmationResult, error) {
	if err := s.addWaivers(ctx, pending.RecordID, []string{pending.Field}); err != nil {
		observability.PendencyMutations.WithLabelValues("dismiss", "error").Inc()
		return nil, err
	}
	observability.PendencyMutations.WithLabelValues("dismiss", "success").Inc()

	s.logger.Info("field waiver applied",
		zap.String("collection", s.collection),
		zap.String("record_id", pending.RecordID),
		zap.String("field", pending.Field),
		zap.String("requested_by", pending.RequestedBy))

	return &models.ConfirmationResult{
		Action:       models.ActionDismiss,
		RecordID:     pending.RecordID,
		Field:        pending.Field,
		WaivedFields: []string{pending.Field},
	}, nil
}

// ConfirmDiscard executes a confirmed whole-record discard: every field
// missing at this moment is waived in a single update.
func (s *PendencyService) ConfirmDiscard(ctx context.Context, pending *models.PendingConfirmation) (*models.ConfirmationResult, error) {
	record, err := s.loadRecord(ctx, pending.RecordID)
	if err != nil {
		return nil, err
	}

	missing := MissingFields(record)
	if len(missing) == 0 {
		// Record was completed while the confirmation sat pending
		return &models.ConfirmationResult{
			Action:   models.ActionDiscard,
			RecordID: pending.RecordID,
		}, nil
	}

	keys := make([]string, len(missing))
	for i, field := range missing {
		keys[i] = field.Key
	}

	if err := s.addWaivers(ctx, pending.RecordID, keys); err != nil {
		observability.PendencyMutations.WithLabelValues("discard", "error").Inc()
		return nil, err
	}
	observability.PendencyMutations.WithLabelValues("discard", "success").Inc()

	s.logger.Info("record discarded from pendencies",
		zap.String("collection", s.collection),
		zap.String("record_id", pending.RecordID),
		zap.Int("waived_fields", len(keys)),
		zap.String("requested_by", pending.RequestedBy))

	return &models.ConfirmationResult{
		Action:       models.ActionDiscard,
		RecordID:     pending.RecordID,
		WaivedFields: keys,
	}, nil
}

// unionWaivers normalizes the stored waiver list to schema keys and appends
// the keys not already present, preserving the stored order. Applying the
// same keys again returns an equal list.
func unionWaivers(stored, keys []string) []string {
	waivers := models.NormalizeWaivers(stored)
	existing := make(map[string]bool, len(waivers))
	for _, w := range waivers {
		existing[w] = true
	}
	for _, key := range keys {
		if !existing[key] {
			waivers = append(waivers, key)
			existing[key] = true
		}
	}
	if waivers == nil {
		waivers = []string{}
	}
	return waivers
}

// addWaivers unions keys into ignored_fields. Existing entries are
// normalized to schema keys in the same update, migrating legacy label
// documents on first write.
func (s *PendencyService) addWaivers(ctx context.Context, id string, keys []string) error {
	record, err := s.loadRecord(ctx, id)
	if err != nil {
		return err
	}

	waivers := unionWaivers(record.IgnoredFields, keys)

	update := bson.M{"$set": bson.M{
		"ignored_fields": waivers,
		"updated_at":     time.Now(),
	}}
	result, err := s.database.Collection(s.collection).
		UpdateOne(ctx, bson.M{"_id": record.ID}, update)
	if err != nil {
		observability.DatabaseOperations.WithLabelValues("update", s.collection, "error").Inc()
		s.logger.Error("failed to persist waivers",
			zap.String("collection", s.collection),
			zap.String("record_id", id),
			zap.Error(err))
		return fmt.Errorf("failed to persist waivers: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrRecordNotFound
	}
	observability.DatabaseOperations.WithLabelValues("update", s.collection, "success").Inc()
	return nil
}

func (s *PendencyService) loadRecord(ctx context.Context, id string) (*models.ClientRecord, error) {
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
		return nil, fmt.Errorf("failed to load record: %w", err)
	}
	return &record, nil
}

// isMissing reports whether a single field is part of the record's current
// missing set
func isMissing(record *models.ClientRecord, key string) bool {
	for _, field := range MissingFields(record) {
		if field.Key == key {
			return true
		}
	}
	return false
}
