package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PresenceRecord is one row of the gate presence log, fed by spreadsheet
// imports from the building's entry system.
type PresenceRecord struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	NomeColaborador string             `bson:"nome_colaborador" json:"nome_colaborador"`
	DataHora        time.Time          `bson:"data_hora" json:"data_hora"`
	ArquivoOrigem   string             `bson:"arquivo_origem" json:"arquivo_origem"`
	ImportedAt      time.Time          `bson:"imported_at" json:"imported_at"`
}

// PresenceListResponse is the presence list payload, newest first
type PresenceListResponse struct {
	Records []PresenceRecord `json:"records"`
	Total   int              `json:"total"`
}

// ImportResult reports a partial-success spreadsheet import: rows without a
// resolvable collaborator name are skipped and counted, never fatal.
type ImportResult struct {
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
	FileName string `json:"file_name"`
}
