package models

import "time"

// Pendency is one client record in the reconciliation work queue together
// with its evaluated missing fields, in schema order.
type Pendency struct {
	Client        ClientRecord    `json:"client"`
	MissingFields []RequiredField `json:"missing_fields"`
}

// WorkingSet is the filtered and sorted incomplete-record queue, stamped
// with the fetch sequence that produced it.
type WorkingSet struct {
	Pendencies []Pendency `json:"pendencies"`
	Total      int        `json:"total"`
	Sequence   uint64     `json:"sequence"`
	FetchedAt  time.Time  `json:"fetched_at"`
}

// WorkingSetQuery selects and orders the work queue
type WorkingSetQuery struct {
	Socio      string `form:"socio"`
	TipoBrinde string `form:"tipo_brinde"`
	SortKey    string `form:"sort"`
	SortOrder  string `form:"order"`
}

// Sort keys and directions accepted by the working-set query
const (
	SortByNome  = "nome"
	SortBySocio = "socio"

	SortAscending  = "asc"
	SortDescending = "desc"
)

// DismissRequest names the field waiver being requested
type DismissRequest struct {
	Field string `json:"field" binding:"required"`
}

// Confirmation action types
const (
	ActionDismiss       = "dismiss"
	ActionDiscard       = "discard"
	ActionDeleteClient  = "delete_client"
	ActionClearPresence = "clear_presence"
	ActionDeleteTask    = "delete_task"
)

// PendingConfirmation is the deferred side of a two-phase mutation: the
// mutation is described here and only executed when the token is confirmed
// before its TTL runs out.
type PendingConfirmation struct {
	Token       string    `json:"token"`
	Action      string    `json:"action"`
	Collection  string    `json:"collection,omitempty"`
	RecordID    string    `json:"record_id,omitempty"`
	Field       string    `json:"field,omitempty"`
	Summary     string    `json:"summary"`
	RequestedBy string    `json:"requested_by,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ConfirmationResult reports the executed mutation
type ConfirmationResult struct {
	Action   string `json:"action"`
	RecordID string `json:"record_id,omitempty"`
	Field    string `json:"field,omitempty"`
	// WaivedFields lists the schema keys added to ignored_fields, resolved
	// at execution time for discard actions
	WaivedFields []string `json:"waived_fields,omitempty"`
}
