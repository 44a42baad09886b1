package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClientRecord is the canonical flat client/magistrate document. Clientes
// and magistrados share this shape; the variant screens in the front end are
// views over the same type.
type ClientRecord struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Nome             string             `bson:"nome" json:"nome"`
	Empresa          string             `bson:"empresa" json:"empresa"`
	Cargo            string             `bson:"cargo" json:"cargo"`
	Telefone         string             `bson:"telefone" json:"telefone"`
	TipoBrinde       string             `bson:"tipo_brinde" json:"tipo_brinde"`
	OutroBrinde      string             `bson:"outro_brinde" json:"outro_brinde"`
	Quantidade       *int               `bson:"quantidade,omitempty" json:"quantidade,omitempty"`
	CEP              string             `bson:"cep" json:"cep"`
	Endereco         string             `bson:"endereco" json:"endereco"`
	Numero           string             `bson:"numero" json:"numero"`
	Complemento      string             `bson:"complemento" json:"complemento"`
	Bairro           string             `bson:"bairro" json:"bairro"`
	Cidade           string             `bson:"cidade" json:"cidade"`
	Estado           string             `bson:"estado" json:"estado"`
	Email            string             `bson:"email" json:"email"`
	Socio            string             `bson:"socio" json:"socio"`
	Observacoes      string             `bson:"observacoes" json:"observacoes"`
	HistoricoBrindes string             `bson:"historico_brindes" json:"historico_brindes"`

	// IgnoredFields is the per-record waiver list: schema keys whose absence
	// has been explicitly dispensed. Append-only under dismiss/discard; a
	// field later filled with a real value is satisfied regardless of
	// membership here.
	IgnoredFields []string `bson:"ignored_fields" json:"ignored_fields"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	CreatedBy string    `bson:"created_by,omitempty" json:"created_by,omitempty"`
	UpdatedBy string    `bson:"updated_by,omitempty" json:"updated_by,omitempty"`
}

// FieldValue returns the record's value for a schema key. Returns nil for
// unknown keys and for unset numeric fields.
func (c *ClientRecord) FieldValue(key string) interface{} {
	switch key {
	case "nome":
		return c.Nome
	case "empresa":
		return c.Empresa
	case "cargo":
		return c.Cargo
	case "telefone":
		return c.Telefone
	case "tipo_brinde":
		return c.TipoBrinde
	case "outro_brinde":
		return c.OutroBrinde
	case "quantidade":
		if c.Quantidade == nil {
			return nil
		}
		return *c.Quantidade
	case "cep":
		return c.CEP
	case "endereco":
		return c.Endereco
	case "numero":
		return c.Numero
	case "complemento":
		return c.Complemento
	case "bairro":
		return c.Bairro
	case "cidade":
		return c.Cidade
	case "estado":
		return c.Estado
	case "email":
		return c.Email
	case "socio":
		return c.Socio
	case "observacoes":
		return c.Observacoes
	case "historico_brindes":
		return c.HistoricoBrindes
	default:
		return nil
	}
}

// BeforeCreate sets the creation and update timestamps
func (c *ClientRecord) BeforeCreate() {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
}

// BeforeUpdate sets the update timestamp
func (c *ClientRecord) BeforeUpdate() {
	c.UpdatedAt = time.Now()
}

// ClientInput is the create/update request body. All fields optional on
// update; nome is required on create and checked in the validation layer.
type ClientInput struct {
	Nome             *string `json:"nome,omitempty"`
	Empresa          *string `json:"empresa,omitempty"`
	Cargo            *string `json:"cargo,omitempty"`
	Telefone         *string `json:"telefone,omitempty"`
	TipoBrinde       *string `json:"tipo_brinde,omitempty"`
	OutroBrinde      *string `json:"outro_brinde,omitempty"`
	Quantidade       *int    `json:"quantidade,omitempty" binding:"omitempty,min=0"`
	CEP              *string `json:"cep,omitempty"`
	Endereco         *string `json:"endereco,omitempty"`
	Numero           *string `json:"numero,omitempty"`
	Complemento      *string `json:"complemento,omitempty"`
	Bairro           *string `json:"bairro,omitempty"`
	Cidade           *string `json:"cidade,omitempty"`
	Estado           *string `json:"estado,omitempty"`
	Email            *string `json:"email,omitempty" binding:"omitempty,email"`
	Socio            *string `json:"socio,omitempty"`
	Observacoes      *string `json:"observacoes,omitempty"`
	HistoricoBrindes *string `json:"historico_brindes,omitempty"`
}

// ClientListResponse is the list endpoint payload. Record volume is a few
// hundred rows, so lists are returned whole rather than paginated.
type ClientListResponse struct {
	Clients []ClientRecord `json:"clients"`
	Total   int            `json:"total"`
}

// ClientListFilter narrows a list fetch. Equality only, no partial match.
type ClientListFilter struct {
	Socio      string `form:"socio"`
	TipoBrinde string `form:"tipo_brinde"`
	Query      string `form:"q"`
}
