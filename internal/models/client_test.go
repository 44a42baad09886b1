package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRecord_FieldValue(t *testing.T) {
	qty := 3
	record := &ClientRecord{
		Nome:       "Ana Silva",
		Empresa:    "Exemplo SA",
		TipoBrinde: "Brinde VIP",
		Estado:     "SP",
		Quantidade: &qty,
	}

	assert.Equal(t, "Ana Silva", record.FieldValue("nome"))
	assert.Equal(t, "Exemplo SA", record.FieldValue("empresa"))
	assert.Equal(t, "Brinde VIP", record.FieldValue("tipo_brinde"))
	assert.Equal(t, "SP", record.FieldValue("estado"))
	assert.Equal(t, 3, record.FieldValue("quantidade"))
	assert.Equal(t, "", record.FieldValue("email"))
	assert.Nil(t, record.FieldValue("nao_existe"))
}

func TestClientRecord_FieldValue_UnsetQuantidade(t *testing.T) {
	record := &ClientRecord{}
	// Numeric fields report nil when unset, not zero
	assert.Nil(t, record.FieldValue("quantidade"))
}

func TestClientRecord_BeforeCreate(t *testing.T) {
	record := &ClientRecord{Nome: "Ana"}
	record.BeforeCreate()

	require.False(t, record.CreatedAt.IsZero())
	assert.Equal(t, record.CreatedAt, record.UpdatedAt)
}

func TestClientRecord_BeforeUpdate(t *testing.T) {
	record := &ClientRecord{Nome: "Ana"}
	record.BeforeCreate()
	created := record.CreatedAt

	time.Sleep(time.Millisecond)
	record.BeforeUpdate()

	assert.Equal(t, created, record.CreatedAt)
	assert.True(t, record.UpdatedAt.After(created))
}

func TestMagistrateConfig_HasAccess(t *testing.T) {
	cfg := &MagistrateConfig{
		EmailsPermitidos: []string{"socio@salomao.adv.br", "gestao@salomao.adv.br"},
	}

	assert.True(t, cfg.HasAccess("socio@salomao.adv.br"))
	assert.False(t, cfg.HasAccess("outro@salomao.adv.br"))
	assert.False(t, cfg.HasAccess(""))
}

func TestValidTaskStatus(t *testing.T) {
	assert.True(t, ValidTaskStatus(TaskStatusTodo))
	assert.True(t, ValidTaskStatus(TaskStatusDoing))
	assert.True(t, ValidTaskStatus(TaskStatusDone))
	assert.False(t, ValidTaskStatus("archived"))
	assert.False(t, ValidTaskStatus(""))
}

func TestTask_BeforeCreate_DefaultsStatus(t *testing.T) {
	task := &Task{Title: "Enviar brindes"}
	task.BeforeCreate()

	assert.Equal(t, TaskStatusTodo, task.Status)
	assert.False(t, task.CreatedAt.IsZero())
}
