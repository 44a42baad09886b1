package models

// RequiredField is one entry of the required-field schema: Key addresses the
// record attribute and is the value persisted in ignored_fields; Label is the
// human-facing string shown on badges and reports.
type RequiredField struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// RequiredFieldSchema is the canonical ordered list of fields a complete
// record must carry. Declaration order drives the order of missing-field
// output, so it must not be sorted or reordered.
//
// Telefone, complemento and quantidade are intentionally not required.
var RequiredFieldSchema = []RequiredField{
	{Key: "nome", Label: "Nome"},
	{Key: "empresa", Label: "Empresa"},
	{Key: "cargo", Label: "Cargo"},
	{Key: "tipo_brinde", Label: "Tipo Brinde"},
	{Key: "cep", Label: "CEP"},
	{Key: "endereco", Label: "Endereço"},
	{Key: "numero", Label: "Número"},
	{Key: "bairro", Label: "Bairro"},
	{Key: "cidade", Label: "Cidade"},
	{Key: "estado", Label: "UF"},
	{Key: "email", Label: "Email"},
	{Key: "socio", Label: "Sócio"},
}

var (
	labelByKey = func() map[string]string {
		m := make(map[string]string, len(RequiredFieldSchema))
		for _, f := range RequiredFieldSchema {
			m[f.Key] = f.Label
		}
		return m
	}()

	keyByLabel = func() map[string]string {
		m := make(map[string]string, len(RequiredFieldSchema))
		for _, f := range RequiredFieldSchema {
			m[f.Label] = f.Key
		}
		return m
	}()
)

// LabelFor resolves a schema key to its display label. Unknown keys resolve
// to themselves so stale waiver entries stay visible instead of vanishing.
func LabelFor(key string) string {
	if label, ok := labelByKey[key]; ok {
		return label
	}
	return key
}

// IsSchemaKey reports whether key addresses a required field
func IsSchemaKey(key string) bool {
	_, ok := labelByKey[key]
	return ok
}

// NormalizeWaivers maps a persisted ignored_fields value onto schema keys.
// Documents written by earlier versions stored display labels ("Email")
// instead of keys ("email"); both are accepted on read. Entries that match
// neither are kept as-is, and duplicates are collapsed preserving first
// occurrence order.
func NormalizeWaivers(waivers []string) []string {
	if len(waivers) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(waivers))
	normalized := make([]string, 0, len(waivers))
	for _, w := range waivers {
		key := w
		if mapped, ok := keyByLabel[w]; ok {
			key = mapped
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		normalized = append(normalized, key)
	}
	return normalized
}
