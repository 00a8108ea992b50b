package workbook

import (
	"strings"

	"pkrms_db/internal/schema"
)

const phonePrefix = "+62"

// Header is the submitter information sent as the batch's FormData record.
type Header struct {
	Status    string
	Province  string
	Kabupaten string
	LGName    string
	Email     string
	Phone     string
}

// NormalizePhone prefixes local numbers with the Indonesian country code,
// dropping leading zeros.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" || strings.HasPrefix(phone, phonePrefix) {
		return phone
	}
	return phonePrefix + strings.TrimLeft(phone, "0")
}

// Record renders the header in upload form.
func (h Header) Record() map[string]any {
	rec := map[string]any{
		"status":             h.Status,
		"selected_province":  h.Province,
		"selected_kabupaten": nil,
		"lg_name":            h.LGName,
		"email":              h.Email,
		"phone":              NormalizePhone(h.Phone),
	}
	if h.Status == "kabupaten" {
		rec["selected_kabupaten"] = h.Kabupaten
	}
	return rec
}

// BuildBatch assembles an upload body from the header and per-entity rows.
func BuildBatch(header Header, sheets map[string][]Row) map[string]any {
	batch := map[string]any{
		schema.FormData: []any{header.Record()},
	}
	for entity, rows := range sheets {
		items := make([]any, len(rows))
		for i, r := range rows {
			items[i] = map[string]any(r)
		}
		batch[entity] = items
	}
	return batch
}
