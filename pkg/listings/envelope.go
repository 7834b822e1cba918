package listings

import (
	"encoding/json"

	"terravista-listings/internal/models"
)

// Envelope is the response shape the upstream is assumed to produce:
// {success, data: [...], pagination?}. The data payload is kept raw and
// decoded tolerantly, because the upstream deviates from its own contract
// often enough that a strict decode would drop whole pages.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Records decodes the envelope payload as a record list. A single object
// counts as a one-element list; anything undecodable counts as empty.
func (e *Envelope) Records() []models.RawRecord {
	if len(e.Data) == 0 {
		return nil
	}
	var records []models.RawRecord
	if err := json.Unmarshal(e.Data, &records); err == nil {
		return records
	}
	var single models.RawRecord
	if err := json.Unmarshal(e.Data, &single); err == nil && len(single) > 0 {
		return []models.RawRecord{single}
	}
	return nil
}
