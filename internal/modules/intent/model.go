// README: Intent catalog model and the caller-facing resolution shapes.
package intent

import "time"

// Entity slot kinds as they appear on the wire.
const (
	SlotTypeText    = "TEXT_INPUT"
	SlotTypeOptions = "OPTIONS"
)

// Resolution status values.
const (
	StatusSuccess = "Success"
	StatusError   = "Error"
)

const (
	metadataVersion = "v1.0"
	metadataSource  = "single-prompt-llm-service"
)

// EntitySlot is one typed field to be filled from the user message.
// Options is only populated for SlotTypeOptions.
type EntitySlot struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Type    string   `json:"type"`
	Options []string `json:"options"`
}

// Intent is a named category of user request with its ordered entity slots.
type Intent struct {
	ID     string       `json:"id"`
	Name   string       `json:"name,omitempty"`
	Entity []EntitySlot `json:"entity"`
}

// Catalog is the canonical in-memory form of the intent catalog. Both
// physical source shapes (intent list vs. direct id mapping) are normalized
// into it at load time, so downstream code sees exactly one shape.
type Catalog struct {
	Intents []Intent `json:"intents"`
}

// Lookup returns the intent with the given id, if present.
func (c *Catalog) Lookup(id string) (*Intent, bool) {
	for i := range c.Intents {
		if c.Intents[i].ID == id {
			return &c.Intents[i], true
		}
	}
	return nil, false
}

// Len returns the number of intents in the catalog.
func (c *Catalog) Len() int {
	return len(c.Intents)
}

// ErrorResolution builds the fallback resolution returned on any failure.
// The shape mirrors the success contract so callers always receive a
// parseable result with a status field.
func ErrorResolution(errMsg string) map[string]any {
	return map[string]any{
		"status": StatusError,
		"error":  errMsg,
		"result": []any{
			map[string]any{
				"intent":            "Unknown",
				"is_matched":        false,
				"intent_changed":    nil,
				"intentId":          nil,
				"previous_intentId": nil,
				"entity":            []any{},
				"metadata": map[string]any{
					"version":      metadataVersion,
					"last_updated": time.Now().UTC().Format(time.RFC3339),
					"source":       metadataSource,
				},
			},
		},
	}
}
