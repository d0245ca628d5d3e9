package location

import (
	"net/http"
	"strings"

	"github.com/adriandotdev/emsp-v2/internal/domain"
)

// EntryError is one failed entry of a registration batch, preserved in
// structured form so the HTTP layer can present individual reasons.
type EntryError struct {
	Index        int    `json:"index"`
	LocationName string `json:"location_name"`
	Message      string `json:"message"`
}

// BatchError aggregates all per-entry failures of a rolled-back batch.
type BatchError struct {
	Entries []EntryError
}

func collectBatchError(locations []domain.LocationPayload, entryErrs []error) *BatchError {
	var entries []EntryError
	for i, err := range entryErrs {
		if err == nil {
			continue
		}
		entries = append(entries, EntryError{
			Index:        i,
			LocationName: locations[i].Name,
			Message:      err.Error(),
		})
	}
	if len(entries) == 0 {
		return nil
	}

	return &BatchError{Entries: entries}
}

func (e *BatchError) Error() string {
	messages := make([]string, 0, len(e.Entries))
	for _, entry := range e.Entries {
		messages = append(messages, entry.Message)
	}
	return "CSV_CANNOT_BE_PROCESSED: " + strings.Join(messages, ", ")
}

func (e *BatchError) Code() int { return http.StatusInternalServerError }

// Reasons returns the per-entry failure messages for the response body.
func (e *BatchError) Reasons() []EntryError { return e.Entries }
