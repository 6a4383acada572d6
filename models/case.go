package models

import "time"

// ActivityKind tags an activity-log entry with the category of mutation
// that produced it.
type ActivityKind string

const (
	ActivityDocumentUpload ActivityKind = "document_upload"
	ActivityDocumentDelete ActivityKind = "document_delete"
	ActivityProviderSave   ActivityKind = "provider_save"
	ActivityProviderDelete ActivityKind = "provider_delete"
)

// ActivityEntry is one record in a case's append-only activity log.
type ActivityEntry struct {
	// ID is a server-generated unique identifier for the entry.
	ID string `json:"id"`

	// Kind categorises the mutation that produced the entry.
	Kind ActivityKind `json:"kind"`

	// Message is the human-readable summary of the mutation.
	Message string `json:"message"`

	// CreatedAt is when the entry was appended.
	CreatedAt time.Time `json:"created_at"`
}

// Case is the aggregate the document pipeline and facility linker operate
// on. The core never persists a Case itself; every mutation produces a
// fully-formed next state that is handed to a single replace-case callback.
type Case struct {
	// CaseID identifies the case.
	CaseID string `json:"case_id"`

	// Title is the display name of the case file.
	Title string `json:"title"`

	// Documents is the ordered list of stored attachments.
	Documents []DocumentAttachment `json:"documents"`

	// Providers is the ordered list of case-scoped medical providers.
	Providers []MedicalProvider `json:"providers"`

	// Insurers is the ordered list of case-scoped insurance companies.
	Insurers []CaseInsurer `json:"insurers"`

	// Activity is the append-only activity log. Entries are only ever
	// appended, never rewritten or removed.
	Activity []ActivityEntry `json:"activity"`

	// CreatedAt is when the case was opened.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is bumped on every persisted mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// FindProvider returns the index of the provider with the given id in the
// case's provider list, or -1 when absent.
func (c *Case) FindProvider(providerID string) int {
	for i := range c.Providers {
		if c.Providers[i].ID == providerID {
			return i
		}
	}
	return -1
}
