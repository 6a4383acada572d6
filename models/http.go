package models

// Request and response bodies shared by the HTTP transport and the Go API
// client.

// UploadBatchResponse reports the outcome of one confirmed upload batch.
// A partially failed batch still applies every successful file, so Applied
// and Errors can both be non-empty.
type UploadBatchResponse struct {
	// Applied holds the attachments appended to the case, in submission
	// order.
	Applied []DocumentAttachment `json:"applied"`

	// Errors holds one "<filename>: <message>" entry per failed file, in
	// submission order.
	Errors []string `json:"errors,omitempty"`

	// Case is the resulting case state.
	Case Case `json:"case"`
}

// PatchDocumentRequest renames a document and/or appends one tag. Empty
// trimmed values are ignored.
type PatchDocumentRequest struct {
	Rename string `json:"rename,omitempty"`
	AddTag string `json:"add_tag,omitempty"`
}

// LinkDocumentRequest associates a document with a case provider.
type LinkDocumentRequest struct {
	ProviderID string `json:"provider_id"`
}

// CaseResponse wraps a case aggregate.
type CaseResponse struct {
	Case Case `json:"case"`
}

// DirectorySearchResponse carries directory search or list results.
type DirectorySearchResponse struct {
	Records []DirectoryRecord `json:"records"`
}

// LinkedDocumentsResponse lists the documents linked to one case
// provider.
type LinkedDocumentsResponse struct {
	Documents []DocumentAttachment `json:"documents"`
}

// VersionResponse reports the running build version.
type VersionResponse struct {
	Version string `json:"version"`
}
