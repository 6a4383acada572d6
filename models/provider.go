package models

import "time"

// ContactMethod is the preferred way to reach a case-scoped provider's
// records department.
type ContactMethod string

const (
	ContactByPhone ContactMethod = "phone"
	ContactByFax   ContactMethod = "fax"
	ContactByEmail ContactMethod = "email"
	ContactByMail  ContactMethod = "mail"
)

// MedicalProvider is a case's own copy of a provider's data plus fields
// that only make sense against one case. It is not the directory record:
// saving it also upserts the shared fields into the provider directory,
// but the two are independently mutable afterwards — editing the directory
// later never rewrites existing case copies, and vice versa.
type MedicalProvider struct {
	// ID identifies the provider within this case. Documents reference it
	// via DocumentAttachment.LinkedFacilityID.
	ID string `json:"id"`

	// DirectoryID is the id of the shared directory record this copy was
	// sourced from or upserted into. Zero when the copy predates the
	// directory entry.
	DirectoryID int64 `json:"directory_id,omitempty"`

	// Shared fields, mirrored into the provider directory on save.
	Name  string `json:"name"`
	Type  string `json:"type"`
	Addr  string `json:"address"`
	City  string `json:"city"`
	State string `json:"state"`
	Zip   string `json:"zip"`
	Phone string `json:"phone"`
	Fax   string `json:"fax"`
	Email string `json:"email"`
	Notes string `json:"notes"`

	// Case-specific fields.
	CostTotalCents    int64         `json:"cost_total_cents"`
	FirstVisit        *time.Time    `json:"first_visit,omitempty"`
	LastVisit         *time.Time    `json:"last_visit,omitempty"`
	CurrentlyTreating bool          `json:"currently_treating"`
	PreferredContact  ContactMethod `json:"preferred_contact,omitempty"`
}

// CaseInsurer is a case's copy of an insurance company plus the case-level
// claim details. Like MedicalProvider it is independent of the directory
// record it was sourced from.
type CaseInsurer struct {
	ID string `json:"id"`

	// DirectoryID references the shared insurer directory record.
	DirectoryID int64 `json:"directory_id,omitempty"`

	Name  string `json:"name"`
	Type  string `json:"type"`
	Addr  string `json:"address"`
	City  string `json:"city"`
	State string `json:"state"`
	Zip   string `json:"zip"`
	Phone string `json:"phone"`
	Fax   string `json:"fax"`
	Email string `json:"email"`
	Notes string `json:"notes"`

	// Case-specific fields.
	PolicyNumber string `json:"policy_number"`
	ClaimNumber  string `json:"claim_number"`
	AdjusterName string `json:"adjuster_name"`
}
