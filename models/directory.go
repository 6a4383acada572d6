package models

import "time"

// DirectoryRecord is one row of a shared, case-independent directory
// table. The provider and insurer directories are distinct tables with an
// identical shape, so both are represented by this single type; the store
// layer decides which table a record belongs to.
//
// Invariant: within each table, Name is unique under case-insensitive
// comparison after trimming. The store enforces this with an atomic
// upsert-by-name, so callers must never insert around that operation.
type DirectoryRecord struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// Name is the trimmed display name. The dedup key is lower(btrim(Name)).
	Name string `json:"name"`

	// Type is the categorical kind (e.g. "hospital", "chiropractor" for
	// providers; "auto", "health" for insurers).
	Type string `json:"type"`

	// Address fields.
	Addr  string `json:"address"`
	City  string `json:"city"`
	State string `json:"state"`
	Zip   string `json:"zip"`

	// Contact fields.
	Phone string `json:"phone"`
	Fax   string `json:"fax"`
	Email string `json:"email"`

	// Notes is free text.
	Notes string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DirectoryRecordPatch carries a partial update for one directory record.
// Nil fields are left untouched.
type DirectoryRecordPatch struct {
	Name  *string `json:"name,omitempty"`
	Type  *string `json:"type,omitempty"`
	Addr  *string `json:"address,omitempty"`
	City  *string `json:"city,omitempty"`
	State *string `json:"state,omitempty"`
	Zip   *string `json:"zip,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Fax   *string `json:"fax,omitempty"`
	Email *string `json:"email,omitempty"`
	Notes *string `json:"notes,omitempty"`
}
