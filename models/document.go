package models

// DocumentType is the semantic classification of a case document.
// Values are assigned either by the filename classifier at staging time or
// explicitly by the user before upload.
type DocumentType string

const (
	// DocumentTypeRetainer is a signed retainer agreement.
	DocumentTypeRetainer DocumentType = "retainer"

	// DocumentTypeCrashReport is a crash or police report.
	DocumentTypeCrashReport DocumentType = "crash_report"

	// DocumentTypeMedicalRecord is a medical record or treatment note.
	DocumentTypeMedicalRecord DocumentType = "medical_record"

	// DocumentTypeAuthorization is a HIPAA release or other signed
	// authorization form.
	DocumentTypeAuthorization DocumentType = "authorization"

	// DocumentTypeInsurance is insurance correspondence or policy paperwork.
	DocumentTypeInsurance DocumentType = "insurance"

	// DocumentTypePhoto is a photograph (scene, vehicle, injury, etc.).
	DocumentTypePhoto DocumentType = "photo"

	// DocumentTypeOther is the fallback for anything the classifier cannot
	// place.
	DocumentTypeOther DocumentType = "other"
)

// PhotoCategory refines DocumentTypePhoto. It is ignored for every other
// document type.
type PhotoCategory string

const (
	PhotoCategoryScene    PhotoCategory = "scene"
	PhotoCategoryVehicle  PhotoCategory = "vehicle"
	PhotoCategoryInjury   PhotoCategory = "injury"
	PhotoCategoryProperty PhotoCategory = "property"
	PhotoCategoryOther    PhotoCategory = "other"
)

// DocumentAttachment is a stored case document. It is persisted inside the
// case aggregate, never as a standalone row; the file bytes themselves live
// in blob storage under StorageKey.
type DocumentAttachment struct {
	// Type is the semantic kind of the document.
	Type DocumentType `json:"type"`

	// FileName is the display name of the document. The user may rename it
	// after upload; renaming never touches the blob key.
	FileName string `json:"file_name"`

	// MimeType is the content type declared at upload time.
	MimeType string `json:"mime_type"`

	// Source records how the document entered the system
	// (e.g. "Manual Upload").
	Source string `json:"source"`

	// Tags is an ordered sequence of free-text labels. Duplicates are
	// permitted; appending the same tag twice keeps both.
	Tags []string `json:"tags"`

	// StorageKey is the blob store object key. Empty for documents whose
	// bytes were never persisted (should not occur for uploaded documents).
	StorageKey string `json:"storage_key"`

	// StorageURL is the stable public URL returned by the blob store.
	StorageURL string `json:"storage_url"`

	// PhotoCategory is set only when Type is DocumentTypePhoto.
	PhotoCategory PhotoCategory `json:"photo_category,omitempty"`

	// LinkedFacilityID is a weak reference to a MedicalProvider in the same
	// case. Empty means unlinked. Only the facility linker sets or clears
	// this field; it must be cleared when the referenced provider is
	// removed from the case.
	LinkedFacilityID string `json:"linked_facility_id,omitempty"`
}
