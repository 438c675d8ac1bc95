package resume

// Storage backends a record's binary can live on. Uploads always tag the
// active uploader's backend; firebase appears only in records written by an
// earlier revision of the site and is still readable.
const (
	StorageCloudinary = "cloudinary"
	StorageFirebase   = "firebase"
	StorageLocal      = "local"
)

// MaxFileSize is the hard upload validation limit.
const MaxFileSize = 10 << 20 // 10MB

// Record is the metadata of the current resume. The store holds a single
// slot: uploading a new resume replaces the record, it does not append.
type Record struct {
	ID          string `json:"id"`
	FileName    string `json:"fileName"`
	FileURL     string `json:"fileUrl"`
	FileSize    int64  `json:"fileSize"`
	UploadedAt  string `json:"uploadedAt"`
	Version     int    `json:"version"`
	StorageType string `json:"storageType"`
	PublicID    string `json:"publicId,omitempty"`
	// Pages is a best-effort page count extracted from the PDF, 0 when
	// the document could not be parsed.
	Pages int `json:"pages,omitempty"`
}

// Metadata is the denormalized projection kept alongside the full record
// for cheap reads.
type Metadata struct {
	URL         string `json:"url"`
	FileName    string `json:"fileName"`
	LastUpdated string `json:"lastUpdated"`
	Version     int    `json:"version"`
}

// Stats summarizes the current slot.
type Stats struct {
	HasResume   bool   `json:"hasResume"`
	Version     int    `json:"version,omitempty"`
	LastUpdated string `json:"lastUpdated,omitempty"`
	FileSize    int64  `json:"fileSize,omitempty"`
	StorageType string `json:"storageType,omitempty"`
}
