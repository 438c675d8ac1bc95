package certificates

// Certificate is an earned credential. FileURL points at the uploaded
// certificate document when one was attached.
type Certificate struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Issuer       string   `json:"issuer"`
	Date         string   `json:"date"`
	Description  string   `json:"description,omitempty"`
	FileURL      string   `json:"fileUrl,omitempty"`
	FilePublicID string   `json:"filePublicId,omitempty"`
	MediaType    string   `json:"mediaType,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	CredentialID string   `json:"credentialId,omitempty"`
	VerifyURL    string   `json:"verifyUrl,omitempty"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

// Input carries the writable fields of a certificate.
type Input struct {
	Title        string   `json:"title"`
	Issuer       string   `json:"issuer"`
	Date         string   `json:"date"`
	Description  string   `json:"description"`
	FileURL      string   `json:"fileUrl"`
	FilePublicID string   `json:"filePublicId"`
	MediaType    string   `json:"mediaType"`
	Skills       []string `json:"skills"`
	CredentialID string   `json:"credentialId"`
	VerifyURL    string   `json:"verifyUrl"`
}
