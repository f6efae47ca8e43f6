package entities

// AttachmentType is a server-defined tag describing the semantic purpose of
// an uploaded document.
type AttachmentType string

const (
	AttachmentCV          AttachmentType = "CV"
	AttachmentCoverLetter AttachmentType = "COVER_LETTER"
	AttachmentDiploma     AttachmentType = "DIPLOMA"
	AttachmentCertificate AttachmentType = "CERTIFICATE"
)

// AttachmentRef is the server-issued reference returned by an individual
// upload. Submissions carry these references, never raw file contents.
type AttachmentRef struct {
	Name string         `json:"name"`
	URL  string         `json:"url"`
	Type AttachmentType `json:"type"`
}
