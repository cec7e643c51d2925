package models

import "time"

// Document is the metadata record of a file attached to a student.
// Only metadata is tracked; the file contents themselves are outside
// the scope of this tool. JSON tags match the legacy record layout.
type Document struct {
	// ID is the opaque unique identifier, generated at attach time.
	ID string `json:"id"`

	// Name is the original file name as supplied by the caller.
	Name string `json:"nome"`

	// MIMEType is the declared content type of the file.
	MIMEType string `json:"tipo"`

	// Size is the file size in bytes.
	Size int64 `json:"tamanho"`

	// StudentID is the owning student record.
	StudentID string `json:"alunoId"`

	// UploadedAt is the timestamp when the document was attached.
	UploadedAt time.Time `json:"dataUpload"`
}
