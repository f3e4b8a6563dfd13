package patient

import "errors"

// MaxFileSize is the upload ceiling for identification documents.
const MaxFileSize = 5 * 1024 * 1024

// AcceptedFileTypes lists the MIME types accepted for identification
// documents.
var AcceptedFileTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"application/pdf",
}

var (
	ErrFileTooLarge    = errors.New("file size exceeds 5MB limit")
	ErrFileEmpty       = errors.New("file is empty")
	ErrFileTypeInvalid = errors.New("invalid file type; allowed: JPG, PNG, PDF")
)

// validateDocument applies the upload rules to a staged identification file.
func validateDocument(doc *UploadedDocument) error {
	if doc.Size > MaxFileSize {
		return ErrFileTooLarge
	}
	if doc.Size == 0 {
		return ErrFileEmpty
	}
	for _, accepted := range AcceptedFileTypes {
		if doc.ContentType == accepted {
			return nil
		}
	}
	return ErrFileTypeInvalid
}
