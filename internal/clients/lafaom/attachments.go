package lafaom

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/lafaom-mao/portal/internal/entities"
)

// UploadJobAttachment uploads one document as multipart form data (fields
// "name" and "file") and returns the reference the submission payload must
// carry. Callers must not reference a file in a submission until this call
// has succeeded.
func (c *Client) UploadJobAttachment(ctx context.Context, attachmentType entities.AttachmentType,
	filename string, content io.Reader) (*entities.AttachmentRef, error) {

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("name", string(attachmentType)); err != nil {
		return nil, err
	}

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, err
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	body, err := c.sendRequest(ctx, http.MethodPost, c.url(epJobAttachments), &buf,
		requestOptions{contentType: writer.FormDataContentType()})
	if err != nil {
		return nil, err
	}

	ref, err := decodeRecord[entities.AttachmentRef](body)
	if err != nil {
		return nil, err
	}
	if ref.Type == "" {
		ref.Type = attachmentType
	}
	if ref.Name == "" {
		ref.Name = filename
	}
	return ref, nil
}
