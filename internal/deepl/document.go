package deepl

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

// DocumentHandle is the opaque capability pair returned by UploadDocument.
// Both fields are required for status checks and downloads; the key cannot
// be recovered from the id alone.
type DocumentHandle struct {
	DocumentID  string `json:"document_id"`
	DocumentKey string `json:"document_key"`
}

// DocumentStatus is the raw translation state of an uploaded document.
type DocumentStatus struct {
	DocumentID       string `json:"document_id"`
	Status           string `json:"status"`
	SecondsRemaining *int64 `json:"seconds_remaining,omitempty"`
	BilledCharacters *int64 `json:"billed_characters,omitempty"`
	ErrorMessage     string `json:"error_message,omitempty"`
}

// Done reports whether the vendor marked the translation complete.
func (s *DocumentStatus) Done() bool {
	return s.Status == "done"
}

// DocumentUploadOptions holds the optional parameters of an upload.
type DocumentUploadOptions struct {
	SourceLang string
	Formality  string
}

// UploadDocument submits a document for translation. filename is forwarded
// to the vendor for format detection; it is not validated locally.
func (c *Client) UploadDocument(ctx context.Context, file io.Reader, filename, targetLang string, opts *DocumentUploadOptions) (*DocumentHandle, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if err := mw.WriteField("target_lang", targetLang); err != nil {
		return nil, &Error{Kind: KindNetwork, Message: err.Error(), cause: err}
	}
	if opts != nil {
		if opts.SourceLang != "" {
			if err := mw.WriteField("source_lang", opts.SourceLang); err != nil {
				return nil, &Error{Kind: KindNetwork, Message: err.Error(), cause: err}
			}
		}
		if opts.Formality != "" {
			if err := mw.WriteField("formality", opts.Formality); err != nil {
				return nil, &Error{Kind: KindNetwork, Message: err.Error(), cause: err}
			}
		}
	}

	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: err.Error(), cause: err}
	}
	if _, err := io.Copy(fw, file); err != nil {
		return nil, &Error{Kind: KindNetwork, Message: err.Error(), cause: err}
	}
	if err := mw.Close(); err != nil {
		return nil, &Error{Kind: KindNetwork, Message: err.Error(), cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.serverURL+"/v2/document", &body)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: err.Error(), cause: err}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var handle DocumentHandle
	if err := c.do(req, &handle); err != nil {
		return nil, err
	}
	return &handle, nil
}

// GetDocumentStatus checks the translation state of an uploaded document.
func (c *Client) GetDocumentStatus(ctx context.Context, handle DocumentHandle) (*DocumentStatus, error) {
	form := url.Values{}
	form.Set("document_key", handle.DocumentKey)

	var status DocumentStatus
	path := "/v2/document/" + url.PathEscape(handle.DocumentID)
	if err := c.callForm(ctx, "POST", path, form, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// DownloadDocument streams the translated document into w and returns the
// number of bytes written. The document must be in the done state.
func (c *Client) DownloadDocument(ctx context.Context, handle DocumentHandle, w io.Writer) (int64, error) {
	form := url.Values{}
	form.Set("document_key", handle.DocumentKey)

	counter := &countingWriter{w: w}
	path := "/v2/document/" + url.PathEscape(handle.DocumentID) + "/result"
	if err := c.callForm(ctx, "POST", path, form, counter); err != nil {
		return 0, err
	}
	return counter.n, nil
}

// countingWriter counts bytes passed through to the wrapped writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
