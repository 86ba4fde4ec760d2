package remote

import (
	"context"
	"io"
	"net/http"
)

// GenerateResult reports the outcome of a document generation request,
// including whether the copy was emailed.
type GenerateResult struct {
	Message     string `json:"message"`
	EmailStatus *struct {
		Sent       bool   `json:"sent"`
		Configured bool   `json:"configured"`
		Error      string `json:"error,omitempty"`
	} `json:"emailStatus,omitempty"`
}

func (c *Client) GenerateDocuments(ctx context.Context, token string) (GenerateResult, error) {
	var result GenerateResult
	if err := c.do(ctx, http.MethodPost, "/documents/generate", token, nil, &result); err != nil {
		return GenerateResult{}, err
	}
	return result, nil
}

// Download is a streamed binary document. The caller owns Body and must
// close it.
type Download struct {
	Body        io.ReadCloser
	ContentType string
	Disposition string
}

// DownloadDocument streams a generated PDF (agreement, receipt, ...) from
// the remote API.
func (c *Client) DownloadDocument(ctx context.Context, token, docType string) (*Download, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/documents/download/"+docType, nil)
	if err != nil {
		return nil, err
	}
	c.authorize(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, c.fail(ctx, resp)
	}
	return &Download{
		Body:        resp.Body,
		ContentType: resp.Header.Get("Content-Type"),
		Disposition: resp.Header.Get("Content-Disposition"),
	}, nil
}
