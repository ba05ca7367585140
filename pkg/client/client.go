// Package client is a typed client for the enquête portal REST API. It is
// the only way the operator tooling talks to the backend: list and mutate
// cases and investigators, submit findings, upload exchange files and manage
// VPN configs.
//
// Error contract: transport failures surface as *NetworkError, reported
// failures (success=false envelope or bare non-2xx) as *BackendError.
// Client-side validation never issues a request. There is no retry and no
// implicit timeout; callers bound calls through the context.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
)

// Client talks to one backend instance.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client for the backend at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("invalid base URL %q", baseURL)
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ListRecords fetches all investigation records.
func (c *Client) ListRecords(ctx context.Context) ([]Record, error) {
	var out struct {
		envelope
		Data []Record `json:"data"`
	}
	if err := c.do(ctx, "list records", http.MethodGet, "/api/donnees", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// ListInvestigators fetches the investigator roster.
func (c *Client) ListInvestigators(ctx context.Context) ([]Investigator, error) {
	var out struct {
		envelope
		Data []Investigator `json:"data"`
	}
	if err := c.do(ctx, "list investigators", http.MethodGet, "/api/enqueteurs", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// AddInvestigator creates a new investigator.
func (c *Client) AddInvestigator(ctx context.Context, inv NewInvestigator) (*Investigator, error) {
	var out struct {
		envelope
		Data *Investigator `json:"data"`
	}
	if err := c.do(ctx, "add investigator", http.MethodPost, "/api/enqueteurs", inv, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// DeleteInvestigator removes an investigator. Any cases still assigned to
// them revert to unassigned on the backend.
func (c *Client) DeleteInvestigator(ctx context.Context, id uint) error {
	path := fmt.Sprintf("/api/enqueteurs/%d", id)
	var out envelope
	return c.do(ctx, "delete investigator", http.MethodDelete, path, nil, &out)
}

// assignRequest is the body of POST /api/assign-enquete. A nil investigator
// id clears the assignment; unassigning is a first-class operation.
type assignRequest struct {
	CaseNumber     string `json:"enqueteId"`
	InvestigatorID *uint  `json:"enqueteurId"`
}

// Assign sets or clears the investigator of one case, identified by its case
// number.
func (c *Client) Assign(ctx context.Context, caseNumber string, investigatorID *uint) error {
	var out envelope
	body := assignRequest{CaseNumber: caseNumber, InvestigatorID: investigatorID}
	return c.do(ctx, "assign case", http.MethodPost, "/api/assign-enquete", body, &out)
}

// SubmitFindings sends a partial findings update for the record with the
// given numeric id. Only the fields set in f are touched server-side.
func (c *Client) SubmitFindings(ctx context.Context, recordID uint, f *Findings) error {
	path := fmt.Sprintf("/api/donnees-enqueteur/%d", recordID)
	var out envelope
	return c.do(ctx, "submit findings", http.MethodPost, path, f, &out)
}

// DeleteRecord removes one investigation record.
func (c *Client) DeleteRecord(ctx context.Context, id uint) error {
	path := fmt.Sprintf("/api/donnees/%d", id)
	var out envelope
	return c.do(ctx, "delete record", http.MethodDelete, path, nil, &out)
}

// GetStats fetches the import statistics.
func (c *Client) GetStats(ctx context.Context) (*Stats, error) {
	var out struct {
		envelope
		Data *Stats `json:"data"`
	}
	if err := c.do(ctx, "get stats", http.MethodGet, "/api/stats", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// ImportFile uploads a fixed-width exchange file. A duplicate file name
// yields a *BackendError with IsConflict() true and no side effect.
func (c *Client) ImportFile(ctx context.Context, filename string, r io.Reader) (*ImportResult, error) {
	return c.uploadFile(ctx, "import file", "/parse", filename, r)
}

// ReplaceFile uploads a file that replaces a previous import with the same
// name, dropping that import's records first.
func (c *Client) ReplaceFile(ctx context.Context, filename string, r io.Reader) (*ImportResult, error) {
	return c.uploadFile(ctx, "replace file", "/replace-file", filename, r)
}

// FetchVPNConfig asks the backend to generate (if needed) and report the VPN
// config for one investigator.
func (c *Client) FetchVPNConfig(ctx context.Context, investigatorID uint) (*VPNConfig, error) {
	path := fmt.Sprintf("/api/enqueteurs/%d/vpn-config", investigatorID)
	var out struct {
		envelope
		Data *VPNConfig `json:"data"`
	}
	if err := c.do(ctx, "fetch vpn config", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// UploadVPNTemplate uploads the .ovpn template used for config generation.
func (c *Client) UploadVPNTemplate(ctx context.Context, filename string, r io.Reader) error {
	_, err := c.uploadFile(ctx, "upload vpn template", "/api/vpn-template", filename, r)
	return err
}

// do performs one JSON round trip and enforces the envelope contract. out
// must embed envelope (or be *envelope) so success can be checked.
func (c *Client) do(ctx context.Context, op, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	return c.decode(op, resp, out)
}

// uploadFile performs one multipart upload round trip.
func (c *Client) uploadFile(ctx context.Context, op, path, filename string, r io.Reader) (*ImportResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("%s: build form: %w", op, err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("%s: read file: %w", op, err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("%s: build form: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	var out struct {
		envelope
		Data *ImportResult `json:"data"`
	}
	if err := c.decode(op, resp, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// decode reads the body, surfaces envelope failures and malformed payloads.
func (c *Client) decode(op string, resp *http.Response, out interface{}) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= 400 {
			return &BackendError{Op: op, StatusCode: resp.StatusCode}
		}
		return &BackendError{Op: op, StatusCode: resp.StatusCode, Message: "malformed response envelope"}
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = env.Message
		}
		return &BackendError{Op: op, StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return &BackendError{Op: op, StatusCode: resp.StatusCode, Message: "malformed response envelope"}
		}
	}
	return nil
}
