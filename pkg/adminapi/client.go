package adminapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/artem13815/ats/pkg/pipeline"
	"github.com/artem13815/ats/pkg/preselection"
)

// Client реализует HTTP-клиент административного API заявок.
type Client struct {
	baseURL string
	token   string
	hc      *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// New creates a client for baseURL (e.g. http://localhost:8080) authenticated with a bearer token.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		hc:      &http.Client{Timeout: 15 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("admin api: status %d", e.Code)
	}
	return fmt.Sprintf("admin api: status %d: %s", e.Code, e.Message)
}

func (c *Client) ListApplications(ctx context.Context) ([]pipeline.Application, error) {
	var apps []pipeline.Application
	if err := c.do(ctx, http.MethodGet, "/api/admin/applications", nil, &apps); err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []pipeline.Application{}
	}
	return apps, nil
}

func (c *Client) UpdateStage(ctx context.Context, applicationID int64, upd preselection.StageUpdate) error {
	path := "/api/admin/applications/" + strconv.FormatInt(applicationID, 10) + "/stage"
	return c.do(ctx, http.MethodPatch, path, upd, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Message string `json:"message"`
		}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		if json.Unmarshal(raw, &e) != nil {
			e.Message = strings.TrimSpace(string(raw))
		}
		return &StatusError{Code: resp.StatusCode, Message: e.Message}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

var _ preselection.API = (*Client)(nil)
