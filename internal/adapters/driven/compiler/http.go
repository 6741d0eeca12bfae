// Package compiler provides the HTTP bridge to the external Penrose
// compiler service.
//
// The service exposes the three-stage contract as JSON endpoints:
// POST /compile, POST /optimize, POST /render. Stage failures come back
// with a human-readable error message that callers display in place of
// a diagram.
package compiler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/adityakanu/penrose-vault/internal/core/domain"
	"github.com/adityakanu/penrose-vault/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.Compiler = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:8775"
	DefaultTimeout = 60 * time.Second
)

// Config holds configuration for the compiler client.
type Config struct {
	// BaseURL is the compiler service endpoint (default: http://localhost:8775).
	BaseURL string

	// Timeout is the per-request timeout (default: 60s).
	Timeout time.Duration
}

// Client invokes the external Penrose compiler service over HTTP.
type Client struct {
	client  *http.Client
	baseURL string
}

// compileRequest is the /compile request format.
type compileRequest struct {
	Domain    string `json:"domain"`
	Style     string `json:"style"`
	Substance string `json:"substance"`
	Variation string `json:"variation"`
}

// stageResponse is the shared response envelope for all three stages.
type stageResponse struct {
	Output json.RawMessage `json:"output"`
	SVG    string          `json:"svg,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// NewClient creates a new compiler client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
	}
}

// Compile turns a trio into a compiled program.
func (c *Client) Compile(ctx context.Context, trio domain.Trio) (driven.CompiledProgram, error) {
	body := compileRequest{
		Domain:    trio.Domain,
		Style:     trio.Style,
		Substance: trio.Substance,
		Variation: trio.Variation,
	}

	resp, err := c.post(ctx, "/compile", body, domain.StageCompile, domain.ErrCompileFailed)
	if err != nil {
		return nil, err
	}
	return driven.CompiledProgram(resp.Output), nil
}

// Optimize runs layout optimization on a compiled program.
func (c *Client) Optimize(ctx context.Context, prog driven.CompiledProgram) (driven.OptimizedLayout, error) {
	body := map[string]json.RawMessage{"program": json.RawMessage(prog)}

	resp, err := c.post(ctx, "/optimize", body, domain.StageOptimize, domain.ErrOptimizeFailed)
	if err != nil {
		return nil, err
	}
	return driven.OptimizedLayout(resp.Output), nil
}

// Render emits SVG for an optimized layout.
func (c *Client) Render(ctx context.Context, layout driven.OptimizedLayout) (string, error) {
	body := map[string]json.RawMessage{"layout": json.RawMessage(layout)}

	resp, err := c.post(ctx, "/render", body, domain.StageRender, domain.ErrRenderFailed)
	if err != nil {
		return "", err
	}
	return resp.SVG, nil
}

// post issues one stage request and maps failures to *domain.StageError.
func (c *Client) post(ctx context.Context, path string, body any, stage domain.RenderStage, sentinel error) (*stageResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding %s request: %w", stage, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", stage, err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := c.client.Do(req)
	if err != nil {
		return nil, &domain.StageError{
			Stage:   stage,
			Message: fmt.Sprintf("compiler service unreachable: %v", err),
			Err:     sentinel,
		}
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", stage, err)
	}

	var resp stageResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", stage, err)
	}

	if httpResp.StatusCode != http.StatusOK || resp.Error != "" {
		message := resp.Error
		if message == "" {
			message = fmt.Sprintf("compiler service returned %s", httpResp.Status)
		}
		return nil, &domain.StageError{
			Stage:   stage,
			Message: message,
			Err:     sentinel,
		}
	}

	return &resp, nil
}
