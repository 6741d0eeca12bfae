package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/adityakanu/penrose-vault/internal/core/domain"
)

// ResolveTrioInput is the input schema for the resolve_trio tool.
type ResolveTrioInput struct {
	Substance string `json:"substance" jsonschema:"the diagram source, including its annotation lines"`
}

// ResolveTrioOutput is the output schema for the resolve_trio tool.
type ResolveTrioOutput struct {
	Substance string `json:"substance"`
	Domain    string `json:"domain"`
	Style     string `json:"style"`
	Variation string `json:"variation,omitempty"`

	DomainRef string `json:"domain_ref,omitempty"`
	StyleRef  string `json:"style_ref,omitempty"`
	Alias     string `json:"alias,omitempty"`
}

// RenderDiagramInput is the input schema for the render_diagram tool.
type RenderDiagramInput struct {
	Substance string `json:"substance" jsonschema:"the diagram source, including its annotation lines"`
}

// RenderDiagramOutput is the output schema for the render_diagram tool.
type RenderDiagramOutput struct {
	SVG         string `json:"svg,omitempty"`
	Failure     string `json:"failure,omitempty"`
	FailedStage string `json:"failed_stage,omitempty"`
	Cached      bool   `json:"cached"`
}

// ListBlocksInput is the input schema for the list_blocks tool.
type ListBlocksInput struct {
	NoteURI string `json:"note_uri,omitempty" jsonschema:"identifier of the note the text came from"`
	Text    string `json:"text" jsonschema:"the full markdown text of the note"`
}

// ListBlocksOutput is the output schema for the list_blocks tool.
type ListBlocksOutput struct {
	Blocks []BlockOutput `json:"blocks"`
	Count  int           `json:"count"`
}

// BlockOutput represents a single discovered diagram block.
type BlockOutput struct {
	ID        string `json:"id"`
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
	Substance string `json:"substance"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve_trio",
		Description: "Resolve a diagram block's annotations into a compiler-ready trio",
	}, s.handleResolveTrio)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "render_diagram",
		Description: "Render a diagram block to SVG through the compiler pipeline",
	}, s.handleRenderDiagram)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_blocks",
		Description: "List the fenced penrose blocks in a markdown note",
	}, s.handleListBlocks)
}

// handleResolveTrio handles the resolve_trio tool invocation.
func (s *Server) handleResolveTrio(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ResolveTrioInput,
) (*mcp.CallToolResult, ResolveTrioOutput, error) {
	trio := s.ports.Trio.Resolve(ctx, input.Substance)
	meta := s.ports.Trio.Metadata(input.Substance)

	output := ResolveTrioOutput{
		Substance: trio.Substance,
		Domain:    trio.Domain,
		Style:     trio.Style,
		Variation: trio.Variation,
		DomainRef: meta.Domain,
		StyleRef:  meta.Style,
		Alias:     meta.AliasName,
	}

	return nil, output, nil
}

// handleRenderDiagram handles the render_diagram tool invocation.
func (s *Server) handleRenderDiagram(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RenderDiagramInput,
) (*mcp.CallToolResult, RenderDiagramOutput, error) {
	if s.ports.Render == nil {
		return nil, RenderDiagramOutput{}, errors.New("render service not configured")
	}

	result := s.ports.Render.RenderBlock(ctx, domain.DiagramBlock{
		Substance: input.Substance,
	})

	output := RenderDiagramOutput{
		SVG:     result.SVG,
		Failure: result.Failure,
		Cached:  result.Cached,
	}
	if result.Failed() {
		output.FailedStage = string(result.FailedStage)
	}

	return nil, output, nil
}

// handleListBlocks handles the list_blocks tool invocation.
func (s *Server) handleListBlocks(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListBlocksInput,
) (*mcp.CallToolResult, ListBlocksOutput, error) {
	if s.ports.Blocks == nil {
		return nil, ListBlocksOutput{}, errors.New("block service not configured")
	}

	blocks := s.ports.Blocks.Discover(input.NoteURI, input.Text)

	output := ListBlocksOutput{
		Blocks: make([]BlockOutput, len(blocks)),
		Count:  len(blocks),
	}
	for i, block := range blocks {
		output.Blocks[i] = BlockOutput{
			ID:        block.ID,
			StartLine: block.StartLine,
			EndLine:   block.EndLine,
			Substance: block.Substance,
		}
	}

	return nil, output, nil
}
