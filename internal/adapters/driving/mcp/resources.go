package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for penrose-vault resources.
	uriScheme = "penrose-vault://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the alias table.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "aliases",
		Name:        "aliases",
		Description: "The alias table mapping names to (domain, style) reference pairs",
		MIMEType:    "application/json",
	}, s.handleAliasesResource)
}

// handleAliasesResource returns the configured alias table.
func (s *Server) handleAliasesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Settings == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	table, err := s.ports.Settings.Aliases()
	if err != nil {
		return nil, fmt.Errorf("loading aliases: %w", err)
	}

	type aliasInfo struct {
		Name   string `json:"name"`
		Domain string `json:"domain"`
		Style  string `json:"style"`
	}

	infos := make([]aliasInfo, 0, len(table))
	for name, entry := range table {
		infos = append(infos, aliasInfo{
			Name:   name,
			Domain: entry.Domain,
			Style:  entry.Style,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling aliases: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
