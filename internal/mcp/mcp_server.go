// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/dietradar/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Diet Radar MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Diet Radar Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_chart_rows ---
	s.AddTool(mcp.NewTool("get_chart_rows",
		mcp.WithDescription("Compute the radar coordinates (0-100) of every diet for each nutrient metric."),
		mcp.WithString("metrics", mcp.Description("Comma-separated metric subset, in axis order (defaults to all 29 metrics).")),
		mcp.WithBoolean("detail", mcp.Description("Include raw and normalized values alongside the shifted coordinates.")),
		mcp.WithString("dataset", mcp.Description("Path to a JSON, YAML or TOML dataset file (defaults to the configured dataset).")),
	), h.handleGetChartRows)

	// --- 2. Tool: get_series ---
	s.AddTool(mcp.NewTool("get_series",
		mcp.WithDescription("Describe how each diet is drawn after hiding legend entries and hovering one diet."),
		mcp.WithString("hide", mcp.Description("Comma-separated diets to toggle off, e.g. 'keto,carnivore'.")),
		mcp.WithString("hover", mcp.Description("Diet to hover, e.g. 'vegan'. Empty means no hover.")),
		mcp.WithString("dataset", mcp.Description("Path to a dataset file.")),
	), h.handleGetSeries)

	// --- 3. Tool: get_similarity ---
	s.AddTool(mcp.NewTool("get_similarity",
		mcp.WithDescription("Return the diet similarity radar points (0-1)."),
		mcp.WithString("dataset", mcp.Description("Path to a dataset file.")),
	), h.handleGetSimilarity)

	return s
}

// StartMCPServer starts the Diet Radar MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
