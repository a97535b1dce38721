package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/dietradar/core"
	"github.com/huangsam/dietradar/internal/contract"
	"github.com/huangsam/dietradar/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

func (h *toolHandler) handleGetChartRows(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Detail = request.GetBool("detail", cfg.Detail)
	if err := contract.RevalidateSelections(cfg, request.GetString("metrics", ""), "", ""); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	if err := applyDataset(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	rows, _, err := core.GetChartRowsResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("chart rows failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(rows, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSeries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	hide := request.GetString("hide", "")
	hover := request.GetString("hover", "")
	if err := contract.RevalidateSelections(cfg, "", hide, hover); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	if err := applyDataset(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	series, _, err := core.GetSeriesResults(core.WithSuppressHeader(ctx), cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("series failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(series, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSimilarity(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := applyDataset(cfg, request); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	points, err := core.GetSimilarityResults(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("similarity failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(struct {
		Title  string                   `json:"title"`
		Points []schema.SimilarityPoint `json:"points"`
	}{schema.SimilarityTitle, points}, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// applyDataset overrides the dataset path when the request names one.
func applyDataset(cfg *contract.Config, request mcp.CallToolRequest) error {
	path := request.GetString("dataset", "")
	if path == "" {
		return nil
	}
	return contract.RevalidateDataset(cfg, path)
}
