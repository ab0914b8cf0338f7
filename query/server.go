package query

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/gamma-omg/rag-loader/docstore"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type docRetriever interface {
	Query(ctx context.Context, text string, k int) ([]docstore.SearchResult, error)
}

func NewRagServer(retriever docRetriever, results int) *server.MCPServer {
	tool := mcp.NewTool("search",
		mcp.WithDescription("Searches the ingested documents and returns the closest chunks with their source file"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query"),
		),
		mcp.WithNumber("k",
			mcp.Description("Number of results to return"),
		))

	srv := server.NewMCPServer("RAG", "0.1.0", server.WithToolCapabilities(false))
	srv.AddTool(tool, searchHandler(retriever, results))

	return srv
}

func searchHandler(retriever docRetriever, results int) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		q, err := request.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		res, err := retriever.Query(ctx, q, request.GetInt("k", results))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		var response strings.Builder
		for _, r := range res {
			raw, err := json.Marshal(struct {
				File     string  `json:"file"`
				Chunk    int     `json:"chunk"`
				Chunks   int     `json:"chunks"`
				Distance float64 `json:"distance"`
				Text     string  `json:"text"`
			}{
				File:     r.Metadata.FilePath,
				Chunk:    r.Metadata.ChunkIndex,
				Chunks:   r.Metadata.TotalChunks,
				Distance: r.Distance,
				Text:     r.Text,
			})
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			response.Write(raw)
			response.WriteByte('\n')
		}

		return mcp.NewToolResultText(response.String()), nil
	}
}
