package tools

import (
	"context"
	"encoding/json"

	"github.com/moviewizard/movie-mcp/internal/domain/entities"
	"github.com/moviewizard/movie-mcp/internal/domain/interfaces"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

const findMoviesDescription = `Finds movies matching a variety of criteria, with options for sorting and limiting results. All filters are optional and combine with AND. Returns a JSON list of movie documents; an empty list when nothing matches.`

const countMoviesDescription = `Counts movies matching the same filter criteria find_movies accepts. Returns the number of matching movies.`

const averageRatingDescription = `Calculates the average of one rating source over movies matching the criteria. Returns {"average_rating": <number rounded to 2 decimals or null>, "movie_count": <contributing movies>}; null for an unknown rating_field_key.`

// ToolRegistry owns the query tools and registers them with an MCP
// server.
type ToolRegistry struct {
	toolsByName map[string]entities.Tool
	logger      *zap.Logger
}

func NewToolRegistry(repo interfaces.MovieRepository, logger *zap.Logger) *ToolRegistry {
	registry := &ToolRegistry{
		toolsByName: make(map[string]entities.Tool),
		logger:      logger,
	}

	for _, tool := range []entities.Tool{
		NewFindMoviesTool("find_movies", findMoviesDescription, map[string]string{}, repo, logger),
		NewCountMoviesTool("count_movies", countMoviesDescription, map[string]string{}, repo, logger),
		NewAverageRatingTool("get_average_rating", averageRatingDescription, map[string]string{}, repo, logger),
	} {
		registry.toolsByName[tool.Name()] = tool
	}

	return registry
}

func (r *ToolRegistry) ListTools() []entities.Tool {
	var list []entities.Tool
	for _, tool := range r.toolsByName {
		list = append(list, tool)
	}
	return list
}

func (r *ToolRegistry) GetToolByName(name string) (entities.Tool, bool) {
	tool, exists := r.toolsByName[name]
	return tool, exists
}

// RegisterMCP adds every tool to the MCP server, converting its declared
// parameters into the tool's input schema and adapting Execute to the
// server's handler signature.
func (r *ToolRegistry) RegisterMCP(s *server.MCPServer) {
	for _, tool := range r.toolsByName {
		s.AddTool(mcpToolDefinition(tool), r.mcpHandler(tool))
	}
}

func mcpToolDefinition(tool entities.Tool) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(tool.Description())}

	for _, param := range tool.Parameters() {
		var propOpts []mcp.PropertyOption
		if param.Description != "" {
			propOpts = append(propOpts, mcp.Description(param.Description))
		}
		if param.Required {
			propOpts = append(propOpts, mcp.Required())
		}

		switch param.Type {
		case "array":
			itemType := "string"
			if len(param.Items) > 0 {
				itemType = param.Items[0].Type
			}
			propOpts = append(propOpts, mcp.Items(map[string]any{"type": itemType}))
			opts = append(opts, mcp.WithArray(param.Name, propOpts...))
		case "number", "integer":
			opts = append(opts, mcp.WithNumber(param.Name, propOpts...))
		case "boolean":
			opts = append(opts, mcp.WithBoolean(param.Name, propOpts...))
		default:
			if len(param.Enum) > 0 {
				propOpts = append(propOpts, mcp.Enum(param.Enum...))
			}
			opts = append(opts, mcp.WithString(param.Name, propOpts...))
		}
	}

	return mcp.NewTool(tool.Name(), opts...)
}

func (r *ToolRegistry) mcpHandler(tool entities.Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		arguments, err := json.Marshal(request.GetArguments())
		if err != nil {
			r.logger.Error("Failed to marshal tool arguments",
				zap.String("tool", tool.Name()), zap.Error(err))
			return mcp.NewToolResultError("invalid arguments"), nil
		}

		result, err := tool.Execute(ctx, string(arguments))
		if err != nil {
			r.logger.Error("Tool execution failed",
				zap.String("tool", tool.Name()), zap.Error(err))
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(result), nil
	}
}
