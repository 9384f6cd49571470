package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ironsheep/edge-mse/internal/imaging"
	"github.com/ironsheep/edge-mse/internal/pipeline"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "edge_detect").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn().Err(err).Str("tool", params.Name).Msg("tool failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "edge_detect":
		return s.handleEdgeDetect(args)
	case "edge_batch":
		return s.handleEdgeBatch(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// pipelineFor builds a pipeline writing to dir, or to the configured output
// directory when dir is empty.
func (s *Server) pipelineFor(dir string) (*pipeline.Pipeline, error) {
	if dir == "" {
		dir = s.outputDir
	}
	if dir == "" {
		return nil, fmt.Errorf("output_dir is required")
	}
	return pipeline.New(s.cache, s.sink, pipeline.Options{OutputDir: dir, Logger: s.logger}), nil
}

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

type edgeDetectArgs struct {
	Path      string `json:"path"`
	OutputDir string `json:"output_dir"`
}

func (s *Server) handleEdgeDetect(args json.RawMessage) (interface{}, error) {
	var a edgeDetectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	p, err := s.pipelineFor(a.OutputDir)
	if err != nil {
		return nil, err
	}
	res, err := p.Process(a.Path)
	s.cache.Evict(a.Path)
	if err != nil {
		return nil, err
	}
	return res, nil
}

type edgeBatchArgs struct {
	Paths     []string `json:"paths"`
	OutputDir string   `json:"output_dir"`
}

func (s *Server) handleEdgeBatch(args json.RawMessage) (interface{}, error) {
	var a edgeBatchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if len(a.Paths) == 0 {
		return nil, fmt.Errorf("paths must not be empty")
	}
	p, err := s.pipelineFor(a.OutputDir)
	if err != nil {
		return nil, err
	}
	return pipeline.NewBatch(p, s.logger).Run(context.Background(), a.Paths)
}
