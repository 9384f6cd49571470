package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	expectedTools := []string{
		"image_load",
		"edge_detect",
		"edge_batch",
	}

	if len(tools) != len(expectedTools) {
		t.Fatalf("tool count: got %d, want %d", len(tools), len(expectedTools))
	}
	for i, name := range expectedTools {
		if tools[i].Name != name {
			t.Errorf("tools[%d]: got %s, want %s", i, tools[i].Name, name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}

			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok || len(props) == 0 {
				t.Fatal("InputSchema properties missing")
			}

			required, ok := tool.InputSchema["required"].([]string)
			if !ok || len(required) == 0 {
				t.Fatal("InputSchema required missing")
			}

			// Every required parameter must be declared.
			for _, r := range required {
				if _, ok := props[r]; !ok {
					t.Errorf("required parameter %s not in properties", r)
				}
			}
		})
	}
}

func TestToolDefinitions_OutputDirOptional(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		props := tool.InputSchema["properties"].(map[string]interface{})
		if _, ok := props["output_dir"]; !ok {
			continue
		}
		for _, r := range tool.InputSchema["required"].([]string) {
			if r == "output_dir" {
				t.Errorf("%s: output_dir should be optional", tool.Name)
			}
		}
	}
}

func TestHandleToolsList(t *testing.T) {
	s := newTestServer(t)

	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/list"})

	if resp == nil || resp.Error != nil {
		t.Fatalf("unexpected response: %+v", resp)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}

	toolsList, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a slice of Tool")
	}
	if len(toolsList) != len(GetToolDefinitions()) {
		t.Errorf("Tool count: got %d, want %d", len(toolsList), len(GetToolDefinitions()))
	}
}
