// Package tools exposes the desk's read-only catalog operations as tools.
//
// It is organized into sub-packages:
//   - [github.com/germanamz/agentdesk/pkg/tools/toolbox]: Tool type and ToolBox registry for registering, listing, and calling tools
//   - [github.com/germanamz/agentdesk/pkg/tools/mcpserver]: MCP server using the official MCP Go SDK that serves a ToolBox over stdio
//
// The toolbox sub-package has no dependency on MCP; mcpserver adapts it to
// the SDK (github.com/modelcontextprotocol/go-sdk).
package tools
