// Package mcp exposes every registrar operation as a Model Context Protocol
// tool, over stdio or streamable HTTP.
package mcp

import (
	"context"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/domainops/porkbun-adapter/internal/porkbun"
)

const serverName = "Porkbun Domain & DNS Management"

// NewServer builds an MCP server with all registrar tools registered.
func NewServer(client *porkbun.Client, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: version,
	}, nil)
	registerTools(server, client)
	return server
}

// RunStdio serves the MCP protocol over stdin/stdout until ctx is done.
func RunStdio(ctx context.Context, client *porkbun.Client, version string) error {
	return NewServer(client, version).Run(ctx, &mcp.StdioTransport{})
}

// HTTPHandler returns a streamable HTTP handler for the MCP protocol.
func HTTPHandler(client *porkbun.Client, version string) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return NewServer(client, version)
	}, nil)
}
