// Package server exposes the DeepL operation set as an MCP tool server.
//
// Tools are registered with typed handlers on the official MCP Go SDK
// server and can be served over stdio or streamable HTTP. The capability
// handle behind the tools is constructed lazily on first use and shared by
// all tools for the lifetime of the process. Tool handlers log failures and
// return them unchanged; the SDK reports them as tool errors.
package server
