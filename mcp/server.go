// Copyright 2025 The declass Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package mcp exposes parsed class files as MCP tools, so agents can
// inspect compiled Java artifacts without shelling out to javap.
package mcp

import (
	"log"

	"github.com/mark3labs/mcp-go/server"
)

type Server struct {
	Server *server.MCPServer
}

type ServerOptions struct {
	ServerName    string
	ServerVersion string
	Verbose       bool
	ClassToolsOptions
}

func NewServer(options ServerOptions) (*Server, error) {
	opts := []server.ServerOption{
		server.WithPromptCapabilities(false),
		server.WithToolCapabilities(false),
	}
	if options.Verbose {
		opts = append(opts, server.WithLogging())
	}
	mcpServer := server.NewMCPServer(options.ServerName, options.ServerVersion, opts...)

	tools, err := NewClassTools(options.ClassToolsOptions)
	if err != nil {
		return nil, err
	}
	for _, tool := range tools.Tools() {
		mcpServer.AddTool(tool.Tool, tool.Handler)
	}

	return &Server{Server: mcpServer}, nil
}

func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.Server, server.WithErrorLogger(log.Default()))
}
