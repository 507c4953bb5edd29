package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sjzsdu/entrytree/entry"
	"github.com/sjzsdu/entrytree/share"
)

// EntryMCPServer 把一棵已加载的树通过 MCP 工具暴露出去
type EntryMCPServer struct {
	*server.MCPServer
	root     *entry.Directory
	handlers map[string]server.ToolHandlerFunc
}

// NewEntryMCPServer 创建服务器并注册所有树工具
func NewEntryMCPServer(root *entry.Directory) *EntryMCPServer {
	s := &EntryMCPServer{
		MCPServer: server.NewMCPServer(
			share.MCP_SERVER_NAME,
			share.VERSION,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
		root:     root,
		handlers: make(map[string]server.ToolHandlerFunc),
	}
	s.registerTools()
	return s
}

func (s *EntryMCPServer) addTool(tool mcp.Tool, h server.ToolHandlerFunc) {
	s.AddTool(tool, h)
	s.handlers[tool.Name] = h
}

// Handler 返回已注册的工具处理函数
func (s *EntryMCPServer) Handler(name string) (server.ToolHandlerFunc, bool) {
	h, ok := s.handlers[name]
	return h, ok
}

// ToolNames 返回已注册的工具名称
func (s *EntryMCPServer) ToolNames() []string {
	names := make([]string, 0, len(s.handlers))
	for name := range s.handlers {
		names = append(names, name)
	}
	return names
}
