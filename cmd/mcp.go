package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sjzsdu/entrytree/lang"
	"github.com/sjzsdu/entrytree/logger"
	"github.com/sjzsdu/entrytree/mcpserver"
	"github.com/sjzsdu/entrytree/share"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	mcpTransport string
	mcpPort      int
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: lang.T("Start the MCP server"),
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := loadTree(cmd.Context())
		if err != nil {
			return lang.Errorf("Failed to load tree", err)
		}
		srv := mcpserver.NewEntryMCPServer(root)

		transport := mcpTransport
		if transport == "" {
			transport = os.Getenv("MCP_TRANSPORT")
		}
		port := strconv.Itoa(mcpPort)
		if envPort := os.Getenv("MCP_PORT"); envPort != "" {
			port = envPort
		}

		log := logger.L().With(zap.String("transport", transport), zap.String("root", root.Name()))
		switch transport {
		case "http":
			log.Info("starting mcp server", zap.String("port", port))
			return server.NewStreamableHTTPServer(srv.MCPServer).Start(":" + port)
		case "sse":
			log.Info("starting mcp server", zap.String("port", port))
			return server.NewSSEServer(srv.MCPServer).Start(":" + port)
		case "", "stdio":
			log.Info("starting mcp server")
			return server.ServeStdio(srv.MCPServer)
		default:
			return fmt.Errorf("%s: %s", lang.T("Invalid value"), transport)
		}
	},
}

func init() {
	mcpCmd.Flags().StringVar(&mcpTransport, "transport", "", lang.T("Transport: stdio, http, sse"))
	mcpCmd.Flags().IntVar(&mcpPort, "port", share.SERVER_PORT, lang.T("Server port"))
	rootCmd.AddCommand(mcpCmd)
}
