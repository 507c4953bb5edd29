package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sjzsdu/entrytree/entry"
	"github.com/sjzsdu/entrytree/logger"
	"go.uber.org/zap"
)

func (s *EntryMCPServer) registerTools() {
	pathArg := mcp.WithString("path", mcp.Description("条目路径，如 / 或 /usr/yuki，默认为根目录"))

	s.addTool(mcp.NewTool(
		"entry_list",
		mcp.WithDescription("按前序列出每个条目的路径与大小"),
		pathArg,
	), s.entryList)

	s.addTool(mcp.NewTool(
		"entry_size",
		mcp.WithDescription("计算条目的总大小"),
		pathArg,
	), s.entrySize)

	s.addTool(mcp.NewTool(
		"entry_find",
		mcp.WithDescription("按名称查找文件，结果按发现顺序返回"),
		mcp.WithString("pattern", mcp.Required(), mcp.Description("匹配模式")),
		mcp.WithString("mode", mcp.Description("匹配方式，默认 contains"), mcp.Enum("contains", "suffix", "glob", "regexp")),
		pathArg,
	), s.entryFind)

	s.addTool(mcp.NewTool(
		"entry_tree",
		mcp.WithDescription("输出目录的树形结构（文本）"),
		pathArg,
		mcp.WithBoolean("showFiles", mcp.Description("是否显示文件，默认 true")),
		mcp.WithNumber("maxDepth", mcp.Description("最大深度（0 表示不限制）")),
	), s.entryTree)

	s.addTool(mcp.NewTool(
		"entry_stats",
		mcp.WithDescription("统计节点数、目录数、文件数、总大小与最大深度"),
		pathArg,
	), s.entryStats)
}

func (s *EntryMCPServer) lookup(req mcp.CallToolRequest) (entry.Entry, *mcp.CallToolResult) {
	p := req.GetString("path", "/")
	e, err := entry.Lookup(s.root, p)
	if err != nil {
		logger.L().Debug("mcp lookup failed", zap.String("tool", req.Params.Name), zap.String("path", p), zap.Error(err))
		return nil, mcp.NewToolResultError(err.Error())
	}
	return e, nil
}

func toJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(b)
}

func (s *EntryMCPServer) entryList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	e, errResult := s.lookup(req)
	if errResult != nil {
		return errResult, nil
	}
	var out entry.LineCollector
	if err := e.Accept(entry.NewListVisitor(&out)); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(strings.Join(out.Lines(), "\n")), nil
}

func (s *EntryMCPServer) entrySize(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	e, errResult := s.lookup(req)
	if errResult != nil {
		return errResult, nil
	}
	sv := entry.NewSizeVisitor()
	if err := e.Accept(sv); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(toJSON(map[string]any{"path": e.Path(), "size": sv.Size()})), nil
}

func matcherFor(mode, pattern string) (entry.NameMatcher, error) {
	switch mode {
	case "", "contains":
		return entry.NameContains(pattern), nil
	case "suffix":
		return entry.NameSuffix(pattern), nil
	case "glob":
		return entry.NewGlobMatcher(pattern)
	case "regexp":
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid regexp %q: %w", pattern, err)
		}
		return entry.NameRegexp(re), nil
	default:
		return nil, fmt.Errorf("unknown match mode: %s", mode)
	}
}

func (s *EntryMCPServer) entryFind(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern, err := req.RequireString("pattern")
	if err != nil {
		return mcp.NewToolResultError("missing or invalid pattern parameter: required argument \"pattern\" not found"), nil
	}
	match, err := matcherFor(req.GetString("mode", "contains"), pattern)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	e, errResult := s.lookup(req)
	if errResult != nil {
		return errResult, nil
	}
	ffv := entry.NewFileFindVisitor(match)
	if err := e.Accept(ffv); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(toJSON(map[string]any{"files": ffv.FoundFiles()})), nil
}

func (s *EntryMCPServer) entryTree(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	e, errResult := s.lookup(req)
	if errResult != nil {
		return errResult, nil
	}
	opts := entry.TreeOptions{
		ShowFiles: req.GetBool("showFiles", true),
		MaxDepth:  req.GetInt("maxDepth", 0),
	}
	var out entry.LineCollector
	if err := e.Accept(entry.NewTreeVisitor(&out, opts)); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(strings.Join(out.Lines(), "\n")), nil
}

func (s *EntryMCPServer) entryStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	e, errResult := s.lookup(req)
	if errResult != nil {
		return errResult, nil
	}
	st := entry.Stats(e)
	return mcp.NewToolResultText(toJSON(map[string]any{
		"totalNodes":     st.TotalNodes,
		"directoryCount": st.DirectoryCount,
		"fileCount":      st.FileCount,
		"totalSize":      st.TotalSize,
		"maxDepth":       st.MaxDepth,
	})), nil
}
