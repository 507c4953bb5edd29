package share

// VERSION 版本号
const VERSION = "1.0.0"

// BUILDNAME 制品名称
const BUILDNAME = "entrytree"

const PREFIX = "ENTRYTREE_"

const PATH = ".entrytree"

const DEFAULT_LANG = "en"

const DEFAULT_FIND_PATTERN = ".html"

const DEFAULT_RENDERER = "text"

const SERVER_PORT = 8080

const MCP_SERVER_NAME = "EntryTree MCP Server"

var debugMode bool

// SetDebug 设置全局调试模式
func SetDebug(debug bool) {
	debugMode = debug
}

// GetDebug 返回是否处于调试模式
func GetDebug() bool {
	return debugMode
}
