package lang

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var zh = map[string]string{
	"Composite tree and visitor toolkit":                  "组合树与访问器工具",
	"Build a file/directory tree and run visitors on it": "构建文件/目录树并在其上运行访问器",
	"Invalid arguments":                                   "无效参数",
	"Work directory path":                                 "工作目录路径",
	"Load tree from a git repository":                     "从 git 仓库加载树",
	"Git revision to read":                                "要读取的 git 修订版本",
	"Include hidden entries":                              "包含隐藏项",
	"Maximum load depth for directory sources, 0 for unlimited": "读取目录时的最大深度，0 表示不限制",
	"Levels to draw, 0 for unlimited":                     "绘制的层数，0 表示不限制",
	"Debug mode":                                          "调试模式",
	"Language":                                            "语言",
	"Print version information":                           "打印版本信息",
	"entrytree version":                                   "entrytree 版本",
	"Run the demo driver":                                 "运行演示程序",
	"Making root entries...":                              "创建根目录条目...",
	"Making user entries...":                              "创建用户目录条目...",
	"HTML files are:":                                     "HTML 文件有：",
	"List every entry with its path and size":             "列出每个条目的路径与大小",
	"Print the total size of a path":                      "打印路径的总大小",
	"Find files whose name matches a pattern":             "查找名称匹配的文件",
	"Match mode: contains, suffix, glob, regexp":          "匹配方式：contains、suffix、glob、regexp",
	"Draw the tree":                                       "绘制树形结构",
	"Hide files":                                          "隐藏文件",
	"Show tree statistics":                                "显示树的统计信息",
	"Export the listing to a file":                        "将列表导出到文件",
	"Output file name":                                    "输出文件名",
	"Render markdown in the terminal":                     "在终端渲染 markdown",
	"Successfully exported to":                            "已成功导出到",
	"Start an interactive shell":                          "启动交互式命令行",
	"Start the MCP server":                                "启动 MCP 服务器",
	"Transport: stdio, http, sse":                         "传输方式：stdio、http、sse",
	"Server port":                                         "服务器端口",
	"Set config":                                          "设置配置",
	"Set global configuration":                            "设置全局配置",
	"List all configurations":                             "列出所有配置",
	"Current configurations:":                             "当前配置：",
	"Clear configuration keys":                            "清除配置项",
	"Set language":                                        "设置语言",
	"Set default find pattern":                            "设置默认查找模式",
	"Set log level":                                       "设置日志级别",
	"Set output renderer":                                 "设置输出渲染方式",
	"Set TTF font file for PDF export":                    "设置 PDF 导出使用的 TTF 字体文件",
	"Invalid value":                                       "无效值",
	"Error loading config":                                "加载配置失败",
	"Error saving config":                                 "保存配置失败",
	"Unknown command":                                     "未知命令",
	"Type 'help' for available commands":                  "输入 'help' 查看可用命令",
	"Bye":                                                 "再见",
	"No matching files":                                   "没有匹配的文件",
	"Total size":                                          "总大小",
	"Directories":                                         "目录数",
	"Files":                                               "文件数",
	"Max depth":                                           "最大深度",
	"Total nodes":                                         "节点总数",
	"Not a directory":                                     "不是目录",
	"Failed to load tree":                                 "加载树失败",
	"Failed to export":                                    "导出失败",
	"Commands":                                            "命令",
}

var catalogs = map[language.Tag][]*i18n.Message{
	language.Chinese:           toMessages(zh),
	language.SimplifiedChinese: toMessages(zh),
}

func toMessages(m map[string]string) []*i18n.Message {
	msgs := make([]*i18n.Message, 0, len(m))
	for id, other := range m {
		msgs = append(msgs, &i18n.Message{ID: id, Other: other})
	}
	return msgs
}
