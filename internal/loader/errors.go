package loader

import "errors"

// 错误分级：源缺失与整表不可解析是致命错误，单元格级解析失败降级为空值
var (
	// ErrNotFound 源标识没有对应的文件
	ErrNotFound = errors.New("source not found")
	// ErrMalformedInput 文件存在但无法作为表格解析（如缺少表头行）
	ErrMalformedInput = errors.New("malformed input")
	// ErrSchema 缺少视图必需的列，该视图无法渲染（其他视图不受影响）
	ErrSchema = errors.New("schema error")
)
