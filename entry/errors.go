package entry

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedOperation 在叶子节点上调用 Add/Entries 时返回
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrNilEntry             = errors.New("entry is nil")
	ErrAlreadyAttached      = errors.New("entry already belongs to a directory")
	ErrCycle                = errors.New("entry would become its own ancestor")
	ErrNegativeSize         = errors.New("file size must not be negative")
	ErrNotFound             = errors.New("entry not found")
)

// TraverseError 封装遍历过程中的错误信息
type TraverseError struct {
	Path     string
	NodeName string
	Err      error
}

func (e *TraverseError) Error() string {
	return fmt.Sprintf("traverse error [%s] at entry '%s': %v", e.Path, e.NodeName, e.Err)
}

func (e *TraverseError) Unwrap() error {
	return e.Err
}

func unsupported(op string, e Entry) error {
	return fmt.Errorf("%s on file %q: %w", op, e.Name(), ErrUnsupportedOperation)
}
