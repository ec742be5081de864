// Package errors implements the runtime's error-reporting surface:
// a general ErrorType taxonomy with source location and call-stack
// context, plus an ArrayError that bridges the array core's own
// cause-based ErrorKind taxonomy into the same Error() string path.
package errors

import (
	"fmt"
	"strings"

	"arraycore/internal/array"
)

// ErrorType represents the type of error.
type ErrorType string

const (
	SyntaxError    ErrorType = "SyntaxError"
	RuntimeError   ErrorType = "RuntimeError"
	TypeError      ErrorType = "TypeError"
	ReferenceError ErrorType = "ReferenceError"
	ImportError    ErrorType = "ImportError"
	CompileError   ErrorType = "CompileError"
	ArrayCoreError ErrorType = "ArrayError"
)

// SourceLocation represents a location in source code.
type SourceLocation struct {
	File   string
	Line   int
	Column int
}

// RuntimeErr represents an error with source location information.
type RuntimeErr struct {
	Type      ErrorType
	Message   string
	Location  SourceLocation
	CallStack []StackFrame
	Source    string // the source line where the error occurred
	ArrayKind array.ErrorKind
}

// StackFrame represents a single frame in the call stack.
type StackFrame struct {
	Function string
	File     string
	Line     int
	Column   int
}

// Error implements the error interface.
func (e *RuntimeErr) Error() string {
	var sb strings.Builder

	if e.Type == ArrayCoreError {
		sb.WriteString(fmt.Sprintf("%s[%s]: %s\n", e.Type, e.ArrayKind, e.Message))
	} else {
		sb.WriteString(fmt.Sprintf("%s: %s\n", e.Type, e.Message))
	}

	if e.Location.File != "" {
		sb.WriteString(fmt.Sprintf("  at %s:%d:%d\n",
			e.Location.File, e.Location.Line, e.Location.Column))

		if e.Source != "" {
			sb.WriteString(fmt.Sprintf("\n  %d | %s\n", e.Location.Line, e.Source))
			sb.WriteString(fmt.Sprintf("  %s", strings.Repeat(" ", len(fmt.Sprintf("%d | ", e.Location.Line)))))
			if e.Location.Column > 0 {
				sb.WriteString(strings.Repeat(" ", e.Location.Column-1))
			}
			sb.WriteString("^\n")
		}
	}

	if len(e.CallStack) > 0 {
		sb.WriteString("\nCall Stack:\n")
		for _, frame := range e.CallStack {
			if frame.Function != "" {
				sb.WriteString(fmt.Sprintf("  at %s (%s:%d:%d)\n",
					frame.Function, frame.File, frame.Line, frame.Column))
			} else {
				sb.WriteString(fmt.Sprintf("  at %s:%d:%d\n",
					frame.File, frame.Line, frame.Column))
			}
		}
	}

	return sb.String()
}

// NewSyntaxError creates a new syntax error.
func NewSyntaxError(message string, file string, line, column int) *RuntimeErr {
	return &RuntimeErr{
		Type:    SyntaxError,
		Message: message,
		Location: SourceLocation{
			File:   file,
			Line:   line,
			Column: column,
		},
	}
}

// NewRuntimeError creates a new runtime error.
func NewRuntimeError(message string, file string, line, column int) *RuntimeErr {
	return &RuntimeErr{
		Type:    RuntimeError,
		Message: message,
		Location: SourceLocation{
			File:   file,
			Line:   line,
			Column: column,
		},
	}
}

// NewArrayError bridges an array.ErrorKind into the runtime's error
// taxonomy, so array-core failures render through the same Error()
// path as every other runtime error.
func NewArrayError(kind array.ErrorKind, message string) *RuntimeErr {
	return &RuntimeErr{
		Type:      ArrayCoreError,
		Message:   message,
		ArrayKind: kind,
	}
}

// WithSource adds source code context to the error.
func (e *RuntimeErr) WithSource(source string) *RuntimeErr {
	e.Source = source
	return e
}

// WithStack adds a call stack to the error.
func (e *RuntimeErr) WithStack(stack []StackFrame) *RuntimeErr {
	e.CallStack = stack
	return e
}

// AddStackFrame adds a single stack frame.
func (e *RuntimeErr) AddStackFrame(function, file string, line, column int) *RuntimeErr {
	e.CallStack = append(e.CallStack, StackFrame{
		Function: function,
		File:     file,
		Line:     line,
		Column:   column,
	})
	return e
}
