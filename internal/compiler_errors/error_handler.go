package compiler_errors

import (
	"fmt"
	"io"
	"os"
)

type CompilerError interface {
	GetMessage() string
}

type ErrorHandler interface {
	AddError(err CompilerError)
	HasErrors() bool
	Report()
	FailNow()
}

type CompilerErrorHandler struct {
	errors []CompilerError
	writer io.Writer
}

func NewErrorHandler(outputWriter io.Writer) ErrorHandler {
	return &CompilerErrorHandler{
		errors: make([]CompilerError, 0),
		writer: outputWriter,
	}
}

func (eh *CompilerErrorHandler) AddError(err CompilerError) {
	eh.errors = append(eh.errors, err)
}

func (eh *CompilerErrorHandler) HasErrors() bool {
	return len(eh.errors) > 0
}

// Report writes every collected error to the handler's writer.
func (eh *CompilerErrorHandler) Report() {
	fmt.Fprintln(eh.writer, "Build failed with errors:")

	for _, err := range eh.errors {
		fmt.Fprintf(eh.writer, "ERROR: %s\n", err.GetMessage())
	}
}

func (eh *CompilerErrorHandler) FailNow() {
	eh.Report()
	os.Exit(1)
}
