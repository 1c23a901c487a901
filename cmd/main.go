package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"

	"github.com/fennec-lang/fennec/internal/compiler_errors"
	l "github.com/fennec-lang/fennec/internal/lexer"
)

func main() {
	var dump bool

	rootCmd := &cobra.Command{
		Use:   "fennec <source-file>",
		Short: "Tokenize fennec source files",
		Long:  "Reads a fennec source file (or stdin when the argument is '-'), prints its token stream and reports lexical defects.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], dump)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().BoolVar(&dump, "dump", false, "Dump the collected token structures")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(fileName string, dump bool) error {
	var fileData []byte
	var err error

	if fileName == "-" {
		fileData, err = io.ReadAll(os.Stdin)
	} else {
		fileData, err = os.ReadFile(fileName)
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", fileName, err)
	}

	input := string(fileData)
	eh := compiler_errors.NewErrorHandler(os.Stderr)

	tokens := make([]l.Token, 0)
	for token := range l.Tokenize(input) {
		tokens = append(tokens, token)
		fmt.Println(token.String())
	}

	if dump {
		litter.Dump(tokens)
	}

	l.Diagnose(input, tokens, eh)
	if eh.HasErrors() {
		eh.FailNow()
	}

	return nil
}
