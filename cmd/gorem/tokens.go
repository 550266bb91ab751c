package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/gorem/scanner"
	"github.com/npillmayer/gorem/scanner/lexmach"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var tokensFlags = struct {
	backend *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "tokens <source file path>",
		Short:   "Tokenize a C-like source file",
		Example: `  gorem tokens main.c --backend dfa`,
		Args:    cobra.ExactArgs(1),
		RunE:    runTokens,
	}
	tokensFlags.backend = cmd.Flags().StringP("backend", "b", "byte", "scanner backend [byte|dfa]")
	rootCmd.AddCommand(cmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read source file %s: %w", args[0], err)
	}
	tok, err := makeTokenizer(args[0], src, *tokensFlags.backend)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	count := 0
	for {
		t, err := tok.NextToken()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			pterm.Error.Printf("stopped after %d tokens\n", count)
			return err
		}
		fmt.Fprintf(out, "%6d+%-4d %-12s %s\n", t.Span().From(), t.Span().Len(),
			scanner.TokTypeString(t.TokType()), t.Lexeme())
		count++
	}
	tracer().Infof("%d tokens", count)
	return nil
}

func makeTokenizer(sourceID string, src []byte, backend string) (scanner.Tokenizer, error) {
	switch backend {
	case "byte":
		return scanner.NewLexer(sourceID, bytes.NewReader(src)), nil
	case "dfa":
		lm, err := lexmach.NewCLexer()
		if err != nil {
			return nil, err
		}
		return lm.Scanner(sourceID, src), nil
	}
	return nil, fmt.Errorf("unknown scanner backend %q", backend)
}
