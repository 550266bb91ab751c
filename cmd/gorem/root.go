package main

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// tracer traces with key 'gorem.cli'.
func tracer() tracing.Trace {
	return tracing.Select("gorem.cli")
}

// traceKeys are the tracers whose level is controlled by --trace.
var traceKeys = []string{"gorem.cli", "gorem.grammar", "gorem.scanner"}

var rootFlags = struct {
	trace *string
}{}

var rootCmd = &cobra.Command{
	Use:   "gorem",
	Short: "Analyse context-free grammars and tokenize C-like sources",
	Long: `gorem provides two features:
- Computes FIRST and FOLLOW sets for a grammar entered as rule lines.
- Tokenizes a C-like source file, for inspecting the token alphabet
  grammars may refer to.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().StringP("trace", "t", "Error", "Trace level [Debug|Info|Error]")
}

func Execute() error {
	return rootCmd.Execute()
}

// setup installs the tracing backend and the display before any sub-command
// runs.
func setup(cmd *cobra.Command, args []string) error {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	level := tracing.TraceLevelFromString(*rootFlags.trace)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Infof("trace level is %s", *rootFlags.trace)
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
