package main

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/npillmayer/gorem/grammar"
	"github.com/npillmayer/gorem/internal/entry"
	"github.com/npillmayer/gorem/report"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var analyzeFlags = struct {
	start *string
	name  *string
	table *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "analyze [rules file]",
		Short: "Compute FIRST and FOLLOW sets of a grammar",
		Long: `Rules are read one per line, as

    HEAD => sym1 sym2 … symN

up to a line END. Upper case symbols are non-terminals, 'ep30' denotes ε,
every other symbol is a literal terminal. Without --start, the line following
END names the start symbol. Rules are read from a file, from piped input, or
interactively.`,
		Example: `  gorem analyze expr.rules --start E
  gorem analyze < expr.rules`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyze,
	}
	analyzeFlags.start = cmd.Flags().StringP("start", "s", "", "start symbol (default: read after END)")
	analyzeFlags.name = cmd.Flags().StringP("name", "n", "G", "name of the grammar")
	analyzeFlags.table = cmd.Flags().Bool("table", false, "print sets as tables")
	rootCmd.AddCommand(cmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	var g *grammar.Grammar
	var err error
	if len(args) > 0 {
		var f *os.File
		if f, err = os.Open(args[0]); err != nil {
			return fmt.Errorf("cannot open rules file %s: %w", args[0], err)
		}
		defer f.Close()
		g, err = readGrammar(f)
	} else if readline.IsTerminal(int(os.Stdin.Fd())) {
		g, err = enterGrammar()
	} else {
		g, err = readGrammar(os.Stdin)
	}
	if err != nil {
		return err
	}
	g.Dump() // only visible in debug mode
	ga := grammar.Analyze(g)
	out := cmd.OutOrStdout()
	if err = printSets(out, g, ga.FirstSets(), "FIRST"); err != nil {
		return err
	}
	fmt.Fprintln(out, "-----------------------------------------")
	return printSets(out, g, ga.FollowSets(), "FOLLOW")
}

// readGrammar reads rules non-interactively. Without --start, the start
// symbol is expected on the line after END.
func readGrammar(r io.Reader) (*grammar.Grammar, error) {
	if *analyzeFlags.start == "" {
		session := entry.Session{In: entry.NewLineReader(r), Out: io.Discard}
		return session.Grammar(*analyzeFlags.name)
	}
	records, err := grammar.ReadRules(r)
	if err != nil {
		return nil, err
	}
	return grammar.Build(*analyzeFlags.name, records, *analyzeFlags.start)
}

// enterGrammar runs an interactive session on the terminal.
func enterGrammar() (*grammar.Grammar, error) {
	repl, err := readline.New(entry.RulePrompt)
	if err != nil {
		return nil, err
	}
	defer repl.Close()
	pterm.Info.Println("Welcome to gorem")
	tracer().Infof("Quit with <ctrl>D")
	session := entry.Session{In: repl, Out: os.Stdout}
	return session.Grammar(*analyzeFlags.name)
}

func printSets(w io.Writer, g *grammar.Grammar, sets grammar.Sets, header string) error {
	fmt.Fprintf(w, "%s sets of grammar %s [%.12s]\n", header, g.Name, g.Fingerprint())
	if *analyzeFlags.table {
		table, err := pterm.DefaultTable.WithHasHeader().WithData(report.Table(g, sets, header)).Srender()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, table)
		return err
	}
	return report.Write(w, g, sets)
}
