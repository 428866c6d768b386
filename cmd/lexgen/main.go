// Command lexgen reads a lexical rule set and compiles it down to one
// minimized DFA per start condition, reporting diagnostics and
// optionally dumping DOT graphs for inspection. Grounded on
// _examples/liran-funaro-nex's root nex.go driver (flag wiring, input
// defaulting to stdin, DOT-file output flags) generalized from "emit Go
// lexer source" to "report diagnostics and compiled automaton shape",
// since code generation is out of scope here.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/projectdiscovery/gologger"
	"gopkg.in/yaml.v3"

	"github.com/xrfeng/lexspec/compiler"
	"github.com/xrfeng/lexspec/dfa"
	"github.com/xrfeng/lexspec/diag"
	"github.com/xrfeng/lexspec/rawsyntax"
	"github.com/xrfeng/lexspec/unicodeprop"
)

func main() {
	var dfadotPrefix string
	flag.StringVar(&dfadotPrefix, "dfadot", "", "write <prefix>.<condition>.dot DFA graphs")
	flag.Parse()

	var infile *os.File
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			gologger.Fatal().Msgf("lexgen: open %s: %v", flag.Arg(0), err)
		}
		defer f.Close()
		infile = f
	} else {
		infile = os.Stdin
	}

	var rs rawsyntax.RuleSet
	if err := yaml.NewDecoder(infile).Decode(&rs); err != nil {
		gologger.Fatal().Msgf("lexgen: decode rule set: %v", err)
	}

	var d diag.Bag
	result, err := compiler.Compile(context.Background(), unicodeprop.Builtin(), &d, rs)
	if err != nil {
		gologger.Fatal().Msgf("lexgen: %v", err)
	}

	for _, diagnostic := range d.All() {
		switch diagnostic.Severity {
		case diag.SeverityError:
			gologger.Error().Msg(diagnostic.String())
		case diag.SeverityWarning:
			gologger.Warning().Msg(diagnostic.String())
		}
	}

	for sc, automaton := range result.Automata {
		gologger.Info().Msgf("condition %q: %d states, %d classes", sc, automaton.NumStates, automaton.NumClasses)
		if conflicts := result.Conflicts[sc]; len(conflicts) > 0 {
			gologger.Warning().Msgf("condition %q has %d unresolved conflict(s)", sc, len(conflicts))
		}
		if dfadotPrefix != "" {
			path := dfadotPrefix + "." + string(sc) + ".dot"
			f, err := os.Create(path)
			if err != nil {
				gologger.Error().Msgf("lexgen: %v", err)
				continue
			}
			dfa.WriteDot(f, "DFA_"+string(sc), automaton, result.SplitPoints)
			f.Close()
		}
	}

	if d.HasErrors() {
		os.Exit(1)
	}
}
