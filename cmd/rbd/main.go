// Command rbd evaluates a reliability block diagram from a YAML file
// and prints the system reliability, the per-chain breakdown, and the
// derivation formulas.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-rbd/pkg/engine"
	"github.com/dd0wney/cluso-rbd/pkg/model"
)

func main() {
	showFormula := flag.Bool("formula", true, "Print the derivation formulas")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: rbd [-formula=false] <diagram.yaml>")
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "read diagram: %v\n", err)
		os.Exit(1)
	}

	var diagram model.Diagram
	if err := yaml.Unmarshal(data, &diagram); err != nil {
		fmt.Fprintf(os.Stderr, "parse diagram: %v\n", err)
		os.Exit(1)
	}

	result := engine.EvaluateSystem(diagram.Blocks, diagram.Connections)
	fmt.Printf("System reliability: %g\n", result.SystemReliability)

	for i, chain := range result.Details.Chains {
		fmt.Printf("  chain %d [%s]: %s -> %g\n",
			i+1, chain.Mode, strings.Join(chain.Blocks, ", "), chain.Reliability)
		if len(chain.Reserves) > 0 {
			fmt.Printf("    reserves: %s -> %g\n",
				strings.Join(chain.Reserves, ", "), chain.WithReserveReliability)
		}
	}
	for _, group := range result.Details.ParallelGroups {
		fmt.Printf("  parallel group: %s -> %g\n",
			strings.Join(group.Blocks, ", "), group.Reliability)
	}

	if *showFormula {
		formulas := engine.RenderFormula(diagram.Blocks, diagram.Connections)
		fmt.Println("General:    " + stripMarkup(formulas.General))
		fmt.Println("WithValues: " + stripMarkup(formulas.WithValues))
	}
}

// stripMarkup flattens the inline markup for terminal output
func stripMarkup(s string) string {
	replacer := strings.NewReplacer(
		"<sub>", "_", "</sub>", "",
		"<sup>", "^", "</sup>", "",
		"<br>", "\n            ",
	)
	return replacer.Replace(s)
}
