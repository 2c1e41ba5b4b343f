// Command gai is the CLI entrypoint for the Group Assignment on Intervals
// decision procedure, per spec.md §6. It replaces original_source/src/
// main.c's bare `program <n_intervals>` with a cobra-based surface that
// additionally selects a solver strategy, instance family, RNG seed, and
// worker count.
package main

import "github.com/rettertyp/gai/cmd/gai/cmd"

func main() {
	cmd.Execute()
}
