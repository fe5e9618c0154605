// Command takuzu reads a board from a text file (rows of r, b, and .),
// validates it, and optionally solves it by deduction, printing the forced
// moves with the contradictions that justify them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"

	"svw.info/takuzu/internal/gridio"
	"svw.info/takuzu/internal/solver"
	"svw.info/takuzu/internal/validator"
)

func main() {
	dataPtr := flag.String("data", "", "filepath of input board")
	solvePtr := flag.Bool("solve", false, "derive forced moves after validating")
	provePtr := flag.Bool("explain", false, "print the contradiction behind each move")
	profPtr := flag.Bool("profile", false, "write a CPU profile")
	flag.Parse()

	if *profPtr {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	data, err := os.ReadFile(*dataPtr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	g, err := gridio.Parse(string(data))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if v := validator.Check(g); v != nil {
		fmt.Printf("invalid board: %s\n", v)
		os.Exit(2)
	}
	fmt.Println("board is valid")

	if !*solvePtr {
		fmt.Print(gridio.Render(g))
		return
	}

	sol, st, err := solver.NewDeductiveSolver().Solve(context.Background(), g)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for i, fm := range sol.Moves {
		if *provePtr {
			fmt.Printf("%2d. %s (else %s)\n", i+1, fm.Move, &fm.Because)
		} else {
			fmt.Printf("%2d. %s\n", i+1, fm.Move)
		}
	}
	fmt.Print(gridio.Render(sol.Grid))
	switch {
	case sol.Violation != nil:
		fmt.Printf("stopped on violation: %s\n", sol.Violation)
		os.Exit(2)
	case sol.Grid.Full():
		fmt.Printf("solved in %d moves (%d probes, %v)\n", len(sol.Moves), st.Probes, st.Duration)
	default:
		fmt.Printf("no more forced moves after %d (%d probes, %v)\n", len(sol.Moves), st.Probes, st.Duration)
	}
}
