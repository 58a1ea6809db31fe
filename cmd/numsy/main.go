package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/xCirno1/numsy/solver"
)

func main() {
	args := os.Args[1:]

	if len(args) > 0 {
		failed := false
		for _, problem := range args {
			if err := run(problem); err != nil {
				fmt.Fprintln(os.Stderr, err)
				failed = true
			}
		}
		if failed {
			os.Exit(1)
		}
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := run(line); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

func run(problem string) error {
	answer, err := solver.Solve(problem)
	if err != nil {
		return err
	}

	switch a := answer.(type) {
	case solver.Numeric:
		fmt.Printf("= %g\n", a.Value)
	case solver.Solution:
		fmt.Printf("%s = %g\n", a.Variable, a.Value)
	}
	return nil
}
