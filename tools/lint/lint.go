package main

import (
	"fmt"
	"os"
	"os/exec"
)

type step struct {
	name string
	cmd  string
	args []string
}

var steps = []step{
	{"go fmt", "go", []string{"fmt", "./..."}},
	{"go vet", "go", []string{"vet", "./..."}},
	{"golangci-lint", "golangci-lint", []string{"run", "./..."}},
	{"staticcheck", "staticcheck", []string{"./..."}},
	{"gofumpt", "gofumpt", []string{"-l", "-w", "."}},
}

func run(s step) error {
	command := exec.Command(s.cmd, s.args...)
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr
	if err := command.Run(); err != nil {
		return fmt.Errorf("error running %s %v: %v", s.cmd, s.args, err)
	}
	return nil
}

func main() {
	failed := false
	for _, s := range steps {
		fmt.Printf("Running %s...\n", s.name)
		if err := run(s); err != nil {
			fmt.Println(err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
	fmt.Println("All checks completed!")
}
