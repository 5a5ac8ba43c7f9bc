package main

import (
	"fmt"
	"os"

	"github.com/temirov/lunara/cmd/cli"
)

const (
	exitErrorTemplateConstant = "%v\n"
)

// main executes the lunara command-line application and exits with the code its outcome maps to.
func main() {
	executionError := cli.Execute()
	if executionError != nil {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
	}
	os.Exit(cli.ExitCodeFor(executionError))
}
