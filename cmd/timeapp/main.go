package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(0)
	loadDotEnv()
	prepareConsole(os.Args[1:])

	os.Exit(execute(os.Args[1:], os.Stdout))
}

// loadDotEnv reads .env from the working directory. Variables already set in
// the environment win.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("failed to load .env: %v", err)
	}
}

// exitError carries a process exit status out of a cobra command.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func execute(args []string, out io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(out)

	err := root.Execute()
	if err == nil {
		return 0
	}

	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	log.Printf("%v", err)
	return 1
}
