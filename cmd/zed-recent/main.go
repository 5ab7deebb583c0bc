package main

import (
	"os"

	"zed-recent/internal/cli"
)

// modeFlag is only recognized as the first argument.
const modeFlag = "--dirs"

// rewriteQueryArgs pins the launcher's invocation shape, "[--dirs] [query]".
// The launcher passes the user's text verbatim, so everything after the
// optional mode flag is positional, even "-h" or "--pretty". Output options
// are reachable through the environment instead.
func rewriteQueryArgs(argv []string) []string {
	if len(argv) == 0 {
		return argv
	}

	head := 1
	if len(argv) > 1 && argv[1] == modeFlag {
		head = 2
	}

	out := make([]string, 0, len(argv)+1)
	out = append(out, argv[:head]...)
	out = append(out, "--")
	out = append(out, argv[head:]...)
	return out
}

func main() {
	os.Args = rewriteQueryArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
