package main

import (
	"fmt"
	"os"

	"github.com/basketeer/basketeer/internal/cmd"
	"github.com/basketeer/basketeer/internal/errors"
	"github.com/basketeer/basketeer/internal/exitcode"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errors.UserMessage(err))
		exitcode.Exit(exitcode.FromError(err))
	}
}
