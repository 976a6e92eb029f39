package main

import (
	"log"

	"github.com/bootstrapp/bootstrapp/cli/cmd"
	"github.com/bootstrapp/bootstrapp/cli/util"
	"github.com/bootstrapp/bootstrapp/cli/version"
)

func main() {
	defer func() {
		// In case the program panics, recover captures the value given
		// to panic and resumes normal execution (handling the error
		// below).
		if r := recover(); r != nil {
			log.Fatalf("%s", util.InternalError("Unhandled internal error: %s",
				version.GetVersion, r))
		}
	}()

	cmd.Execute()
}
