package main

import (
	"os"

	"github.com/vipcxj/rangeset/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
