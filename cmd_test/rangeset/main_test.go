package rangeset

import (
	"flag"
	"testing"

	"github.com/google/go-cmdtest"

	"github.com/vipcxj/rangeset/cmd"
)

var update = flag.Bool("update", false, "update test files with results")

func TestCLI(t *testing.T) {
	ts, err := cmdtest.Read("testdata")
	if err != nil {
		t.Fatal(err)
	}
	ts.Commands["rangeset"] = cmdtest.InProcessProgram("rangeset", cmd.Execute)
	ts.Run(t, *update)
}
