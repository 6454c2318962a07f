package executors

import (
	"strings"

	"github.com/devlights/gomy/output"
)

// Dump prints every tuple the executor produces to stdout and returns how many
// there were. The executor is initialized here and reset afterwards.
func Dump(executor Executor) (int, error) {
	if err := executor.Init(); err != nil {
		return 0, err
	}
	count := 0
	for {
		t, state, err := executor.Next()
		if err != nil {
			return count, err
		}
		if state == EndOfStream {
			break
		}
		if state == Valid {
			output.Stdoutl(t.GetTableName(), strings.Join(t.ValueStrings(), ", "))
			count++
		}
	}
	return count, executor.Reset()
}
