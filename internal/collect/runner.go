package collect

import (
	"context"
	"time"

	sh "github.com/codeskyblue/go-sh"
)

// Runner executes external probe tools. It exists so collectors that shell
// out (smartctl, lsusb) can be exercised against canned output in tests.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) (string, error)
}

const defaultCommandTimeout = 15 * time.Second

// shellRunner runs tools through a go-sh session with a fixed timeout.
type shellRunner struct {
	timeout time.Duration
}

func newShellRunner() *shellRunner {
	return &shellRunner{timeout: defaultCommandTimeout}
}

func (r *shellRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sess := sh.NewSession()
	sess.SetTimeout(r.timeout)

	cmdArgs := make([]interface{}, 0, len(args))
	for _, a := range args {
		cmdArgs = append(cmdArgs, a)
	}

	out, err := sess.Command(name, cmdArgs...).Output()
	return string(out), err
}
