package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Command like exec.Cmd, but with support:
// - parent context cancellation
// - io.Closer interface
// - Wait from multiple places
type Command struct {
	*exec.Cmd
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

var ErrEmptyCommand = errors.New("shell: empty command")

func NewCommand(ctx context.Context, s string) (*Command, error) {
	args := QuoteSplit(s)
	if len(args) == 0 {
		return nil, ErrEmptyCommand
	}

	ctx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.SysProcAttr = procAttr
	return &Command{Cmd: cmd, ctx: ctx, cancel: cancel, done: make(chan struct{})}, nil
}

func (c *Command) Start() error {
	if err := c.Cmd.Start(); err != nil {
		c.cancel()
		return err
	}

	go func() {
		c.err = c.Cmd.Wait()
		close(c.done)
		c.cancel() // release context resources
	}()

	return nil
}

func (c *Command) Wait() error {
	<-c.done
	return c.err
}

func (c *Command) Run() error {
	if err := c.Start(); err != nil {
		return err
	}
	return c.Wait()
}

// Output runs command and returns its stdout, stderr goes to the error text
func (c *Command) Output() ([]byte, error) {
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		if s := bytes.TrimSpace(stderr.Bytes()); len(s) > 0 {
			return nil, errors.New(err.Error() + ": " + string(s))
		}
		return nil, err
	}

	return stdout.Bytes(), nil
}

func (c *Command) Close() error {
	c.cancel()
	return nil
}
