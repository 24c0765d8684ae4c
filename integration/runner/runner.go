package runner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"os/exec"
	"strings"
	"time"

	"code.cloudfoundry.org/lager/v3"
)

type Runner struct {
	ZfsvolBin  string
	ZFSBin     string
	ZpoolBin   string
	ConfigPath string
	Platform   string
	Env        []string

	LogLevelSet bool
	LogLevel    lager.LogLevel
	LogFile     string
	MetronHost  net.IP
	MetronPort  uint16

	Stdout io.Writer
	Stderr io.Writer

	Timeout time.Duration
}

func (r Runner) WithZFSBin(zfsBin string) Runner {
	nr := r
	nr.ZFSBin = zfsBin
	return nr
}

func (r Runner) WithPlatform(platform string) Runner {
	nr := r
	nr.Platform = platform
	return nr
}

func (r Runner) WithEnv(env ...string) Runner {
	nr := r
	nr.Env = append(append([]string{}, r.Env...), env...)
	return nr
}

func (r Runner) WithMetronEndpoint(host net.IP, port uint16) Runner {
	nr := r
	nr.MetronHost = host
	nr.MetronPort = port
	return nr
}

func (r Runner) WithLogLevel(level lager.LogLevel) Runner {
	nr := r
	nr.LogLevel = level
	nr.LogLevelSet = true
	return nr
}

func (r Runner) WithoutLogLevel() Runner {
	nr := r
	nr.LogLevelSet = false
	return nr
}

func (r Runner) WithLogFile(path string) Runner {
	nr := r
	nr.LogFile = path
	return nr
}

func (r Runner) WithStdout(stdout io.Writer) Runner {
	nr := r
	nr.Stdout = stdout
	return nr
}

func (r Runner) WithStderr(stderr io.Writer) Runner {
	nr := r
	nr.Stderr = stderr
	return nr
}

func (r Runner) WithConfig(path string) Runner {
	nr := r
	nr.ConfigPath = path
	return nr
}

// RunSubcommand returns the trimmed stdout. When the command fails the
// error carries the last line zfsvol wrote to stderr.
func (r Runner) RunSubcommand(subcommand string, args ...string) (string, error) {
	stdoutBuffer := bytes.NewBuffer([]byte{})
	var stdout io.Writer = stdoutBuffer
	if r.Stdout != nil {
		stdout = io.MultiWriter(r.Stdout, stdoutBuffer)
	}

	stderrBuffer := bytes.NewBuffer([]byte{})
	var stderr io.Writer = stderrBuffer
	if r.Stderr != nil {
		stderr = io.MultiWriter(r.Stderr, stderrBuffer)
	}

	cmd := r.makeCmd(subcommand, args)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if runErr := r.runCmd(cmd); runErr != nil {
		errStr := fmt.Sprintf("command exited with %s", runErr)
		if lastLine := lastLine(stderrBuffer.String()); lastLine != "" {
			errStr = lastLine
		}

		return strings.TrimSpace(stdoutBuffer.String()), errors.New(errStr)
	}

	return strings.TrimSpace(stdoutBuffer.String()), nil
}

func (r Runner) runCmd(cmd *exec.Cmd) error {
	if r.Timeout == 0 {
		return cmd.Run()
	}

	errChan := make(chan error)
	go func() {
		errChan <- cmd.Run()
		close(errChan)
	}()

	select {
	case runErr := <-errChan:
		return runErr

	case <-time.After(r.Timeout):
		return fmt.Errorf("command took more than %f seconds to finish", r.Timeout.Seconds())
	}
}

func (r Runner) makeCmd(subcommand string, args []string) *exec.Cmd {
	allArgs := []string{}
	if r.LogLevelSet {
		allArgs = append(allArgs, "--log-level", r.logLevel(r.LogLevel))
	}
	if r.LogFile != "" {
		allArgs = append(allArgs, "--log-file", r.LogFile)
	}
	if r.ZFSBin != "" {
		allArgs = append(allArgs, "--zfs-bin", r.ZFSBin)
	}
	if r.ZpoolBin != "" {
		allArgs = append(allArgs, "--zpool-bin", r.ZpoolBin)
	}
	if r.Platform != "" {
		allArgs = append(allArgs, "--platform", r.Platform)
	}
	if r.MetronHost != nil && r.MetronPort != 0 {
		metronEndpoint := fmt.Sprintf("%s:%d", r.MetronHost.String(), r.MetronPort)
		allArgs = append(allArgs, "--metron-endpoint", metronEndpoint)
	}
	if r.ConfigPath != "" {
		allArgs = append(allArgs, "--config", r.ConfigPath)
	}

	allArgs = append(allArgs, subcommand)
	allArgs = append(allArgs, args...)

	cmd := exec.Command(r.ZfsvolBin, allArgs...)
	if len(r.Env) > 0 {
		cmd.Env = append(cmd.Environ(), r.Env...)
	}

	return cmd
}

func (r Runner) logLevel(ll lager.LogLevel) string {
	switch ll {
	case lager.DEBUG:
		return "debug"
	case lager.INFO:
		return "info"
	case lager.FATAL:
		return "fatal"
	default:
		return "error"
	}
}

func lastLine(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
