package systemreporter // import "code.cloudfoundry.org/zfsvol/metrics/systemreporter"

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"code.cloudfoundry.org/commandrunner"
	"code.cloudfoundry.org/lager/v3"
)

// LogBased logs the state of the pools and the host when a zfs invocation
// took longer than the threshold. A threshold of zero disables it.
type LogBased struct {
	threshold time.Duration
	zpoolBin  string
	cmdRunner commandrunner.CommandRunner
}

func NewLogBased(threshold time.Duration, zpoolBin string, cmdRunner commandrunner.CommandRunner) *LogBased {
	return &LogBased{
		threshold: threshold,
		zpoolBin:  zpoolBin,
		cmdRunner: cmdRunner,
	}
}

func (r *LogBased) Report(logger lager.Logger, duration time.Duration) {
	if r.threshold <= 0 || duration < r.threshold {
		return
	}

	logger = logger.Session("system-reporter", lager.Data{"duration": duration})
	report := Report{
		ZpoolStatus:       r.execute(r.zpoolBin, "status", "-x"),
		ZpoolIoStat:       r.execute(r.zpoolBin, "iostat", "-v"),
		Dmesg:             r.tailEntries(100, r.execute("dmesg")),
		TopProcessesByCPU: r.topEntries(10, r.execute("ps", "-aux", "--sort", "-pcpu")),
		VmStat:            r.execute("vmstat"),
		IoStat:            r.execute("iostat", "-xzp"),
	}

	logger.Info("threshold-reached", lager.Data{"report": report})
}

func (r *LogBased) execute(name string, args ...string) string {
	buffer := bytes.NewBuffer([]byte{})
	cmd := exec.Command(name, args...)
	cmd.Stdout = buffer
	cmd.Stderr = buffer

	if err := r.cmdRunner.Run(cmd); err != nil {
		return fmt.Sprintf("Failed to fetch %s %v: %s", name, args, buffer.String())
	}

	return buffer.String()
}

func (r *LogBased) tailEntries(n int, entries string) string {
	allEntries := strings.Split(entries, "\n")
	if n > len(allEntries) {
		return entries
	}

	return strings.Join(allEntries[len(allEntries)-n:], "\n")
}

func (r *LogBased) topEntries(n int, entries string) string {
	allEntries := strings.Split(entries, "\n")
	if n > len(allEntries) {
		return entries
	}

	return strings.Join(allEntries[:n], "\n")
}
