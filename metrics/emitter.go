package metrics // import "code.cloudfoundry.org/zfsvol/metrics"

import (
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/cloudfoundry/dropsonde"
	"github.com/cloudfoundry/dropsonde/metrics"
)

const dropsondeOrigin = "zfsvol"

//go:generate counterfeiter . SystemReporter

type SystemReporter interface {
	Report(logger lager.Logger, duration time.Duration)
}

type Emitter struct {
	send           bool
	systemReporter SystemReporter
}

// NewEmitter only sends metrics when a metron endpoint is given. The system
// reporter is consulted for every duration either way.
func NewEmitter(metronEndpoint string, systemReporter SystemReporter) (*Emitter, error) {
	if metronEndpoint != "" {
		if err := dropsonde.Initialize(metronEndpoint, dropsondeOrigin); err != nil {
			return nil, err
		}
	}

	return &Emitter{
		send:           metronEndpoint != "",
		systemReporter: systemReporter,
	}, nil
}

func (e *Emitter) EmitDuration(name string, duration time.Duration) error {
	if !e.send {
		return nil
	}

	return metrics.SendValue(name, float64(duration), "nanos")
}

func (e *Emitter) TryEmitDurationFrom(logger lager.Logger, name string, from time.Time) {
	duration := time.Since(from)

	if err := e.EmitDuration(name, duration); err != nil {
		logger.Error("failed-to-emit-metric", err, lager.Data{"metric": name})
	}

	e.systemReporter.Report(logger, duration)
}
