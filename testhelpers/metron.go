package testhelpers

import (
	"fmt"
	"net"
	"sync"

	"github.com/cloudfoundry/dropsonde/dropsonde_unmarshaller"
	"github.com/cloudfoundry/sonde-go/events"
)

// FakeMetron collects the value metrics sent to it over UDP.
type FakeMetron struct {
	port         uint16
	connection   net.PacketConn
	unmarshaller *dropsonde_unmarshaller.DropsondeUnmarshaller
	valueMetrics map[string][]events.ValueMetric
	stopped      bool
	mtx          sync.RWMutex
}

func NewFakeMetron(port uint16) *FakeMetron {
	return &FakeMetron{
		port:         port,
		unmarshaller: dropsonde_unmarshaller.NewDropsondeUnmarshaller(nil),
		valueMetrics: make(map[string][]events.ValueMetric),
	}
}

func (m *FakeMetron) Endpoint() string {
	return fmt.Sprintf("127.0.0.1:%d", m.port)
}

func (m *FakeMetron) Listen() error {
	connection, err := net.ListenPacket("udp4", fmt.Sprintf("localhost:%d", m.port))
	if err != nil {
		return err
	}
	m.connection = connection

	return nil
}

func (m *FakeMetron) Run() error {
	readBuffer := make([]byte, 65535)
	for {
		readCount, _, err := m.connection.ReadFrom(readBuffer)
		if err != nil && m.isStopped() {
			return nil
		}
		if err != nil {
			return err
		}

		envelope, err := m.unmarshaller.UnmarshallMessage(readBuffer[:readCount])
		if err != nil {
			return err
		}

		if envelope.GetEventType() != events.Envelope_ValueMetric {
			continue
		}

		m.mtx.Lock()
		metric := *envelope.ValueMetric
		m.valueMetrics[metric.GetName()] = append(m.valueMetrics[metric.GetName()], metric)
		m.mtx.Unlock()
	}
}

func (m *FakeMetron) isStopped() bool {
	m.mtx.RLock()
	defer m.mtx.RUnlock()
	return m.stopped
}

func (m *FakeMetron) Stop() error {
	m.mtx.Lock()
	m.stopped = true
	m.mtx.Unlock()

	return m.connection.Close()
}

func (m *FakeMetron) ValueMetricsFor(name string) []events.ValueMetric {
	m.mtx.RLock()
	defer m.mtx.RUnlock()

	metrics, ok := m.valueMetrics[name]
	if !ok {
		return []events.ValueMetric{}
	}

	return metrics
}
