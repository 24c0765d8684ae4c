package zfs

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"code.cloudfoundry.org/commandrunner"
	"code.cloudfoundry.org/lager/v3"
	errorspkg "github.com/pkg/errors"
)

//go:generate counterfeiter . MetricsEmitter

type MetricsEmitter interface {
	TryEmitDurationFrom(logger lager.Logger, name string, from time.Time)
}

// Provider manages zfs datasets and volumes through the zfs binary. It
// keeps no state: every call is answered by running zfs.
type Provider struct {
	zfsBin         string
	commandRunner  commandrunner.CommandRunner
	platform       Platform
	metricsEmitter MetricsEmitter
}

func NewProvider(zfsBin string, commandRunner commandrunner.CommandRunner, platform Platform, metricsEmitter MetricsEmitter) *Provider {
	return &Provider{
		zfsBin:         zfsBin,
		commandRunner:  commandRunner,
		platform:       platform,
		metricsEmitter: metricsEmitter,
	}
}

func (p *Provider) Instances(logger lager.Logger) ([]Resource, error) {
	logger = logger.Session("zfs-listing")
	logger.Info("starting")
	defer logger.Info("ending")

	output, err := p.run(logger, "list", "-H")
	if err != nil {
		logger.Error("listing-failed", err)
		return nil, err
	}

	resources := []Resource{}
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		resources = append(resources, Resource{Name: fields[0], Ensure: Present})
	}

	logger.Debug("listed-resources", lager.Data{"count": len(resources)})
	return resources, nil
}

// Exists treats any failure of `zfs list <name>` as the dataset being
// absent, including failures that have nothing to do with the dataset.
func (p *Provider) Exists(logger lager.Logger, name string) bool {
	logger = logger.Session("zfs-checking-existence", lager.Data{"name": name})
	logger.Debug("starting")
	defer logger.Debug("ending")

	if _, err := p.run(logger, "list", name); err != nil {
		logger.Info("dataset-not-found", lager.Data{"reason": err.Error()})
		return false
	}

	return true
}

func (p *Provider) Create(logger lager.Logger, resource Resource) error {
	logger = logger.Session("zfs-creating", lager.Data{"name": resource.Name})
	logger.Info("starting")
	defer logger.Info("ending")

	for name := range resource.Properties {
		if name != EnsureProperty && !IsKnownProperty(name) {
			logger.Debug("ignoring-unknown-property", lager.Data{"property": name})
		}
	}

	args := append([]string{"create"}, creationArgs(resource)...)
	args = append(args, resource.Name)

	if _, err := p.run(logger, args...); err != nil {
		logger.Error("creating-failed", err)
		return err
	}

	return nil
}

func creationArgs(resource Resource) []string {
	args := []string{}
	for _, property := range Properties {
		value := resource.Properties[property.Name]
		if value == "" {
			continue
		}

		if property.Category == Sized {
			args = append(args, "-V", value)
			continue
		}
		args = append(args, "-o", fmt.Sprintf("%s=%s", property.Name, value))
	}

	return args
}

func (p *Provider) Destroy(logger lager.Logger, name string) error {
	logger = logger.Session("zfs-destroying", lager.Data{"name": name})
	logger.Info("starting")
	defer logger.Info("ending")

	if _, err := p.run(logger, "destroy", name); err != nil {
		logger.Error("destroying-failed", err)
		return err
	}

	return nil
}

func (p *Provider) Get(logger lager.Logger, name, propertyName string) (PropertyValue, error) {
	logger = logger.Session("zfs-getting-property", lager.Data{"name": name, "property": propertyName})
	logger.Debug("starting")
	defer logger.Debug("ending")

	property, err := LookupProperty(propertyName)
	if err != nil {
		return PropertyValue{}, err
	}

	toolName, err := p.toolPropertyName(property)
	if err != nil {
		logger.Error("resolving-property-name-failed", err)
		return PropertyValue{}, err
	}

	output, err := p.run(logger, "get", "-H", "-o", "value", toolName, name)
	if err != nil {
		if property.Category == Fallible {
			logger.Info("property-unavailable", lager.Data{"reason": err.Error()})
			return Unavailable(), nil
		}

		logger.Error("getting-property-failed", err)
		return PropertyValue{}, err
	}

	return PropertyValue{Value: strings.TrimSpace(output)}, nil
}

func (p *Provider) Set(logger lager.Logger, name, propertyName, value string) (PropertyValue, error) {
	logger = logger.Session("zfs-setting-property", lager.Data{"name": name, "property": propertyName, "value": value})
	logger.Info("starting")
	defer logger.Info("ending")

	property, err := LookupProperty(propertyName)
	if err != nil {
		return PropertyValue{}, err
	}

	toolName, err := p.toolPropertyName(property)
	if err != nil {
		logger.Error("resolving-property-name-failed", err)
		return PropertyValue{}, err
	}

	if _, err := p.run(logger, "set", fmt.Sprintf("%s=%s", toolName, value), name); err != nil {
		if property.Category == Fallible {
			logger.Info("property-unavailable", lager.Data{"reason": err.Error()})
			return Unavailable(), nil
		}

		logger.Error("setting-property-failed", err)
		return PropertyValue{}, err
	}

	return PropertyValue{Value: value}, nil
}

// ToolPropertyName returns the name zfs knows the property by on this host.
func (p *Provider) ToolPropertyName(logger lager.Logger, propertyName string) (string, error) {
	logger = logger.Session("zfs-resolving-property-name", lager.Data{"property": propertyName})
	logger.Debug("starting")
	defer logger.Debug("ending")

	property, err := LookupProperty(propertyName)
	if err != nil {
		return "", err
	}

	toolName, err := p.toolPropertyName(property)
	if err != nil {
		logger.Error("resolving-property-name-failed", err)
		return "", err
	}

	logger.Debug("resolved", lager.Data{"toolName": toolName})
	return toolName, nil
}

func (p *Provider) toolPropertyName(property Property) (string, error) {
	if property.Category != Aliased {
		return property.Name, nil
	}

	platformName, err := p.platform.Name()
	if err != nil {
		return "", errorspkg.Wrap(err, "detecting platform")
	}

	// FreeBSD calls zoned jailed
	if strings.EqualFold(platformName, FreeBSD) {
		return JailedProperty, nil
	}

	return property.Name, nil
}

func (p *Provider) run(logger lager.Logger, args ...string) (string, error) {
	cmd := exec.Command(p.zfsBin, args...)
	stdoutBuffer := bytes.NewBuffer([]byte{})
	cmd.Stdout = stdoutBuffer
	stderrBuffer := bytes.NewBuffer([]byte{})
	cmd.Stderr = stderrBuffer

	logger.Debug("starting-zfs", lager.Data{"path": cmd.Path, "args": cmd.Args})
	defer p.metricsEmitter.TryEmitDurationFrom(logger, metricName(args[0]), time.Now())

	if err := p.commandRunner.Run(cmd); err != nil {
		return "", errorspkg.Wrapf(err, "zfs %s: %s", strings.Join(args, " "), strings.TrimSpace(stderrBuffer.String()))
	}

	return stdoutBuffer.String(), nil
}

func metricName(subcommand string) string {
	return fmt.Sprintf("ZFS%sTime", strings.ToUpper(subcommand[:1])+subcommand[1:])
}
