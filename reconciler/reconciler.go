package reconciler // import "code.cloudfoundry.org/zfsvol/reconciler"

import (
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/zfsvol/zfs"
	errorspkg "github.com/pkg/errors"
)

//go:generate counterfeiter . VolumeProvider

type VolumeProvider interface {
	Exists(logger lager.Logger, name string) bool
	Create(logger lager.Logger, resource zfs.Resource) error
	Destroy(logger lager.Logger, name string) error
	Get(logger lager.Logger, name, property string) (zfs.PropertyValue, error)
	Set(logger lager.Logger, name, property, value string) (zfs.PropertyValue, error)
}

type Action string

const (
	Created   Action = "created"
	Destroyed Action = "destroyed"
	Updated   Action = "updated"
	Unchanged Action = "unchanged"
)

type PropertyChange struct {
	Property    string
	From        string
	To          string
	Unavailable bool
}

type Report struct {
	Name    string
	Action  Action
	Changes []PropertyChange
}

type Reconciler struct {
	provider VolumeProvider
}

func New(provider VolumeProvider) *Reconciler {
	return &Reconciler{
		provider: provider,
	}
}

// Apply brings one resource to its desired state using the fewest provider
// calls: nothing is written when the current value already matches.
func (r *Reconciler) Apply(logger lager.Logger, desired zfs.Resource) (Report, error) {
	logger = logger.Session("applying", lager.Data{"name": desired.Name, "ensure": desired.Ensure})
	logger.Info("starting")
	defer logger.Info("ending")

	report := Report{Name: desired.Name, Action: Unchanged}
	exists := r.provider.Exists(logger, desired.Name)

	switch {
	case desired.Ensure == zfs.Absent:
		if exists {
			if err := r.provider.Destroy(logger, desired.Name); err != nil {
				return report, errorspkg.Wrapf(err, "destroying %s", desired.Name)
			}
			report.Action = Destroyed
		}

	case !exists:
		if err := r.provider.Create(logger, desired); err != nil {
			return report, errorspkg.Wrapf(err, "creating %s", desired.Name)
		}
		report.Action = Created

	default:
		changes, err := r.syncProperties(logger, desired)
		if err != nil {
			return report, errorspkg.Wrapf(err, "updating %s", desired.Name)
		}

		report.Changes = changes
		for _, change := range changes {
			if !change.Unavailable {
				report.Action = Updated
			}
		}
	}

	logger.Debug("applied", lager.Data{"action": report.Action, "changes": report.Changes})
	return report, nil
}

func (r *Reconciler) syncProperties(logger lager.Logger, desired zfs.Resource) ([]PropertyChange, error) {
	changes := []PropertyChange{}

	for _, property := range zfs.Properties {
		want := desired.Properties[property.Name]
		if want == "" {
			continue
		}

		current, err := r.provider.Get(logger, desired.Name, property.Name)
		if err != nil {
			return nil, err
		}

		if current.String() == want {
			continue
		}

		written, err := r.provider.Set(logger, desired.Name, property.Name, want)
		if err != nil {
			return nil, err
		}

		changes = append(changes, PropertyChange{
			Property:    property.Name,
			From:        current.String(),
			To:          written.String(),
			Unavailable: written.Unavailable,
		})
	}

	return changes, nil
}
