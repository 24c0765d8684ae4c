package manifest // import "code.cloudfoundry.org/zfsvol/manifest"

import (
	"os"
	"sort"

	"code.cloudfoundry.org/zfsvol/zfs"
	units "github.com/docker/go-units"
	errorspkg "github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

type Manifest struct {
	Volumes []zfs.Resource `yaml:"volumes"`
}

func Load(manifestPath string) (Manifest, error) {
	contents, err := os.ReadFile(manifestPath)
	if err != nil {
		return Manifest{}, errorspkg.Wrap(err, "invalid manifest path")
	}

	return Parse(contents)
}

func Parse(contents []byte) (Manifest, error) {
	var manifest Manifest
	if err := yaml.UnmarshalStrict(contents, &manifest); err != nil {
		return Manifest{}, errorspkg.Wrap(err, "invalid manifest file")
	}

	for i := range manifest.Volumes {
		if manifest.Volumes[i].Ensure == "" {
			manifest.Volumes[i].Ensure = zfs.Present
		}

		if err := Validate(manifest.Volumes[i]); err != nil {
			return Manifest{}, errorspkg.Wrapf(err, "volume %d", i)
		}
	}

	return manifest, nil
}

func Validate(resource zfs.Resource) error {
	if resource.Name == "" {
		return errorspkg.New("name is required")
	}

	if resource.Ensure != zfs.Present && resource.Ensure != zfs.Absent {
		return errorspkg.Errorf("%s: invalid ensure `%s`", resource.Name, resource.Ensure)
	}

	names := make([]string, 0, len(resource.Properties))
	for name := range resource.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !zfs.IsKnownProperty(name) {
			return errorspkg.Errorf("%s: unknown property `%s`", resource.Name, name)
		}
	}

	if volsize := resource.Properties[zfs.VolSizeProperty]; volsize != "" {
		if _, err := units.RAMInBytes(volsize); err != nil {
			return errorspkg.Wrapf(err, "%s: invalid volsize", resource.Name)
		}
	}

	return nil
}
