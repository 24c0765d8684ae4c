package runner

import (
	"fmt"
	"strings"

	"code.cloudfoundry.org/zfsvol/zfs"
)

func (r Runner) List() ([]string, error) {
	output, err := r.RunSubcommand("list")
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, line := range strings.Split(output, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			names = append(names, line)
		}
	}

	return names, nil
}

func (r Runner) Exists(name string) (bool, error) {
	output, err := r.RunSubcommand("exists", name)
	if err != nil {
		return false, err
	}

	return output == "true", nil
}

func (r Runner) Create(resource zfs.Resource) error {
	args := []string{}
	for property, value := range resource.Properties {
		if property == zfs.VolSizeProperty {
			args = append(args, "--volsize", value)
			continue
		}
		args = append(args, "--property", fmt.Sprintf("%s=%s", property, value))
	}
	args = append(args, resource.Name)

	_, err := r.RunSubcommand("create", args...)
	return err
}

func (r Runner) Destroy(name string) error {
	_, err := r.RunSubcommand("destroy", name)
	return err
}

func (r Runner) Get(name, property string) (string, error) {
	return r.RunSubcommand("get", name, property)
}

func (r Runner) Resolve(name, property string) (string, error) {
	return r.RunSubcommand("get", "--resolve", name, property)
}

func (r Runner) Set(name, property, value string) (string, error) {
	return r.RunSubcommand("set", name, fmt.Sprintf("%s=%s", property, value))
}

func (r Runner) Apply(manifestPath string) (string, error) {
	return r.RunSubcommand("apply", manifestPath)
}
