package zfs // import "code.cloudfoundry.org/zfsvol/zfs"

import (
	errorspkg "github.com/pkg/errors"
)

type Category int

const (
	// Standard properties propagate every zfs failure.
	Standard Category = iota
	// Fallible properties only exist on some platforms or zfs versions.
	// Failures reading or writing them are reported as Unavailable.
	Fallible
	// Sized is volsize: given to create as -V instead of -o.
	Sized
	// Aliased properties have a tool-level name that depends on the host
	// platform.
	Aliased
)

const (
	VolSizeProperty = "volsize"
	ZonedProperty   = "zoned"
	JailedProperty  = "jailed"

	EnsureProperty = "ensure"
)

type Property struct {
	Name     string
	Category Category
}

// Properties is ordered. The order decides the position of flags in the
// create command line.
var Properties = []Property{
	{Name: "aclinherit", Category: Standard},
	{Name: "aclmode", Category: Fallible},
	{Name: "acltype", Category: Fallible},
	{Name: "atime", Category: Standard},
	{Name: "canmount", Category: Standard},
	{Name: "checksum", Category: Standard},
	{Name: "compression", Category: Standard},
	{Name: "copies", Category: Standard},
	{Name: "dedup", Category: Standard},
	{Name: "devices", Category: Standard},
	{Name: "exec", Category: Standard},
	{Name: "logbias", Category: Standard},
	{Name: "mountpoint", Category: Standard},
	{Name: "nbmand", Category: Standard},
	{Name: "overlay", Category: Fallible},
	{Name: "primarycache", Category: Standard},
	{Name: "quota", Category: Standard},
	{Name: "readonly", Category: Standard},
	{Name: "recordsize", Category: Standard},
	{Name: "refquota", Category: Standard},
	{Name: "refreservation", Category: Standard},
	{Name: "relatime", Category: Standard},
	{Name: "reservation", Category: Standard},
	{Name: "secondarycache", Category: Standard},
	{Name: "setuid", Category: Standard},
	{Name: "shareiscsi", Category: Fallible},
	{Name: "sharenfs", Category: Standard},
	{Name: "sharesmb", Category: Standard},
	{Name: "snapdir", Category: Standard},
	{Name: "sync", Category: Standard},
	{Name: "version", Category: Standard},
	{Name: VolSizeProperty, Category: Sized},
	{Name: "vscan", Category: Standard},
	{Name: "xattr", Category: Standard},
	{Name: ZonedProperty, Category: Aliased},
}

var propertiesByName = func() map[string]Property {
	byName := make(map[string]Property, len(Properties))
	for _, property := range Properties {
		byName[property.Name] = property
	}
	return byName
}()

func LookupProperty(name string) (Property, error) {
	property, ok := propertiesByName[name]
	if !ok {
		return Property{}, errorspkg.Errorf("unknown property `%s`", name)
	}

	return property, nil
}

func IsKnownProperty(name string) bool {
	_, ok := propertiesByName[name]
	return ok
}
