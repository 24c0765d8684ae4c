package zfs

type Ensure string

const (
	Present Ensure = "present"
	Absent  Ensure = "absent"
)

// UnavailableMarker is what zfs itself prints for an unset property. It is
// also used for properties the host does not support.
const UnavailableMarker = "-"

type Resource struct {
	Name       string            `yaml:"name"`
	Ensure     Ensure            `yaml:"ensure"`
	Properties map[string]string `yaml:"properties,omitempty"`
}

type PropertyValue struct {
	Value       string
	Unavailable bool
}

func Unavailable() PropertyValue {
	return PropertyValue{Unavailable: true}
}

func (v PropertyValue) String() string {
	if v.Unavailable {
		return UnavailableMarker
	}

	return v.Value
}
