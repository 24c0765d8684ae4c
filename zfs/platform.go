package zfs

//go:generate counterfeiter . Platform

// Platform reports the host operating system name, as printed by uname -s.
type Platform interface {
	Name() (string, error)
}

const FreeBSD = "FreeBSD"

// StaticPlatform pins the platform name instead of asking the host.
type StaticPlatform string

func (p StaticPlatform) Name() (string, error) {
	return string(p), nil
}

type HostPlatform struct{}

func NewHostPlatform() *HostPlatform {
	return &HostPlatform{}
}

func (p *HostPlatform) Name() (string, error) {
	return hostPlatformName()
}
