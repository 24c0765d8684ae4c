//go:build unix

package zfs

import (
	errorspkg "github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

func hostPlatformName() (string, error) {
	var utsname unix.Utsname
	if err := unix.Uname(&utsname); err != nil {
		return "", errorspkg.Wrap(err, "uname")
	}

	return unix.ByteSliceToString(utsname.Sysname[:]), nil
}
