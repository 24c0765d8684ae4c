package zfs_test

import (
	"runtime"

	"code.cloudfoundry.org/zfsvol/zfs"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Platform", func() {
	Describe("StaticPlatform", func() {
		It("returns the pinned name", func() {
			name, err := zfs.StaticPlatform("FreeBSD").Name()
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(Equal(zfs.FreeBSD))
		})
	})

	Describe("HostPlatform", func() {
		It("returns the kernel name", func() {
			if runtime.GOOS != "linux" {
				Skip("only checked on linux")
			}

			name, err := zfs.NewHostPlatform().Name()
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(Equal("Linux"))
		})
	})
})
