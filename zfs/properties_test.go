package zfs_test

import (
	"code.cloudfoundry.org/zfsvol/zfs"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Properties", func() {
	DescribeTable("categories",
		func(name string, category zfs.Category) {
			property, err := zfs.LookupProperty(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(property.Category).To(Equal(category))
		},
		Entry("volsize is sized", "volsize", zfs.Sized),
		Entry("zoned is aliased", "zoned", zfs.Aliased),
		Entry("aclmode is fallible", "aclmode", zfs.Fallible),
		Entry("acltype is fallible", "acltype", zfs.Fallible),
		Entry("shareiscsi is fallible", "shareiscsi", zfs.Fallible),
		Entry("overlay is fallible", "overlay", zfs.Fallible),
		Entry("compression is standard", "compression", zfs.Standard),
		Entry("mountpoint is standard", "mountpoint", zfs.Standard),
	)

	It("does not know ensure", func() {
		Expect(zfs.IsKnownProperty("ensure")).To(BeFalse())
	})

	It("lists every property once", func() {
		seen := map[string]bool{}
		for _, property := range zfs.Properties {
			Expect(seen).NotTo(HaveKey(property.Name))
			seen[property.Name] = true
		}
		Expect(seen).To(HaveLen(35))
	})
})
