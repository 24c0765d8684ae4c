package integration_test

import (
	"code.cloudfoundry.org/zfsvol/testhelpers"
	"code.cloudfoundry.org/zfsvol/zfs"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Volumes", func() {
	var name string

	BeforeEach(func() {
		name = testhelpers.NewRandomDatasetName("tank")
	})

	Describe("list", func() {
		It("prints nothing when there are no datasets", func() {
			names, err := Runner.List()
			Expect(err).NotTo(HaveOccurred())
			Expect(names).To(BeEmpty())
		})

		It("prints every dataset", func() {
			Expect(Runner.Create(zfs.Resource{Name: "tank/a"})).To(Succeed())
			Expect(Runner.Create(zfs.Resource{Name: "tank/b"})).To(Succeed())

			names, err := Runner.List()
			Expect(err).NotTo(HaveOccurred())
			Expect(names).To(ConsistOf("tank/a", "tank/b"))
		})

		It("agrees with exists", func() {
			Expect(Runner.Create(zfs.Resource{Name: name})).To(Succeed())

			names, err := Runner.List()
			Expect(err).NotTo(HaveOccurred())
			for _, listed := range names {
				Expect(Runner.Exists(listed)).To(BeTrue())
			}
		})
	})

	Describe("exists", func() {
		It("prints false for a missing dataset and exits zero", func() {
			Expect(Runner.Exists(name)).To(BeFalse())
		})

		It("prints true once the dataset is created", func() {
			Expect(Runner.Create(zfs.Resource{Name: name})).To(Succeed())
			Expect(Runner.Exists(name)).To(BeTrue())
		})

		It("fails when no name is given", func() {
			_, err := Runner.RunSubcommand("exists")
			Expect(err).To(MatchError(ContainSubstring("invalid arguments")))
		})
	})

	Describe("create", func() {
		It("passes the volsize and properties to zfs", func() {
			Expect(Runner.Create(zfs.Resource{
				Name: name,
				Properties: map[string]string{
					"volsize":     "10G",
					"compression": "lz4",
				},
			})).To(Succeed())

			calls := testhelpers.FakeZFSCalls(StateDir)
			Expect(calls).To(ContainElement("create -o compression=lz4 -V 10G " + name))
		})

		It("fails when the dataset already exists", func() {
			Expect(Runner.Create(zfs.Resource{Name: name})).To(Succeed())

			err := Runner.Create(zfs.Resource{Name: name})
			Expect(err).To(MatchError(ContainSubstring("dataset already exists")))
		})

		It("rejects unknown properties before running zfs", func() {
			_, err := Runner.RunSubcommand("create", "--property", "colour=blue", name)
			Expect(err).To(MatchError(ContainSubstring("unknown property `colour`")))
			Expect(testhelpers.FakeZFSCalls(StateDir)).To(BeEmpty())
		})

		It("rejects a malformed volsize", func() {
			_, err := Runner.RunSubcommand("create", "--volsize", "lots", name)
			Expect(err).To(MatchError(ContainSubstring("invalid volsize")))
		})
	})

	Describe("destroy", func() {
		It("removes the dataset", func() {
			Expect(Runner.Create(zfs.Resource{Name: name})).To(Succeed())
			Expect(Runner.Destroy(name)).To(Succeed())
			Expect(Runner.Exists(name)).To(BeFalse())
		})

		It("fails when the dataset does not exist", func() {
			err := Runner.Destroy(name)
			Expect(err).To(MatchError(ContainSubstring("dataset does not exist")))
		})
	})

	Describe("get and set", func() {
		BeforeEach(func() {
			Expect(Runner.Create(zfs.Resource{Name: name})).To(Succeed())
		})

		It("reads back the value that was set", func() {
			_, err := Runner.Set(name, "compression", "gzip")
			Expect(err).NotTo(HaveOccurred())

			value, err := Runner.Get(name, "compression")
			Expect(err).NotTo(HaveOccurred())
			Expect(value).To(Equal("gzip"))
		})

		It("fails for an unknown property", func() {
			_, err := Runner.Get(name, "colour")
			Expect(err).To(MatchError(ContainSubstring("unknown property `colour`")))
		})

		Context("when the host does not support a fallible property", func() {
			BeforeEach(func() {
				Runner = Runner.WithEnv(testhelpers.FakeZFSUnsupportedEnv + "=acltype")
			})

			It("prints the unavailable marker instead of failing", func() {
				value, err := Runner.Get(name, "acltype")
				Expect(err).NotTo(HaveOccurred())
				Expect(value).To(Equal("-"))

				output, err := Runner.Set(name, "acltype", "posixacl")
				Expect(err).NotTo(HaveOccurred())
				Expect(output).To(Equal("-"))
			})
		})

		Context("when the host does not support a standard property", func() {
			BeforeEach(func() {
				Runner = Runner.WithEnv(testhelpers.FakeZFSUnsupportedEnv + "=dedup")
			})

			It("fails", func() {
				_, err := Runner.Get(name, "dedup")
				Expect(err).To(MatchError(ContainSubstring("invalid property 'dedup'")))
			})
		})

		Context("when the platform is FreeBSD", func() {
			BeforeEach(func() {
				Runner = Runner.WithPlatform("FreeBSD")
			})

			It("uses jailed for zoned", func() {
				_, err := Runner.Set(name, "zoned", "on")
				Expect(err).NotTo(HaveOccurred())

				Expect(testhelpers.FakeZFSCalls(StateDir)).To(ContainElement("set jailed=on " + name))
			})
		})

		Describe("get --resolve", func() {
			It("prints jailed for zoned on FreeBSD without running zfs", func() {
				callsBefore := len(testhelpers.FakeZFSCalls(StateDir))

				toolName, err := Runner.WithPlatform("FreeBSD").Resolve(name, "zoned")
				Expect(err).NotTo(HaveOccurred())
				Expect(toolName).To(Equal("jailed"))
				Expect(testhelpers.FakeZFSCalls(StateDir)).To(HaveLen(callsBefore))
			})

			It("prints zoned on Linux", func() {
				toolName, err := Runner.WithPlatform("Linux").Resolve(name, "zoned")
				Expect(err).NotTo(HaveOccurred())
				Expect(toolName).To(Equal("zoned"))
			})

			It("prints other properties unchanged", func() {
				toolName, err := Runner.WithPlatform("FreeBSD").Resolve(name, "compression")
				Expect(err).NotTo(HaveOccurred())
				Expect(toolName).To(Equal("compression"))
			})

			It("fails for an unknown property", func() {
				_, err := Runner.Resolve(name, "colour")
				Expect(err).To(MatchError(ContainSubstring("unknown property `colour`")))
			})
		})

		Context("when the platform is lower case freebsd", func() {
			BeforeEach(func() {
				Runner = Runner.WithPlatform("freebsd")
			})

			It("still uses jailed for zoned", func() {
				_, err := Runner.Set(name, "zoned", "on")
				Expect(err).NotTo(HaveOccurred())

				Expect(testhelpers.FakeZFSCalls(StateDir)).To(ContainElement("set jailed=on " + name))
			})
		})

		Context("when the platform is Linux", func() {
			It("uses zoned", func() {
				_, err := Runner.Set(name, "zoned", "on")
				Expect(err).NotTo(HaveOccurred())

				Expect(testhelpers.FakeZFSCalls(StateDir)).To(ContainElement("set zoned=on " + name))
			})
		})
	})
})
