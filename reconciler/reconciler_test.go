package reconciler_test

import (
	"errors"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"code.cloudfoundry.org/zfsvol/reconciler"
	"code.cloudfoundry.org/zfsvol/reconciler/reconcilerfakes"
	"code.cloudfoundry.org/zfsvol/zfs"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Reconciler", func() {
	var (
		fakeProvider *reconcilerfakes.FakeVolumeProvider
		logger       *lagertest.TestLogger
		desired      zfs.Resource
		rec          *reconciler.Reconciler
	)

	BeforeEach(func() {
		fakeProvider = new(reconcilerfakes.FakeVolumeProvider)
		logger = lagertest.NewTestLogger("reconciler")
		desired = zfs.Resource{
			Name:   "tank/vol0",
			Ensure: zfs.Present,
			Properties: map[string]string{
				"volsize":     "10G",
				"compression": "lz4",
				"acltype":     "posixacl",
				"quota":       "",
			},
		}

		rec = reconciler.New(fakeProvider)
	})

	Context("when the resource should be present", func() {
		Context("and it does not exist", func() {
			BeforeEach(func() {
				fakeProvider.ExistsReturns(false)
			})

			It("creates it with every desired property", func() {
				report, err := rec.Apply(logger, desired)
				Expect(err).NotTo(HaveOccurred())
				Expect(report.Action).To(Equal(reconciler.Created))

				Expect(fakeProvider.CreateCallCount()).To(Equal(1))
				_, created := fakeProvider.CreateArgsForCall(0)
				Expect(created).To(Equal(desired))
				Expect(fakeProvider.SetCallCount()).To(Equal(0))
			})

			Context("and creating fails", func() {
				BeforeEach(func() {
					fakeProvider.CreateReturns(errors.New("out of space"))
				})

				It("returns the error", func() {
					_, err := rec.Apply(logger, desired)
					Expect(err).To(MatchError("creating tank/vol0: out of space"))
				})
			})
		})

		Context("and it exists", func() {
			var current map[string]zfs.PropertyValue

			BeforeEach(func() {
				fakeProvider.ExistsReturns(true)
				current = map[string]zfs.PropertyValue{
					"volsize":     {Value: "10G"},
					"compression": {Value: "off"},
					"acltype":     zfs.Unavailable(),
				}
				fakeProvider.GetStub = func(_ lager.Logger, _, property string) (zfs.PropertyValue, error) {
					return current[property], nil
				}
				fakeProvider.SetStub = func(_ lager.Logger, _, property, value string) (zfs.PropertyValue, error) {
					if property == "acltype" {
						return zfs.Unavailable(), nil
					}
					return zfs.PropertyValue{Value: value}, nil
				}
			})

			It("only sets the properties that differ", func() {
				report, err := rec.Apply(logger, desired)
				Expect(err).NotTo(HaveOccurred())
				Expect(report.Action).To(Equal(reconciler.Updated))

				Expect(fakeProvider.CreateCallCount()).To(Equal(0))
				Expect(fakeProvider.SetCallCount()).To(Equal(2))

				_, name, property, value := fakeProvider.SetArgsForCall(0)
				Expect(name).To(Equal("tank/vol0"))
				Expect(property).To(Equal("acltype"))
				Expect(value).To(Equal("posixacl"))

				_, _, property, value = fakeProvider.SetArgsForCall(1)
				Expect(property).To(Equal("compression"))
				Expect(value).To(Equal("lz4"))
			})

			It("reports the changes", func() {
				report, err := rec.Apply(logger, desired)
				Expect(err).NotTo(HaveOccurred())
				Expect(report.Changes).To(Equal([]reconciler.PropertyChange{
					{Property: "acltype", From: "-", To: "-", Unavailable: true},
					{Property: "compression", From: "off", To: "lz4"},
				}))
			})

			It("never reads properties that are not desired", func() {
				_, err := rec.Apply(logger, desired)
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeProvider.GetCallCount()).To(Equal(3))
				for i := 0; i < fakeProvider.GetCallCount(); i++ {
					_, _, property := fakeProvider.GetArgsForCall(i)
					Expect(property).To(BeElementOf("volsize", "compression", "acltype"))
				}
			})

			Context("when everything already matches", func() {
				BeforeEach(func() {
					current["compression"] = zfs.PropertyValue{Value: "lz4"}
					delete(desired.Properties, "acltype")
				})

				It("changes nothing", func() {
					report, err := rec.Apply(logger, desired)
					Expect(err).NotTo(HaveOccurred())
					Expect(report.Action).To(Equal(reconciler.Unchanged))
					Expect(report.Changes).To(BeEmpty())
					Expect(fakeProvider.SetCallCount()).To(Equal(0))
				})
			})

			Context("when only unavailable properties differ", func() {
				BeforeEach(func() {
					current["compression"] = zfs.PropertyValue{Value: "lz4"}
				})

				It("reports the resource unchanged", func() {
					report, err := rec.Apply(logger, desired)
					Expect(err).NotTo(HaveOccurred())
					Expect(report.Action).To(Equal(reconciler.Unchanged))
					Expect(report.Changes).To(HaveLen(1))
				})
			})

			Context("when reading fails", func() {
				BeforeEach(func() {
					fakeProvider.GetStub = nil
					fakeProvider.GetReturns(zfs.PropertyValue{}, errors.New("zfs get failed"))
				})

				It("returns the error", func() {
					_, err := rec.Apply(logger, desired)
					Expect(err).To(MatchError("updating tank/vol0: zfs get failed"))
				})
			})

			Context("when writing fails", func() {
				BeforeEach(func() {
					fakeProvider.SetStub = nil
					fakeProvider.SetReturns(zfs.PropertyValue{}, errors.New("zfs set failed"))
				})

				It("returns the error", func() {
					_, err := rec.Apply(logger, desired)
					Expect(err).To(MatchError(ContainSubstring("zfs set failed")))
				})
			})
		})
	})

	Context("when the resource should be absent", func() {
		BeforeEach(func() {
			desired.Ensure = zfs.Absent
		})

		Context("and it exists", func() {
			BeforeEach(func() {
				fakeProvider.ExistsReturns(true)
			})

			It("destroys it", func() {
				report, err := rec.Apply(logger, desired)
				Expect(err).NotTo(HaveOccurred())
				Expect(report.Action).To(Equal(reconciler.Destroyed))

				Expect(fakeProvider.DestroyCallCount()).To(Equal(1))
				_, name := fakeProvider.DestroyArgsForCall(0)
				Expect(name).To(Equal("tank/vol0"))
			})

			Context("and destroying fails", func() {
				BeforeEach(func() {
					fakeProvider.DestroyReturns(errors.New("dataset is busy"))
				})

				It("returns the error", func() {
					_, err := rec.Apply(logger, desired)
					Expect(err).To(MatchError("destroying tank/vol0: dataset is busy"))
				})
			})
		})

		Context("and it does not exist", func() {
			It("does nothing", func() {
				report, err := rec.Apply(logger, desired)
				Expect(err).NotTo(HaveOccurred())
				Expect(report.Action).To(Equal(reconciler.Unchanged))
				Expect(fakeProvider.DestroyCallCount()).To(Equal(0))
				Expect(fakeProvider.CreateCallCount()).To(Equal(0))
			})
		})
	})
})
