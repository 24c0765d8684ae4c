package manifest_test

import (
	"os"
	"path/filepath"

	"code.cloudfoundry.org/zfsvol/manifest"
	"code.cloudfoundry.org/zfsvol/zfs"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Manifest", func() {
	Describe("Load", func() {
		var manifestDir string

		BeforeEach(func() {
			var err error
			manifestDir, err = os.MkdirTemp("", "")
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			Expect(os.RemoveAll(manifestDir)).To(Succeed())
		})

		It("loads a manifest file", func() {
			manifestPath := filepath.Join(manifestDir, "volumes.yml")
			Expect(os.WriteFile(manifestPath, []byte(`---
volumes:
- name: tank/vol0
  properties:
    volsize: 10G
    compression: lz4
- name: tank/old
  ensure: absent
`), 0644)).To(Succeed())

			m, err := manifest.Load(manifestPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Volumes).To(Equal([]zfs.Resource{
				{
					Name:       "tank/vol0",
					Ensure:     zfs.Present,
					Properties: map[string]string{"volsize": "10G", "compression": "lz4"},
				},
				{Name: "tank/old", Ensure: zfs.Absent},
			}))
		})

		Context("when the path is invalid", func() {
			It("returns an error", func() {
				_, err := manifest.Load(filepath.Join(manifestDir, "not-here.yml"))
				Expect(err).To(MatchError(ContainSubstring("invalid manifest path")))
			})
		})
	})

	Describe("Parse", func() {
		Context("when the content is not a manifest", func() {
			It("returns an error", func() {
				_, err := manifest.Parse([]byte("invalid-content"))
				Expect(err).To(MatchError(ContainSubstring("invalid manifest file")))
			})
		})

		Context("when a volume has an unexpected field", func() {
			It("returns an error", func() {
				_, err := manifest.Parse([]byte("volumes:\n- name: tank/a\n  colour: blue\n"))
				Expect(err).To(MatchError(ContainSubstring("invalid manifest file")))
			})
		})

		It("reports which volume is invalid", func() {
			_, err := manifest.Parse([]byte("volumes:\n- name: tank/a\n- ensure: present\n"))
			Expect(err).To(MatchError("volume 1: name is required"))
		})
	})

	Describe("Validate", func() {
		It("accepts a valid resource", func() {
			Expect(manifest.Validate(zfs.Resource{
				Name:       "tank/vol0",
				Ensure:     zfs.Present,
				Properties: map[string]string{"volsize": "512M", "zoned": "off", "acltype": "posixacl"},
			})).To(Succeed())
		})

		It("rejects an unknown ensure", func() {
			err := manifest.Validate(zfs.Resource{Name: "tank/vol0", Ensure: "purged"})
			Expect(err).To(MatchError(ContainSubstring("invalid ensure `purged`")))
		})

		It("rejects unknown properties", func() {
			err := manifest.Validate(zfs.Resource{
				Name:       "tank/vol0",
				Ensure:     zfs.Present,
				Properties: map[string]string{"colour": "blue"},
			})
			Expect(err).To(MatchError(ContainSubstring("unknown property `colour`")))
		})

		It("rejects a volsize that is not a size", func() {
			err := manifest.Validate(zfs.Resource{
				Name:       "tank/vol0",
				Ensure:     zfs.Present,
				Properties: map[string]string{"volsize": "huge"},
			})
			Expect(err).To(MatchError(ContainSubstring("invalid volsize")))
		})
	})
})
