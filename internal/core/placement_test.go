package core_test

import (
	"moodiary/internal/core"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ParsePlacements", func() {
	It("should key placements by original filename", func() {
		placements, err := core.ParsePlacements(`[{"filename":"a.png","x":10,"y":-4,"rot":12.5},{"filename":"b.png","x":3.9,"y":1}]`)
		Expect(err).NotTo(HaveOccurred())
		Expect(placements).To(HaveLen(2))
		Expect(placements["a.png"]).To(Equal(core.Placement{X: 10, Y: -4, Rotation: 12.5}))
		Expect(placements["b.png"]).To(Equal(core.Placement{X: 3, Y: 1}))
	})

	It("should keep the last placement when filenames collide", func() {
		placements, err := core.ParsePlacements(`[{"filename":"photo.jpg","x":1,"y":1,"rot":1},{"filename":"photo.jpg","x":2,"y":2,"rot":2}]`)
		Expect(err).NotTo(HaveOccurred())
		Expect(placements).To(HaveLen(1))
		Expect(placements["photo.jpg"]).To(Equal(core.Placement{X: 2, Y: 2, Rotation: 2}))
	})

	It("should return an empty lookup for blank input", func() {
		placements, err := core.ParsePlacements("  ")
		Expect(err).NotTo(HaveOccurred())
		Expect(placements).To(BeEmpty())
	})

	It("should report malformed input with an empty lookup", func() {
		placements, err := core.ParsePlacements(`{not json`)
		Expect(err).To(HaveOccurred())
		Expect(placements).To(BeEmpty())
	})
})

var _ = DescribeTable("SecureFilename",
	func(input, expected string) {
		Expect(core.SecureFilename(input)).To(Equal(expected))
	},
	Entry("plain name", "photo.jpg", "photo.jpg"),
	Entry("spaces", "My summer photo.png", "My_summer_photo.png"),
	Entry("path traversal", "../../etc/passwd", "etc_passwd"),
	Entry("windows path", `C:\Users\me\pic.gif`, "C_Users_me_pic.gif"),
	Entry("accents", "café.png", "cafe.png"),
	Entry("unsafe characters", "we!rd$name?.jpg", "werdname.jpg"),
	Entry("nothing left", "日本.", "image"),
	Entry("empty", "", "image"),
)
