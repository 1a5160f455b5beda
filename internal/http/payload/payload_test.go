package payload_test

import (
	"net/http/httptest"
	"strings"

	"moodiary/internal/core"
	"moodiary/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decoder", func() {
	var (
		body string
		auth payload.AuthRequest
		err  error
	)

	JustBeforeEach(func() {
		auth = payload.AuthRequest{}
		req := httptest.NewRequest("POST", "/diary/login", strings.NewReader(body))
		err = payload.Decoder{}.DecodeJSONPayload(req, &auth)
	})

	When("the payload is valid", func() {
		BeforeEach(func() {
			body = `{"username":"alice","password":"secret"}`
		})

		It("should decode it", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(auth.ToMessage()).To(Equal(core.AuthMessage{Username: "alice", Password: "secret"}))
		})
	})

	When("the payload has unknown fields", func() {
		BeforeEach(func() {
			body = `{"username":"alice","password":"secret","admin":true}`
		})

		It("should fail", func() {
			Expect(err).To(HaveOccurred())
		})
	})

	When("the payload is not json", func() {
		BeforeEach(func() {
			body = `username=alice`
		})

		It("should fail", func() {
			Expect(err).To(HaveOccurred())
		})
	})

	When("the username is empty", func() {
		BeforeEach(func() {
			body = `{"username":"","password":"secret"}`
		})

		It("should fail validation", func() {
			Expect(err).To(MatchError(ContainSubstring("username")))
		})
	})

	When("the username is longer than 150 characters", func() {
		BeforeEach(func() {
			body = `{"username":"` + strings.Repeat("ü", 151) + `","password":"secret"}`
		})

		It("should fail validation", func() {
			Expect(err).To(HaveOccurred())
		})
	})

	When("the password is longer than bcrypt accepts", func() {
		BeforeEach(func() {
			body = `{"username":"alice","password":"` + strings.Repeat("p", 73) + `"}`
		})

		It("should fail validation", func() {
			Expect(err).To(MatchError(ContainSubstring("password")))
		})
	})
})

var _ = Describe("EntryRequest", func() {
	It("should carry every field into the entry message", func() {
		req := payload.EntryRequest{
			Title:         "t",
			Content:       "c",
			Mood:          "Calm",
			ImageMetadata: `[]`,
			Images: []payload.EntryImage{
				{Filename: "a.png", Mimetype: "image/png", Data: []byte("x")},
			},
		}

		Expect(req.Validate()).To(Succeed())
		Expect(req.ToMessage()).To(Equal(core.EntryMessage{
			Title:      "t",
			Content:    "c",
			Mood:       "Calm",
			Placements: `[]`,
			Images: []core.UploadedImage{
				{OriginalFilename: "a.png", Mimetype: "image/png", Data: []byte("x")},
			},
		}))
	})

	It("should require a title of at most 200 characters", func() {
		Expect(payload.EntryRequest{}.Validate()).To(HaveOccurred())
		Expect(payload.EntryRequest{Title: strings.Repeat("t", 201)}.Validate()).To(HaveOccurred())
		Expect(payload.EntryRequest{Title: strings.Repeat("t", 200)}.Validate()).To(Succeed())
	})
})
