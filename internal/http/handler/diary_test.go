package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"

	"moodiary/internal/core"
	"moodiary/internal/http/handler"
	"moodiary/internal/http/handler/fake"
	"moodiary/internal/http/handler/middleware"
	"moodiary/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func withUser(req *http.Request, userID uint) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	return req.WithContext(ctx)
}

var _ = Describe("DiaryHandler", func() {
	var (
		dh            *handler.DiaryHandler
		fakeService   *fake.DiaryService
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
		authResult    core.AuthResult
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		authResult = core.AuthResult{
			User:  core.UserRecord{ID: 7, Username: "alice"},
			Token: "test-token",
		}
		fakeService = new(fake.DiaryService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = payload.Decoder{}.DecodeJSONPayload

		w = httptest.NewRecorder()
		dh = handler.NewDiaryHandler(zap.NewNop().Sugar(), fakeValidator, fakeService, 1<<20)
	})

	Describe("HandleSignUp", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/diary/signup", strings.NewReader(`{"username":"alice","password":"pw"}`))
			fakeService.SignUpReturns(authResult, nil)
		})

		JustBeforeEach(func() {
			dh.HandleSignUp(w, req)
		})

		When("the username is free", func() {
			It("should return 201 with the token and the user", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))

				var resp core.AuthResult
				Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
				Expect(resp.Token).To(Equal("test-token"))
				Expect(resp.User.Username).To(Equal("alice"))

				Expect(fakeService.SignUpCallCount()).To(Equal(1))
				_, msg := fakeService.SignUpArgsForCall(0)
				Expect(msg).To(Equal(core.AuthMessage{Username: "alice", Password: "pw"}))
			})

			It("should never echo the password", func() {
				Expect(w.Body.String()).NotTo(ContainSubstring(`"pw"`))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeService.SignUpReturns(core.AuthResult{}, core.ErrDuplicateUsername)
			})

			It("should return 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrDuplicateUsername.Error()))
			})
		})

		When("the payload is missing the password", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/diary/signup", strings.NewReader(`{"username":"alice"}`))
			})

			It("should return 400 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.SignUpCallCount()).To(Equal(0))
			})
		})

		When("the service fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.SignUpReturns(core.AuthResult{}, fakeErr)
			})

			It("should return 500 without leaking the cause", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleLogin", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/diary/login", strings.NewReader(`{"username":"alice","password":"pw"}`))
			fakeService.AuthenticateReturns(authResult, nil)
		})

		JustBeforeEach(func() {
			dh.HandleLogin(w, req)
		})

		When("the credentials are valid", func() {
			It("should return a token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var resp core.AuthResult
				Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
				Expect(resp.Token).To(Equal("test-token"))
				Expect(fakeValidator.DecodeJSONPayloadCallCount()).To(Equal(1))
			})
		})

		When("the credentials are rejected", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns(core.AuthResult{}, core.ErrAuthFailure)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("decoding fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadStub = nil
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleListEntries", func() {
		BeforeEach(func() {
			req = withUser(httptest.NewRequest("GET", "/diary/entries", nil), 7)
			mood := "Radiant"
			fakeService.ListEntriesReturns([]core.EntryRecord{
				{ID: 2, Title: "second", Mood: &mood, Images: []core.ImageRecord{{ID: 9, Filename: "a.png"}}},
				{ID: 1, Title: "first", Images: []core.ImageRecord{}},
			}, nil)
		})

		JustBeforeEach(func() {
			dh.HandleListEntries(w, req)
		})

		It("should list the requester's entries", func() {
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp map[string][]core.EntryRecord
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp["entries"]).To(HaveLen(2))
			Expect(resp["entries"][0].Images[0].Filename).To(Equal("a.png"))
			Expect(resp["entries"][1].Mood).To(BeNil())

			_, requester := fakeService.ListEntriesArgsForCall(0)
			Expect(requester).To(Equal(uint(7)))
		})

		When("no user is on the request", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/diary/entries", nil)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.ListEntriesCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleCreateEntry", func() {
		var (
			fields map[string]string
			files  []struct{ name, ctype, body string }
		)

		BeforeEach(func() {
			fields = map[string]string{
				"title":          "A day",
				"content":        "sunny",
				"image_metadata": `[{"filename":"a.png","x":3,"y":4,"rot":90}]`,
			}
			files = []struct{ name, ctype, body string }{
				{"a.png", "image/png", "png-bytes"},
				{"b.bin", "", "\x89PNG\r\n\x1a\n0000"},
			}
			fakeService.CreateEntryReturns(core.EntryRecord{ID: 11, Title: "A day"}, nil)
		})

		JustBeforeEach(func() {
			body := &bytes.Buffer{}
			mw := multipart.NewWriter(body)
			for k, v := range fields {
				Expect(mw.WriteField(k, v)).To(Succeed())
			}
			for _, f := range files {
				header := make(textproto.MIMEHeader)
				header.Set("Content-Disposition", `form-data; name="images"; filename="`+f.name+`"`)
				if f.ctype != "" {
					header.Set("Content-Type", f.ctype)
				}
				part, err := mw.CreatePart(header)
				Expect(err).NotTo(HaveOccurred())
				_, err = part.Write([]byte(f.body))
				Expect(err).NotTo(HaveOccurred())
			}
			Expect(mw.Close()).To(Succeed())

			req = httptest.NewRequest("POST", "/diary/entries", body)
			req.Header.Set("Content-Type", mw.FormDataContentType())
			req = withUser(req, 7)

			dh.HandleCreateEntry(w, req)
		})

		It("should pass the form to the service and return 201", func() {
			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(fakeService.CreateEntryCallCount()).To(Equal(1))

			_, requester, msg := fakeService.CreateEntryArgsForCall(0)
			Expect(requester).To(Equal(uint(7)))
			Expect(msg.Title).To(Equal("A day"))
			Expect(msg.Content).To(Equal("sunny"))
			Expect(msg.Mood).To(BeEmpty())
			Expect(msg.Placements).To(Equal(fields["image_metadata"]))
			Expect(msg.Images).To(HaveLen(2))
			Expect(msg.Images[0].OriginalFilename).To(Equal("a.png"))
			Expect(msg.Images[0].Mimetype).To(Equal("image/png"))
			Expect(string(msg.Images[0].Data)).To(Equal("png-bytes"))
		})

		It("should sniff the mimetype of undeclared parts", func() {
			_, _, msg := fakeService.CreateEntryArgsForCall(0)
			Expect(msg.Images[1].Mimetype).To(Equal("image/png"))
		})

		When("the title is missing", func() {
			BeforeEach(func() {
				delete(fields, "title")
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.CreateEntryCallCount()).To(Equal(0))
			})
		})

		When("the mood is too long", func() {
			BeforeEach(func() {
				fields["mood"] = strings.Repeat("m", 51)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the upload exceeds the limit", func() {
			BeforeEach(func() {
				files = append(files, struct{ name, ctype, body string }{"big.png", "image/png", strings.Repeat("x", 2<<20)})
			})

			It("should return 413", func() {
				Expect(w.Code).To(Equal(http.StatusRequestEntityTooLarge))
				Expect(fakeService.CreateEntryCallCount()).To(Equal(0))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.CreateEntryReturns(core.EntryRecord{}, fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleDeleteEntry", func() {
		BeforeEach(func() {
			req = withUser(httptest.NewRequest("DELETE", "/diary/entries/5", nil), 7)
			req.SetPathValue("id", "5")
		})

		JustBeforeEach(func() {
			dh.HandleDeleteEntry(w, req)
		})

		It("should return 204", func() {
			Expect(w.Code).To(Equal(http.StatusNoContent))
			_, requester, entryID := fakeService.DeleteEntryArgsForCall(0)
			Expect(requester).To(Equal(uint(7)))
			Expect(entryID).To(Equal(uint(5)))
		})

		When("the entry does not exist", func() {
			BeforeEach(func() {
				fakeService.DeleteEntryReturns(core.ErrNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the entry belongs to someone else", func() {
			BeforeEach(func() {
				fakeService.DeleteEntryReturns(core.ErrUnauthorized)
			})

			It("should return 403", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
			})
		})

		When("the id is not a number", func() {
			BeforeEach(func() {
				req.SetPathValue("id", "abc")
			})

			It("should return 404 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(fakeService.DeleteEntryCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleFetchImage", func() {
		BeforeEach(func() {
			req = withUser(httptest.NewRequest("GET", "/diary/images/9", nil), 7)
			req.SetPathValue("id", "9")
			fakeService.FetchImageReturns(core.ImagePayload{
				Filename: "a.png",
				Mimetype: "image/png",
				Data:     []byte("png-bytes"),
			}, nil)
		})

		JustBeforeEach(func() {
			dh.HandleFetchImage(w, req)
		})

		It("should stream the raw bytes with the stored mimetype", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(Equal("image/png"))
			Expect(w.Body.String()).To(Equal("png-bytes"))

			_, requester, imageID := fakeService.FetchImageArgsForCall(0)
			Expect(requester).To(Equal(uint(7)))
			Expect(imageID).To(Equal(uint(9)))
		})

		When("the image has no mimetype", func() {
			BeforeEach(func() {
				fakeService.FetchImageReturns(core.ImagePayload{Data: []byte("raw")}, nil)
			})

			It("should fall back to a generic binary type", func() {
				Expect(w.Header().Get("Content-Type")).To(Equal("application/octet-stream"))
			})
		})

		When("the requester does not own the image", func() {
			BeforeEach(func() {
				fakeService.FetchImageReturns(core.ImagePayload{}, core.ErrUnauthorized)
			})

			It("should return 403 and no image data", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
				Expect(w.Header().Get("Content-Type")).To(Equal("application/json"))
				Expect(w.Body.String()).NotTo(ContainSubstring("png-bytes"))
			})
		})

		When("the image does not exist", func() {
			BeforeEach(func() {
				fakeService.FetchImageReturns(core.ImagePayload{}, core.ErrNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})
})
