package payload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"moodiary/internal/core"
	"net/http"

	"github.com/jellydator/validation"
)

const (
	TitleField        = "title"
	ContentField      = "content"
	MoodField         = "mood"
	ImagesField       = "images"
	ImageMetaField    = "image_metadata"
	genericBinaryType = "application/octet-stream"
)

var ErrUploadTooLarge = errors.New("upload exceeds the size limit")

type EntryImage struct {
	Filename string
	Mimetype string
	Data     []byte
}

type EntryRequest struct {
	Title         string
	Content       string
	Mood          string
	ImageMetadata string
	Images        []EntryImage
}

func (e EntryRequest) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Title, validation.Required, validation.RuneLength(1, 200)),
		validation.Field(&e.Mood, validation.RuneLength(0, 50)),
	)
}

func (e EntryRequest) ToMessage() core.EntryMessage {
	images := make([]core.UploadedImage, 0, len(e.Images))
	for _, img := range e.Images {
		images = append(images, core.UploadedImage{
			OriginalFilename: img.Filename,
			Mimetype:         img.Mimetype,
			Data:             img.Data,
		})
	}

	return core.EntryMessage{
		Title:      e.Title,
		Content:    e.Content,
		Mood:       e.Mood,
		Images:     images,
		Placements: e.ImageMetadata,
	}
}

// ParseEntryForm reads a multipart new-entry form. The whole body is capped at
// maxBytes. Image parts with an empty filename are skipped, as browsers send one
// for an untouched file input.
func ParseEntryForm(w http.ResponseWriter, r *http.Request, maxBytes int64) (EntryRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return EntryRequest{}, ErrUploadTooLarge
		}
		return EntryRequest{}, fmt.Errorf("parse multipart form: %w", err)
	}
	defer r.MultipartForm.RemoveAll()

	req := EntryRequest{
		Title:         r.FormValue(TitleField),
		Content:       r.FormValue(ContentField),
		Mood:          r.FormValue(MoodField),
		ImageMetadata: r.FormValue(ImageMetaField),
	}

	for _, header := range r.MultipartForm.File[ImagesField] {
		if header.Filename == "" {
			continue
		}

		img, err := readImage(header)
		if err != nil {
			return EntryRequest{}, fmt.Errorf("read image %q: %w", header.Filename, err)
		}
		req.Images = append(req.Images, img)
	}

	return req, nil
}

func readImage(header *multipart.FileHeader) (EntryImage, error) {
	file, err := header.Open()
	if err != nil {
		return EntryImage{}, fmt.Errorf("open part: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return EntryImage{}, fmt.Errorf("read part: %w", err)
	}

	mimetype := header.Header.Get("Content-Type")
	if (mimetype == "" || mimetype == genericBinaryType) && len(data) > 0 {
		mimetype = http.DetectContentType(data)
	}

	return EntryImage{
		Filename: header.Filename,
		Mimetype: mimetype,
		Data:     data,
	}, nil
}
