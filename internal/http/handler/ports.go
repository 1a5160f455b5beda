package handler

import (
	"context"
	"moodiary/internal/core"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name DiaryService . DiaryService
type DiaryService interface {
	SignUp(ctx context.Context, msg core.AuthMessage) (core.AuthResult, error)
	Authenticate(ctx context.Context, msg core.AuthMessage) (core.AuthResult, error)
	CreateEntry(ctx context.Context, requester uint, msg core.EntryMessage) (core.EntryRecord, error)
	ListEntries(ctx context.Context, requester uint) ([]core.EntryRecord, error)
	DeleteEntry(ctx context.Context, requester uint, entryID uint) error
	FetchImage(ctx context.Context, requester uint, imageID uint) (core.ImagePayload, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
