package core

import (
	"context"
	"moodiary/internal/repository"
	tokenIssuer "moodiary/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user *repository.User) error
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	CreateEntry(ctx context.Context, entry *repository.DiaryEntry, images []repository.EntryImage) error
	GetEntry(ctx context.Context, entryID uint) (repository.DiaryEntry, error)
	ListEntries(ctx context.Context, userID uint) ([]repository.DiaryEntry, error)
	ListImages(ctx context.Context, entryIDs []uint) ([]repository.EntryImage, error)
	DeleteEntry(ctx context.Context, entryID uint) error
	GetImage(ctx context.Context, imageID uint) (repository.EntryImage, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
}

//counterfeiter:generate -o fake -fake-name MoodClassifier . MoodClassifier
type MoodClassifier interface {
	Classify(content string) string
}
