package core

import (
	"context"
	"errors"
	"fmt"
	"moodiary/internal/repository"
	tokenIssuer "moodiary/pkg/jwt"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDuplicateUsername error = errors.New("username already exists")
	ErrAuthFailure       error = errors.New("invalid username or password")
	ErrNotFound          error = errors.New("not found")
	ErrUnauthorized      error = errors.New("not the owner of this resource")
)

// Diary implements the diary operations. Every operation acting on entries or
// images takes the requesting user's id explicitly.
type Diary struct {
	logs       *zap.SugaredLogger
	repo       Repository
	jwtIssuer  JWTIssuer
	classifier MoodClassifier
	tokenTTL   time.Duration
	hashCost   int
}

// NewDiary is a constructor function for the Diary type. tokenTTL is in hours.
func NewDiary(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, classifier MoodClassifier, tokenTTL time.Duration) *Diary {
	return &Diary{
		logs:       logger,
		repo:       repo,
		jwtIssuer:  jwt,
		classifier: classifier,
		tokenTTL:   tokenTTL,
		hashCost:   bcrypt.DefaultCost,
	}
}

// SignUp registers a new user and logs them in. A taken username fails with
// ErrDuplicateUsername and nothing is written.
func (d *Diary) SignUp(ctx context.Context, msg AuthMessage) (AuthResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), d.hashCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		Username:     msg.Username,
		PasswordHash: string(hash),
	}

	if err := d.repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return AuthResult{}, ErrDuplicateUsername
		}
		return AuthResult{}, fmt.Errorf("create user: %w", err)
	}

	d.logs.Infow("user signed up", "userId", user.ID, "username", user.Username)

	return d.issue(user)
}

// Authenticate checks the provided username and password against the database. Both an
// unknown user and a wrong password fail with ErrAuthFailure.
func (d *Diary) Authenticate(ctx context.Context, msg AuthMessage) (AuthResult, error) {
	user, err := d.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return AuthResult{}, ErrAuthFailure
		}
		return AuthResult{}, fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return AuthResult{}, ErrAuthFailure
	}

	return d.issue(user)
}

// CreateEntry stores a new entry for requester together with its images. When no
// mood is given and there is content, the mood is inferred from the content.
func (d *Diary) CreateEntry(ctx context.Context, requester uint, msg EntryMessage) (EntryRecord, error) {
	var mood *string
	if msg.Mood != "" {
		mood = &msg.Mood
	} else if msg.Content != "" {
		inferred := d.classifier.Classify(msg.Content)
		mood = &inferred
	}

	placements, err := ParsePlacements(msg.Placements)
	if err != nil {
		d.logs.Warnw("ignoring malformed image placement metadata", "error", err, "userId", requester)
	}

	seen := make(map[string]int, len(msg.Images))
	images := make([]repository.EntryImage, 0, len(msg.Images))
	for _, img := range msg.Images {
		seen[img.OriginalFilename]++
		if seen[img.OriginalFilename] == 2 {
			d.logs.Warnw("several images share an original filename, they share one placement",
				"filename", img.OriginalFilename,
				"userId", requester)
		}

		p := placements[img.OriginalFilename]

		var mimetype *string
		if img.Mimetype != "" {
			mimetype = &img.Mimetype
		}

		images = append(images, repository.EntryImage{
			Filename: SecureFilename(img.OriginalFilename),
			Data:     img.Data,
			Mimetype: mimetype,
			XPos:     p.X,
			YPos:     p.Y,
			Rotation: p.Rotation,
		})
	}

	entry := repository.DiaryEntry{
		Title:   msg.Title,
		Content: msg.Content,
		Mood:    mood,
		UserID:  requester,
	}

	if err := d.repo.CreateEntry(ctx, &entry, images); err != nil {
		return EntryRecord{}, fmt.Errorf("save entry: %w", err)
	}

	d.logs.Infow("entry created", "userId", requester, "entryId", entry.ID, "images", len(images))

	return toEntryRecord(entry, images), nil
}

// ListEntries returns requester's entries, newest first, with image metadata.
func (d *Diary) ListEntries(ctx context.Context, requester uint) ([]EntryRecord, error) {
	entries, err := d.repo.ListEntries(ctx, requester)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}

	images, err := d.repo.ListImages(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}

	byEntry := make(map[uint][]repository.EntryImage, len(entries))
	for _, img := range images {
		byEntry[img.EntryID] = append(byEntry[img.EntryID], img)
	}

	records := make([]EntryRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, toEntryRecord(e, byEntry[e.ID]))
	}

	return records, nil
}

// DeleteEntry removes an entry owned by requester along with all of its images.
func (d *Diary) DeleteEntry(ctx context.Context, requester uint, entryID uint) error {
	entry, err := d.repo.GetEntry(ctx, entryID)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get entry: %w", err)
	}

	if entry.UserID != requester {
		return ErrUnauthorized
	}

	if err := d.repo.DeleteEntry(ctx, entryID); err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete entry: %w", err)
	}

	d.logs.Infow("entry deleted", "userId", requester, "entryId", entryID)
	return nil
}

// FetchImage returns an image's content if requester owns the entry it belongs to.
func (d *Diary) FetchImage(ctx context.Context, requester uint, imageID uint) (ImagePayload, error) {
	image, err := d.repo.GetImage(ctx, imageID)
	if err != nil {
		if errors.Is(err, repository.ErrImageNotFound) {
			return ImagePayload{}, ErrNotFound
		}
		return ImagePayload{}, fmt.Errorf("get image: %w", err)
	}

	entry, err := d.repo.GetEntry(ctx, image.EntryID)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return ImagePayload{}, ErrNotFound
		}
		return ImagePayload{}, fmt.Errorf("get image entry: %w", err)
	}

	if entry.UserID != requester {
		return ImagePayload{}, ErrUnauthorized
	}

	payload := ImagePayload{
		Filename: image.Filename,
		Data:     image.Data,
	}
	if image.Mimetype != nil {
		payload.Mimetype = *image.Mimetype
	}

	return payload, nil
}

func (d *Diary) issue(user repository.User) (AuthResult, error) {
	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    strconv.FormatUint(uint64(user.ID), 10),
		Expiration: d.tokenTTL,
	}
	token := d.jwtIssuer.Generate(tokenInfo)
	signed, err := d.jwtIssuer.Sign(token)
	if err != nil {
		return AuthResult{}, fmt.Errorf("signing token: %w", err)
	}

	return AuthResult{
		User: UserRecord{
			ID:        user.ID,
			Username:  user.Username,
			CreatedAt: user.CreatedAt,
		},
		Token: signed,
	}, nil
}

func toEntryRecord(entry repository.DiaryEntry, images []repository.EntryImage) EntryRecord {
	record := EntryRecord{
		ID:        entry.ID,
		Title:     entry.Title,
		Content:   entry.Content,
		Mood:      entry.Mood,
		CreatedAt: entry.CreatedAt,
		Images:    make([]ImageRecord, 0, len(images)),
	}

	for _, img := range images {
		rec := ImageRecord{
			ID:        img.ID,
			EntryID:   img.EntryID,
			Filename:  img.Filename,
			X:         img.XPos,
			Y:         img.YPos,
			Rotation:  img.Rotation,
			CreatedAt: img.CreatedAt,
		}
		if img.Mimetype != nil {
			rec.Mimetype = *img.Mimetype
		}
		record.Images = append(record.Images, rec)
	}

	return record
}
