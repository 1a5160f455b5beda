package repository

import (
	"context"
	"errors"
	"fmt"
	"moodiary/internal/db"
)

var (
	ErrUserNotFound  error = errors.New("user not found")
	ErrUsernameTaken error = errors.New("username already taken")
	ErrEntryNotFound error = errors.New("entry not found")
	ErrImageNotFound error = errors.New("image not found")
)

type DiaryRepository struct {
	db db.Store
}

func NewDiaryRepository(db db.Store) *DiaryRepository {
	return &DiaryRepository{
		db: db,
	}
}

func (r *DiaryRepository) Migrate() error {
	err := r.db.MigrateModels(&User{}, &DiaryEntry{}, &EntryImage{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// CreateUser stores a new user. The username is checked up front and the unique
// index catches a concurrent signup that slips past the check.
func (r *DiaryRepository) CreateUser(ctx context.Context, user *User) error {
	var existing User
	err := r.db.GetBy(ctx, "username", user.Username, &existing)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("check username: %w", err)
	}

	if err := r.db.Create(ctx, user); err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *DiaryRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

// CreateEntry writes the entry and all of its images in one transaction. The
// generated ids are set on entry and images.
func (r *DiaryRepository) CreateEntry(ctx context.Context, entry *DiaryEntry, images []EntryImage) error {
	err := r.db.Transaction(ctx, func(tx db.Store) error {
		if err := tx.Create(ctx, entry); err != nil {
			return fmt.Errorf("insert entry: %w", err)
		}

		if len(images) == 0 {
			return nil
		}

		for i := range images {
			images[i].EntryID = entry.ID
		}

		if err := tx.Create(ctx, &images); err != nil {
			return fmt.Errorf("insert entry images: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("create entry: %w", err)
	}

	return nil
}

func (r *DiaryRepository) GetEntry(ctx context.Context, entryID uint) (DiaryEntry, error) {
	var entry DiaryEntry

	err := r.db.GetBy(ctx, "id", entryID, &entry)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return DiaryEntry{}, ErrEntryNotFound
		}
		return DiaryEntry{}, fmt.Errorf("get entry by id: %w", err)
	}

	return entry, nil
}

// ListEntries returns the user's entries newest first.
func (r *DiaryRepository) ListEntries(ctx context.Context, userID uint) ([]DiaryEntry, error) {
	entries := []DiaryEntry{}

	err := r.db.GetAllBy(ctx, "user_id", userID, &entries, "created_at desc, id desc")
	if err != nil {
		return entries, fmt.Errorf("list entries: %w", err)
	}

	return entries, nil
}

// ListImages returns the images of the given entries without their binary data.
func (r *DiaryRepository) ListImages(ctx context.Context, entryIDs []uint) ([]EntryImage, error) {
	images := []EntryImage{}
	if len(entryIDs) == 0 {
		return images, nil
	}

	err := r.db.GetAllBy(ctx, "entry_id", entryIDs, &images, "id", "data")
	if err != nil {
		return images, fmt.Errorf("list entry images: %w", err)
	}

	return images, nil
}

// DeleteEntry removes the entry's images and then the entry in one transaction.
func (r *DiaryRepository) DeleteEntry(ctx context.Context, entryID uint) error {
	err := r.db.Transaction(ctx, func(tx db.Store) error {
		if _, err := tx.DeleteBy(ctx, "entry_id", entryID, &EntryImage{}); err != nil {
			return fmt.Errorf("delete entry images: %w", err)
		}

		deleted, err := tx.DeleteBy(ctx, "id", entryID, &DiaryEntry{})
		if err != nil {
			return fmt.Errorf("delete entry: %w", err)
		}
		if deleted == 0 {
			return ErrEntryNotFound
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return ErrEntryNotFound
		}
		return fmt.Errorf("delete entry: %w", err)
	}

	return nil
}

func (r *DiaryRepository) GetImage(ctx context.Context, imageID uint) (EntryImage, error) {
	var image EntryImage

	err := r.db.GetBy(ctx, "id", imageID, &image)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return EntryImage{}, ErrImageNotFound
		}
		return EntryImage{}, fmt.Errorf("get image by id: %w", err)
	}

	return image, nil
}
