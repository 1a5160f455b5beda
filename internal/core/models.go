package core

import "time"

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserRecord struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResult is returned by signup and login: the user and a signed bearer token.
type AuthResult struct {
	User  UserRecord `json:"user"`
	Token string     `json:"token"`
}

// UploadedImage is one file attached to a new entry, as received from the client.
type UploadedImage struct {
	OriginalFilename string
	Mimetype         string
	Data             []byte
}

type EntryMessage struct {
	Title   string
	Content string
	Mood    string
	Images  []UploadedImage
	// Placements is the raw JSON list of {filename, x, y, rot} sent alongside the images.
	Placements string
}

type ImageRecord struct {
	ID        uint      `json:"id"`
	EntryID   uint      `json:"entry_id"`
	Filename  string    `json:"filename"`
	Mimetype  string    `json:"mimetype,omitempty"`
	X         int       `json:"x"`
	Y         int       `json:"y"`
	Rotation  float64   `json:"rotation"`
	CreatedAt time.Time `json:"created_at"`
}

type EntryRecord struct {
	ID        uint          `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Mood      *string       `json:"mood"`
	CreatedAt time.Time     `json:"created_at"`
	Images    []ImageRecord `json:"images"`
}

// ImagePayload is an image's binary content ready to be streamed back.
type ImagePayload struct {
	Filename string
	Mimetype string
	Data     []byte
}
