package repository

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"size:150;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:200;not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// DiaryEntry carries no association fields: images are written and removed
// explicitly by the repository inside the entry's transaction.
type DiaryEntry struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"size:200;not null"`
	Content   string    `gorm:"type:text;not null"`
	Mood      *string   `gorm:"size:50"`
	CreatedAt time.Time `gorm:"not null;index"`
	UserID    uint      `gorm:"not null;index"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

type EntryImage struct {
	ID        uint       `gorm:"primaryKey"`
	Filename  string     `gorm:"size:255;not null"`
	Data      []byte
	Mimetype  *string    `gorm:"size:100"`
	XPos      int        `gorm:"not null;default:0"`
	YPos      int        `gorm:"not null;default:0"`
	Rotation  float64    `gorm:"not null;default:0"`
	CreatedAt time.Time  `gorm:"not null"`
	EntryID   uint       `gorm:"not null;index"`
	Entry     DiaryEntry `gorm:"foreignKey:EntryID;constraint:OnDelete:RESTRICT"`
}
