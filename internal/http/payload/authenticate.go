package payload

import (
	"moodiary/internal/core"

	"github.com/jellydator/validation"
)

type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a AuthRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required, validation.RuneLength(1, 150)),
		validation.Field(&a.Password, validation.Required, validation.Length(1, 72)),
	)
}

func (a AuthRequest) ToMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: a.Username,
		Password: a.Password,
	}
}
