package payload

import (
	"favourites/internal/core"

	"github.com/jellydator/validation"
)

type RegisterRequest struct {
	UserName  string `json:"userName"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserName, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Password, validation.Required, validation.Length(1, 72)),
		validation.Field(&r.Password2, validation.Required),
	)
}

func (r RegisterRequest) ToMessage() core.RegisterMessage {
	return core.RegisterMessage{
		UserName:  r.UserName,
		Password:  r.Password,
		Password2: r.Password2,
	}
}

type LoginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

func (l LoginRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.UserName, validation.Required),
		validation.Field(&l.Password, validation.Required),
	)
}

func (l LoginRequest) ToMessage() core.CredentialsMessage {
	return core.CredentialsMessage{
		UserName: l.UserName,
		Password: l.Password,
	}
}
