package dto

type SignUpDto struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Password string `json:"password" binding:"required,min=8,max=48"`
	FullName string `json:"full_name" binding:"required,max=100"`
}

// SignInDto mirrors the OAuth2 password form the client posts to /token.
type SignInDto struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type UpdateBioDto struct {
	Bio string `json:"bio" binding:"required,max=500"`
}
