package dto

type EmailQuery struct {
	Email string `form:"email"`
}

// SignupForm mirrors the page form; binding rules stand in for the
// browser's required/type=email checks.
type SignupForm struct {
	Activity string `form:"activity" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
}

type UnregisterForm struct {
	Activity string `form:"activity" binding:"required"`
	Email    string `form:"email" binding:"required"`
}
