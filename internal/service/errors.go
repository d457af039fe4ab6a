package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid             = errors.New("Invalid request parameters")
	ErrNoToken                  = errors.New("No token, authorization denied")
	ErrTokenInvalid             = errors.New("Token is not valid")
	ErrInvalidCredentials       = errors.New("Invalid credentials")
	ErrUserExist                = errors.New("User already exists")
	ErrUsernameExist            = errors.New("Username is already taken")
	ErrUserNotFound             = errors.New("User not found")
	ErrCollegeRequired          = errors.New("College selection is required")
	ErrCollegeInvalid           = errors.New("Invalid college selected")
	ErrPasswordIncorrect        = errors.New("Current password is incorrect")
	ErrAccountPasswordIncorrect = errors.New("Password is incorrect")
	ErrAccountPending           = errors.New("Your account is pending verification. Verification typically takes 3 business days; you cannot perform this action until your account is activated.")
	ErrAccountDeactivated       = errors.New("Your account could not be verified. Please re-register with correct information.")
	ErrAccountStatusInvalid     = errors.New("Your account status does not allow this action")
	ErrAdminRequired            = errors.New("Forbidden: Admins only")
	ErrInvalidStatus            = errors.New("Invalid status value")
	ErrStatusNotPending         = errors.New("Status can only be updated if current status is pending")
	ErrPostNotFound             = errors.New("Post not found")
	ErrPostForbidden            = errors.New("Not authorized to modify this post")
	ErrPostContentEmpty         = errors.New("Post content cannot be empty")
	ErrCommentEmpty             = errors.New("Comment text cannot be empty")
	ErrFileNotSupported         = errors.New("Unsupported file type")
	ErrFileTooLarge             = errors.New("File is too large")
	ErrCollegeNotFound          = errors.New("College not found")
	ErrCollegeExist             = errors.New("College already exists")
	ErrCollegeInUse             = errors.New("College is still referenced by users or posts")
	ErrAlumniQueryInvalid       = errors.New("College and branch are required")
	UnExpectedError             = errors.New("Server error")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:             BadRequest,
	ErrNoToken:                  Unauthorized,
	ErrTokenInvalid:             Unauthorized,
	ErrInvalidCredentials:       Unauthorized,
	ErrUserExist:                BadRequest,
	ErrUsernameExist:            BadRequest,
	ErrUserNotFound:             NotFound,
	ErrCollegeRequired:          BadRequest,
	ErrCollegeInvalid:           BadRequest,
	ErrPasswordIncorrect:        BadRequest,
	ErrAccountPasswordIncorrect: BadRequest,
	ErrAccountPending:           Forbidden,
	ErrAccountDeactivated:       Forbidden,
	ErrAccountStatusInvalid:     Forbidden,
	ErrAdminRequired:            Forbidden,
	ErrInvalidStatus:            BadRequest,
	ErrStatusNotPending:         Conflict,
	ErrPostNotFound:             NotFound,
	ErrPostForbidden:            Forbidden,
	ErrPostContentEmpty:         BadRequest,
	ErrCommentEmpty:             BadRequest,
	ErrFileNotSupported:         BadRequest,
	ErrFileTooLarge:             BadRequest,
	ErrCollegeNotFound:          NotFound,
	ErrCollegeExist:             Conflict,
	ErrCollegeInUse:             Conflict,
	ErrAlumniQueryInvalid:       BadRequest,
	UnExpectedError:             InternalServerError,
}

// StatusCode 返回错误对应的状态码，未登记的错误返回 500
func StatusCode(err error) (int, bool) {
	if code, ok := ErrorMap[err]; ok {
		return code, true
	}
	for sentinel, code := range ErrorMap {
		if errors.Is(err, sentinel) {
			return code, true
		}
	}
	return InternalServerError, false
}
