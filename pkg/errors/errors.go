package errors

import (
	stderrors "errors"
	"fmt"
)

// 错误码
const (
	CodeSuccess       = 200
	CodeBadRequest    = 400
	CodeUnauthorized  = 401
	CodeNotFound      = 404
	CodeConflict      = 409
	CodeInternalError = 500
	CodeDatabaseError = 501
)

// AppError 应用错误
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 返回底层错误，存储层错误原样向上传递
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 与同错误码、同消息的预定义错误匹配
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok || t.Err != nil {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// WithErr 基于预定义错误附加底层原因，不修改原值
func (e *AppError) WithErr(err error) *AppError {
	return Wrap(e.Code, e.Message, err)
}

// New 创建新错误
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// CodeOf 返回错误码，非 AppError 统一视为内部错误
func CodeOf(err error) int {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternalError
}

// 预定义错误
var (
	ErrInvalidPage      = New(CodeBadRequest, "分页参数错误")
	ErrInvalidPageMode  = New(CodeBadRequest, "分页模式不支持")
	ErrInvalidSort      = New(CodeBadRequest, "排序字段不支持")
	ErrInvalidSortParam = New(CodeBadRequest, "排序参数错误")
	ErrInvalidToken     = New(CodeUnauthorized, "无效的Token")
	ErrTokenExpired     = New(CodeUnauthorized, "Token已过期")
	ErrRecordNotFound   = New(CodeNotFound, "记录不存在")
)
