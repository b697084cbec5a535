package errcode

import (
	"errors"
	"fmt"
)

// Code 业务错误码，均为负数
type Code int

const (
	// 参数校验错误
	Validation Code = -1100
	// 未登录或凭证无效
	Unauthorized Code = -1001
	// 资源不存在或已删除
	NotFound Code = -1004
	// 数据不一致
	DataIntegrity Code = -2100
	// 未知错误
	Unknown Code = -2000
)

// codeMsg 错误码默认消息
var codeMsg = map[Code]string{
	Validation:    "无效的参数",
	Unauthorized:  "请先登录",
	NotFound:      "资源不存在",
	DataIntegrity: "数据异常",
	Unknown:       "服务器内部错误",
}

// Error 业务错误
type Error struct {
	Code    Code
	Message string
}

// Error 实现 error 接口
func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Is 按错误码比较，使 errors.Is(err, errcode.ErrNotFound) 成立
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

var (
	ErrValidation    = &Error{Code: Validation, Message: codeMsg[Validation]}
	ErrUnauthorized  = &Error{Code: Unauthorized, Message: codeMsg[Unauthorized]}
	ErrNotFound      = &Error{Code: NotFound, Message: codeMsg[NotFound]}
	ErrDataIntegrity = &Error{Code: DataIntegrity, Message: codeMsg[DataIntegrity]}
)

// New 创建业务错误，message 为空时使用默认消息
func New(code Code, message string) *Error {
	if message == "" {
		message = GetMsg(code)
	}
	return &Error{Code: code, Message: message}
}

// Newf 格式化创建业务错误
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// GetMsg 获取错误码对应的默认消息
func GetMsg(code Code) string {
	if msg, ok := codeMsg[code]; ok {
		return msg
	}
	return "未知错误"
}

// CodeOf 提取错误码，非业务错误返回 Unknown
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Unknown
}

// MessageOf 提取错误消息，非业务错误返回默认消息
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return GetMsg(Unknown)
}
