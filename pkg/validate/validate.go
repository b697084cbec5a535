package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nsxzhou1114/news-admin/pkg/errcode"
)

// DateTimeLayout 时间参数统一格式
const DateTimeLayout = "2006-01-02 15:04:05"

var validate = newValidator()

// 错误信息模板，字符串长度按字符数计算
var msgMap = map[string]string{
	"required": "不能为空",
	"min":      "长度不能小于%v个字符",
	"max":      "长度不能大于%v个字符",
	"datetime": "格式不对",
	"oneof":    "必须是[%v]中的一个",
	"gt":       "必须大于%v",
	"gte":      "必须大于等于%v",
	"lt":       "必须小于%v",
	"lte":      "必须小于等于%v",
}

func newValidator() *validator.Validate {
	v := validator.New()
	// 使用 label 标签作为字段展示名
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})
	return v
}

// Struct 按结构体上的 validate 规则校验，返回第一条违规对应的业务错误
func Struct(i any) error {
	err := validate.Struct(i)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		return errcode.New(errcode.Validation, FormatValidationError(errs))
	}
	return err
}

// FormatValidationError 将第一条校验错误转换为可读消息
func FormatValidationError(errs validator.ValidationErrors) string {
	firstErr := errs[0]

	fieldName := firstErr.Field()

	msgTemplate := msgMap[firstErr.Tag()]
	if msgTemplate == "" {
		msgTemplate = "验证失败"
	}

	if firstErr.Param() != "" && strings.Contains(msgTemplate, "%v") {
		return fieldName + fmt.Sprintf(msgTemplate, firstErr.Param())
	}

	return fieldName + msgTemplate
}
