package validate

import (
	"errors"
	"testing"

	"github.com/nsxzhou1114/news-admin/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Title string `validate:"required,min=1,max=5" label:"标题"`
	Image string `validate:"omitempty,min=1,max=3" label:"图片"`
	When  string `validate:"omitempty,datetime=2006-01-02 15:04:05" label:"开始时间"`
	Flag  *int   `validate:"required" label:"显示状态"`
}

func one() *int {
	v := 1
	return &v
}

func TestStructValid(t *testing.T) {
	err := Struct(&sample{Title: "新闻", Flag: one(), When: "2024-01-02 03:04:05"})
	require.NoError(t, err)
}

func TestStructCountsRunesNotBytes(t *testing.T) {
	// 5 个汉字占 15 字节，仍在上限内
	require.NoError(t, Struct(&sample{Title: "五个汉字啊", Flag: one()}))

	err := Struct(&sample{Title: "六个汉字啊啊", Flag: one()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errcode.ErrValidation))
	assert.Equal(t, "标题长度不能大于5个字符", errcode.MessageOf(err))
}

func TestStructReportsFirstViolation(t *testing.T) {
	err := Struct(&sample{Title: "", Image: "toolong", When: "bad"})
	require.Error(t, err)
	assert.Equal(t, "标题不能为空", errcode.MessageOf(err))
}

func TestStructMessages(t *testing.T) {
	tests := []struct {
		name string
		in   sample
		want string
	}{
		{"optional too long", sample{Title: "a", Image: "abcd", Flag: one()}, "图片长度不能大于3个字符"},
		{"bad datetime", sample{Title: "a", When: "2024-01-02", Flag: one()}, "开始时间格式不对"},
		{"missing pointer", sample{Title: "a"}, "显示状态不能为空"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(&tt.in)
			require.Error(t, err)
			assert.Equal(t, tt.want, errcode.MessageOf(err))
		})
	}
}
