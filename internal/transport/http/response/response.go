package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"berg-stat-api/pkg/apperr"
)

// 约定的错误响应形状：{message, ...}，状态码 403/404/400/422/500

func OK(c *gin.Context, data any) { c.JSON(http.StatusOK, data) }

func Forbidden(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": msg})
}

func NotFound(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": msg})
}

func BadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": msg})
}

// BadData 请求体形状校验失败，422 + 逐字段原因
func BadData(c *gin.Context, reasons []string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
		"message": "Invalid request data.",
		"reasons": reasons,
	})
}

func ServerError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
}

// Fail 把业务错误类别映射为 HTTP 状态；未识别的错误记入 gin 错误栈并回 500
func Fail(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindUnauthenticated, apperr.KindForbidden:
		Forbidden(c, err.Error())
	case apperr.KindNotFound:
		NotFound(c, err.Error())
	case apperr.KindInvalidInput, apperr.KindConflict:
		BadRequest(c, err.Error())
	default:
		_ = c.Error(err)
		ServerError(c)
	}
}

// BindJSON 绑定失败统一回 422
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		BadData(c, bindingReasons(err))
		return false
	}
	return true
}

func bindingReasons(err error) []string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		reasons := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			reasons = append(reasons, fe.Field()+" failed on the '"+fe.Tag()+"' rule")
		}
		return reasons
	}
	return []string{err.Error()}
}
