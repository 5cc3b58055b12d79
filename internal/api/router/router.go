package router

import (
	"context"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"cv-autofill-go/internal/api/handler"
	"cv-autofill-go/internal/processor"
)

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, profileHandler *handler.ProfileHandler) {
	api := h.Group("/api/v1")

	api.POST("/profile/parse", func(c context.Context, ctx *app.RequestContext) {
		// 获取上传的文件
		fileHeader, err := ctx.FormFile("file")
		if err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "文件未找到"})
			return
		}

		// 打开文件
		file, err := fileHeader.Open()
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "打开文件失败"})
			return
		}
		defer file.Close()

		resp, err := profileHandler.HandleParseRequest(
			c,
			file,
			fileHeader.Size,
			fileHeader.Filename,
		)
		if err != nil {
			status, body := errorResponse(err)
			ctx.JSON(status, body)
			return
		}

		ctx.JSON(consts.StatusOK, resp)
	})

	// 添加健康检查
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}

// errorResponse 把管道错误映射为HTTP状态码和对外响应体
// 对外只暴露错误码和用户提示，内部细节留在服务端日志里
func errorResponse(err error) (int, utils.H) {
	var profileErr *processor.ProfileError
	if !errors.As(err, &profileErr) {
		return consts.StatusInternalServerError, utils.H{"error": "内部错误"}
	}

	body := utils.H{
		"code":  string(profileErr.Code),
		"error": profileErr.UserMessage,
	}

	switch profileErr.Code {
	case processor.CodeUnsupportedFormat:
		return consts.StatusUnsupportedMediaType, body
	case processor.CodeSizeLimitExceeded:
		return consts.StatusRequestEntityTooLarge, body
	case processor.CodeCorruptedFile,
		processor.CodePasswordProtected,
		processor.CodeEmptyContent,
		processor.CodeInsufficientContent:
		return consts.StatusUnprocessableEntity, body
	case processor.CodeTimeout:
		return consts.StatusGatewayTimeout, body
	default:
		return consts.StatusInternalServerError, body
	}
}
