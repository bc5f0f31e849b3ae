package handler

import (
	"net/http"

	"os-blog-server/internal/modules/common/httpx"
	moduledto "os-blog-server/internal/modules/file/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Upload(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		httpx.BadRequest(c, "请选择文件")
		return
	}

	record, url, err := h.fileService.Upload(principal, c.Param("category"), file)
	if err != nil {
		httpx.WriteServiceError(c, err, "上传失败，请稍后重试")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "上传成功",
		"data":    moduledto.UploadResponse{File: record, URL: url},
	})
}

func (h *Handler) List(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	page, pageSize := httpx.ParsePagination(c)

	files, total, err := h.fileService.List(principal, moduledto.ListFilesRequest{
		Page:     page,
		PageSize: pageSize,
		Category: c.Query("category"),
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "获取文件列表失败")
		return
	}
	httpx.WritePage(c, files, total, page, pageSize)
}

func (h *Handler) Delete(c *gin.Context) {
	principal, ok := currentPrincipal(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		httpx.BadRequest(c, "无效的文件ID")
		return
	}

	if err := h.fileService.Delete(principal, id); err != nil {
		httpx.WriteServiceError(c, err, "删除文件失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}
