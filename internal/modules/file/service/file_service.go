package service

import (
	"os"
	"path/filepath"

	"os-blog-server/internal/db"
	"os-blog-server/internal/logger"
	"os-blog-server/internal/model"
	"os-blog-server/internal/modules/access"
	moduledto "os-blog-server/internal/modules/file/dto"
	"os-blog-server/internal/modules/file/repo"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/utils"
)

// List 管理员可查看全部文件，其他用户只能看到自己上传的文件。
func (s *Service) List(actor *access.Principal, req moduledto.ListFilesRequest) ([]model.File, int64, error) {
	if actor == nil {
		return nil, 0, platformservice.NewUnauthorizedError("未登录")
	}
	params := repo.ListFilesParams{
		Category: req.Category,
		Offset:   (req.Page - 1) * req.PageSize,
		Limit:    req.PageSize,
	}
	if !actor.IsAdmin() {
		uploaderID := actor.UserID
		params.UploaderID = &uploaderID
	}

	files, total, err := s.fileStore.ListFiles(params)
	if err != nil {
		return nil, 0, platformservice.NewInternalError("获取文件列表失败")
	}
	return files, total, nil
}

// Delete 上传者或管理员可删除，先删记录再删磁盘文件。
func (s *Service) Delete(actor *access.Principal, id uint) error {
	file, err := s.fileStore.FindByID(id)
	if err != nil {
		if db.IsNotFound(err) {
			return platformservice.NewNotFoundError("文件不存在")
		}
		return platformservice.NewInternalError("删除文件失败")
	}
	if !actor.CanManage(file.UploaderID) {
		return platformservice.NewForbiddenError("无权删除该文件")
	}

	if err := s.fileStore.DeleteByID(id); err != nil {
		if db.IsNotFound(err) {
			return platformservice.NewNotFoundError("文件不存在")
		}
		return platformservice.NewInternalError("删除文件失败")
	}
	s.removeFromDisk(file)
	return nil
}

// DeleteAllByUploader 删除用户时清理其全部上传文件。
func (s *Service) DeleteAllByUploader(userID uint) error {
	files, err := s.fileStore.FindByUploader(userID)
	if err != nil {
		return err
	}
	if err := s.fileStore.DeleteByUploader(userID); err != nil {
		return err
	}
	for i := range files {
		s.removeFromDisk(&files[i])
	}
	return nil
}

func (s *Service) removeFromDisk(file *model.File) {
	fullPath, err := utils.SecureJoin(s.uploadRoot(), filepath.FromSlash(file.Path))
	if err != nil {
		logger.Warningf("⚠️ 跳过不安全的文件路径 %s: %v", file.Path, err)
		return
	}
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		logger.Warningf("⚠️ 删除磁盘文件失败 %s: %v", fullPath, err)
	}
}
