package service

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"os-blog-server/internal/consts"
	"os-blog-server/internal/logger"
	"os-blog-server/internal/model"
	"os-blog-server/internal/modules/access"
	moduledto "os-blog-server/internal/modules/file/dto"
	platformservice "os-blog-server/internal/platform/service"
	"os-blog-server/internal/utils"

	"github.com/google/uuid"
)

var uploadCategories = map[string]bool{
	moduledto.CategorySettings:        true,
	moduledto.CategoryProfilePictures: true,
	moduledto.CategoryBlogImages:      true,
}

// ValidateUploadFile 校验文件大小、扩展名与真实内容，返回小写扩展名。
func (s *Service) ValidateUploadFile(file *multipart.FileHeader) (string, error) {
	maxSizeMB := s.GetInt64(consts.ConfigMaxUploadSize)
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	if file.Size > maxSizeMB*1024*1024 {
		return "", platformservice.NewValidationError(fmt.Sprintf("文件大小不能超过 %dMB", maxSizeMB))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		return "", platformservice.NewValidationError("无法识别文件类型")
	}
	allowed := false
	for _, allowExt := range strings.Split(s.GetString(consts.ConfigAllowFileExtensions), ",") {
		if strings.TrimSpace(strings.ToLower(allowExt)) == ext {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", platformservice.NewValidationError("不支持的文件类型: " + ext)
	}

	src, err := file.Open()
	if err != nil {
		return "", platformservice.NewValidationError("无法打开上传的文件")
	}
	defer func() { _ = src.Close() }()

	if valid, msg := utils.ValidateImageContent(src, ext); !valid {
		return "", platformservice.NewValidationError(msg)
	}
	return ext, nil
}

// Upload 保存上传文件并记录 File 行，返回记录与公开访问地址。
// settings 分类只允许管理员上传。
func (s *Service) Upload(actor *access.Principal, category string, file *multipart.FileHeader) (*model.File, string, error) {
	if actor == nil {
		return nil, "", platformservice.NewUnauthorizedError("未登录")
	}
	if !uploadCategories[category] {
		return nil, "", platformservice.NewValidationError("不支持的上传分类")
	}
	if category == moduledto.CategorySettings && !actor.IsAdmin() {
		return nil, "", platformservice.NewForbiddenError("只有管理员可以上传站点设置文件")
	}

	ext, err := s.ValidateUploadFile(file)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	newFilename := uuid.New().String() + ext
	relativePath := path.Join(category, now.Format("2006"), now.Format("01"), now.Format("02"), newFilename)

	dst, err := utils.SecureJoin(s.uploadRoot(), filepath.FromSlash(relativePath))
	if err != nil {
		logger.Errorf("❌ 上传路径不安全: %v", err)
		return nil, "", platformservice.NewInternalError("系统错误: 存储路径不可用")
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		logger.Errorf("❌ 创建上传目录失败: %v", err)
		return nil, "", platformservice.NewInternalError("系统错误: 无法创建存储目录")
	}

	if err := saveUploadedFile(file, dst); err != nil {
		_ = os.Remove(dst)
		logger.Errorf("❌ 保存上传文件失败: %v", err)
		return nil, "", platformservice.NewInternalError("文件保存失败")
	}

	record := &model.File{
		Category:   category,
		Filename:   newFilename,
		Path:       relativePath,
		Size:       file.Size,
		MimeType:   mimeTypeOf(ext),
		UploaderID: actor.UserID,
	}
	if err := s.fileStore.Create(record); err != nil {
		// 回滚磁盘文件
		_ = os.Remove(dst)
		logger.Errorf("❌ 记录上传文件失败: %v", err)
		return nil, "", platformservice.NewInternalError("系统错误: 数据库记录失败")
	}

	return record, s.PublicURL(record.Path), nil
}

// PublicURL 拼接文件的公开访问地址。
func (s *Service) PublicURL(relativePath string) string {
	prefix := s.upload.URLPrefix
	if prefix == "" {
		prefix = "/uploads/"
	}
	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(relativePath, "/")
}

func (s *Service) uploadRoot() string {
	if s.upload.Path == "" {
		return "uploads/files"
	}
	return s.upload.Path
}

func saveUploadedFile(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func mimeTypeOf(ext string) string {
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
