package service

import (
	"os-blog-server/internal/db"
	"os-blog-server/internal/model"
	"os-blog-server/internal/modules/access"
	moduledto "os-blog-server/internal/modules/post/dto"
	"os-blog-server/internal/modules/post/repo"
	platformservice "os-blog-server/internal/platform/service"
)

// ListPublished 公开文章列表，只会返回已发布文章，按发布时间倒序。
func (s *Service) ListPublished(req moduledto.PublishedListRequest) ([]model.Post, int64, error) {
	posts, total, err := s.postStore.List(repo.PostListFilter{
		Page:          req.Page,
		PageSize:      req.PageSize,
		CategorySlug:  req.CategorySlug,
		TagSlug:       req.TagSlug,
		AuthorID:      req.AuthorID,
		Search:        req.Search,
		PublishedOnly: true,
	})
	if err != nil {
		return nil, 0, platformservice.NewInternalError("获取文章列表失败")
	}
	return posts, total, nil
}

// GetBySlug 按 slug 读取文章。未发布的文章只有作者与管理员可以预览，其他人得到 NotFound。
func (s *Service) GetBySlug(viewer *access.Principal, slug string) (*model.Post, error) {
	post, err := s.postStore.FindBySlug(slug)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, platformservice.NewNotFoundError("文章不存在")
		}
		return nil, platformservice.NewInternalError("获取文章失败")
	}
	if !post.Published && !viewer.CanManage(post.AuthorID) {
		return nil, platformservice.NewNotFoundError("文章不存在")
	}
	return post, nil
}

// GetByID 后台读取文章，不受发布状态限制，但需要是作者或管理员。
func (s *Service) GetByID(actor *access.Principal, id uint) (*model.Post, error) {
	return s.getManaged(actor, id)
}

// ListForAdmin 后台文章列表：管理员看到全部，作者只看到自己的文章。
func (s *Service) ListForAdmin(actor *access.Principal, req moduledto.AdminListRequest) ([]model.Post, int64, error) {
	filter := repo.PostListFilter{
		Page:      req.Page,
		PageSize:  req.PageSize,
		Search:    req.Search,
		Published: req.Published,
	}
	if !actor.IsAdmin() {
		authorID := actor.UserID
		filter.AuthorID = &authorID
	}
	posts, total, err := s.postStore.List(filter)
	if err != nil {
		return nil, 0, platformservice.NewInternalError("获取文章列表失败")
	}
	return posts, total, nil
}
