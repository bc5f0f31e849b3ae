package handler

import tagservice "os-blog-server/internal/modules/tag/service"

type Handler struct {
	tagService *tagservice.Service
}

func New(tagService *tagservice.Service) *Handler {
	return &Handler{tagService: tagService}
}
