package dto

type TagRequest struct {
	Name string `json:"name" binding:"required"`
}
