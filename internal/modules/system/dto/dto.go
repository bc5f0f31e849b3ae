package dto

type SetupAdminRequest struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	BlogTitle       string `json:"blog_title" binding:"required"`
	BlogDescription string `json:"blog_description"`
}

type SystemInfoResponse struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	GoVersion    string `json:"go_version"`
	NumCPU       int    `json:"num_cpu"`
	NumGoroutine int    `json:"num_goroutine"`
}

type ServerStatsResponse struct {
	UserCount       int64              `json:"user_count"`
	PostCount       int64              `json:"post_count"`
	PublishedCount  int64              `json:"published_count"`
	CategoryCount   int64              `json:"category_count"`
	TagCount        int64              `json:"tag_count"`
	PendingComments int64              `json:"pending_comments"`
	FileCount       int64              `json:"file_count"`
	StorageUsage    int64              `json:"storage_usage"`
	SystemInfo      SystemInfoResponse `json:"system_info"`
}
