package service

import (
	"runtime"

	moduledto "os-blog-server/internal/modules/system/dto"
	platformservice "os-blog-server/internal/platform/service"
)

// AdminGetServerStats 获取后台仪表盘统计数据。
func (s *Service) AdminGetServerStats() (*moduledto.ServerStatsResponse, error) {
	counts, err := s.systemStore.CountContent()
	if err != nil {
		return nil, platformservice.NewInternalError("统计数据失败")
	}

	return &moduledto.ServerStatsResponse{
		UserCount:       counts.Users,
		PostCount:       counts.Posts,
		PublishedCount:  counts.PublishedPosts,
		CategoryCount:   counts.Categories,
		TagCount:        counts.Tags,
		PendingComments: counts.PendingComments,
		FileCount:       counts.Files,
		StorageUsage:    counts.FileBytes,
		SystemInfo: moduledto.SystemInfoResponse{
			OS:           runtime.GOOS,
			Arch:         runtime.GOARCH,
			GoVersion:    runtime.Version(),
			NumCPU:       runtime.NumCPU(),
			NumGoroutine: runtime.NumGoroutine(),
		},
	}, nil
}
