package consts

// 构建时可通过 -ldflags "-X os-blog-server/internal/consts.ApplicationVersion=..." 覆盖。
var (
	ApplicationName    = "OS Blog Server"
	ApplicationVersion = "dev"
)
