package jobs

import "os-blog-server/internal/logger"

type PurgeSpamJob struct {
	purger SpamPurger
}

func NewPurgeSpamJob(purger SpamPurger) *PurgeSpamJob {
	return &PurgeSpamJob{purger: purger}
}

// Run 实现 cron.Job，失败只记录日志。
func (j *PurgeSpamJob) Run() {
	n, err := j.purger.PurgeSpam()
	if err != nil {
		logger.Warningf("⚠️ 清理垃圾评论失败: %v", err)
		return
	}
	if n > 0 {
		logger.Infof("🧹 已清理 %d 条过期垃圾评论", n)
	}
}
