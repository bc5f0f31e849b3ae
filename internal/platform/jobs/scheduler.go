// Package jobs 注册后台定时任务。
package jobs

import (
	"os-blog-server/internal/logger"

	"github.com/robfig/cron/v3"
)

// SpamPurger 清理超过保留期的垃圾评论。
type SpamPurger interface {
	PurgeSpam() (int64, error)
}

type Scheduler struct {
	cron *cron.Cron
}

func NewScheduler(purger SpamPurger) (*Scheduler, error) {
	c := cron.New()
	if _, err := c.AddJob("@daily", NewPurgeSpamJob(purger)); err != nil {
		return nil, err
	}
	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("✅ 定时任务已启动")
}

// Stop 停止调度并等待正在运行的任务结束。
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
