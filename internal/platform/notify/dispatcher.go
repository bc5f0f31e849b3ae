// Package notify 把静态站点重建事件异步推送到外部 webhook。
// 请求处理路径只负责入队，推送由单个后台 worker 完成，失败只记录日志。
package notify

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"os-blog-server/internal/consts"
	"os-blog-server/internal/logger"

	"github.com/goccy/go-json"
)

const (
	DefaultQueueSize      = 64
	defaultTimeoutSeconds = 5

	EventPostPublished   = "post.published"
	EventPostUnpublished = "post.unpublished"
	EventPostUpdated     = "post.updated"
	EventPostDeleted     = "post.deleted"
)

// Event 静态站点需要重建的原因。
type Event struct {
	Type       string    `json:"type"`
	PostID     uint      `json:"post_id"`
	Slug       string    `json:"slug"`
	OccurredAt time.Time `json:"occurred_at"`
}

// SettingsReader 读取 webhook 地址与超时，由 AppService 实现。
type SettingsReader interface {
	GetString(key string) string
	GetInt(key string) int
}

type Dispatcher struct {
	settings SettingsReader
	client   *http.Client
	queue    chan Event

	startOnce sync.Once
	stopOnce  sync.Once
	done      chan struct{}
	stopped   chan struct{}
}

func NewDispatcher(settings SettingsReader, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Dispatcher{
		settings: settings,
		client:   &http.Client{},
		queue:    make(chan Event, queueSize),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// Start 启动后台 worker，重复调用无副作用。
func (d *Dispatcher) Start() {
	d.startOnce.Do(func() {
		go d.run()
	})
}

// Enqueue 非阻塞入队。队列已满或已停止时丢弃事件并返回 false。
func (d *Dispatcher) Enqueue(event Event) bool {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	select {
	case <-d.done:
		logger.Warningf("⚠️ 重建通知已停止，丢弃事件 %s(%d)", event.Type, event.PostID)
		return false
	default:
	}

	select {
	case d.queue <- event:
		return true
	default:
		logger.Warningf("⚠️ 重建通知队列已满，丢弃事件 %s(%d)", event.Type, event.PostID)
		return false
	}
}

// Stop 通知 worker 退出并等待其结束，ctx 超时后直接返回。
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.stopOnce.Do(func() {
		close(d.done)
	})
	d.startOnce.Do(func() {
		// 从未启动过，直接标记结束
		close(d.stopped)
	})
	select {
	case <-d.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) run() {
	defer close(d.stopped)
	for {
		select {
		case <-d.done:
			d.drain()
			return
		case event := <-d.queue:
			d.deliver(event)
		}
	}
}

// drain 停止前尽量把已入队的事件发送出去。
func (d *Dispatcher) drain() {
	for {
		select {
		case event := <-d.queue:
			d.deliver(event)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(event Event) {
	url := d.settings.GetString(consts.ConfigStaticRegenWebhookURL)
	if url == "" {
		logger.Debugf("重建 webhook 未配置，跳过事件 %s(%d)", event.Type, event.PostID)
		return
	}
	if err := d.post(url, event); err != nil {
		logger.Warningf("⚠️ 推送重建事件 %s(%d) 失败: %v", event.Type, event.PostID, err)
		return
	}
	logger.Debugf("重建事件 %s(%d) 已推送", event.Type, event.PostID)
}

func (d *Dispatcher) post(url string, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	timeout := d.settings.GetInt(consts.ConfigStaticRegenTimeoutSeconds)
	if timeout <= 0 {
		timeout = defaultTimeoutSeconds
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook 返回状态码 %d", resp.StatusCode)
	}
	return nil
}
