package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"member-query/internal/dto"
	"member-query/internal/pkg/config"
)

const (
	jobAgeIncrement     = "age_increment"
	defaultAgeIncrement = "0 0 0 1 1 *" // 每年1月1日零点
)

// AgeIncrementer 批量增加年龄，由 MemberService 实现
type AgeIncrementer interface {
	BulkIncrementAge(ctx context.Context, delta int) (*dto.BulkResponse, error)
}

// Scheduler 调度器
type Scheduler struct {
	cron          *cron.Cron
	logger        *zap.Logger
	members       AgeIncrementer
	cronSchedules map[string]cron.EntryID // 存储任务ID，便于管理
}

// NewScheduler 创建调度器
func NewScheduler(members AgeIncrementer, logger *zap.Logger) *Scheduler {
	// 创建 cron 实例（带秒级支持）
	c := cron.New(cron.WithSeconds())

	return &Scheduler{
		cron:          c,
		logger:        logger,
		members:       members,
		cronSchedules: make(map[string]cron.EntryID),
	}
}

// Start 启动调度器
func (s *Scheduler) Start(cfg *config.SchedulerConfig) error {
	log := s.logger.Sugar()

	log.Info("启动定时任务调度器...")

	// cron 表达式格式: 秒 分 时 日 月 周
	cronExpr := cfg.AgeIncrementCron
	if cronExpr == "" {
		cronExpr = defaultAgeIncrement
		log.Warnw("未配置scheduler.age_increment_cron，使用默认值", "cron", cronExpr)
	}

	entryID, err := s.cron.AddFunc(cronExpr, func() {
		log.Info("执行定时任务: 会员年龄加一")
		if err := s.TriggerAgeIncrement(context.Background()); err != nil {
			log.Errorf("会员年龄加一任务执行失败: %v", err)
		}
	})
	if err != nil {
		log.Errorf("注册会员年龄任务: %v 失败: %v", cronExpr, err)
		return err
	}

	s.cronSchedules[jobAgeIncrement] = entryID
	log.Infof("会员年龄任务已注册: %s entry_id=%d", cronExpr, entryID)

	s.cron.Start()
	log.Info("定时任务调度器启动成功")

	return nil
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.logger.Info("正在停止定时任务调度器...")

	// 停止 cron（等待正在执行的任务完成）
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.logger.Info("定时任务调度器已停止")
}

// TriggerAgeIncrement 手动触发一次年龄加一
func (s *Scheduler) TriggerAgeIncrement(ctx context.Context) error {
	resp, err := s.members.BulkIncrementAge(ctx, 1)
	if err != nil {
		return err
	}
	s.logger.Info("会员年龄加一完成", zap.Int64("affected", resp.Affected))
	return nil
}
