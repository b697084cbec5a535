package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nsxzhou1114/news-admin/internal/config"
	"github.com/nsxzhou1114/news-admin/internal/logger"
	"github.com/nsxzhou1114/news-admin/internal/router"
	"github.com/nsxzhou1114/news-admin/pkg/idgen"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var configPath string

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "news-admin",
	Short: "新闻文章管理后台",
	Long:  `新闻文章管理后台服务，提供文章的列表、详情、新增、编辑、删除和排序`,
}

// serveCmd 启动服务命令
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动HTTP服务",
	Long:  `启动文章管理后台的HTTP服务器`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return startServer(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./config", "配置文件路径")
	rootCmd.AddCommand(serveCmd)
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// startServer 启动HTTP服务，收到中断信号后优雅关闭
func startServer(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	cfg, err := initializeSystem()
	if err != nil {
		return err
	}
	defer logger.Sync()

	a, err := newApp(cfg)
	if err != nil {
		return fmt.Errorf("系统初始化失败: %w", err)
	}
	defer a.close()

	gen, err := idgen.New(cfg.NodeID)
	if err != nil {
		return err
	}

	// 配置文件变更时调整日志级别
	config.Watch(func(c *config.Config) {
		logger.SetLevel(c.Log.Level)
		logger.Info("配置已重新加载", zap.String("log_level", c.Log.Level))
	})

	gin.SetMode(cfg.App.Mode)
	r := router.New(router.Deps{
		ArticleService: a.articles,
		AdminService:   a.admins,
		Tokens:         a.tokens,
		Metrics:        a.metrics,
		MetricsPath:    cfg.Metrics.Path,
		IDGen:          gen,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("服务已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP服务启动失败: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("关闭服务...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("服务异常退出", zap.Error(err))
		return err
	}
	logger.Info("服务已关闭")
	return nil
}
