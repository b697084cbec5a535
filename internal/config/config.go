package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 全局配置结构体
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	MySQL         DatabaseConfig      `mapstructure:"mysql"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Log           LogConfig           `mapstructure:"log"`
	JWT           JWTConfig           `mapstructure:"jwt"`
	Article       ArticleConfig       `mapstructure:"article"`
	Metrics       MetricsConfig       `mapstructure:"metrics"`
	NodeID        int64               `mapstructure:"node_id"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name string `mapstructure:"name"`
	Mode string `mapstructure:"mode"`
	Port int    `mapstructure:"port"`
}

// JWTConfig JWT配置
type JWTConfig struct {
	SecretKey           string `mapstructure:"secret_key"`
	AccessExpireSeconds int    `mapstructure:"access_expire_seconds"`
	Issuer              string `mapstructure:"issuer"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Username       string `mapstructure:"username"`
	Password       string `mapstructure:"password"`
	Database       string `mapstructure:"database"`
	Charset        string `mapstructure:"charset"`
	MaxIdleConns   int    `mapstructure:"max_idle_conns"`
	MaxOpenConns   int    `mapstructure:"max_open_conns"`
	LogLevel       string `mapstructure:"log_level"`
	ConnectRetries uint   `mapstructure:"connect_retries"`
}

// DSN 获取数据库连接字符串
// clientFoundRows 让 UPDATE 返回匹配行数而不是实际变更行数
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local&clientFoundRows=true",
		c.Username, c.Password, c.Host, c.Port, c.Database, c.Charset)
}

// ElasticsearchConfig Elasticsearch配置
type ElasticsearchConfig struct {
	URLs      []string `mapstructure:"urls"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
	BodyIndex string   `mapstructure:"body_index"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxAge     int    `mapstructure:"max_age"`
	MaxBackups int    `mapstructure:"max_backups"`
	Compress   bool   `mapstructure:"compress"`
	Stdout     bool   `mapstructure:"stdout"`
}

// 文章正文存储后端
const (
	BodyStoreMySQL         = "mysql"
	BodyStoreElasticsearch = "elasticsearch"
)

// ArticleConfig 文章管理配置
type ArticleConfig struct {
	BodyStore       string   `mapstructure:"body_store"`
	SanitizeContent bool     `mapstructure:"sanitize_content"`
	SensitiveWords  []string `mapstructure:"sensitive_words"`
	SensitiveDict   string   `mapstructure:"sensitive_dict"`
	DefaultPageSize int      `mapstructure:"default_page_size"`
}

// MetricsConfig 监控指标配置
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

var (
	// GlobalConfig 全局配置实例
	GlobalConfig *Config
	// 配置Viper实例
	viperInstance *viper.Viper
	mu            sync.RWMutex
)

// setDefaults 设置默认值
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "news-admin")
	v.SetDefault("app.mode", "release")
	v.SetDefault("app.port", 8080)
	v.SetDefault("mysql.charset", "utf8mb4")
	v.SetDefault("mysql.max_idle_conns", 10)
	v.SetDefault("mysql.max_open_conns", 100)
	v.SetDefault("mysql.connect_retries", 3)
	v.SetDefault("elasticsearch.body_index", "news_data")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.stdout", true)
	v.SetDefault("jwt.access_expire_seconds", 7200)
	v.SetDefault("jwt.issuer", "news-admin")
	v.SetDefault("article.body_store", BodyStoreMySQL)
	v.SetDefault("article.sanitize_content", true)
	v.SetDefault("article.default_page_size", 20)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// Init 初始化配置
func Init(configPath string) error {
	// .env 不存在时忽略
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(configPath)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("读取配置文件失败: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return fmt.Errorf("解析配置文件失败: %w", err)
	}
	if err := config.Validate(); err != nil {
		return err
	}

	mu.Lock()
	GlobalConfig = &config
	viperInstance = v
	mu.Unlock()
	return nil
}

// Validate 校验配置
func (c *Config) Validate() error {
	switch c.Article.BodyStore {
	case BodyStoreMySQL:
	case BodyStoreElasticsearch:
		if len(c.Elasticsearch.URLs) == 0 {
			return fmt.Errorf("正文存储为elasticsearch时必须配置elasticsearch.urls")
		}
	default:
		return fmt.Errorf("不支持的正文存储: %s", c.Article.BodyStore)
	}
	if c.NodeID < 0 || c.NodeID > 1023 {
		return fmt.Errorf("node_id 必须在0-1023之间: %d", c.NodeID)
	}
	return nil
}

// Watch 监听配置文件变化，重新解析成功后回调
func Watch(onChange func(*Config)) {
	mu.RLock()
	v := viperInstance
	mu.RUnlock()
	if v == nil {
		return
	}

	v.OnConfigChange(func(in fsnotify.Event) {
		var config Config
		if err := v.Unmarshal(&config); err != nil {
			return
		}
		mu.Lock()
		GlobalConfig = &config
		mu.Unlock()
		if onChange != nil {
			onChange(&config)
		}
	})
	v.WatchConfig()
}

// GetConfig 获取全局配置
func GetConfig() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return GlobalConfig
}
