package cmd

import (
	"fmt"

	"github.com/nsxzhou1114/news-admin/internal/config"
	"github.com/nsxzhou1114/news-admin/internal/database"
	"github.com/nsxzhou1114/news-admin/internal/model"
	"github.com/spf13/cobra"
)

// databaseCmd 数据库管理命令
var databaseCmd = &cobra.Command{
	Use:   "db",
	Short: "数据库管理命令",
	Long:  `初始化数据库表和正文索引`,
}

// initTablesCmd 初始化数据库表
// 示例：./news-admin db init-tables
var initTablesCmd = &cobra.Command{
	Use:   "init-tables",
	Short: "初始化数据库表",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := initializeSystem()
		if err != nil {
			return err
		}
		db, err := database.InitMySQL(&cfg.MySQL)
		if err != nil {
			return err
		}
		if err := model.InitTables(db); err != nil {
			return err
		}
		fmt.Println("数据库表初始化完成")
		return nil
	},
}

// initIndexCmd 初始化正文索引
// 示例：./news-admin db init-index
var initIndexCmd = &cobra.Command{
	Use:   "init-index",
	Short: "初始化Elasticsearch正文索引",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := initializeSystem()
		if err != nil {
			return err
		}
		if len(cfg.Elasticsearch.URLs) == 0 {
			return fmt.Errorf("未配置elasticsearch.urls")
		}
		es, err := database.InitElasticsearch(&cfg.Elasticsearch, cfg.MySQL.ConnectRetries)
		if err != nil {
			return err
		}
		created, err := model.InitESIndices(es, cfg.Elasticsearch.BodyIndex)
		if err != nil {
			return err
		}
		if created {
			fmt.Printf("索引 %s 创建成功\n", indexName(cfg))
		} else {
			fmt.Printf("索引 %s 已存在，跳过\n", indexName(cfg))
		}
		return nil
	},
}

func indexName(cfg *config.Config) string {
	if cfg.Elasticsearch.BodyIndex != "" {
		return cfg.Elasticsearch.BodyIndex
	}
	return model.ArticleData{}.ESIndexName()
}

func init() {
	databaseCmd.AddCommand(initTablesCmd)
	databaseCmd.AddCommand(initIndexCmd)
	rootCmd.AddCommand(databaseCmd)
}
