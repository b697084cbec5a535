package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoryName string

// categoryCmd 分类管理命令
var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "分类管理命令",
}

// createCategoryCmd 创建分类
// 示例：./news-admin category create --name 国内
var createCategoryCmd = &cobra.Command{
	Use:   "create",
	Short: "创建文章分类",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := initializeSystem()
		if err != nil {
			return err
		}
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.close()

		category, err := a.categories.Create(cmd.Context(), categoryName)
		if err != nil {
			return err
		}
		fmt.Printf("分类创建成功: id=%d name=%s\n", category.ID, category.Name)
		return nil
	},
}

func init() {
	createCategoryCmd.Flags().StringVarP(&categoryName, "name", "n", "", "分类名称")
	_ = createCategoryCmd.MarkFlagRequired("name")

	categoryCmd.AddCommand(createCategoryCmd)
	rootCmd.AddCommand(categoryCmd)
}
