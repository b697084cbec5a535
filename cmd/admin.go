package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	adminUsername string
	adminPassword string
)

// adminCmd 管理员管理命令
var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "管理员管理命令",
}

// createAdminCmd 创建管理员
// 示例：./news-admin admin create --username editor
var createAdminCmd = &cobra.Command{
	Use:   "create",
	Short: "创建管理员账号",
	Long:  `创建管理员账号，未指定 --password 时从终端读取`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := initializeSystem()
		if err != nil {
			return err
		}
		password := adminPassword
		if password == "" {
			if password, err = promptPassword(); err != nil {
				return err
			}
		}

		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.close()

		admin, err := a.admins.Create(cmd.Context(), adminUsername, password)
		if err != nil {
			return err
		}
		fmt.Printf("管理员创建成功: id=%d username=%s\n", admin.ID, admin.Username)
		return nil
	},
}

// promptPassword 从终端读取两次密码
func promptPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	fmt.Print("请输入管理员密码: ")
	first, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("读取密码失败: %w", err)
	}

	fmt.Print("请确认管理员密码: ")
	second, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("读取确认密码失败: %w", err)
	}

	if string(first) != string(second) {
		return "", fmt.Errorf("两次输入的密码不一致")
	}
	return string(first), nil
}

func init() {
	createAdminCmd.Flags().StringVarP(&adminUsername, "username", "u", "", "管理员账号")
	createAdminCmd.Flags().StringVarP(&adminPassword, "password", "p", "", "管理员密码")
	_ = createAdminCmd.MarkFlagRequired("username")

	adminCmd.AddCommand(createAdminCmd)
	rootCmd.AddCommand(adminCmd)
}
