package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// 编译时通过 -ldflags 设置
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

var versionShort bool

// versionCmd 版本信息命令
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "显示版本信息",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(out, Version)
			return
		}
		fmt.Fprintf(out, "新闻文章管理后台\n")
		fmt.Fprintf(out, "版本: %s\n", Version)
		fmt.Fprintf(out, "Git提交: %s\n", GitCommit)
		fmt.Fprintf(out, "构建时间: %s\n", BuildTime)
		fmt.Fprintf(out, "Go版本: %s\n", runtime.Version())
		fmt.Fprintf(out, "平台: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "只输出版本号")
	rootCmd.AddCommand(versionCmd)
}
