package main

import "github.com/nsxzhou1114/news-admin/cmd"

func main() {
	cmd.Execute()
}
