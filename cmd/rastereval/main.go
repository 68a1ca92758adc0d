// rastereval 对比学生栅格与参考栅格的正值像元重叠率，用于空间分析作业自动评分
package main

import "github.com/wgdzlh/rasterlap/internal/cli"

var version = "dev"

func main() {
	cli.Version = version
	cli.Execute(cli.NewRootCommand())
}
