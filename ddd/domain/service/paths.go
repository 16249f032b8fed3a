package service

import (
	"path/filepath"
	"strings"

	"subflix/ddd/domain/entity"
	"subflix/ddd/domain/vo"
)

// SourceRoot 解析内容类型对应的源目录。第二个返回值为false表示该内容
// 类型未配置源目录(功能禁用,不是错误)。
func SourceRoot(settings *entity.Settings, contentType vo.ContentType) (string, bool) {
	root := strings.TrimSpace(settings.SourcePath(contentType))
	return root, root != ""
}

// OutputRoot 解析内容类型对应的输出目录
func OutputRoot(settings *entity.Settings, contentType vo.ContentType) (string, bool) {
	root := strings.TrimSpace(settings.OutputPath(contentType))
	return root, root != ""
}

// OutputFilePath 计算任务输出路径: <output_root>/<stem>.<lang>.<video_ext>
func OutputFilePath(outputRoot, videoFileName, language string) string {
	ext := filepath.Ext(videoFileName)
	stem := strings.TrimSuffix(videoFileName, ext)
	return filepath.Join(outputRoot, stem+"."+language+ext)
}
