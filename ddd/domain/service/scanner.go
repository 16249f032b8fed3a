package service

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// 扫描时按扩展名分类，其他文件一律忽略
var (
	videoExtensions    = map[string]bool{".mp4": true, ".mkv": true, ".ts": true}
	subtitleExtensions = map[string]bool{".srt": true, ".vtt": true, ".sub": true}
)

// ScanEntry 扫描发现的一个文件
type ScanEntry struct {
	Path string // 绝对路径
	Name string
	Size int64
}

// ScanResult 一次目录扫描的结果。遍历顺序为字典序，保证同一目录树
// 两次扫描产出相同序列。
type ScanResult struct {
	Videos    []ScanEntry
	Subtitles []ScanEntry
	Warnings  []string
}

// ScanLibrary 递归遍历媒体库根目录，分类出视频与字幕候选。
// 符号链接和不可读子树跳过并记录警告，不中断整个扫描。
func ScanLibrary(root string) (*ScanResult, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	result := &ScanResult{}
	walkErr := filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// 单个不可读子树不应使整个扫描失败
			result.Warnings = append(result.Warnings, "unreadable: "+path+": "+err.Error())
			return nil
		}

		// WalkDir不跟随符号链接,跳过即足以阻止进入链接目标
		if d.Type()&fs.ModeSymlink != 0 {
			result.Warnings = append(result.Warnings, "symlink skipped: "+path)
			return nil
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(d.Name()))
		switch {
		case videoExtensions[ext], subtitleExtensions[ext]:
			info, statErr := d.Info()
			if statErr != nil {
				result.Warnings = append(result.Warnings, "stat failed: "+path+": "+statErr.Error())
				return nil
			}
			entry := ScanEntry{Path: path, Name: d.Name(), Size: info.Size()}
			if videoExtensions[ext] {
				result.Videos = append(result.Videos, entry)
			} else {
				result.Subtitles = append(result.Subtitles, entry)
			}
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return result, nil
}

// IsVideoFile 判断文件名是否属于视频扩展集合
func IsVideoFile(name string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(name))]
}

// IsSubtitleFile 判断文件名是否属于字幕扩展集合
func IsSubtitleFile(name string) bool {
	return subtitleExtensions[strings.ToLower(filepath.Ext(name))]
}
