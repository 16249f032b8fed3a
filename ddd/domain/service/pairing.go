package service

import (
	"path/filepath"
	"strings"
)

// SubtitleMatch 视频与字幕的配对结果
type SubtitleMatch struct {
	Path     string
	Language string
}

// ResolveSubtitle 从同一库根下发现的字幕候选中为视频选出至多一个字幕。
//
// 匹配规则:字幕文件名必须形如 <stem>.<lang>.<ext>,其中 <stem> 与视频
// 去掉扩展名后的文件名精确相等(大小写敏感,不做模糊匹配),<lang> 是
// 2-3个字母的语言段,原样存储(ar/en/ara/eng)。缺少语言段的字幕视为
// 未匹配,而不是回退到默认语言。
//
// 同一stem下多个语言并存时的决策:2字母代码优先于3字母代码,其余情况
// 取遍历顺序中先出现者。候选序列来自字典序遍历,结果可重复。
func ResolveSubtitle(videoName string, candidates []ScanEntry) (SubtitleMatch, bool) {
	stem := strings.TrimSuffix(videoName, filepath.Ext(videoName))

	var best SubtitleMatch
	found := false
	for _, candidate := range candidates {
		lang, ok := subtitleLanguage(stem, candidate.Name)
		if !ok {
			continue
		}
		if !found {
			best = SubtitleMatch{Path: candidate.Path, Language: lang}
			found = true
			continue
		}
		// 较短的语言代码胜出,长度相同保留先出现者
		if len(lang) < len(best.Language) {
			best = SubtitleMatch{Path: candidate.Path, Language: lang}
		}
	}
	return best, found
}

// subtitleLanguage 校验字幕名是否为 <stem>.<lang>.<ext> 并抽取语言段
func subtitleLanguage(videoStem, subtitleName string) (string, bool) {
	withoutExt := strings.TrimSuffix(subtitleName, filepath.Ext(subtitleName))

	rest, ok := strings.CutPrefix(withoutExt, videoStem+".")
	if !ok {
		return "", false
	}
	if !isLanguageCode(rest) {
		return "", false
	}
	return rest, true
}

// isLanguageCode 语言段限定为2-3个ASCII字母
func isLanguageCode(s string) bool {
	if len(s) < 2 || len(s) > 3 {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
