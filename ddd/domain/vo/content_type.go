package vo

// ContentType 媒体库类型
type ContentType string

const (
	// ContentTypeMovies 电影库
	ContentTypeMovies ContentType = "movies"
	// ContentTypeTVShows 剧集库
	ContentTypeTVShows ContentType = "tvshows"
)

// IsValid 检查类型是否有效
func (c ContentType) IsValid() bool {
	return c == ContentTypeMovies || c == ContentTypeTVShows
}

// String 返回类型字符串
func (c ContentType) String() string {
	return string(c)
}
