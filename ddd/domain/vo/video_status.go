package vo

// VideoStatus 视频文件状态
type VideoStatus string

const (
	// VideoStatusPending 待处理
	VideoStatusPending VideoStatus = "pending"
	// VideoStatusProcessing 处理中
	VideoStatusProcessing VideoStatus = "processing"
	// VideoStatusCompleted 已完成
	VideoStatusCompleted VideoStatus = "completed"
	// VideoStatusFailed 失败
	VideoStatusFailed VideoStatus = "failed"
)

// IsValid 检查状态是否有效
func (s VideoStatus) IsValid() bool {
	switch s {
	case VideoStatusPending, VideoStatusProcessing, VideoStatusCompleted, VideoStatusFailed:
		return true
	default:
		return false
	}
}

// String 返回状态字符串
func (s VideoStatus) String() string {
	return string(s)
}

// CanTransitionTo 检查是否可以转换到目标状态
func (s VideoStatus) CanTransitionTo(target VideoStatus) bool {
	switch s {
	case VideoStatusPending:
		return target == VideoStatusProcessing
	case VideoStatusProcessing:
		return target == VideoStatusCompleted || target == VideoStatusFailed
	case VideoStatusFailed:
		// 失败的视频只能由操作者显式重置回pending
		return target == VideoStatusPending
	case VideoStatusCompleted:
		return false
	default:
		return false
	}
}
