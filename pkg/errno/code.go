package errno

import "fmt"

// code=0 请求成功
// code=4xx 客户端请求错误
// code=5xx 服务器端错误
// code=2xxxx 业务处理错误码

type Errno struct {
	Code    int
	Message string
}

// Error 实现error接口
func (e *Errno) Error() string {
	return e.Message
}

var (
	OK = &Errno{Code: 200, Message: "Success"}

	ErrInvalidParam = &Errno{Code: 400, Message: "Invalid parameter"}
	ErrUnauthorized = &Errno{Code: 401, Message: "Unauthorized"}
	ErrNotFound     = &Errno{Code: 404, Message: "Not found"}

	ErrInternalServer = &Errno{Code: 500, Message: "Internal server error"}
	ErrDatabase       = &Errno{Code: 501, Message: "Database error"}
	ErrUnknown        = &Errno{Code: 510, Message: "Unknown error"}

	// 业务错误码
	ErrContentTypeInvalid        = &Errno{Code: 20001, Message: "Content type must be movies or tvshows"}
	ErrSourcePathNotConfigured   = &Errno{Code: 20002, Message: "Source path is not configured for this content type"}
	ErrOutputPathNotConfigured   = &Errno{Code: 20003, Message: "Output path is not configured for this content type"}
	ErrVideoFileNotFound         = &Errno{Code: 20004, Message: "Video file not found"}
	ErrNoSubtitlePaired          = &Errno{Code: 20005, Message: "No subtitle file is paired with this video"}
	ErrVideoNotPending           = &Errno{Code: 20006, Message: "Video file is not pending"}
	ErrVideoBusy                 = &Errno{Code: 20007, Message: "Video file already has an active job"}
	ErrJobNotFound               = &Errno{Code: 20008, Message: "Processing job not found"}
	ErrQueueFull                 = &Errno{Code: 20009, Message: "Job queue is full"}
	ErrVideoFileIDRequired       = &Errno{Code: 20010, Message: "Video file ID is required"}
	ErrJobIDRequired             = &Errno{Code: 20011, Message: "Job ID is required"}
	ErrVideoNotResettable        = &Errno{Code: 20012, Message: "Only failed video files can be reset"}

	// 转封装执行错误码
	ErrOutputPath = &Errno{Code: 21001, Message: "Output directory cannot be created"}
	ErrTranscoder = &Errno{Code: 21002, Message: "Remux process failed"}
)

// BizError carries a coded errno together with its underlying cause.
type BizError struct {
	Errno *Errno
	Cause error
}

// NewBizError 包装业务错误
func NewBizError(e *Errno, cause error) *BizError {
	return &BizError{Errno: e, Cause: cause}
}

func (e *BizError) Error() string {
	if e.Cause == nil {
		return e.Errno.Message
	}
	return fmt.Sprintf("%s: %v", e.Errno.Message, e.Cause)
}

func (e *BizError) Unwrap() error {
	return e.Cause
}

// CodeOf extracts the errno code from an error chain, defaulting to 500.
func CodeOf(err error) int {
	switch v := err.(type) {
	case *Errno:
		return v.Code
	case *BizError:
		return v.Errno.Code
	default:
		return ErrInternalServer.Code
	}
}
