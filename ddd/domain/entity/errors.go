package entity

// DomainError 领域规则错误
type DomainError struct {
	message string
}

// NewDomainError 创建领域错误
func NewDomainError(message string) *DomainError {
	return &DomainError{message: message}
}

func (e *DomainError) Error() string {
	return e.message
}
