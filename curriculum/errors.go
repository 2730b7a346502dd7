package curriculum

import "fmt"

// ValidationError: vi phạm ràng buộc kiểm tra được ngay trên snapshot cục bộ,
// không bao giờ gọi tới collaborator.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NotFoundError: id không tồn tại trong snapshot hiện tại.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("không tìm thấy %s với id %s", e.Entity, e.ID)
}

// CollaboratorError: lời gọi tới kho dữ liệu ngoài thất bại.
// Thông điệp gốc được giữ nguyên, không diễn giải lại.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }
