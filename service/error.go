package service

import (
	"fmt"
)

// Verify Interface Compliance
var _ error = (*Err)(nil)

// Err defines service errors. Code doubles as the HTTP status the gateway
// responds with.
type Err struct {
	Code    int64  `json:"code"`
	Message string `json:"error"`
}

func (e Err) Enrich(message string) Err {
	return Err{
		Code:    e.Code,
		Message: fmt.Sprintf("%s: %s", e.Message, message),
	}
}

func (e Err) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

var (
	NoErr             = Err{Code: 200, Message: ""}
	BadRequestErr     = Err{Code: 400, Message: "bad request"}
	NotFoundErr       = Err{Code: 404, Message: "not found"}
	StorageTimeoutErr = Err{Code: 408, Message: "storage pool timeout"}
	InternalErr       = Err{Code: 500, Message: "internal error"}
)
