package cluster

import "errors"

var (
	// ErrNoApprovedItems 는 게시할 approved 항목이 하나도 없을 때 반환된다.
	ErrNoApprovedItems = errors.New("no approved items to publish")
	// ErrInvalidTransition 은 현재 상태에서 허용되지 않는 전이를 요청했을 때 반환된다.
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidRequest    = errors.New("invalid cluster request")
)
