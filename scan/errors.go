package scan

import "errors"

var (
	// ErrScanInProgress 는 배타 모드에서 running 스캔이 이미 있을 때 반환된다.
	ErrScanInProgress = errors.New("another scan is already running")
	ErrInvalidRequest = errors.New("invalid scan request")
	// ErrRunNotExecutable 은 재전달된 실행 요청이 이미 진행/종료된 run 을 가리킬 때 반환된다.
	ErrRunNotExecutable = errors.New("scan run is not executable")
)

// ErrRunAbandoned 는 StaleAfter 보다 오래 running 으로 남은 run 의 실패 사유다.
var ErrRunAbandoned = errors.New("scan run abandoned")

// ErrRunRunning 은 실행 중인 run 을 삭제하려 할 때 반환된다.
var ErrRunRunning = errors.New("scan run is still running")
