package eventbus

// 전역 토픽 선언: 기능별 기본 토픽 이름을 관리합니다.

var (
	// TopicJobEvents 는 스캔 실행/클러스터 생성 요청을 worker 로 전달한다.
	TopicJobEvents = NewTopic("content-graph.jobs.events")
)

var AllTopics = []Topic{
	TopicJobEvents,
}
