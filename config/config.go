package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Mongo      MongoConfig      `yaml:"mongo"`
	Generation GenerationConfig `yaml:"generation"`
	LinkHealth LinkHealthConfig `yaml:"link_health"`
	Scan       ScanConfig       `yaml:"scan"`
	Cluster    ClusterConfig    `yaml:"cluster"`
	Dispatch   DispatchConfig   `yaml:"dispatch"`
	HTTP       HTTPConfig       `yaml:"http"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// GenerationConfig 는 클러스터 초안 생성에 사용하는 LLM 설정이다.
type GenerationConfig struct {
	Provider  string      `yaml:"provider"`
	ModelName string      `yaml:"model_name"`
	Quota     QuotaConfig `yaml:"quota"`
}

// QuotaConfig 는 생성용 LLM 호출에 대한 속도/일일 한도를 정의한다.
type QuotaConfig struct {
	// RequestsPerMinute 는 분당 최대 요청 수이다. 0 이하면 제한 없음으로 간주한다.
	RequestsPerMinute int `yaml:"requests_per_minute"`

	// RequestsPerDay 는 일일 최대 요청 수이다. 0 이하면 제한 없음으로 간주한다.
	RequestsPerDay int `yaml:"requests_per_day"`
}

type LinkHealthConfig struct {
	MinLinks int `yaml:"min_links"`
}

type ScanConfig struct {
	DefaultMaxExternalLinks int `yaml:"default_max_external_links"`
	// Exclusive 가 true 이면 running 상태의 스캔이 있을 때 새 스캔을 거부한다.
	Exclusive bool `yaml:"exclusive"`
	// StaleAfter 가 지나도록 running 인 스캔은 failed 로 정리된다.
	StaleAfter time.Duration `yaml:"stale_after"`
}

type ClusterConfig struct {
	PollInterval time.Duration `yaml:"poll_interval"`
}

// DispatchConfig 는 스캔 실행/클러스터 생성을 어디서 수행할지 결정한다.
//   - inprocess: API 프로세스의 고루틴에서 실행
//   - kafka: 이벤트를 발행하고 worker 가 소비하여 실행
type DispatchConfig struct {
	Mode    string `yaml:"mode"`
	Brokers string `yaml:"brokers"`
	GroupID string `yaml:"group_id"`
	// Partitions 는 EnsureTopics 가 기본 토픽을 만들 때 쓰는 파티션 수이다.
	Partitions int `yaml:"partitions"`
}

type HTTPConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

const (
	DispatchInProcess = "inprocess"
	DispatchKafka     = "kafka"
)

var config *AppConfig

func InitApp() {
	basePath := GetBasePath()

	// load environment variables
	godotenv.Load(filepath.Join(basePath, ENV_FILE))

	c := AppConfig{}
	data, err := os.ReadFile(filepath.Join(basePath, CONFIG_FILE))
	if err == nil {
		if err := yaml.Unmarshal(data, &c); err != nil {
			panic(err)
		}
	} else if !os.IsNotExist(err) {
		panic(err)
	}

	applyEnvOverrides(&c)
	applyDefaults(&c)
	config = &c
}

// Set 은 테스트나 CLI 에서 설정 파일 없이 구성을 주입할 때 사용한다.
func Set(c AppConfig) {
	applyDefaults(&c)
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func applyEnvOverrides(c *AppConfig) {
	if v := os.Getenv("MONGO_URI"); v != "" {
		c.Mongo.URI = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("DISPATCH_MODE"); v != "" {
		c.Dispatch.Mode = v
	}
	if v := os.Getenv("KAFKA_BOOTSTRAP_SERVERS"); v != "" {
		c.Dispatch.Brokers = v
	}
	if v := os.Getenv("KAFKA_GROUP_ID"); v != "" {
		c.Dispatch.GroupID = v
	}
}

func applyDefaults(c *AppConfig) {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Mongo.Database == "" {
		c.Mongo.Database = "contentgraph"
	}
	if c.Generation.Provider == "" {
		c.Generation.Provider = "google"
	}
	if c.Generation.ModelName == "" {
		c.Generation.ModelName = "gemini-2.5-flash"
	}
	if c.LinkHealth.MinLinks <= 0 {
		c.LinkHealth.MinLinks = 1
	}
	if c.Scan.DefaultMaxExternalLinks <= 0 {
		c.Scan.DefaultMaxExternalLinks = 2
	}
	if c.Scan.StaleAfter <= 0 {
		c.Scan.StaleAfter = 6 * time.Hour
	}
	if c.Cluster.PollInterval <= 0 {
		c.Cluster.PollInterval = 3 * time.Second
	}
	c.Dispatch.Mode = strings.ToLower(strings.TrimSpace(c.Dispatch.Mode))
	if c.Dispatch.Mode == "" {
		c.Dispatch.Mode = DispatchInProcess
	}
	if c.Dispatch.GroupID == "" {
		c.Dispatch.GroupID = "content-graph-worker"
	}
	if c.Dispatch.Partitions <= 0 {
		c.Dispatch.Partitions = 3
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":8080"
	}
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return cwd
}
