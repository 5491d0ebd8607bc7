package config

import "time"

// Config is the root application configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Data     DataConfig     `yaml:"data"`
	Parser   ParserConfig   `yaml:"parser"`
	Quiz     QuizConfig     `yaml:"quiz"`
	Progress ProgressConfig `yaml:"progress"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// DataConfig points at the CSV sheets. Empty paths use the built-in data.
type DataConfig struct {
	ConsonantsPath    string `yaml:"consonants"     env:"DATA_CONSONANTS"`
	VowelsPath        string `yaml:"vowels"         env:"DATA_VOWELS"`
	MedialsPath       string `yaml:"medials"        env:"DATA_MEDIALS"`
	SpecialCasesPath  string `yaml:"special_cases"  env:"DATA_SPECIAL_CASES"`
	ConversationsPath string `yaml:"conversations"  env:"DATA_CONVERSATIONS"`
	// Strict turns an unreadable sheet into an error instead of a warning.
	Strict bool `yaml:"strict" env:"DATA_STRICT" env-default:"false"`
}

// ParserConfig holds conversation parsing and transliteration settings.
type ParserConfig struct {
	EmptyTopics string `yaml:"empty_topics" env:"PARSER_EMPTY_TOPICS" env-default:"drop"`
	Normalize   bool   `yaml:"normalize"    env:"TRANSLIT_NORMALIZE"  env-default:"false"`
}

// QuizConfig holds quiz and chat settings.
type QuizConfig struct {
	// Seed 0 shuffles from the clock.
	Seed               int64 `yaml:"seed"                 env:"QUIZ_SEED"            env-default:"0"`
	MaxDistractors     int   `yaml:"max_distractors"      env:"QUIZ_MAX_DISTRACTORS" env-default:"3"`
	ChatMaxDistractors int   `yaml:"chat_max_distractors" env:"CHAT_MAX_DISTRACTORS" env-default:"2"`
}

// ProgressConfig selects and tunes the progress store.
type ProgressConfig struct {
	Backend      string        `yaml:"backend"       env:"PROGRESS_BACKEND"       env-default:"file"`
	Learner      string        `yaml:"learner"       env:"PROGRESS_LEARNER"       env-default:"default"`
	FilePath     string        `yaml:"file_path"     env:"PROGRESS_FILE_PATH"     env-default:"./progress"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"PROGRESS_WRITE_TIMEOUT" env-default:"5s"`
	// QueueSize is the write backlog that triggers a warning.
	QueueSize    int           `yaml:"queue_size"    env:"PROGRESS_QUEUE_SIZE"    env-default:"64"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"5"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	URL       string `yaml:"url"        env:"REDIS_URL"        env-default:"redis://localhost:6379/0"`
	KeyPrefix string `yaml:"key_prefix" env:"REDIS_KEY_PREFIX" env-default:"phrasebook"`
}

// Progress backends.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)
