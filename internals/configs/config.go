package configs

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	JWTSecret            string
	JWTTTL               time.Duration
	StudentSessionTTL    time.Duration
	AppLocation          *time.Location
	RankingCron          string
	DefaultClassroomName string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[WARN] .env not found, using system environment")
		} else {
			log.Println("[INFO] .env loaded")
		}
	} else {
		log.Println("[INFO] running on Railway, using system environment")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTTTL = time.Duration(GetEnvInt("JWT_TTL_HOURS", 24*7)) * time.Hour
	StudentSessionTTL = time.Duration(GetEnvInt("STUDENT_SESSION_TTL_HOURS", 24)) * time.Hour
	RankingCron = GetEnv("RANKING_CRON", "5 0 * * *")
	DefaultClassroomName = GetEnv("DEFAULT_CLASSROOM_NAME", "My Classroom")
	AppLocation = loadLocation(GetEnv("APP_TIMEZONE", "UTC"))

	if JWTSecret == "" {
		log.Println("[ERROR] JWT_SECRET is not set!")
	} else {
		log.Println("[INFO] JWT_SECRET loaded")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || strings.TrimSpace(value) == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return strings.TrimSpace(value)
}

func GetEnvInt(key string, def int) int {
	v := GetEnv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func GetEnvBool(key string, def bool) bool {
	switch strings.ToLower(GetEnv(key)) {
	case "":
		return def
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// Location used to decide where a calendar day starts and ends.
// Falls back to UTC when APP_TIMEZONE is unknown.
func Location() *time.Location {
	if AppLocation == nil {
		return time.UTC
	}
	return AppLocation
}

func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("[WARN] APP_TIMEZONE %q invalid, using UTC: %v", name, err)
		return time.UTC
	}
	return loc
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	level := gormLogger.Warn
	if GetEnvBool("DB_LOG_QUERIES", false) {
		level = gormLogger.Info
	}
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      level,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && err.Error() != "record not found":
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
