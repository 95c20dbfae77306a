// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"slices"
	"time"
)

type DatabaseType string

const (
	MySQL      DatabaseType = "mysql"
	PostgreSQL DatabaseType = "postgres"
	SQLite     DatabaseType = "sqlite3"
)

var allowedDatabaseType = []DatabaseType{MySQL, PostgreSQL, SQLite}

type DatabaseConfig struct {
	Type                 string        `json:"type" toml:"type"`
	DBType               DatabaseType  `json:"-" toml:"-"`
	Database             string        `json:"database" toml:"database"`
	Host                 string        `json:"host" toml:"host"`
	Port                 int           `json:"port" toml:"port"`
	Username             string        `json:"username" toml:"username"`
	Password             string        `json:"password" toml:"password"`
	EnableSSL            bool          `json:"enable_ssl" toml:"enable_ssl"`
	ConnectIdleTimeout   string        `json:"connect_idle_timeout" toml:"connect_idle_timeout"` // 连接空闲超时时间
	ConnectIdleDuration  time.Duration `json:"-" toml:"-"`
	QueryTimeout         string        `json:"query_timeout" toml:"query_timeout"` // 每次查询超时时间
	QueryDuration        time.Duration `json:"-" toml:"-"`
	ServerMaxConnections int           `json:"server_max_connections" toml:"server_max_connections"` // 最大连接池大小
}

func defaultDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Type:                 "sqlite3",
		Database:             "traveler.db",
		Host:                 "",
		Port:                 0,
		Username:             "",
		Password:             "",
		EnableSSL:            false,
		ConnectIdleTimeout:   "1h",
		QueryTimeout:         "5s",
		ServerMaxConnections: 32,
	}
}

func (config *DatabaseConfig) checkValid(_ log.LoggerInterface) *ValidResult {
	config.DBType = DatabaseType(config.Type)
	if !slices.Contains(allowedDatabaseType, config.DBType) {
		return ValidFail(fmt.Errorf("database type %s is not allowed, support database is %v, please check the configuration file", config.DBType, allowedDatabaseType))
	}

	if config.Database == "" {
		return ValidFail(errors.New("invalid json field database.database, value must not be empty"))
	}

	if duration, err := time.ParseDuration(config.ConnectIdleTimeout); err != nil {
		return ValidFailWith(errors.New("invalid json field database.connect_idle_timeout"), err)
	} else {
		config.ConnectIdleDuration = duration
	}

	if duration, err := time.ParseDuration(config.QueryTimeout); err != nil {
		return ValidFailWith(errors.New("invalid json field database.query_timeout"), err)
	} else {
		config.QueryDuration = duration
	}

	if config.ServerMaxConnections < 2 {
		return ValidFail(errors.New("invalid json field database.server_max_connections, value must larger than 1"))
	}
	return ValidPass()
}

func (config *DatabaseConfig) GetConnection(logger log.LoggerInterface) gorm.Dialector {
	switch config.DBType {
	case MySQL:
		return mySQLConnection(logger, config)
	case PostgreSQL:
		return postgreSQLConnection(logger, config)
	case SQLite:
		return sqliteConnection(logger, config)
	default:
		return nil
	}
}

func mySQLConnection(logger log.LoggerInterface, db *DatabaseConfig) gorm.Dialector {
	var enableSSL string
	if db.EnableSSL {
		enableSSL = "true"
	} else {
		enableSSL = "false"
	}
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&tls=%s",
		db.Username,
		db.Password,
		db.Host,
		db.Port,
		db.Database,
		enableSSL,
	)
	logger.DebugF("Mysql connection to %s:%d/%s", db.Host, db.Port, db.Database)
	return mysql.Open(dsn)
}

func postgreSQLConnection(logger log.LoggerInterface, db *DatabaseConfig) gorm.Dialector {
	var enableSSL string
	if db.EnableSSL {
		enableSSL = "require"
	} else {
		enableSSL = "disable"
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=UTC",
		db.Host,
		db.Username,
		db.Password,
		db.Database,
		db.Port,
		enableSSL,
	)
	logger.DebugF("PostgreSQL connection to %s:%d/%s", db.Host, db.Port, db.Database)
	return postgres.Open(dsn)
}

// sqliteConnection waits on a locked database instead of failing immediately
func sqliteConnection(_ log.LoggerInterface, db *DatabaseConfig) gorm.Dialector {
	return sqlite.Open(fmt.Sprintf("file:%s?_busy_timeout=%d&_foreign_keys=on", db.Database, db.QueryDuration.Milliseconds()))
}
