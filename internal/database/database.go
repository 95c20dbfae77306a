// Package database
package database

import (
	"context"
	"fmt"
	c "github.com/half-nothing/adventurous-traveler/internal/interfaces/config"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/log"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"time"
)

const referenceCacheSize = 512

type DBCloseCallback struct {
	logger log.LoggerInterface
	db     *gorm.DB
}

func NewDBCloseCallback(logger log.LoggerInterface, db *gorm.DB) *DBCloseCallback {
	return &DBCloseCallback{logger: logger, db: db}
}

func (dc *DBCloseCallback) Invoke(_ context.Context) error {
	dc.logger.Info("Closing database connection")
	db, err := dc.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}

func ConnectDatabase(lg log.LoggerInterface, config *c.Config, debug bool) (*DBCloseCallback, *operation.DatabaseOperations, error) {
	queryTimeout := config.Database.QueryDuration

	connection := config.Database.GetConnection(lg)
	if connection == nil {
		return nil, nil, fmt.Errorf("unsupported database type %s", config.Database.Type)
	}

	connectionConfig := gorm.Config{}
	connectionConfig.DefaultTransactionTimeout = 5 * time.Second
	connectionConfig.PrepareStmt = true
	connectionConfig.TranslateError = true

	if debug {
		connectionConfig.Logger = logger.Default.LogMode(logger.Warn)
	} else {
		connectionConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(connection, &connectionConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("error occured while connecting to database: %v", err)
	}

	if err = db.Migrator().AutoMigrate(
		&operation.Airport{},
		&operation.Artifact{},
		&operation.ShopItem{},
		&operation.EventType{},
		&operation.Game{},
		&operation.GameArtifact{},
		&operation.GameLog{},
	); err != nil {
		return nil, nil, fmt.Errorf("error occured while migrating database: %v", err)
	}

	dbPool, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("error occured while creating database pool: %v", err)
	}

	maxOpenConnections := config.Database.ServerMaxConnections * 4 / 5 // 不超过数据库最大连接的80%
	maxIdleConnections := maxOpenConnections / 5                       // 空闲连接约为最大连接的20%
	if config.Database.DBType == c.SQLite {
		// sqlite只允许一个写者, 单连接避免 database is locked
		maxOpenConnections = 1
		maxIdleConnections = 1
	}

	dbPool.SetMaxIdleConns(maxIdleConnections)
	dbPool.SetMaxOpenConns(maxOpenConnections)
	dbPool.SetConnMaxLifetime(config.Database.ConnectIdleDuration)

	if err = dbPool.Ping(); err != nil {
		return nil, nil, fmt.Errorf("error occured while pinging database: %v", err)
	}

	referenceOperation, err := NewReferenceOperation(db, queryTimeout, referenceCacheSize)
	if err != nil {
		return nil, nil, fmt.Errorf("error occured while creating reference cache: %v", err)
	}

	lg.Info("Database initialized and connection established")

	return NewDBCloseCallback(lg, db), operation.NewDatabaseOperations(
		NewGameOperation(db, queryTimeout),
		referenceOperation,
		NewGameLogOperation(db, queryTimeout),
	), nil
}
