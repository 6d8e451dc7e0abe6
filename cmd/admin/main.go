package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"bioPress/internal/config"
	"bioPress/internal/storage"
	"bioPress/internal/store"
)

func main() {
	var (
		migrate      = flag.Bool("migrate", false, "建表/升级表结构")
		resetProfile = flag.Bool("reset-profile", false, "把档案恢复为内置默认内容")
		purgeExports = flag.Bool("purge-exports", false, "清空对象存储中的历史导出产物")
		dbHost       = flag.String("db-host", "", "数据库 Host（可选，默认读 DATABASE_HOST）")
		dbPort       = flag.Int("db-port", 0, "数据库 Port（可选，默认读 DATABASE_PORT）")
		dbName       = flag.String("db-name", "", "数据库名（可选，默认读 POSTGRES_DB）")
		dbUser       = flag.String("db-user", "", "数据库用户（可选，默认读 POSTGRES_USER）")
		dbPass       = flag.String("db-password", "", "数据库密码（可选，默认读 POSTGRES_PASSWORD）")
		sslMode      = flag.String("db-sslmode", "", "数据库 SSLMODE（可选，默认读 DATABASE_SSLMODE）")
	)
	flag.Parse()

	if !*migrate && !*resetProfile && !*purgeExports {
		flag.Usage()
		log.Fatal("nothing to do: pass at least one of --migrate / --reset-profile / --purge-exports")
	}

	dbCfg, err := loadDatabaseConfig(*dbHost, *dbPort, *dbName, *dbUser, *dbPass, *sslMode)
	if err != nil {
		log.Fatalf("load database config: %v", err)
	}

	db, err := store.Open(dbCfg)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	ctx := context.Background()

	if *migrate {
		if err := store.Migrate(db); err != nil {
			log.Fatalf("migrate database: %v", err)
		}
		fmt.Println("数据库表结构已就绪")
	}

	if *resetProfile {
		if _, err := store.New(db).Reset(ctx); err != nil {
			log.Fatalf("reset profile: %v", err)
		}
		fmt.Println("档案已恢复为内置默认内容")
	}

	if *purgeExports {
		// 对象存储连接走环境变量配置，与线上服务一致。
		cfg := config.MustLoad()
		storageClient, err := storage.NewClient(cfg.MinIO)
		if err != nil {
			log.Fatalf("init storage client: %v", err)
		}
		if err := storageClient.DeletePrefix(ctx, storage.ExportPrefix); err != nil {
			log.Fatalf("purge exports: %v", err)
		}
		if err := store.New(db).SetExportState(ctx, store.ExportIdle, ""); err != nil {
			log.Fatalf("reset export state: %v", err)
		}
		fmt.Println("历史导出产物已清理")
	}
}

func loadDatabaseConfig(host string, port int, name, user, password, sslmode string) (config.DatabaseConfig, error) {
	if strings.TrimSpace(host) == "" {
		host = os.Getenv("DATABASE_HOST")
	}
	if port <= 0 {
		if env := strings.TrimSpace(os.Getenv("DATABASE_PORT")); env != "" {
			p, err := strconv.Atoi(env)
			if err != nil {
				return config.DatabaseConfig{}, fmt.Errorf("parse DATABASE_PORT: %w", err)
			}
			port = p
		}
	}
	if strings.TrimSpace(name) == "" {
		name = os.Getenv("POSTGRES_DB")
	}
	if strings.TrimSpace(user) == "" {
		user = os.Getenv("POSTGRES_USER")
	}
	if strings.TrimSpace(password) == "" {
		password = os.Getenv("POSTGRES_PASSWORD")
	}
	if strings.TrimSpace(sslmode) == "" {
		sslmode = os.Getenv("DATABASE_SSLMODE")
	}

	if strings.TrimSpace(host) == "" {
		host = "localhost"
	}
	if port <= 0 {
		port = 5432
	}
	if strings.TrimSpace(sslmode) == "" {
		sslmode = "disable"
	}
	if strings.TrimSpace(name) == "" {
		return config.DatabaseConfig{}, errors.New("database name is required (POSTGRES_DB)")
	}
	if strings.TrimSpace(user) == "" {
		return config.DatabaseConfig{}, errors.New("database user is required (POSTGRES_USER)")
	}
	if strings.TrimSpace(password) == "" {
		return config.DatabaseConfig{}, errors.New("database password is required (POSTGRES_PASSWORD)")
	}

	return config.DatabaseConfig{
		Host:     host,
		Port:     port,
		Name:     name,
		User:     user,
		Password: password,
		SSLMode:  sslmode,
	}, nil
}
