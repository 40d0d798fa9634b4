package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/BennersTaga/shift-management-app/internal/config"
	"github.com/BennersTaga/shift-management-app/internal/repository"
	"github.com/BennersTaga/shift-management-app/internal/seed"
	"github.com/BennersTaga/shift-management-app/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "実行する操作 (1: 固定の名簿を登録, 2: ランダムな従業員を登録)")
	flag.IntVar(&n, "n", 5, "登録する従業員の数")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 設定の読み込み
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("設定を読み込めません", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// データベース接続プールの作成
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("データベース接続プールを作成できません", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open は接続プールを作るだけで実際には接続しないため、明示的に ping する
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("データベースに接続できません", "error", err)
		return
	}

	// repository の作成
	repo := repository.NewRepository(cfg, dbpool)

	// 操作の実行
	switch op {
	case 0:
		slog.Error("操作が指定されていません")
	case 1:
		seed.SeedRoster(repo)
	case 2:
		if n <= 0 {
			slog.Error("従業員の数を正しく指定してください")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				employee := utils.GenerateRandomEmployee()
				if err := repo.CreateEmployee(employee); err != nil {
					slog.Error("従業員を登録できません", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("従業員を登録しました", slog.Int("count", n-cnt))
		}
	default:
		slog.Error("指定された操作が不正です")
	}
}
