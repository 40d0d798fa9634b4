package seed

import (
	"log/slog"

	"github.com/BennersTaga/shift-management-app/internal/domain"
	"github.com/BennersTaga/shift-management-app/internal/repository"
)

// 固定の従業員名簿。本番の名簿はディレクトリ管理者が投入する想定で、
// これは開発・検証用のデータ
var roster = []*domain.Employee{
	{ID: "sato_m", Name: "佐藤 美咲", ContractTime: "09:00-17:00", Department: "営業部"},
	{ID: "suzuki_t", Name: "鈴木 太郎", ContractTime: "10:00-18:00", Department: "営業部"},
	{ID: "takahashi_y", Name: "高橋 結衣", ContractTime: "08:30-16:30", Department: "製造部"},
	{ID: "tanaka_d", Name: "田中 大輔", ContractTime: "11:00-19:00", Department: "製造部"},
	{ID: "watanabe_a", Name: "渡辺 葵", ContractTime: "09:30-15:30", Department: "総務部"},
	{ID: "yamamoto_k", Name: "山本 健", ContractTime: "13:00-21:00"},
}

func SeedRoster(repo *repository.Repository) {
	count := 0
	for _, employee := range roster {
		if err := repo.CreateEmployee(employee); err != nil {
			slog.Error("従業員を登録できません", slog.String("id", employee.ID), slog.String("error", err.Error()))
			continue
		}
		count++
	}

	slog.Info("名簿を登録しました", slog.Int("count", count))
}
