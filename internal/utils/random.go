package utils

import (
	"fmt"
	"math/rand"

	"github.com/BennersTaga/shift-management-app/internal/domain"
)

// 従業員 ID はローマ字表記から作るため、氏名と表記を対で持つ
var commonSurnames = []struct {
	kanji  string
	romaji string
}{
	{"佐藤", "sato"}, {"鈴木", "suzuki"}, {"高橋", "takahashi"}, {"田中", "tanaka"},
	{"伊藤", "ito"}, {"渡辺", "watanabe"}, {"山本", "yamamoto"}, {"中村", "nakamura"},
	{"小林", "kobayashi"}, {"加藤", "kato"}, {"吉田", "yoshida"}, {"山田", "yamada"},
	{"佐々木", "sasaki"}, {"山口", "yamaguchi"}, {"松本", "matsumoto"},
}

var commonGivenNames = []struct {
	kanji  string
	romaji string
}{
	{"太郎", "taro"}, {"花子", "hanako"}, {"健", "ken"}, {"美咲", "misaki"},
	{"大輔", "daisuke"}, {"葵", "aoi"}, {"翔太", "shota"}, {"結衣", "yui"},
	{"蓮", "ren"}, {"陽菜", "hina"}, {"悠真", "yuma"}, {"さくら", "sakura"},
}

var departments = []string{"営業部", "製造部", "総務部", ""}

var digits = "0123456789"

// GenerateRandomEmployee は開発用のランダムな従業員を生成する
// 契約時間は 8〜10 時開始の 6〜8 時間勤務
func GenerateRandomEmployee() *domain.Employee {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	givenName := commonGivenNames[rand.Intn(len(commonGivenNames))]

	id := surname.romaji + "_" + givenName.romaji
	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		id += string(digits[rand.Intn(len(digits))])
	}

	startHour := 8 + rand.Intn(3)
	endHour := startHour + 6 + rand.Intn(3)

	return &domain.Employee{
		ID:           id,
		Name:         surname.kanji + " " + givenName.kanji,
		ContractTime: fmt.Sprintf("%02d:00-%02d:00", startHour, endHour),
		Department:   departments[rand.Intn(len(departments))],
	}
}
