package schedule

import (
	"sort"

	"github.com/BennersTaga/shift-management-app/internal/domain"
)

// タイムラインは 06:00 を起点とした 30 分刻みのグリッドに描画する
const (
	timelineAnchorMinutes = 6 * 60
	slotMinutes           = 30

	// SlotWidth は 30 分あたりのピクセル幅
	SlotWidth = 20
	// OffMarkerWidth は時刻を持たないエントリに表示する「休み」マーカーの固定幅
	OffMarkerWidth = 48
)

type TimelineBar struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Left         int    `json:"left"`
	Width        int    `json:"width"`
	Off          bool   `json:"off"`
}

type TimelineRow struct {
	Date string        `json:"date"`
	Bars []TimelineBar `json:"bars"`
}

// Layout は提出済みシフトを日付ごとにまとめ、各エントリの横位置と幅を
// 30 分単位のグリッドで算出する。表示専用の導出であり、幅と位置は
// 負にならないようにクランプする
func Layout(shifts []*domain.SubmittedShift) []TimelineRow {
	byDate := make(map[string][]TimelineBar)

	for _, shift := range shifts {
		byDate[shift.Date] = append(byDate[shift.Date], layoutBar(shift))
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	rows := make([]TimelineRow, 0, len(dates))
	for _, date := range dates {
		rows = append(rows, TimelineRow{Date: date, Bars: byDate[date]})
	}

	return rows
}

func layoutBar(shift *domain.SubmittedShift) TimelineBar {
	bar := TimelineBar{
		EmployeeID:   shift.EmployeeID,
		EmployeeName: shift.EmployeeName,
		StartTime:    shift.StartTime,
		EndTime:      shift.EndTime,
	}

	if shift.StartTime == "" || shift.EndTime == "" {
		bar.Off = true
		bar.Width = OffMarkerWidth
		return bar
	}

	start, err := domain.ParseClockTime(shift.StartTime)
	if err != nil {
		bar.Off = true
		bar.Width = OffMarkerWidth
		return bar
	}
	end, err := domain.ParseClockTime(shift.EndTime)
	if err != nil {
		bar.Off = true
		bar.Width = OffMarkerWidth
		return bar
	}

	bar.Left = max((start.Minutes()-timelineAnchorMinutes)/slotMinutes*SlotWidth, 0)
	bar.Width = max(end.Sub(start)/slotMinutes*SlotWidth, 0)

	return bar
}
