package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BennersTaga/shift-management-app/internal/domain"
)

func TestTotalHours_MixedWeek(t *testing.T) {
	store := NewStore()
	employee := testEmployee() // 契約時間 10:00-18:00

	require.NoError(t, AssignShift(store, employee, "2025-03-03", domain.ShiftContract, "", ""))
	require.NoError(t, AssignShift(store, employee, "2025-03-04", domain.ShiftOff, "", ""))
	require.NoError(t, AssignShift(store, employee, "2025-03-05", domain.ShiftCustom, "13:00", "15:30"))

	// 契約 8.0h + 休み 0h + 自由入力 2.5h
	assert.Equal(t, 10.5, TotalHours(store, employee))
}

func TestTotalHours_NormalIgnoresContract(t *testing.T) {
	store := NewStore()
	employee := testEmployee()

	require.NoError(t, AssignShift(store, employee, "2025-03-03", domain.ShiftNormal, "", ""))

	// 通常勤務は契約時間に関係なく固定 09:00-17:00 の 8.0h
	assert.Equal(t, 8.0, TotalHours(store, employee))
}

func TestTotalHours_OffOnly(t *testing.T) {
	store := NewStore()
	employee := testEmployee()

	require.NoError(t, AssignShift(store, employee, "2025-03-03", domain.ShiftOff, "", ""))
	require.NoError(t, AssignShift(store, employee, "2025-03-04", domain.ShiftOff, "", ""))

	assert.Equal(t, 0.0, TotalHours(store, employee))
}

func TestTotalHours_Empty(t *testing.T) {
	store := NewStore()
	assert.Equal(t, 0.0, TotalHours(store, testEmployee()))
}

func TestTotalHours_BrokenContractCountsZero(t *testing.T) {
	store := NewStore()
	employee := testEmployee()

	require.NoError(t, AssignShift(store, employee, "2025-03-03", domain.ShiftContract, "", ""))
	require.NoError(t, AssignShift(store, employee, "2025-03-05", domain.ShiftCustom, "13:00", "15:00"))

	// 登録後に契約時間が壊れた場合、契約シフトは 0 換算になり
	// 集計自体はエラーにならない
	employee.ContractTime = "10:00"
	assert.Equal(t, 2.0, TotalHours(store, employee))
}

func TestTotalHours_Idempotent(t *testing.T) {
	store := NewStore()
	employee := testEmployee()

	require.NoError(t, AssignShift(store, employee, "2025-03-03", domain.ShiftNormal, "", ""))
	require.NoError(t, AssignShift(store, employee, "2025-03-04", domain.ShiftCustom, "06:00", "09:30"))

	first := TotalHours(store, employee)
	second := TotalHours(store, employee)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, store.Len())
}

func TestTotalHoursOf_OrderIndependent(t *testing.T) {
	employee := testEmployee()
	records := []domain.ShiftRecord{
		{EmployeeID: "sato_m", Date: "2025-03-05", Type: domain.ShiftCustom, StartTime: "13:00", EndTime: "15:30"},
		{EmployeeID: "sato_m", Date: "2025-03-03", Type: domain.ShiftContract},
		{EmployeeID: "sato_m", Date: "2025-03-04", Type: domain.ShiftOff},
	}
	reversed := []domain.ShiftRecord{records[2], records[1], records[0]}

	assert.Equal(t, TotalHoursOf(records, employee), TotalHoursOf(reversed, employee))
}

func TestRoundHours(t *testing.T) {
	cases := []struct {
		minutes int
		want    float64
	}{
		{0, 0.0},
		{30, 0.5},
		{150, 2.5},
		{480, 8.0},
		{455, 7.6}, // 7.583... → 7.6
		{100, 1.7}, // 1.666... → 1.7
	}

	for _, c := range cases {
		assert.Equal(t, c.want, roundHours(c.minutes), "%d分", c.minutes)
	}
}

func TestMonthlyTotals(t *testing.T) {
	shifts := []*domain.SubmittedShift{
		{EmployeeID: "sato_m", Date: "2025-03-03", Type: domain.ShiftContract, StartTime: "10:00", EndTime: "18:00"},
		{EmployeeID: "sato_m", Date: "2025-03-04", Type: domain.ShiftOff},
		{EmployeeID: "sato_m", Date: "2025-03-05", Type: domain.ShiftCustom, StartTime: "13:00", EndTime: "15:30"},
		{EmployeeID: "tanaka_h", Date: "2025-03-03", Type: domain.ShiftOff},
	}

	totals := MonthlyTotals(shifts)

	require.Len(t, totals, 2)
	assert.Equal(t, 10.5, totals["sato_m"])
	// 休みしかない従業員も 0.0 として現れる
	assert.Equal(t, 0.0, totals["tanaka_h"])
}
