package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployee_ContractRange(t *testing.T) {
	employee := &Employee{ID: "sato_m", Name: "佐藤 美咲", ContractTime: "10:00-18:00"}

	start, end, err := employee.ContractRange()
	require.NoError(t, err)
	assert.Equal(t, "10:00", start.String())
	assert.Equal(t, "18:00", end.String())
}

func TestEmployee_ContractRange_Invalid(t *testing.T) {
	cases := []string{"", "10:00", "10:00-18:00-20:00", "ab:cd-18:00", "10:00-xx:00"}

	for _, c := range cases {
		employee := &Employee{ID: "test", ContractTime: c}
		_, _, err := employee.ContractRange()
		require.Error(t, err, c)
		assert.ErrorIs(t, err, ErrInvalidContractTime, c)
	}
}

func TestFallbackEmployee(t *testing.T) {
	employee := FallbackEmployee()

	assert.Equal(t, "test", employee.ID)
	assert.Equal(t, "テストユーザー", employee.Name)

	// フォールバックの契約時間は必ず解決できること
	_, _, err := employee.ContractRange()
	assert.NoError(t, err)
}

func TestSystemSettings_Window(t *testing.T) {
	start, end := 1, 10

	var settings *SystemSettings
	assert.Nil(t, settings.Window())

	settings = &SystemSettings{}
	assert.Nil(t, settings.Window())

	settings = &SystemSettings{InputStartDay: &start}
	assert.Nil(t, settings.Window())

	settings = &SystemSettings{InputStartDay: &start, InputEndDay: &end}
	window := settings.Window()
	require.NotNil(t, window)
	assert.Equal(t, 1, window.StartDay)
	assert.Equal(t, 10, window.EndDay)
}
