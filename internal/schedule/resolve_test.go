package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BennersTaga/shift-management-app/internal/domain"
)

func TestResolveRange(t *testing.T) {
	employee := testEmployee() // 契約時間 10:00-18:00

	cases := []struct {
		name      string
		rec       domain.ShiftRecord
		wantStart string
		wantEnd   string
		wantOK    bool
	}{
		{
			name:      "通常勤務は固定時間帯",
			rec:       domain.ShiftRecord{Type: domain.ShiftNormal},
			wantStart: "09:00",
			wantEnd:   "17:00",
			wantOK:    true,
		},
		{
			name:      "契約勤務は契約時間から導出",
			rec:       domain.ShiftRecord{Type: domain.ShiftContract},
			wantStart: "10:00",
			wantEnd:   "18:00",
			wantOK:    true,
		},
		{
			name:      "自由入力は保存された時刻",
			rec:       domain.ShiftRecord{Type: domain.ShiftCustom, StartTime: "13:00", EndTime: "15:30"},
			wantStart: "13:00",
			wantEnd:   "15:30",
			wantOK:    true,
		},
		{
			name:   "休みは時間帯を持たない",
			rec:    domain.ShiftRecord{Type: domain.ShiftOff},
			wantOK: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			start, end, ok, err := ResolveRange(&c.rec, employee)
			require.NoError(t, err)
			assert.Equal(t, c.wantOK, ok)
			if c.wantOK {
				assert.Equal(t, c.wantStart, start.String())
				assert.Equal(t, c.wantEnd, end.String())
			}
		})
	}
}

func TestResolveRange_Errors(t *testing.T) {
	broken := &domain.Employee{ID: "broken", ContractTime: "10:00"}

	_, _, _, err := ResolveRange(&domain.ShiftRecord{Type: domain.ShiftContract}, broken)
	assert.ErrorIs(t, err, domain.ErrInvalidContractTime)

	_, _, _, err = ResolveRange(&domain.ShiftRecord{Type: domain.ShiftCustom, StartTime: "xx", EndTime: "17:00"}, testEmployee())
	assert.ErrorIs(t, err, domain.ErrMalformedTime)

	_, _, _, err = ResolveRange(&domain.ShiftRecord{Type: domain.ShiftType("vacation")}, testEmployee())
	assert.Error(t, err)
}
