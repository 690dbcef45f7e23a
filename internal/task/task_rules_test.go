package task_test

import (
	"testing"

	"aparthotel/internal/task"
	taskerrors "aparthotel/internal/task/errors"

	"github.com/stretchr/testify/assert"
)

func TestResolveCleaningType(t *testing.T) {
	tests := []struct {
		name      string
		taskType  string
		requested string
		fallback  string
		want      string
		wantErr   error
	}{
		{name: "maintenance ignores selection", taskType: task.TypeMaintenance, requested: "deep"},
		{name: "cleaning without selection", taskType: task.TypeCleaning, wantErr: taskerrors.ErrCleaningTypeRequired},
		{name: "cleaning with deep", taskType: task.TypeCleaning, requested: "Deep", want: "deep"},
		{name: "fallback applies", taskType: task.TypeCleaning, fallback: task.CleaningRegular, want: "regular"},
		{name: "unknown selection", taskType: task.TypeCleaning, requested: "quick", wantErr: taskerrors.ErrInvalidCleaningType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := task.ResolveCleaningType(tt.taskType, tt.requested, tt.fallback)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestCanBeAssigned(t *testing.T) {
	assert.True(t, task.CanBeAssigned("housekeeping"))
	assert.True(t, task.CanBeAssigned("manager"))
	assert.False(t, task.CanBeAssigned("frontoffice"))
	assert.False(t, task.CanBeAssigned("owner"))
}
