package main_test

import (
	clist "gregoryjjb/clist"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScenario_Validate(t *testing.T) {
	tests := []struct {
		name    string
		in      clist.Scenario
		wantErr bool
	}{
		{
			name: "demo",
			in:   clist.DefaultScenario(),
		},
		{
			name: "no steps",
			in:   clist.Scenario{Name: "empty"},
		},
		{
			name: "unknown op",
			in: clist.Scenario{Steps: []clist.Step{
				{Op: clist.CommandInsertHead, Value: 1},
				{Op: "reverse"},
			}},
			wantErr: true,
		},
		{
			name:    "negative walk",
			in:      clist.Scenario{Steps: []clist.Step{{Op: clist.CommandWalk, Count: -1}}},
			wantErr: true,
		},
		{
			name:    "negative max nodes",
			in:      clist.Scenario{MaxNodes: -3},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, clist.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStep_String(t *testing.T) {
	tests := []struct {
		in   clist.Step
		want string
	}{
		{in: clist.Step{Op: clist.CommandInsertTail, Value: 10}, want: "insert_tail(10)"},
		{in: clist.Step{Op: clist.CommandInsertAt, Value: 7, Position: 2}, want: "insert_at(7, 2)"},
		{in: clist.Step{Op: clist.CommandInsertBefore, Value: 7, Target: 20}, want: "insert_before(7, 20)"},
		{in: clist.Step{Op: clist.CommandDeleteAt, Position: 3}, want: "delete_at(3)"},
		{in: clist.Step{Op: clist.CommandWalk, Count: 5}, want: "walk(5)"},
		{in: clist.Step{Op: clist.CommandTraverse}, want: "traverse"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.String())
		})
	}
}
