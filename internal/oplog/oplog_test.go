package oplog

import (
	"testing"
	"time"

	"github.com/techbucket/techbucket-web/internal/domain"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		m    domain.Mutation
		want string
	}{
		{domain.Mutation{Kind: domain.KindProduct, Action: domain.ActionUpdate, ID: 3}, "update Product #3"},
		{domain.Mutation{Kind: domain.KindBrand, Action: domain.ActionCreate}, "create Brand"},
		{domain.Mutation{Kind: domain.KindQuote, Action: domain.ActionStatus, ID: 9, Detail: "responded"}, "status Quote Request #9: responded"},
	}
	for _, tt := range tests {
		if got := Describe(tt.m); got != tt.want {
			t.Errorf("Describe(%+v) = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestEntry(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	m := domain.Mutation{
		Kind:     domain.KindEvent,
		Action:   domain.ActionDelete,
		ID:       4,
		Operator: "admin",
		Remote:   "10.0.0.7",
	}
	e := Entry(m, 77, at)
	if e.ID != 77 || e.OprName != "admin" || e.OprIp != "10.0.0.7" {
		t.Errorf("unexpected identity fields %+v", e)
	}
	if e.OptAction != "delete_event" {
		t.Errorf("OptAction = %q", e.OptAction)
	}
	if !e.OptTime.Equal(at) {
		t.Errorf("OptTime = %v", e.OptTime)
	}
	if e.TableName() != "sys_opr_log" {
		t.Errorf("table = %q", e.TableName())
	}
}
