package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adboardhq/adboard-api/internal/domain"
)

func TestListByStatusQuery(t *testing.T) {
	tests := []struct {
		name     string
		statuses []domain.AdRequestStatus
		validate func(t *testing.T, query string, args []interface{}, err error)
	}{
		{
			name:     "Fila de revisão ordena prioridade alta primeiro",
			statuses: []domain.AdRequestStatus{domain.AdRequestStatusPending},
			validate: func(t *testing.T, query string, args []interface{}, err error) {
				assert.NoError(t, err)
				assert.Contains(t, query, "CASE r.priority_level WHEN 'high' THEN 3 WHEN 'normal' THEN 2 ELSE 1 END DESC")
				assert.Contains(t, query, "r.created_at ASC")
				assert.Contains(t, query, "r.status IN ($1)")
				assert.Equal(t, []interface{}{domain.AdRequestStatusPending}, args)
			},
		},
		{
			name:     "Peso numérico vem antes do desempate por data",
			statuses: []domain.AdRequestStatus{domain.AdRequestStatusPending, domain.AdRequestStatusApproved},
			validate: func(t *testing.T, query string, args []interface{}, err error) {
				assert.NoError(t, err)
				casePos := strings.Index(query, "CASE r.priority_level")
				datePos := strings.Index(query, "r.created_at ASC")
				assert.True(t, casePos >= 0 && datePos > casePos)
				assert.Len(t, args, 2)
			},
		},
		{
			name:     "Sem filtro de status não aplica WHERE",
			statuses: nil,
			validate: func(t *testing.T, query string, args []interface{}, err error) {
				assert.NoError(t, err)
				assert.NotContains(t, query, "WHERE")
				assert.Empty(t, args)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := listByStatusQuery(tt.statuses)
			tt.validate(t, query, args, err)
		})
	}
}
