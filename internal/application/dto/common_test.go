package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Caja-api/internal/application/dto"
)

func TestPageRequest_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   dto.PageRequest
		want dto.PageRequest
	}{
		{"vacío", dto.PageRequest{}, dto.PageRequest{Limit: dto.DefaultPageLimit}},
		{"excede máximo", dto.PageRequest{Limit: 500, Offset: 10}, dto.PageRequest{Limit: dto.MaxPageLimit, Offset: 10}},
		{"offset negativo", dto.PageRequest{Limit: 5, Offset: -3}, dto.PageRequest{Limit: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}
