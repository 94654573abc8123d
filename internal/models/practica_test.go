package models

import (
	"testing"
	"time"
)

func TestPractica_FechaFormateada(t *testing.T) {
	tests := []struct {
		name  string
		fecha time.Time
		want  string
	}{
		{
			name:  "regular date",
			fecha: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
			want:  "10/05/24",
		},
		{
			name:  "single digit day and month are zero padded",
			fecha: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
			want:  "02/01/23",
		},
		{
			name:  "century boundary keeps two digit year",
			fecha: time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC),
			want:  "31/12/00",
		},
		{
			name:  "zero date yields empty string",
			fecha: time.Time{},
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Practica{Fecha: tt.fecha}
			if got := p.FechaFormateada(); got != tt.want {
				t.Errorf("FechaFormateada() = %q, want %q", got, tt.want)
			}
		})
	}
}
