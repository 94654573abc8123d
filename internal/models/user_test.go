package models

import (
	"reflect"
	"testing"
)

func TestNewUser(t *testing.T) {
	type args struct {
		username     string
		passwordHash string
		name         string
		rol          string
	}
	tests := []struct {
		name string
		args args
		want *User
	}{
		{
			name: "Create new user with all fields",
			args: args{
				username:     "testuser",
				passwordHash: "$2a$10$hash",
				name:         "Test User",
				rol:          "docente",
			},
			want: &User{
				ID:           "", // ID is left empty for the database to populate
				Username:     "testuser",
				PasswordHash: "$2a$10$hash",
				Name:         "Test User",
				Rol:          "docente",
			},
		},
		{
			name: "Create new user with empty fields",
			args: args{},
			want: &User{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewUser(tt.args.username, tt.args.passwordHash, tt.args.name, tt.args.rol); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NewUser() = %v, want %v", got, tt.want)
			}
		})
	}
}
