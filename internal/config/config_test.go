package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MEALMART_JWT_SECRET", "test-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.App.Name != "mealmart" {
		t.Errorf("App.Name = %v, want mealmart", cfg.App.Name)
	}
	if cfg.Database.Port != 27017 {
		t.Errorf("Database.Port = %v, want 27017", cfg.Database.Port)
	}
	if cfg.Passcode.PeriodSecs != 30 {
		t.Errorf("Passcode.PeriodSecs = %v, want 30", cfg.Passcode.PeriodSecs)
	}
	if cfg.Passcode.Skew != 10 {
		t.Errorf("Passcode.Skew = %v, want 10", cfg.Passcode.Skew)
	}
	if cfg.JWT.AccessTokenDuration != time.Hour {
		t.Errorf("JWT.AccessTokenDuration = %v, want 1h", cfg.JWT.AccessTokenDuration)
	}
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("MEALMART_JWT_SECRET", "")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Error("Load() expected error for missing JWT secret")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("MEALMART_JWT_SECRET", "test-secret")
	t.Setenv("MEALMART_DATABASE_HOST", "mongo.internal")
	t.Setenv("MEALMART_DATABASE_PORT", "27018")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.Host != "mongo.internal" {
		t.Errorf("Database.Host = %v, want mongo.internal", cfg.Database.Host)
	}
	if cfg.Database.Port != 27018 {
		t.Errorf("Database.Port = %v, want 27018", cfg.Database.Port)
	}
}

func TestDatabaseConfig_MongoURI(t *testing.T) {
	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "without credentials",
			cfg:  DatabaseConfig{Host: "localhost", Port: 27017, Name: "mealmart"},
			want: "mongodb://localhost:27017/mealmart",
		},
		{
			name: "with credentials and auth source",
			cfg:  DatabaseConfig{Host: "db", Port: 27017, Name: "mealmart", User: "app", Password: "pw", AuthSource: "admin"},
			want: "mongodb://app:pw@db:27017/mealmart?authSource=admin",
		},
		{
			name: "with replica set",
			cfg:  DatabaseConfig{Host: "db", Port: 27017, Name: "mealmart", ReplicaSet: "rs0"},
			want: "mongodb://db:27017/mealmart?replicaSet=rs0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.MongoURI(); got != tt.want {
				t.Errorf("MongoURI() = %v, want %v", got, tt.want)
			}
		})
	}
}
