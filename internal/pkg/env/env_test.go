package env_test

import (
	"reflect"
	"testing"

	"github.com/ferdiebergado/usersvc/internal/pkg/env"
)

func TestOverrideStruct(t *testing.T) {
	type serverOpts struct {
		Port     int   `env:"SERVER_PORT"`
		MaxBytes int64 `env:"SERVER_MAX_BYTES"`
		Debug    bool  `env:"SERVER_DEBUG"`
	}

	type settings struct {
		Env    string `env:"APP_ENV"`
		Name   string `env:"APP_NAME_UNSET"`
		Server *serverOpts
	}

	got := settings{
		Env:  "development",
		Name: "usersvc",
		Server: &serverOpts{
			Port: 8888,
		},
	}

	t.Setenv("APP_ENV", "testing")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SERVER_MAX_BYTES", "1024")
	t.Setenv("SERVER_DEBUG", "true")

	if err := env.OverrideStruct(&got); err != nil {
		t.Fatal(err)
	}

	want := settings{
		Env:  "testing",
		Name: "usersvc",
		Server: &serverOpts{
			Port:     9000,
			MaxBytes: 1024,
			Debug:    true,
		},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("env.OverrideStruct(&got) = %+v, want: %+v", got, want)
	}
}

func TestOverrideStruct_Errors(t *testing.T) {
	type opts struct {
		Port int `env:"BAD_PORT"`
	}

	t.Run("Not a pointer", func(t *testing.T) {
		if err := env.OverrideStruct(opts{}); err == nil {
			t.Error("env.OverrideStruct(opts{}) = nil, want: error")
		}
	})

	t.Run("Invalid int", func(t *testing.T) {
		t.Setenv("BAD_PORT", "eighty")
		if err := env.OverrideStruct(&opts{}); err == nil {
			t.Error("env.OverrideStruct(&opts{}) = nil, want: error")
		}
	})
}

func TestEnv(t *testing.T) {
	const fallback = "example.com"

	tests := []struct {
		name, envVar, envVal, fallback, val string
	}{
		{"EnvVar is set", "USERSVC_TEST_HOST", "localhost", fallback, "localhost"},
		{"EnvVar is not set", "USERSVC_TEST_HOST", "", fallback, fallback},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envVal != "" {
				t.Setenv(tc.envVar, tc.envVal)
			}
			val := env.Env(tc.envVar, tc.fallback)

			if val != tc.val {
				t.Errorf("env.Env(%q, %q) = %q, want: %q", tc.envVar, tc.fallback, val, tc.val)
			}
		})
	}
}
