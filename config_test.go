package main

import (
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Config{port: 8080}, false},
		{"port too low", Config{port: 0}, true},
		{"port too high", Config{port: 65536}, true},
		{"tls cert without key", Config{port: 8080, tlsCert: "cert.pem"}, true},
		{"tls key without cert", Config{port: 8080, tlsKey: "key.pem"}, true},
		{"tls pair", Config{port: 8080, tlsCert: "cert.pem", tlsKey: "key.pem"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigScheme(t *testing.T) {
	cfg := Config{}
	if got := cfg.scheme(); got != "http" {
		t.Fatalf("expected http, got %s", got)
	}

	cfg = Config{tlsCert: "cert.pem", tlsKey: "key.pem"}
	if got := cfg.scheme(); got != "https" {
		t.Fatalf("expected https, got %s", got)
	}
}
