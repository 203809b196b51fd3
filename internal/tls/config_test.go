// SPDX-License-Identifier: MIT
package tls

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xilkadim/brandkit/internal/config"
)

func initConfig(t *testing.T) {
	t.Helper()
	if err := config.InitConfig(filepath.Join(t.TempDir(), "config.yaml")); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
}

// writeKeyPair writes a self-signed certificate and key into dir
func writeKeyPair(t *testing.T, dir string) (string, string) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "localhost"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		DNSNames:     []string{"localhost"},
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("Failed to create certificate: %v", err)
	}
	keyDER, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		t.Fatalf("Failed to marshal key: %v", err)
	}

	certPath := filepath.Join(dir, "cert.pem")
	keyPath := filepath.Join(dir, "key.pem")
	os.WriteFile(certPath, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0600)
	os.WriteFile(keyPath, pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER}), 0600)
	return certPath, keyPath
}

func TestLoadConfigDisabled(t *testing.T) {
	initConfig(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Enabled {
		t.Error("Expected TLS disabled by default")
	}

	tlsCfg, err := cfg.TLSConfig()
	if err != nil || tlsCfg != nil {
		t.Errorf("Expected nil TLS config when disabled, got %v, %v", tlsCfg, err)
	}
}

func TestLoadConfigRequiresFiles(t *testing.T) {
	initConfig(t)
	config.Set("server.tls_enabled", true)

	if _, err := LoadConfig(); err == nil {
		t.Error("Expected error without tls.cert_file")
	}

	config.Set("tls.cert_file", "/nonexistent/cert.pem")
	config.Set("tls.key_file", "/nonexistent/key.pem")
	if _, err := LoadConfig(); err == nil {
		t.Error("Expected error for missing certificate files")
	}
}

func TestTLSConfig(t *testing.T) {
	initConfig(t)
	certPath, keyPath := writeKeyPair(t, t.TempDir())
	config.Set("server.tls_enabled", true)
	config.Set("tls.cert_file", certPath)
	config.Set("tls.key_file", keyPath)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	tlsCfg, err := cfg.TLSConfig()
	if err != nil {
		t.Fatalf("TLSConfig failed: %v", err)
	}
	if len(tlsCfg.Certificates) != 1 {
		t.Errorf("Expected 1 certificate, got %d", len(tlsCfg.Certificates))
	}
	if tlsCfg.MinVersion != tls.VersionTLS12 {
		t.Errorf("Expected TLS 1.2 minimum, got %x", tlsCfg.MinVersion)
	}
}
