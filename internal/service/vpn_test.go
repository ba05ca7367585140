package service_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "enquete-portal-backend/internal/errors"
	"enquete-portal-backend/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vpnTemplate = `client
dev tun
remote vpn.example.com 1194
ca ca.crt
cert client1.crt
key client1.key
tls-auth ta.key 1
`

func newVPNService(t *testing.T) (*service.VPNService, string) {
	t.Helper()
	templateDir := t.TempDir()
	configDir := t.TempDir()
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return service.NewVPNService(templateDir, configDir, logger), templateDir
}

func writeTemplateMaterial(t *testing.T, templateDir string) {
	t.Helper()
	files := map[string]string{
		"client_template.ovpn": vpnTemplate,
		"ca.crt":               "CA-CERT\n",
		"client1.crt":          "CLIENT-CERT\n",
		"client1.key":          "CLIENT-KEY\n",
		"ta.key":               "TA-KEY\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(templateDir, name), []byte(content), 0o600))
	}
}

func TestVPNService_SaveTemplate(t *testing.T) {
	svc, templateDir := newVPNService(t)

	exists, _ := svc.TemplateExists()
	assert.False(t, exists)

	path, err := svc.SaveTemplate(strings.NewReader(vpnTemplate))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(templateDir, "client_template.ovpn"), path)

	exists, foundPath := svc.TemplateExists()
	assert.True(t, exists)
	assert.Equal(t, path, foundPath)
}

func TestVPNService_GenerateConfigInlinesCertificates(t *testing.T) {
	svc, templateDir := newVPNService(t)
	writeTemplateMaterial(t, templateDir)

	path, err := svc.GenerateConfig(3)
	require.NoError(t, err)
	assert.Equal(t, svc.ConfigPath(3), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	config := string(content)

	assert.Contains(t, config, "<ca>\nCA-CERT\n</ca>")
	assert.Contains(t, config, "<cert>\nCLIENT-CERT\n</cert>")
	assert.Contains(t, config, "<key>\nCLIENT-KEY\n</key>")
	assert.Contains(t, config, "<tls-auth>\nTA-KEY\n</tls-auth>\nkey-direction 1")
	assert.NotContains(t, config, "ca ca.crt")
	assert.NotContains(t, config, "cert client1.crt")
	assert.Contains(t, config, "remote vpn.example.com 1194")
}

func TestVPNService_GenerateConfigMissingTemplate(t *testing.T) {
	svc, _ := newVPNService(t)

	path, err := svc.GenerateConfig(3)

	assert.ErrorIs(t, err, apperrors.ErrVPNTemplateNotFound)
	assert.Empty(t, path)
}

func TestVPNService_GenerateConfigMissingCertificate(t *testing.T) {
	svc, templateDir := newVPNService(t)
	writeTemplateMaterial(t, templateDir)
	require.NoError(t, os.Remove(filepath.Join(templateDir, "ta.key")))

	_, err := svc.GenerateConfig(3)

	assert.ErrorIs(t, err, apperrors.ErrVPNTemplateNotFound)
}

func TestVPNService_EnsureConfigReusesExistingProfile(t *testing.T) {
	svc, templateDir := newVPNService(t)
	writeTemplateMaterial(t, templateDir)

	first, err := svc.EnsureConfig(3)
	require.NoError(t, err)

	// Break the template material; an existing profile must still be served.
	require.NoError(t, os.Remove(filepath.Join(templateDir, "client_template.ovpn")))

	second, err := svc.EnsureConfig(3)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestVPNService_RemoveConfig(t *testing.T) {
	svc, templateDir := newVPNService(t)
	writeTemplateMaterial(t, templateDir)

	path, err := svc.GenerateConfig(3)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveConfig(3))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	// Removing a profile that was never generated is not an error.
	assert.NoError(t, svc.RemoveConfig(99))
}
