package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	apperrors "enquete-portal-backend/internal/errors"

	"github.com/sirupsen/logrus"
)

// templateFileName is the OpenVPN client template uploaded by the operator.
const templateFileName = "client_template.ovpn"

// VPNService issues per-investigator OpenVPN profiles. The template directory
// holds the uploaded client template plus the shared certificate material;
// generation inlines the certificates so the investigator gets a single
// self-contained .ovpn file.
type VPNService struct {
	templateDir string
	configDir   string
	logger      *logrus.Logger
}

// Ensure VPNService implements VPNServiceInterface
var _ VPNServiceInterface = (*VPNService)(nil)

// NewVPNService creates a new VPN service
func NewVPNService(templateDir, configDir string, logger *logrus.Logger) *VPNService {
	return &VPNService{
		templateDir: templateDir,
		configDir:   configDir,
		logger:      logger,
	}
}

// ConfigPath returns where the profile of one investigator lives
func (s *VPNService) ConfigPath(investigatorID uint) string {
	return filepath.Join(s.configDir, fmt.Sprintf("client%d.ovpn", investigatorID))
}

// TemplateExists reports whether a client template has been uploaded, and
// where it is when it has.
func (s *VPNService) TemplateExists() (bool, string) {
	path := filepath.Join(s.templateDir, templateFileName)
	if _, err := os.Stat(path); err != nil {
		return false, ""
	}
	return true, path
}

// SaveTemplate stores the uploaded client template
func (s *VPNService) SaveTemplate(r io.Reader) (string, error) {
	if err := os.MkdirAll(s.templateDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create template directory: %w", err)
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read template: %w", err)
	}

	path := filepath.Join(s.templateDir, templateFileName)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return "", fmt.Errorf("failed to write template: %w", err)
	}

	s.logger.WithField("path", path).Info("VPN template saved")
	return path, nil
}

// GenerateConfig builds the profile of one investigator from the template,
// inlining ca.crt, client1.crt, client1.key and ta.key in place of their
// file directives. Overwrites any previous profile.
func (s *VPNService) GenerateConfig(investigatorID uint) (string, error) {
	template, err := s.readTemplateFile(templateFileName)
	if err != nil {
		return "", err
	}
	caCert, err := s.readTemplateFile("ca.crt")
	if err != nil {
		return "", err
	}
	clientCert, err := s.readTemplateFile("client1.crt")
	if err != nil {
		return "", err
	}
	clientKey, err := s.readTemplateFile("client1.key")
	if err != nil {
		return "", err
	}
	taKey, err := s.readTemplateFile("ta.key")
	if err != nil {
		return "", err
	}

	config := template
	config = strings.Replace(config, "ca ca.crt", "<ca>\n"+caCert+"</ca>", 1)
	config = strings.Replace(config, "cert client1.crt", "<cert>\n"+clientCert+"</cert>", 1)
	config = strings.Replace(config, "key client1.key", "<key>\n"+clientKey+"</key>", 1)
	config = strings.Replace(config, "tls-auth ta.key 1", "<tls-auth>\n"+taKey+"</tls-auth>\nkey-direction 1", 1)

	if err := os.MkdirAll(s.configDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	path := s.ConfigPath(investigatorID)
	if err := os.WriteFile(path, []byte(config), 0o600); err != nil {
		return "", fmt.Errorf("failed to write VPN config: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"investigator_id": investigatorID,
		"path":            path,
	}).Info("VPN config generated")
	return path, nil
}

// EnsureConfig returns the investigator's profile path, generating it first
// when it is not on disk yet
func (s *VPNService) EnsureConfig(investigatorID uint) (string, error) {
	path := s.ConfigPath(investigatorID)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	return s.GenerateConfig(investigatorID)
}

// RemoveConfig deletes the investigator's profile. Missing profiles are fine.
func (s *VPNService) RemoveConfig(investigatorID uint) error {
	err := os.Remove(s.ConfigPath(investigatorID))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove VPN config: %w", err)
	}
	return nil
}

func (s *VPNService) readTemplateFile(name string) (string, error) {
	content, err := os.ReadFile(filepath.Join(s.templateDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return "", apperrors.ErrVPNTemplateNotFound
		}
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}
	return string(content), nil
}
