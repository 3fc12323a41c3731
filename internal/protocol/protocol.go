// Package protocol defines the JSON messages exchanged with the
// antivirus service: tagged request shapes, typed results, and the
// defensive decode rules for the service's free-form responses.
package protocol

import (
	"encoding/json"
	"fmt"
)

// Request type discriminators. Every request carries exactly one.
const (
	TypeAuthRequest     = "auth_request"
	TypeLicenseCheck    = "license_check"
	TypeActivateRequest = "activate_request"
	TypeScanRequest     = "scan_request"
	TypeStatusRequest   = "status_request"
	TypeSettingsGet     = "settings_get"
	TypeSettingsSet     = "settings_set"
	TypeUpdateCheck     = "update_check"
	TypeShutdownRequest = "shutdown_request"
)

// AuthRequest asks the service to verify a user's credentials.
type AuthRequest struct {
	Type     string `json:"type"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewAuthRequest builds an auth_request message.
func NewAuthRequest(username, password string) AuthRequest {
	return AuthRequest{Type: TypeAuthRequest, Username: username, Password: password}
}

// LicenseCheck asks for the license state of a user.
type LicenseCheck struct {
	Type     string `json:"type"`
	Username string `json:"username"`
}

// NewLicenseCheck builds a license_check message.
func NewLicenseCheck(username string) LicenseCheck {
	return LicenseCheck{Type: TypeLicenseCheck, Username: username}
}

// ActivateRequest redeems an activation key for a user.
type ActivateRequest struct {
	Type          string `json:"type"`
	Username      string `json:"username"`
	ActivationKey string `json:"activation_key"`
}

// NewActivateRequest builds an activate_request message.
func NewActivateRequest(username, activationKey string) ActivateRequest {
	return ActivateRequest{Type: TypeActivateRequest, Username: username, ActivationKey: activationKey}
}

// ScanRequest starts a scan of the given path.
type ScanRequest struct {
	Type     string `json:"type"`
	ScanType string `json:"scan_type"`
	Path     string `json:"path"`
	DeepScan bool   `json:"deep_scan"`
}

// NewScanRequest builds a scan_request message.
func NewScanRequest(scanType, path string, deepScan bool) ScanRequest {
	return ScanRequest{Type: TypeScanRequest, ScanType: scanType, Path: path, DeepScan: deepScan}
}

// StatusRequest asks for the current service status.
type StatusRequest struct {
	Type string `json:"type"`
}

// NewStatusRequest builds a status_request message.
func NewStatusRequest() StatusRequest {
	return StatusRequest{Type: TypeStatusRequest}
}

// SettingsGet asks for the current settings document.
type SettingsGet struct {
	Type string `json:"type"`
}

// NewSettingsGet builds a settings_get message.
func NewSettingsGet() SettingsGet {
	return SettingsGet{Type: TypeSettingsGet}
}

// SettingsSet replaces the service settings with the given document.
type SettingsSet struct {
	Type     string   `json:"type"`
	Settings Settings `json:"settings"`
}

// NewSettingsSet builds a settings_set message.
func NewSettingsSet(s Settings) SettingsSet {
	return SettingsSet{Type: TypeSettingsSet, Settings: s}
}

// UpdateCheck asks whether a newer signature database is available.
type UpdateCheck struct {
	Type string `json:"type"`
}

// NewUpdateCheck builds an update_check message.
func NewUpdateCheck() UpdateCheck {
	return UpdateCheck{Type: TypeUpdateCheck}
}

// ShutdownRequest asks the service to stop.
type ShutdownRequest struct {
	Type string `json:"type"`
}

// NewShutdownRequest builds a shutdown_request message.
func NewShutdownRequest() ShutdownRequest {
	return ShutdownRequest{Type: TypeShutdownRequest}
}

// Encode serializes a request as a single UTF-8 JSON document. No
// length prefix or framing is added; one message is one write.
func Encode(req any) ([]byte, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}
	return data, nil
}
