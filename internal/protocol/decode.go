package protocol

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ErrNoSettings is returned when a settings response lacks the
// mandatory settings sub-object. Unlike an absent scalar field, a
// missing sub-object signals a malformed exchange, not an unset option.
var ErrNoSettings = errors.New("response has no settings object")

// Document is a parsed service response. Field accessors never fail:
// a missing or type-mismatched field yields the caller's default.
type Document struct {
	r gjson.Result
}

// ParseDocument validates and parses raw response bytes.
func ParseDocument(data []byte) (Document, error) {
	if !gjson.ValidBytes(data) {
		return Document{}, fmt.Errorf("response is not valid JSON")
	}
	r := gjson.ParseBytes(data)
	if !r.IsObject() {
		return Document{}, fmt.Errorf("response is not a JSON object")
	}
	return Document{r: r}, nil
}

// Bool reads a boolean field, or def if absent or not a boolean.
func (d Document) Bool(path string, def bool) bool {
	v := d.r.Get(path)
	if v.Type != gjson.True && v.Type != gjson.False {
		return def
	}
	return v.Bool()
}

// LookupBool reads a boolean field, reporting whether it was present
// as a boolean at all. Used where absence is a protocol violation
// rather than an unset option.
func (d Document) LookupBool(path string) (bool, bool) {
	v := d.r.Get(path)
	if v.Type != gjson.True && v.Type != gjson.False {
		return false, false
	}
	return v.Bool(), true
}

// Uint reads an unsigned integer field, or def if absent or not a number.
func (d Document) Uint(path string, def uint64) uint64 {
	v := d.r.Get(path)
	if v.Type != gjson.Number {
		return def
	}
	return v.Uint()
}

// Uint32 reads a 32-bit unsigned integer field, or def.
func (d Document) Uint32(path string, def uint32) uint32 {
	return uint32(d.Uint(path, uint64(def)))
}

// Str reads a string field, or def if absent or not a string.
func (d Document) Str(path, def string) string {
	v := d.r.Get(path)
	if v.Type != gjson.String {
		return def
	}
	return v.String()
}

// Sub returns a nested object field, reporting whether it exists.
func (d Document) Sub(path string) (Document, bool) {
	v := d.r.Get(path)
	if !v.IsObject() {
		return Document{}, false
	}
	return Document{r: v}, true
}

// DecodeLicenseInfo reads a license_check reply.
func DecodeLicenseInfo(d Document) LicenseInfo {
	return LicenseInfo{
		IsValid:     d.Bool("is_valid", false),
		ExpiresAt:   d.Uint("expires_at", 0),
		LicenseType: d.Str("license_type", ""),
		Message:     d.Str("message", ""),
	}
}

// DecodeActivationResult reads an activate_request reply.
func DecodeActivationResult(d Document) ActivationResult {
	return ActivationResult{
		Activated: d.Bool("activated", false),
		ExpiresAt: d.Uint("expires_at", 0),
		Message:   d.Str("message", ""),
	}
}

// DecodeServiceStatus reads a status_request reply.
func DecodeServiceStatus(d Document) ServiceStatus {
	return ServiceStatus{
		IsRunning:           d.Bool("is_running", false),
		RealTimeProtection:  d.Bool("real_time_protection", false),
		AutoScanEnabled:     d.Bool("auto_scan_enabled", false),
		LastScanTime:        d.Uint("last_scan_time", 0),
		LastUpdateTime:      d.Uint("last_update_time", 0),
		DatabaseVersion:     d.Uint32("database_version", 0),
		TotalThreatsBlocked: d.Uint32("total_threats_blocked", 0),
	}
}

// DecodeSettings reads a settings_get reply. The settings sub-object
// is mandatory; individual fields inside it default when absent.
func DecodeSettings(d Document) (Settings, error) {
	s, ok := d.Sub("settings")
	if !ok {
		return Settings{}, ErrNoSettings
	}
	return Settings{
		RealTimeProtection: s.Bool("real_time_protection", true),
		ScanOnAccess:       s.Bool("scan_on_access", true),
		ScanArchives:       s.Bool("scan_archives", false),
		AutoUpdate:         s.Bool("auto_update", true),
		ScanSchedule:       s.Uint32("scan_schedule", 0),
		ScanTime:           s.Uint32("scan_time", 2),
		QuarantinePath:     s.Str("quarantine_path", ""),
		ExclusionPaths:     s.Str("exclusion_paths", ""),
	}, nil
}

// DecodeScanProgress reads a scan progress document.
func DecodeScanProgress(d Document) ScanProgress {
	return ScanProgress{
		FilesScanned:    d.Uint32("files_scanned", 0),
		ThreatsFound:    d.Uint32("threats_found", 0),
		ProgressPercent: d.Uint32("progress_percent", 0),
		CurrentFile:     d.Str("current_file", ""),
	}
}

// DecodeScanResult reads a scan completion document, preserving the
// reported threat order.
func DecodeScanResult(d Document) ScanResult {
	res := ScanResult{
		TotalFiles:   d.Uint32("total_files", 0),
		TotalThreats: d.Uint32("total_threats", 0),
	}
	d.r.Get("threats").ForEach(func(_, item gjson.Result) bool {
		t := Document{r: item}
		res.Threats = append(res.Threats, ThreatInfo{
			FilePath:    t.Str("file_path", ""),
			ThreatName:  t.Str("threat_name", ""),
			ThreatLevel: t.Uint32("threat_level", 0),
			FileSize:    t.Uint("file_size", 0),
		})
		return true
	})
	return res
}

// DecodeUpdateStatus reads an update_check reply.
func DecodeUpdateStatus(d Document) UpdateStatus {
	return UpdateStatus{
		UpdateAvailable:   d.Bool("update_available", false),
		CurrentVersion:    d.Uint32("current_version", 0),
		LatestVersion:     d.Uint32("latest_version", 0),
		UpdateSize:        d.Uint("update_size", 0),
		UpdateDescription: d.Str("update_description", ""),
	}
}
